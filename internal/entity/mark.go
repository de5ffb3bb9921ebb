package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Mark - a player's symbol. NoMark stands for an empty cell.
type Mark string

const (
	MarkX  Mark = "X"
	MarkO  Mark = "O"
	NoMark Mark = ""
)

var ErrInvalidMark = errors.New("invalid mark")

// ParseMark - converts "x"/"X"/"o"/"O" into a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(MarkX):
		return MarkX, nil
	case string(MarkO):
		return MarkO, nil
	default:
		return NoMark, fmt.Errorf("%w: %q", ErrInvalidMark, s)
	}
}

func (that Mark) IsValid() bool {
	return that == MarkX || that == MarkO
}

// Opponent - returns the mark of the other player.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return NoMark
	}
}
