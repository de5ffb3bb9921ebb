package tactic

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/entity"
)

const (
	NewellAndSimonName = "newell-simon"
	NoviceName         = "novice"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Move - a chosen position and the tactic that proposed it.
type Move struct {
	Position entity.Position `json:"position"`
	Tactic   string          `json:"tactic"`
}

// Strategy - tactics evaluated strictly in priority order; the first one
// that proposes a position wins.
type Strategy struct {
	name    string
	tactics []Tactic
}

func New(name string, tactics ...Tactic) *Strategy {
	return &Strategy{
		name:    name,
		tactics: tactics,
	}
}

// NewellAndSimon - the complete eight-rule strategy.
func NewellAndSimon() *Strategy {
	return New(NewellAndSimonName,
		Win{},
		Block{},
		Fork{},
		BlockFork{},
		Center{},
		OppositeCorner{},
		EmptyCorner{},
		EmptySide{},
	)
}

// Novice - wins and blocks, otherwise plays the board edges without planning ahead.
func Novice() *Strategy {
	return New(NoviceName,
		Win{},
		Block{},
		EmptyCorner{},
		EmptySide{},
	)
}

func ByName(name string) (*Strategy, error) {
	switch name {
	case NewellAndSimonName:
		return NewellAndSimon(), nil
	case NoviceName:
		return Novice(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

func (that *Strategy) Name() string {
	return that.name
}

func (that *Strategy) TacticNames() []string {
	return lo.Map(that.tactics, func(t Tactic, _ int) string {
		return t.Name()
	})
}

// ChooseMove - asks each tactic in turn. It reports false when every tactic
// abstains, which callers treat as "no move available".
func (that *Strategy) ChooseMove(mark entity.Mark, board entity.Board) (Move, bool) {
	if !mark.IsValid() || board.IsFull() {
		return Move{}, false
	}

	for _, t := range that.tactics {
		if pos, ok := t.ChoosePosition(mark, board); ok {
			return Move{Position: pos, Tactic: t.Name()}, true
		}
	}

	return Move{}, false
}
