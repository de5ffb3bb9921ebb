package entity

import "fmt"

// Position - a 0-indexed cell address on the board.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Column)
}
