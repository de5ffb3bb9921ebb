// Package tactic implements the computer player: Newell and Simon's tic-tac-toe
// strategy expressed as an ordered chain of independent heuristic rules.
package tactic

import "github.com/rocketscienceinc/tictactoe-strategist/internal/entity"

// Tactic - a single stateless rule for choosing a move.
// ChoosePosition reports false when the rule has nothing to propose,
// which is always the case on a full board.
type Tactic interface {
	Name() string
	ChoosePosition(mark entity.Mark, board entity.Board) (entity.Position, bool)
}
