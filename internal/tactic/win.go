package tactic

import "github.com/rocketscienceinc/tictactoe-strategist/internal/entity"

// Win - completes a line that already holds two of the player's marks.
type Win struct{}

func (Win) Name() string {
	return "win"
}

func (Win) ChoosePosition(mark entity.Mark, board entity.Board) (entity.Position, bool) {
	if !mark.IsValid() {
		return entity.Position{}, false
	}

	for _, line := range board.Lines() {
		if pos, ok := completingPosition(mark, board, line); ok {
			return pos, true
		}
	}

	return entity.Position{}, false
}

// Block - takes the cell the opponent needs to win.
type Block struct{}

func (Block) Name() string {
	return "block"
}

func (Block) ChoosePosition(mark entity.Mark, board entity.Board) (entity.Position, bool) {
	if !mark.IsValid() {
		return entity.Position{}, false
	}

	return Win{}.ChoosePosition(mark.Opponent(), board)
}
