package tactic

import "github.com/rocketscienceinc/tictactoe-strategist/internal/entity"

// OppositeCorner - takes an empty corner across from one held by the opponent.
type OppositeCorner struct{}

func (OppositeCorner) Name() string {
	return "opposite-corner"
}

func (OppositeCorner) ChoosePosition(mark entity.Mark, board entity.Board) (entity.Position, bool) {
	if !mark.IsValid() {
		return entity.Position{}, false
	}

	for _, corner := range board.IntersectEmptyPositions(board.Corners()) {
		opposite, ok := board.OppositeCorner(corner)
		if ok && board.MarkAt(opposite) == mark.Opponent() {
			return corner, true
		}
	}

	return entity.Position{}, false
}

// EmptyCorner - takes the first free corner: top-left, top-right, bottom-right, bottom-left.
type EmptyCorner struct{}

func (EmptyCorner) Name() string {
	return "empty-corner"
}

func (EmptyCorner) ChoosePosition(mark entity.Mark, board entity.Board) (entity.Position, bool) {
	if !mark.IsValid() {
		return entity.Position{}, false
	}

	emptyCorners := board.IntersectEmptyPositions(board.Corners())
	if len(emptyCorners) == 0 {
		return entity.Position{}, false
	}

	return emptyCorners[0], true
}
