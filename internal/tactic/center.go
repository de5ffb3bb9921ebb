package tactic

import "github.com/rocketscienceinc/tictactoe-strategist/internal/entity"

type Center struct{}

func (Center) Name() string {
	return "center"
}

func (Center) ChoosePosition(mark entity.Mark, board entity.Board) (entity.Position, bool) {
	if !mark.IsValid() {
		return entity.Position{}, false
	}

	center, ok := board.Center()
	if !ok || !board.IsEmptyAt(center) {
		return entity.Position{}, false
	}

	return center, true
}

// EmptySide - takes the first free non-corner edge cell, clockwise from the top.
type EmptySide struct{}

func (EmptySide) Name() string {
	return "empty-side"
}

func (EmptySide) ChoosePosition(mark entity.Mark, board entity.Board) (entity.Position, bool) {
	if !mark.IsValid() {
		return entity.Position{}, false
	}

	emptySides := board.IntersectEmptyPositions(board.Sides())
	if len(emptySides) == 0 {
		return entity.Position{}, false
	}

	return emptySides[0], true
}
