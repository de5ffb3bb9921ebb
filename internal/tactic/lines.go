package tactic

import (
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/entity"
)

// completingPosition - the empty cell of a line that holds mark everywhere else.
func completingPosition(mark entity.Mark, board entity.Board, line []entity.Position) (entity.Position, bool) {
	var (
		empty    entity.Position
		empties  int
		occupied int
	)

	for _, pos := range line {
		switch board.MarkAt(pos) {
		case mark:
			occupied++
		case entity.NoMark:
			empty = pos
			empties++
		}
	}

	if empties != 1 || occupied != len(line)-1 {
		return entity.Position{}, false
	}

	return empty, true
}

// threats - cells where mark would complete a line, in line order, without duplicates.
func threats(mark entity.Mark, board entity.Board) []entity.Position {
	var found []entity.Position
	for _, line := range board.Lines() {
		if pos, ok := completingPosition(mark, board, line); ok {
			found = append(found, pos)
		}
	}
	return lo.Uniq(found)
}

// forkPositions - empty cells which would leave mark with two or more threats.
func forkPositions(mark entity.Mark, board entity.Board) []entity.Position {
	return lo.Filter(board.EmptyPositions(), func(pos entity.Position, _ int) bool {
		next, err := board.WithMark(mark, pos)
		if err != nil {
			return false
		}
		return len(threats(mark, next)) >= 2
	})
}
