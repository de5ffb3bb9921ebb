package tactic

import (
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/entity"
)

// Fork - creates two threats at once, so the opponent can block only one.
type Fork struct{}

func (Fork) Name() string {
	return "fork"
}

func (Fork) ChoosePosition(mark entity.Mark, board entity.Board) (entity.Position, bool) {
	if !mark.IsValid() {
		return entity.Position{}, false
	}

	return lo.First(forkPositions(mark, board))
}

// BlockFork - denies the opponent a fork.
//
// A single opponent fork is simply occupied. With several, the player makes a
// two in a row instead, as long as the cell the opponent is forced to answer on
// does not hand them a fork. Failing that, the first fork cell is taken.
type BlockFork struct{}

func (BlockFork) Name() string {
	return "block-fork"
}

func (BlockFork) ChoosePosition(mark entity.Mark, board entity.Board) (entity.Position, bool) {
	if !mark.IsValid() {
		return entity.Position{}, false
	}

	opponent := mark.Opponent()

	forks := forkPositions(opponent, board)
	switch len(forks) {
	case 0:
		return entity.Position{}, false
	case 1:
		return forks[0], true
	}

	for _, pos := range board.EmptyPositions() {
		next, err := board.WithMark(mark, pos)
		if err != nil {
			continue
		}

		forced := threats(mark, next)
		if len(forced) != 1 {
			continue
		}

		if !lo.Contains(forkPositions(opponent, next), forced[0]) {
			return pos, true
		}
	}

	return forks[0], true
}
