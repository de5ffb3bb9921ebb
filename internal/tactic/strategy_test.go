package tactic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/entity"
)

func TestStrategy_ChooseMove(t *testing.T) {
	strategy := NewellAndSimon()

	t.Run("Opens in the center", func(t *testing.T) {
		move, ok := strategy.ChooseMove(entity.MarkX, entity.NewStandardBoard())

		require.True(t, ok)
		assert.Equal(t, Move{Position: entity.Position{Row: 1, Column: 1}, Tactic: "center"}, move)
	})

	t.Run("Prefers winning over blocking", func(t *testing.T) {
		move, ok := strategy.ChooseMove(entity.MarkX, board3x3(t, "OO ", " XX", "   "))

		require.True(t, ok)
		assert.Equal(t, Move{Position: entity.Position{Row: 1, Column: 0}, Tactic: "win"}, move)
	})

	t.Run("Blocks before forking", func(t *testing.T) {
		move, ok := strategy.ChooseMove(entity.MarkX, board3x3(t, "X O", " O ", "  X"))

		require.True(t, ok)
		assert.Equal(t, Move{Position: entity.Position{Row: 2, Column: 0}, Tactic: "block"}, move)
	})

	t.Run("Reports no move on a full board", func(t *testing.T) {
		board := board3x3(t, "XOX", "OXO", "OXO")

		_, ok := strategy.ChooseMove(entity.MarkX, board)
		assert.False(t, ok)

		_, ok = Novice().ChooseMove(entity.MarkO, board)
		assert.False(t, ok)
	})

	t.Run("Reports no move for an invalid mark", func(t *testing.T) {
		_, ok := strategy.ChooseMove(entity.NoMark, entity.NewStandardBoard())

		assert.False(t, ok)
	})

	t.Run("Novice opens in a corner", func(t *testing.T) {
		move, ok := Novice().ChooseMove(entity.MarkX, entity.NewStandardBoard())

		require.True(t, ok)
		assert.Equal(t, Move{Position: entity.Position{Row: 0, Column: 0}, Tactic: "empty-corner"}, move)
	})
}

func TestStrategy_SelfPlayEndsInTie(t *testing.T) {
	// Given: a new game with the full strategy playing both sides
	strategy := NewellAndSimon()
	game := entity.NewGame("self-play")

	// When: both sides move until the game ends
	for !game.IsFinished() {
		move, ok := strategy.ChooseMove(game.Turn, game.Board)
		require.True(t, ok, "no move on\n%s", game.Board)
		require.NoError(t, game.MakeTurn(game.Turn, move.Position))
	}

	// Then: nobody wins
	assert.Equal(t, entity.PlayerTie, game.Winner, "final board:\n%s", game.Board)
}

func TestStrategy_NeverLosesToNovice(t *testing.T) {
	for _, expertMark := range []entity.Mark{entity.MarkX, entity.MarkO} {
		game := entity.NewGame("match")
		players := map[entity.Mark]*Strategy{
			expertMark:            NewellAndSimon(),
			expertMark.Opponent(): Novice(),
		}

		for !game.IsFinished() {
			move, ok := players[game.Turn].ChooseMove(game.Turn, game.Board)
			require.True(t, ok)
			require.NoError(t, game.MakeTurn(game.Turn, move.Position))
		}

		assert.NotEqual(t, string(expertMark.Opponent()), game.Winner, "final board:\n%s", game.Board)
	}
}

func TestByName(t *testing.T) {
	strategy, err := ByName(NewellAndSimonName)
	require.NoError(t, err)
	assert.Equal(t, []string{"win", "block", "fork", "block-fork", "center", "opposite-corner", "empty-corner", "empty-side"}, strategy.TacticNames())

	strategy, err = ByName(NoviceName)
	require.NoError(t, err)
	assert.Equal(t, NoviceName, strategy.Name())

	_, err = ByName("minimax")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
