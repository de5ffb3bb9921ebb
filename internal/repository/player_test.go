package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-strategist/internal/entity"
	"github.com/rocketscienceinc/tictactoe-strategist/testing/suite"
)

func TestPlayerRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Storage.Connection)

	// Given: a player seated in a game
	player := &entity.Player{ID: "123", Mark: entity.MarkO, GameID: "g1"}

	// When: CreateOrUpdate is called twice, releasing the player the second time
	require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))
	require.NoError(t, playerRepo.CreateOrUpdate(ctx, &entity.Player{ID: "123"}))

	// Then: the last write wins
	stored, err := playerRepo.GetByID(ctx, "123")
	require.NoError(t, err)
	assert.False(t, stored.InGame())
	assert.Equal(t, entity.NoMark, stored.Mark)
}

func TestPlayerRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage.Connection)

		// Given: a stored player
		player := &entity.Player{ID: "123", Mark: entity.MarkX, GameID: "g1"}
		require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))

		// When: GetByID is called with existing ID
		retrievedPlayer, err := playerRepo.GetByID(ctx, player.ID)

		// Then: the retrieved player should match the saved player
		require.NoError(t, err)
		assert.Equal(t, player, retrievedPlayer)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage.Connection)

		// When: GetByID is called with non-existent ID
		retrievedPlayer, err := playerRepo.GetByID(ctx, "9999999")

		// Then: an ErrPlayerNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
		assert.Nil(t, retrievedPlayer)
	})
}
