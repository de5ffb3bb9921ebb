package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-strategist/internal/entity"
)

// GamePlayService - a human player against the computer.
type GamePlayService interface {
	StartGame(ctx context.Context, playerID string, mark entity.Mark) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, pos entity.Position) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) error
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:        logger.With("component", "gameplay"),
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
	}
}

// StartGame - seats the player with the chosen mark against the bot. When the
// bot plays X it moves straight away.
func (that *gamePlayService) StartGame(ctx context.Context, playerID string, mark entity.Mark) (*entity.Game, error) {
	if !mark.IsValid() {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidMark, mark)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if err = that.ensureNotInGame(ctx, player); err != nil {
		return nil, err
	}

	player.Mark = mark
	botPlayer := entity.NewBotPlayer("", mark.Opponent())

	game, err := that.gameService.CreateGame(ctx, player, botPlayer)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if game.IsBotTurn() {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID, "playerID", player.ID, "mark", mark)

	return game, nil
}

// ensureNotInGame - a player may hold a single unfinished game. A game that is
// gone from storage (expired) releases the player.
func (that *gamePlayService) ensureNotInGame(ctx context.Context, player *entity.Player) error {
	if !player.InGame() {
		return nil
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		player.GameID = ""
		player.Mark = entity.NoMark
		return nil
	case err != nil:
		return fmt.Errorf("failed to get game by id: %w", err)
	case game.IsOngoing():
		return fmt.Errorf("%w: game id %s", apperror.ErrPlayerInGame, game.ID)
	default:
		return nil
	}
}

func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, pos entity.Position) (*entity.Game, error) {
	player, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(player.Mark, pos); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.cleanupGame(ctx, game)
		return game, nil
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	_, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return game, nil
}

func (that *gamePlayService) LeaveGame(ctx context.Context, playerID string) error {
	_, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return err
	}

	that.cleanupGame(ctx, game)

	return nil
}

func (that *gamePlayService) playerGame(ctx context.Context, playerID string) (*entity.Player, *entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if !player.InGame() {
		return nil, nil, apperror.ErrPlayerNotInGame
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return player, game, nil
}

// cleanupGame - deletes the game and releases its human player. Failures are logged only.
func (that *gamePlayService) cleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		released := *player
		released.GameID = ""
		released.Mark = entity.NoMark
		if err := that.playerService.UpdatePlayer(ctx, &released); err != nil {
			log.Error("failed to update", "player", player.ID, "error", err)
		}
	}

	log.Info("game closed", "winner", game.Winner, "status", game.Status)
}
