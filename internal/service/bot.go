package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-strategist/internal/entity"
	"github.com/rocketscienceinc/tictactoe-strategist/internal/tactic"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	SuggestMove(mark entity.Mark, board entity.Board) (tactic.Move, error)
	MakeTurn(game *entity.Game) (tactic.Move, error)
}

type strategy interface {
	Name() string
	ChooseMove(mark entity.Mark, board entity.Board) (tactic.Move, bool)
}

type botService struct {
	logger   *slog.Logger
	strategy strategy
}

func NewBotService(logger *slog.Logger, strategy strategy) BotService {
	return &botService{
		logger:   logger.With("component", "bot", "strategy", strategy.Name()),
		strategy: strategy,
	}
}

// SuggestMove - the position the strategy would play for mark.
func (that *botService) SuggestMove(mark entity.Mark, board entity.Board) (tactic.Move, error) {
	if !mark.IsValid() {
		return tactic.Move{}, fmt.Errorf("%w: %q", entity.ErrInvalidMark, mark)
	}

	move, ok := that.strategy.ChooseMove(mark, board)
	if !ok {
		return tactic.Move{}, apperror.ErrNoMoveAvailable
	}

	return move, nil
}

// MakeTurn - plays the bot's move in the game.
func (that *botService) MakeTurn(game *entity.Game) (tactic.Move, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return tactic.Move{}, ErrBotNotFound
	}

	move, err := that.SuggestMove(botPlayer.Mark, game.Board)
	if err != nil {
		return tactic.Move{}, fmt.Errorf("bot could not choose a move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, move.Position); err != nil {
		return tactic.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "mark", botPlayer.Mark, "position", move.Position.String(), "tactic", move.Tactic)

	return move, nil
}
