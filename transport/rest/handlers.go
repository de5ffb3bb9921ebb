package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-strategist/internal/entity"
	"github.com/rocketscienceinc/tictactoe-strategist/internal/tactic"
)

var (
	errBadRequest        = errors.New("bad request")
	errUnsupportedBoard  = errors.New("only 3x3 boards are supported")
	errMissingPlayerID   = errors.New("player_id is required")
	maxRequestBodyLength = int64(1 << 14)
)

type botService interface {
	SuggestMove(mark entity.Mark, board entity.Board) (tactic.Move, error)
}

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
}

type gamePlayService interface {
	StartGame(ctx context.Context, playerID string, mark entity.Mark) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, pos entity.Position) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) error
}

type Handlers struct {
	logger *slog.Logger

	bot      botService
	players  playerService
	gamePlay gamePlayService
}

func NewHandlers(logger *slog.Logger, bot botService, players playerService, gamePlay gamePlayService) *Handlers {
	return &Handlers{
		logger:   logger.With("component", "rest"),
		bot:      bot,
		players:  players,
		gamePlay: gamePlay,
	}
}

type suggestMoveRequest struct {
	Board entity.Board `json:"board"`
	Mark  string       `json:"mark"`
}

type suggestMoveResponse struct {
	Position *entity.Position `json:"position"`
	Tactic   string           `json:"tactic,omitempty"`
}

type startGameRequest struct {
	PlayerID string `json:"player_id"`
	Mark     string `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// SuggestMove - answers with the computer player's move for any 3x3 position.
func (that *Handlers) SuggestMove(w http.ResponseWriter, r *http.Request) {
	var req suggestMoveRequest
	if err := decodeJSON(r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	if req.Board.Dimension() != entity.StandardDimension {
		that.writeError(w, r, errUnsupportedBoard)
		return
	}

	mark, err := entity.ParseMark(req.Mark)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	move, err := that.bot.SuggestMove(mark, req.Board)
	if errors.Is(err, apperror.ErrNoMoveAvailable) {
		writeJSON(w, http.StatusOK, suggestMoveResponse{})
		return
	}
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestMoveResponse{Position: &move.Position, Tactic: move.Tactic})
}

func (that *Handlers) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	player, err := that.players.CreatePlayer(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, player)
}

func (that *Handlers) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := decodeJSON(r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	if req.PlayerID == "" {
		that.writeError(w, r, errMissingPlayerID)
		return
	}

	mark, err := entity.ParseMark(req.Mark)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	game, err := that.gamePlay.StartGame(r.Context(), req.PlayerID, mark)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

func (that *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.GetGame(r.Context(), chi.URLParam(r, "playerID"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *Handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var pos entity.Position
	if err := decodeJSON(r, &pos); err != nil {
		that.writeError(w, r, err)
		return
	}

	game, err := that.gamePlay.MakeTurn(r.Context(), chi.URLParam(r, "playerID"), pos)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *Handlers) LeaveGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gamePlay.LeaveGame(r.Context(), chi.URLParam(r, "playerID")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyLength))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound),
		errors.Is(err, apperror.ErrPlayerNotFound),
		errors.Is(err, apperror.ErrPlayerNotInGame):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrPlayerInGame):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, errUnsupportedBoard),
		errors.Is(err, errMissingPlayerID),
		errors.Is(err, entity.ErrInvalidMark),
		errors.Is(err, entity.ErrInvalidCell),
		errors.Is(err, entity.ErrMalformedBoard),
		errors.Is(err, entity.ErrInvalidDimension):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (that *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, status, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}
