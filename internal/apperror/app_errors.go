package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrNoMoveAvailable = errors.New("no move available")
	ErrPlayerInGame    = errors.New("player is already in a game")
	ErrPlayerNotInGame = errors.New("player is not in a game")
	ErrGameNotFound    = errors.New("game not found")
	ErrPlayerNotFound  = errors.New("player not found")
)
