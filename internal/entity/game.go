package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

type Game struct {
	ID          string     `json:"id"`
	Board       Board      `json:"board"`
	Winner      string     `json:"winner"`
	WinningLine []Position `json:"winning_line,omitempty"`
	Status      string     `json:"status"`
	Turn        Mark       `json:"player_turn"`
	Players     []*Player  `json:"players,omitempty"`
}

// NewGame - an ongoing game on an empty 3x3 board, X moves first.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  NewStandardBoard(),
		Turn:   MarkX,
		Status: StatusOngoing,
	}
}

// DetermineGameResult - returns the winning mark, PlayerTie for a full board, or "" if the game goes on.
func (that *Game) DetermineGameResult() string {
	if winner, _, ok := that.Board.WinningPositions(); ok {
		return string(winner)
	}

	// the game will continue until all the squares are full
	if !that.Board.IsFull() {
		return ""
	}

	return PlayerTie
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case string(MarkX), string(MarkO):
		_, line, _ := that.Board.WinningPositions()
		that.Winner = winner
		that.WinningLine = line
		that.Status = StatusFinished
		that.Turn = NoMark
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = NoMark
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(mark Mark, pos Position) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !that.Board.Contains(pos) {
		return fmt.Errorf("%w: %s", ErrInvalidCell, pos)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.WithMark(mark, pos)
	if err != nil {
		return fmt.Errorf("failed to place mark: %w", err)
	}

	that.Board = board
	that.Turn = mark.Opponent()
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) PlayerByMark(mark Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}
	return nil
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}
	return nil
}

// IsBotTurn - whether the computer player is expected to move next.
func (that *Game) IsBotTurn() bool {
	bot := that.BotPlayer()
	return that.IsOngoing() && bot != nil && bot.Mark == that.Turn
}
