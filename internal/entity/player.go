package entity

const botIDPrefix = "bot:"

type Player struct {
	ID     string `json:"id"`
	Mark   Mark   `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
	Bot    bool   `json:"bot,omitempty"`
}

// NewBotPlayer - the computer player seated in the given game.
func NewBotPlayer(gameID string, mark Mark) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		Mark:   mark,
		GameID: gameID,
		Bot:    true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}

func (that *Player) InGame() bool {
	return that.GameID != ""
}

// JoinGame - seats the player in the game. Bot ids follow the game id.
func (that *Player) JoinGame(gameID string) {
	that.GameID = gameID
	if that.Bot {
		that.ID = botIDPrefix + gameID
	}
}
