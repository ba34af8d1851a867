package models

// Game é uma sessão de cartas: um baralho embaralhado por naipe e a rodada atual.
type Game struct {
	GameID       string              `json:"game_id"`
	OwnerID      string              `json:"owner_id"`
	CurrentRound int                 `json:"current_round"`
	Deck         map[string][]string `json:"deck"`
}

// Draw returns the card at round r for every suit long enough to have one.
func (g Game) Draw(r int) map[string]string {
	cards := make(map[string]string, len(g.Deck))
	if r < 0 {
		return cards
	}
	for suit, ranks := range g.Deck {
		if r < len(ranks) {
			cards[suit] = ranks[r]
		}
	}
	return cards
}

// SessionResult is returned by start and reset.
type SessionResult struct {
	Message string `json:"message"`
	GameID  string `json:"game_id"`
	OwnerID string `json:"user_id"`
}

// DrawResult is returned by a successful pull.
type DrawResult struct {
	Message string            `json:"message"`
	GameID  string            `json:"game_id"`
	OwnerID string            `json:"user_id"`
	Round   int               `json:"round"`
	Cards   map[string]string `json:"cards"`
}

type StartGameRequest struct {
	UserID string `form:"userid"`
}

type ResetGameRequest struct {
	GameID string `form:"gameid"`
	UserID string `form:"userid"`
}

type PullCardRequest struct {
	UserID string `form:"userid"`
	GameID string `form:"gameid"`
}

// tipos de evento publicados para quem acompanha uma partida
type EventType string

const (
	EventStarted EventType = "game_started"
	EventReset   EventType = "game_reset"
	EventDraw    EventType = "card_drawn"
)

type SessionEvent struct {
	Type    EventType         `json:"type"`
	GameID  string            `json:"game_id"`
	OwnerID string            `json:"owner_id"`
	Round   int               `json:"round"`
	Cards   map[string]string `json:"cards,omitempty"`
}
