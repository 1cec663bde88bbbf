package response

import (
	"time"

	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/services/auth"
	"github.com/dicegame/dicegame/internal/services/game"
)

// AuthResponse is the response for the register and login endpoints. The
// access token is present only on success; the message is always set.
type AuthResponse struct {
	AccessToken string `json:"accessToken,omitempty"`
	Message     string `json:"message"`
}

// AuthResponseFromOutcome creates an AuthResponse from an auth outcome
func AuthResponseFromOutcome(o *auth.Outcome) AuthResponse {
	return AuthResponse{
		AccessToken: o.Token,
		Message:     o.Message,
	}
}

// Player represents a player in API responses
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player.
// The password hash never leaves the server.
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

// Roll represents a single dice roll in API responses
type Roll struct {
	ID       string    `json:"id"`
	Die1     int       `json:"die1"`
	Die2     int       `json:"die2"`
	Total    int       `json:"total"`
	Result   string    `json:"result"`
	RolledAt time.Time `json:"rolled_at"`
}

// RollFromModel converts a model.Roll to a response Roll
func RollFromModel(r *model.Roll) Roll {
	return Roll{
		ID:       string(r.ID),
		Die1:     r.Die1,
		Die2:     r.Die2,
		Total:    r.Total(),
		Result:   string(r.Result),
		RolledAt: r.RolledAt,
	}
}

// RollHistory is the response for the roll history endpoint
type RollHistory struct {
	Rolls   []Roll  `json:"rolls"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// RollHistoryFromModel combines rolls and stats into a history response
func RollHistoryFromModel(rolls []*model.Roll, stats *game.Stats) RollHistory {
	out := make([]Roll, len(rolls))
	for i, r := range rolls {
		out[i] = RollFromModel(r)
	}
	return RollHistory{
		Rolls:   out,
		Wins:    stats.Wins,
		WinRate: stats.WinRate,
	}
}
