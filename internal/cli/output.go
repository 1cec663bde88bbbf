package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// AuthResult is the response from register/login endpoints
type AuthResult struct {
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

// Player is a player as returned by the API
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Roll is a dice roll as returned by the API
type Roll struct {
	ID       string    `json:"id"`
	Die1     int       `json:"die1"`
	Die2     int       `json:"die2"`
	Total    int       `json:"total"`
	Result   string    `json:"result"`
	RolledAt time.Time `json:"rolled_at"`
}

// RollHistory is the roll history as returned by the API
type RollHistory struct {
	Rolls   []Roll  `json:"rolls"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// HealthStatus is the health endpoint response
type HealthStatus struct {
	Status string `json:"status"`
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		fmt.Println(v.Message)
		if v.AccessToken != "" {
			fmt.Println("Token saved.")
		}
	case Player:
		fmt.Printf("Player: %s\n", v.Name)
		fmt.Printf("ID:     %s\n", v.ID)
		fmt.Printf("Since:  %s\n", v.CreatedAt.Format(time.RFC3339))
	case Roll:
		fmt.Printf("Rolled %d + %d = %d: %s\n", v.Die1, v.Die2, v.Total, strings.ToUpper(v.Result))
	case RollHistory:
		if len(v.Rolls) == 0 {
			fmt.Println("No rolls yet.")
			return
		}
		for i, roll := range v.Rolls {
			fmt.Printf("%3d. %d + %d = %d  %s\n", i+1, roll.Die1, roll.Die2, roll.Total, roll.Result)
		}
		fmt.Printf("Wins: %d/%d (%.0f%%)\n", v.Wins, len(v.Rolls), v.WinRate*100)
	case HealthStatus:
		fmt.Printf("Server status: %s\n", v.Status)
	default:
		o.printJSON(data)
	}
}
