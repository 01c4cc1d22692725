package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

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
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
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
	case TokenPair:
		o.printTokenPair(v)
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case []RankingEntry:
		o.printRanking(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// TokenPair response type (matches API)
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Player response type
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Game response type
type Game struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	Score      int       `json:"score"`
	AchievedAt time.Time `json:"achieved_at"`
	Player     *Player   `json:"player,omitempty"`
}

// RankingEntry response type
type RankingEntry struct {
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	AchievedAt time.Time `json:"achieved_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printTokenPair(t TokenPair) {
	fmt.Printf("Access Token: %s\n", t.AccessToken)
	fmt.Printf("Refresh Token: %s\n", t.RefreshToken)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Created: %s\n", p.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	if g.Player != nil {
		fmt.Printf("Player: %s (%s)\n", g.Player.Name, g.PlayerID)
	} else {
		fmt.Printf("Player: %s\n", g.PlayerID)
	}
	fmt.Printf("Score: %d\n", g.Score)
	fmt.Printf("Achieved: %s\n", g.AchievedAt.Format(time.RFC3339))
}

func (o *Output) printGames(games []Game) {
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		name := g.PlayerID
		if g.Player != nil {
			name = g.Player.Name
		}
		fmt.Printf("  - %s: %d points (%s)\n", name, g.Score, g.AchievedAt.Format(time.RFC3339))
	}
}

func (o *Output) printRanking(entries []RankingEntry) {
	fmt.Println("Ranking:")
	for i, e := range entries {
		fmt.Printf("  %d. %s - %d points (%s)\n", i+1, e.PlayerName, e.Score, e.AchievedAt.Format(time.RFC3339))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
