package response

import (
	"time"

	"github.com/snakearena/server/internal/model"
)

// User represents an account in API responses. The password hash never
// leaves the model layer.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	HighScore int       `json:"highScore"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserFromModel converts a model.Account to a response User
func UserFromModel(a *model.Account) User {
	return User{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		HighScore: a.HighScore,
		CreatedAt: a.CreatedAt,
	}
}

// LeaderboardEntry represents a leaderboard entry in API responses
type LeaderboardEntry struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Score    int       `json:"score"`
	Mode     string    `json:"mode"`
	PlayedAt time.Time `json:"playedAt"`
}

// LeaderboardEntryFromModel converts a model.LeaderboardEntry
func LeaderboardEntryFromModel(e *model.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		ID:       e.ID,
		Username: e.Username,
		Score:    e.Score,
		Mode:     string(e.Mode),
		PlayedAt: e.PlayedAt,
	}
}

// LeaderboardEntriesFromModel converts a slice of entries.
// The result is never nil so empty lists serialize as [].
func LeaderboardEntriesFromModel(entries []*model.LeaderboardEntry) []LeaderboardEntry {
	result := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		result[i] = LeaderboardEntryFromModel(e)
	}
	return result
}

// Position is a grid cell in API responses
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LivePlayer represents an in-progress game snapshot in API responses
type LivePlayer struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Score     int        `json:"score"`
	Mode      string     `json:"mode"`
	Snake     []Position `json:"snake"`
	Food      Position   `json:"food"`
	Direction string     `json:"direction"`
	IsPlaying bool       `json:"isPlaying"`
}

// LivePlayerFromModel converts a model.LivePlayer
func LivePlayerFromModel(p *model.LivePlayer) LivePlayer {
	snake := make([]Position, len(p.Snake))
	for i, pos := range p.Snake {
		snake[i] = Position{X: pos.X, Y: pos.Y}
	}
	return LivePlayer{
		ID:        p.ID,
		Username:  p.Username,
		Score:     p.Score,
		Mode:      string(p.Mode),
		Snake:     snake,
		Food:      Position{X: p.Food.X, Y: p.Food.Y},
		Direction: string(p.Direction),
		IsPlaying: p.IsPlaying,
	}
}

// LivePlayersFromModel converts a slice of snapshots, never returning nil
func LivePlayersFromModel(players []*model.LivePlayer) []LivePlayer {
	result := make([]LivePlayer, len(players))
	for i, p := range players {
		result[i] = LivePlayerFromModel(p)
	}
	return result
}
