package model

import "time"

// GameMode is the game variant: walls end the game on collision,
// pass-through wraps the snake around the board edge.
type GameMode string

const (
	ModeWalls       GameMode = "walls"
	ModePassThrough GameMode = "pass-through"
)

// Valid reports whether the mode is a known game mode
func (m GameMode) Valid() bool {
	return m == ModeWalls || m == ModePassThrough
}

// Direction is a cardinal facing direction of a snake
type Direction string

const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

// Valid reports whether the direction is one of the four cardinal values
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// Position is a cell on the game grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Account is a registered player account
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	HighScore    int       `json:"highScore"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session binds an opaque token to an account's email.
// A session lives until it is revoked; expiry is optional (see session service config).
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LeaderboardEntry is an immutable record of one completed game.
// Username is a snapshot taken at submission time and never follows renames.
type LeaderboardEntry struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Score    int       `json:"score"`
	Mode     GameMode  `json:"mode"`
	PlayedAt time.Time `json:"playedAt"`
}

// LivePlayer is a point-in-time snapshot of an in-progress game.
// Snapshots are written by the external game loop; this service only reads them.
type LivePlayer struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Score     int        `json:"score"`
	Mode      GameMode   `json:"mode"`
	Snake     []Position `json:"snake"`
	Food      Position   `json:"food"`
	Direction Direction  `json:"direction"`
	IsPlaying bool       `json:"isPlaying"`
}
