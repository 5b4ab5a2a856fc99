package request

import "github.com/snakearena/server/internal/model"

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the request body for creating an account
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SubmitScoreRequest is the request body for submitting a completed game
type SubmitScoreRequest struct {
	Score int            `json:"score"`
	Mode  model.GameMode `json:"mode"`
}
