package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Leaderboard errors
	ErrInvalidMode  = errors.New("invalid game mode")
	ErrInvalidScore = errors.New("score must be non-negative")

	// Live player errors
	ErrLivePlayerNotFound = errors.New("live player not found")
)
