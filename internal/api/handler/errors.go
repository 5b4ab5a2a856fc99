package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/snakearena/server/internal/api/response"
	"github.com/snakearena/server/internal/model"
)

// failureMessage maps a business-rule error to its envelope message.
// The second return is false for errors that are not business failures
// (store errors), which must surface as 500s instead.
func failureMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, model.ErrEmailExists):
		return "Email already exists", true
	case errors.Is(err, model.ErrInvalidCredentials):
		return "Invalid email or password", true
	case errors.Is(err, model.ErrInvalidMode):
		return "Invalid game mode", true
	case errors.Is(err, model.ErrInvalidScore):
		return "Score must be non-negative", true
	}
	return "", false
}

// writeStoreError logs a persistence failure and writes a 500.
// Store errors are never retried or converted to envelope failures.
func writeStoreError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("store operation failed", slog.String("error", err.Error()))
	response.Error(w, http.StatusInternalServerError, "Internal server error")
}
