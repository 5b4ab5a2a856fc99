package middleware

import (
	"log/slog"
	"net/http"

	"github.com/snakearena/server/internal/api/response"
	"github.com/snakearena/server/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// Returns the bare failure envelope with a 500 on panic.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	response.Error(w, http.StatusInternalServerError, "Internal server error")
}
