package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/snakearena/server/internal/api/middleware"
	"github.com/snakearena/server/internal/api/request"
	"github.com/snakearena/server/internal/api/response"
	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard listing and score submission
type LeaderboardHandler struct {
	leaderboard *leaderboard.Service
	logger      *slog.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(svc *leaderboard.Service, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboard: svc,
		logger:      logger,
	}
}

// List handles GET /api/leaderboard?mode=
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	mode := model.GameMode(r.URL.Query().Get("mode"))

	entries, err := h.leaderboard.List(r.Context(), mode)
	if err != nil {
		if msg, ok := failureMessage(err); ok {
			response.Fail(w, msg)
			return
		}
		writeStoreError(w, h.logger, err)
		return
	}

	response.OK(w, response.LeaderboardEntriesFromModel(entries))
}

// Submit handles POST /api/scores. This is the one endpoint where a missing
// or invalid session is a 401 rather than an envelope failure.
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	acct := middleware.GetAccount(r.Context())
	if acct == nil {
		response.Error(w, http.StatusUnauthorized, "Must be logged in to submit score")
		return
	}

	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	entry, err := h.leaderboard.Submit(r.Context(), acct, req.Score, req.Mode)
	if err != nil {
		if msg, ok := failureMessage(err); ok {
			response.Fail(w, msg)
			return
		}
		writeStoreError(w, h.logger, err)
		return
	}

	response.OK(w, response.LeaderboardEntryFromModel(entry))
}
