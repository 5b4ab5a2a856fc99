package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/snakearena/server/internal/api/response"
	"github.com/snakearena/server/internal/services/live"
)

// LiveHandler handles read-only live player snapshot lookups
type LiveHandler struct {
	live   *live.Service
	logger *slog.Logger
}

// NewLiveHandler creates a new live player handler
func NewLiveHandler(svc *live.Service, logger *slog.Logger) *LiveHandler {
	return &LiveHandler{
		live:   svc,
		logger: logger,
	}
}

// List handles GET /api/live-players
func (h *LiveHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.live.List(r.Context())
	if err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	response.OK(w, response.LivePlayersFromModel(players))
}

// Get handles GET /api/live-players/{id}. An unknown id is a successful
// envelope with null data, not a 404.
func (h *LiveHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	player, err := h.live.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	if player == nil {
		response.OK(w, nil)
		return
	}
	response.OK(w, response.LivePlayerFromModel(player))
}
