package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/snakearena/server/internal/api/handler"
	"github.com/snakearena/server/internal/api/middleware"
	"github.com/snakearena/server/internal/services/account"
	"github.com/snakearena/server/internal/services/leaderboard"
	"github.com/snakearena/server/internal/services/live"
	"github.com/snakearena/server/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	SessionService     *session.Service
	AccountService     *account.Service
	LeaderboardService *leaderboard.Service
	LiveService        *live.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AccountService, cfg.SessionService, cfg.Logger)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService, cfg.Logger)
	liveHandler := handler.NewLiveHandler(cfg.LiveService, cfg.Logger)

	// Create middleware
	sessionMiddleware := middleware.Session(cfg.SessionService, cfg.Logger)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	api.Handle("/auth/me", sessionMiddleware(http.HandlerFunc(authHandler.Me))).Methods(http.MethodGet)

	// Leaderboard routes; only score submission resolves the session
	api.HandleFunc("/leaderboard", leaderboardHandler.List).Methods(http.MethodGet)
	api.Handle("/scores", sessionMiddleware(http.HandlerFunc(leaderboardHandler.Submit))).Methods(http.MethodPost)

	// Live player routes (public, read-only)
	api.HandleFunc("/live-players", liveHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/live-players/{id}", liveHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
