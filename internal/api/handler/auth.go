package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/snakearena/server/internal/api/middleware"
	"github.com/snakearena/server/internal/api/request"
	"github.com/snakearena/server/internal/api/response"
	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/services/account"
	"github.com/snakearena/server/internal/services/session"
)

// AuthHandler handles login, signup, logout, and current-user lookups
type AuthHandler struct {
	accounts *account.Service
	sessions *session.Service
	logger   *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts *account.Service, sessions *session.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
		logger:   logger,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.AuthFail(w, "Invalid request body")
		return
	}

	acct, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if msg, ok := failureMessage(err); ok {
			response.AuthFail(w, msg)
			return
		}
		writeStoreError(w, h.logger, err)
		return
	}

	h.startSession(w, r, acct)
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.AuthFail(w, "Invalid request body")
		return
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		response.AuthFail(w, "Email, username and password are required")
		return
	}

	acct, err := h.accounts.Signup(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if msg, ok := failureMessage(err); ok {
			response.AuthFail(w, msg)
			return
		}
		writeStoreError(w, h.logger, err)
		return
	}

	h.startSession(w, r, acct)
}

// Logout handles POST /api/auth/logout.
// Revoking is idempotent: logging out without a session still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractToken(r)
	if err := h.sessions.Revoke(r.Context(), token); err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	clearSessionCookie(w)
	response.OK(w, nil)
}

// Me handles GET /api/auth/me. An anonymous or stale session yields a
// successful envelope with null data, never an error.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	acct := middleware.GetAccount(r.Context())
	if acct == nil {
		response.OK(w, nil)
		return
	}
	response.OK(w, response.UserFromModel(acct))
}

// startSession issues a session for a freshly authenticated account,
// sets the cookie, and writes the auth envelope
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, acct *model.Account) {
	sess, err := h.sessions.Create(r.Context(), acct.Email)
	if err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	setSessionCookie(w, sess.Token)
	response.AuthOK(w, response.UserFromModel(acct))
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
