package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/snakearena/server/internal/dependencies/clock"
	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/storage"
)

// tokenBytes is the entropy of a session token before encoding
const tokenBytes = 16

// maxTokenAttempts bounds the retry loop for the (vanishingly rare)
// case of a token colliding with a stored session
const maxTokenAttempts = 5

// Config holds configuration for the session service
type Config struct {
	// TTL bounds session lifetime. Zero means sessions live until revoked.
	TTL time.Duration
}

// Service issues, resolves, and revokes session tokens
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	ttl     time.Duration
}

// New creates a new session service
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		ttl:     cfg.TTL,
	}
}

// Create issues a new session token bound to the given email and persists it
func (s *Service) Create(ctx context.Context, email string) (*model.Session, error) {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := generateToken()
		if err != nil {
			return nil, err
		}

		_, err = s.storage.GetSession(ctx, token)
		if err == nil {
			continue
		}
		if !errors.Is(err, model.ErrSessionNotFound) {
			return nil, err
		}

		session := &model.Session{
			Token:     token,
			Email:     email,
			CreatedAt: s.clock.Now(),
		}
		if err := s.storage.SaveSession(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	return nil, errors.New("could not generate a unique session token")
}

// Resolve looks up the account bound to a session token.
// It returns (nil, nil) for an empty, unknown, or expired token, and for a
// session whose account no longer exists; absence of a session is not an
// error, only store failures are.
func (s *Service) Resolve(ctx context.Context, token string) (*model.Account, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.storage.GetSession(ctx, token)
	if errors.Is(err, model.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if s.ttl > 0 && s.clock.Now().After(session.CreatedAt.Add(s.ttl)) {
		if err := s.storage.DeleteSession(ctx, token); err != nil {
			return nil, err
		}
		return nil, nil
	}

	account, err := s.storage.GetAccountByEmail(ctx, session.Email)
	if errors.Is(err, model.ErrAccountNotFound) {
		// Dangling session: the account was removed after login
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Revoke deletes the session for a token. Revoking an unknown or
// already-revoked token is a no-op.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.storage.DeleteSession(ctx, token)
}

// generateToken returns a URL-safe random token
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
