package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/snakearena/server/internal/dependencies/clock"
	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/storage"
)

// Service manages account creation, credential checks, and high scores
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new account service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Signup creates a new account. Emails are unique; a duplicate fails with
// ErrEmailExists. Passwords are stored as bcrypt hashes.
func (s *Service) Signup(ctx context.Context, email, username, password string) (*model.Account, error) {
	_, err := s.storage.GetAccountByEmail(ctx, email)
	if err == nil {
		return nil, model.ErrEmailExists
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		HighScore:    0,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login checks credentials and returns the account. Unknown emails and
// wrong passwords both fail with ErrInvalidCredentials so the response
// does not reveal which one was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Account, error) {
	account, err := s.storage.GetAccountByEmail(ctx, email)
	if errors.Is(err, model.ErrAccountNotFound) {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return account, nil
}

// RecordScoreIfHigh bumps the account's high score when the new score beats
// it. The caller persists the account; submission does so atomically with
// the leaderboard write.
func (s *Service) RecordScoreIfHigh(account *model.Account, score int) bool {
	if score > account.HighScore {
		account.HighScore = score
		return true
	}
	return false
}
