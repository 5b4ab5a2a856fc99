package leaderboard

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/snakearena/server/internal/dependencies/clock"
	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/services/account"
	"github.com/snakearena/server/internal/storage"
)

// Service appends score submissions and ranks leaderboard entries
type Service struct {
	storage  storage.Storage
	accounts *account.Service
	clock    clock.Clock
}

// New creates a new leaderboard service
func New(storage storage.Storage, accounts *account.Service, clock clock.Clock) *Service {
	return &Service{
		storage:  storage,
		accounts: accounts,
		clock:    clock,
	}
}

// Submit records a completed game's score for an authenticated account.
// The entry snapshots the account's current username, and the account's
// high score is updated in the same atomic store write as the entry.
// Scores are accepted as reported; there is no replay validation.
func (s *Service) Submit(ctx context.Context, acct *model.Account, score int, mode model.GameMode) (*model.LeaderboardEntry, error) {
	if !mode.Valid() {
		return nil, model.ErrInvalidMode
	}
	if score < 0 {
		return nil, model.ErrInvalidScore
	}

	entry := &model.LeaderboardEntry{
		ID:       uuid.NewString(),
		Username: acct.Username,
		Score:    score,
		Mode:     mode,
		PlayedAt: s.clock.Now(),
	}

	s.accounts.RecordScoreIfHigh(acct, score)

	if err := s.storage.RecordScore(ctx, entry, acct); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns entries sorted by score descending. An empty mode returns
// all entries; otherwise only entries of that mode. The sort is stable:
// equal scores keep their insertion order.
func (s *Service) List(ctx context.Context, mode model.GameMode) ([]*model.LeaderboardEntry, error) {
	if mode != "" && !mode.Valid() {
		return nil, model.ErrInvalidMode
	}

	entries, err := s.storage.ListLeaderboardEntries(ctx)
	if err != nil {
		return nil, err
	}

	if mode != "" {
		filtered := entries[:0]
		for _, entry := range entries {
			if entry.Mode == mode {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return entries, nil
}
