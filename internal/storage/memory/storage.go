package memory

import (
	"context"
	"sync"

	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts   map[string]*model.Account
	emailIndex map[string]string
	sessions   map[string]*model.Session

	// slices keep insertion order for ordered listings
	entries     []*model.LeaderboardEntry
	livePlayers map[string]*model.LivePlayer
	liveOrder   []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:    make(map[string]*model.Account),
		emailIndex:  make(map[string]string),
		sessions:    make(map[string]*model.Session),
		livePlayers: make(map[string]*model.LivePlayer),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveAccountLocked(account)
	return nil
}

func (s *Storage) saveAccountLocked(account *model.Account) {
	copied := *account
	s.accounts[account.ID] = &copied
	s.emailIndex[account.Email] = account.ID
}

func (s *Storage) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.Token] = &copied
	return nil
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Leaderboard operations

func (s *Storage) SaveLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveEntryLocked(entry)
	return nil
}

func (s *Storage) saveEntryLocked(entry *model.LeaderboardEntry) {
	copied := *entry
	s.entries = append(s.entries, &copied)
}

func (s *Storage) ListLeaderboardEntries(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.LeaderboardEntry, len(s.entries))
	for i, entry := range s.entries {
		copied := *entry
		result[i] = &copied
	}
	return result, nil
}

func (s *Storage) RecordScore(ctx context.Context, entry *model.LeaderboardEntry, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveEntryLocked(entry)
	s.saveAccountLocked(account)
	return nil
}

// Live player operations

func (s *Storage) SaveLivePlayer(ctx context.Context, player *model.LivePlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.livePlayers[player.ID]; !ok {
		s.liveOrder = append(s.liveOrder, player.ID)
	}
	copied := *player
	s.livePlayers[player.ID] = &copied
	return nil
}

func (s *Storage) GetLivePlayer(ctx context.Context, id string) (*model.LivePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.livePlayers[id]
	if !ok {
		return nil, model.ErrLivePlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) ListLivePlayers(ctx context.Context) ([]*model.LivePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.LivePlayer, 0, len(s.liveOrder))
	for _, id := range s.liveOrder {
		if player, ok := s.livePlayers[id]; ok {
			copied := *player
			result = append(result, &copied)
		}
	}
	return result, nil
}
