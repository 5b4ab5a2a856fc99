package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/snakearena/server/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		ID:           "acct-1",
		Username:     "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		HighScore:    100,
		CreatedAt:    time.Now().UTC(),
	}

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, "acct-1")
	s.Require().NoError(err)
	s.Equal(account.Username, retrieved.Username)
	s.Equal(account.HighScore, retrieved.HighScore)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestGetAccountByEmail() {
	account := &model.Account{
		ID:       "acct-1",
		Username: "Alice",
		Email:    "alice@example.com",
	}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	retrieved, err := s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("acct-1", retrieved.ID)
}

func (s *StorageSuite) TestGetAccountByEmailNotFound() {
	_, err := s.storage.GetAccountByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		Token:     "token-1",
		Email:     "alice@example.com",
		CreatedAt: time.Now().UTC(),
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "token-1")
	s.Require().NoError(err)
	s.Equal(session.Email, retrieved.Email)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := &model.Session{Token: "token-1", Email: "alice@example.com"}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	err := s.storage.DeleteSession(s.ctx, "token-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "token-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSessionIdempotent() {
	err := s.storage.DeleteSession(s.ctx, "never-existed")
	s.NoError(err)
}

func (s *StorageSuite) TestSessionExpiresWithTTL() {
	cfg := DefaultConfig()
	cfg.SessionTTL = time.Minute

	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	store := NewWithClient(client, cfg)
	defer store.Close()

	session := &model.Session{Token: "token-ttl", Email: "alice@example.com"}
	s.Require().NoError(store.SaveSession(s.ctx, session))

	s.mini.FastForward(2 * time.Minute)

	_, err := store.GetSession(s.ctx, "token-ttl")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Leaderboard tests

func (s *StorageSuite) TestSaveAndListLeaderboardEntries() {
	first := &model.LeaderboardEntry{ID: "e1", Username: "Alice", Score: 100, Mode: model.ModeWalls}
	second := &model.LeaderboardEntry{ID: "e2", Username: "Bob", Score: 200, Mode: model.ModePassThrough}

	s.Require().NoError(s.storage.SaveLeaderboardEntry(s.ctx, first))
	s.Require().NoError(s.storage.SaveLeaderboardEntry(s.ctx, second))

	entries, err := s.storage.ListLeaderboardEntries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("e1", entries[0].ID)
	s.Equal("e2", entries[1].ID)
}

func (s *StorageSuite) TestListLeaderboardEntriesEmpty() {
	entries, err := s.storage.ListLeaderboardEntries(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *StorageSuite) TestRecordScore() {
	account := &model.Account{ID: "acct-1", Email: "alice@example.com", HighScore: 10}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	account.HighScore = 150
	entry := &model.LeaderboardEntry{ID: "e1", Username: "Alice", Score: 150, Mode: model.ModeWalls}

	err := s.storage.RecordScore(s.ctx, entry, account)
	s.Require().NoError(err)

	entries, err := s.storage.ListLeaderboardEntries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(150, entries[0].Score)

	retrieved, err := s.storage.GetAccount(s.ctx, "acct-1")
	s.Require().NoError(err)
	s.Equal(150, retrieved.HighScore)
}

// Live player tests

func (s *StorageSuite) TestSaveAndGetLivePlayer() {
	player := &model.LivePlayer{
		ID:        "live1",
		Username:  "Alice",
		Score:     42,
		Mode:      model.ModeWalls,
		Snake:     []model.Position{{X: 1, Y: 1}, {X: 1, Y: 2}},
		Food:      model.Position{X: 5, Y: 5},
		Direction: model.DirectionUp,
		IsPlaying: true,
	}

	err := s.storage.SaveLivePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetLivePlayer(s.ctx, "live1")
	s.Require().NoError(err)
	s.Equal(player.Username, retrieved.Username)
	s.Equal(player.Snake, retrieved.Snake)
	s.Equal(player.Direction, retrieved.Direction)
}

func (s *StorageSuite) TestGetLivePlayerNotFound() {
	_, err := s.storage.GetLivePlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrLivePlayerNotFound)
}

func (s *StorageSuite) TestListLivePlayersKeepsInsertionOrder() {
	for _, id := range []string{"live3", "live1", "live2"} {
		s.Require().NoError(s.storage.SaveLivePlayer(s.ctx, &model.LivePlayer{ID: id, Username: id}))
	}

	players, err := s.storage.ListLivePlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("live3", players[0].ID)
	s.Equal("live1", players[1].ID)
	s.Equal("live2", players[2].ID)
}

func (s *StorageSuite) TestSaveLivePlayerUpdateKeepsOrder() {
	s.Require().NoError(s.storage.SaveLivePlayer(s.ctx, &model.LivePlayer{ID: "live1", Score: 1}))
	s.Require().NoError(s.storage.SaveLivePlayer(s.ctx, &model.LivePlayer{ID: "live2", Score: 2}))
	s.Require().NoError(s.storage.SaveLivePlayer(s.ctx, &model.LivePlayer{ID: "live1", Score: 10}))

	players, err := s.storage.ListLivePlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("live1", players[0].ID)
	s.Equal(10, players[0].Score)
}
