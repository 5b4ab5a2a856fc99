package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/snakearena/server/internal/dependencies/mocks"
	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/services/account"
	"github.com/snakearena/server/internal/storage/memory"
)

type LeaderboardServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	clock    *mocks.MockClock
	accounts *account.Service
	service  *Service
	ctx      context.Context
}

func TestLeaderboardServiceSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceSuite))
}

func (s *LeaderboardServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.accounts = account.New(s.storage, s.clock)
	s.service = New(s.storage, s.accounts, s.clock)
	s.ctx = context.Background()
}

func (s *LeaderboardServiceSuite) signup(email, username string) *model.Account {
	acct, err := s.accounts.Signup(s.ctx, email, username, "password")
	s.Require().NoError(err)
	return acct
}

func (s *LeaderboardServiceSuite) TestSubmit() {
	acct := s.signup("alice@example.com", "Alice")

	entry, err := s.service.Submit(s.ctx, acct, 150, model.ModeWalls)
	s.Require().NoError(err)

	s.NotEmpty(entry.ID)
	s.Equal("Alice", entry.Username)
	s.Equal(150, entry.Score)
	s.Equal(model.ModeWalls, entry.Mode)
	s.Equal(s.clock.Now(), entry.PlayedAt)

	entries, err := s.storage.ListLeaderboardEntries(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *LeaderboardServiceSuite) TestSubmitUpdatesHighScore() {
	acct := s.signup("alice@example.com", "Alice")

	_, err := s.service.Submit(s.ctx, acct, 150, model.ModeWalls)
	s.Require().NoError(err)

	stored, err := s.storage.GetAccount(s.ctx, acct.ID)
	s.Require().NoError(err)
	s.Equal(150, stored.HighScore)
}

func (s *LeaderboardServiceSuite) TestSubmitLowerScoreKeepsHighScore() {
	acct := s.signup("alice@example.com", "Alice")

	_, err := s.service.Submit(s.ctx, acct, 150, model.ModeWalls)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, acct, 80, model.ModeWalls)
	s.Require().NoError(err)

	stored, err := s.storage.GetAccount(s.ctx, acct.ID)
	s.Require().NoError(err)
	s.Equal(150, stored.HighScore)

	// Both games are still on the board
	entries, err := s.storage.ListLeaderboardEntries(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, 2)
}

func (s *LeaderboardServiceSuite) TestSubmitInvalidMode() {
	acct := s.signup("alice@example.com", "Alice")

	_, err := s.service.Submit(s.ctx, acct, 150, "diagonal")
	s.ErrorIs(err, model.ErrInvalidMode)
}

func (s *LeaderboardServiceSuite) TestSubmitNegativeScore() {
	acct := s.signup("alice@example.com", "Alice")

	_, err := s.service.Submit(s.ctx, acct, -1, model.ModeWalls)
	s.ErrorIs(err, model.ErrInvalidScore)
}

func (s *LeaderboardServiceSuite) TestSubmitZeroScore() {
	acct := s.signup("alice@example.com", "Alice")

	entry, err := s.service.Submit(s.ctx, acct, 0, model.ModeWalls)
	s.Require().NoError(err)
	s.Equal(0, entry.Score)
}

func (s *LeaderboardServiceSuite) TestListSortsByScoreDescending() {
	acct := s.signup("alice@example.com", "Alice")

	for _, score := range []int{500, 900, 100} {
		_, err := s.service.Submit(s.ctx, acct, score, model.ModeWalls)
		s.Require().NoError(err)
	}

	entries, err := s.service.List(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal(900, entries[0].Score)
	s.Equal(500, entries[1].Score)
	s.Equal(100, entries[2].Score)
}

func (s *LeaderboardServiceSuite) TestListTiesKeepSubmissionOrder() {
	alice := s.signup("alice@example.com", "Alice")
	bob := s.signup("bob@example.com", "Bob")

	_, err := s.service.Submit(s.ctx, alice, 500, model.ModeWalls)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, alice, 900, model.ModeWalls)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, bob, 900, model.ModeWalls)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, bob, 100, model.ModeWalls)
	s.Require().NoError(err)

	entries, err := s.service.List(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(entries, 4)
	s.Equal("Alice", entries[0].Username)
	s.Equal(900, entries[0].Score)
	s.Equal("Bob", entries[1].Username)
	s.Equal(900, entries[1].Score)
	s.Equal(500, entries[2].Score)
	s.Equal(100, entries[3].Score)
}

func (s *LeaderboardServiceSuite) TestListFiltersByMode() {
	acct := s.signup("alice@example.com", "Alice")

	_, err := s.service.Submit(s.ctx, acct, 100, model.ModeWalls)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, acct, 200, model.ModePassThrough)
	s.Require().NoError(err)

	entries, err := s.service.List(s.ctx, model.ModeWalls)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(model.ModeWalls, entries[0].Mode)
}

func (s *LeaderboardServiceSuite) TestListInvalidModeFilter() {
	_, err := s.service.List(s.ctx, "diagonal")
	s.ErrorIs(err, model.ErrInvalidMode)
}

func (s *LeaderboardServiceSuite) TestListEmpty() {
	entries, err := s.service.List(s.ctx, "")
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *LeaderboardServiceSuite) TestEntrySnapshotsUsername() {
	acct := s.signup("alice@example.com", "Alice")

	_, err := s.service.Submit(s.ctx, acct, 100, model.ModeWalls)
	s.Require().NoError(err)

	// Later rename does not touch the recorded entry
	acct.Username = "AliceRenamed"
	s.Require().NoError(s.storage.SaveAccount(s.ctx, acct))

	entries, err := s.service.List(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("Alice", entries[0].Username)
}
