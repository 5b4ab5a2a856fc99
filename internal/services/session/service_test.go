package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/snakearena/server/internal/dependencies/mocks"
	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/storage/memory"
)

type SessionServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestSessionServiceSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceSuite))
}

func (s *SessionServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, Config{})
	s.ctx = context.Background()
}

func (s *SessionServiceSuite) saveAccount(email string) *model.Account {
	account := &model.Account{
		ID:       "acct-" + email,
		Username: "player",
		Email:    email,
	}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))
	return account
}

func (s *SessionServiceSuite) TestCreateAndResolve() {
	s.saveAccount("alice@example.com")

	session, err := s.service.Create(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
	s.Equal("alice@example.com", session.Email)
	s.Equal(s.clock.Now(), session.CreatedAt)

	account, err := s.service.Resolve(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Require().NotNil(account)
	s.Equal("alice@example.com", account.Email)
}

func (s *SessionServiceSuite) TestTokensAreUnique() {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		session, err := s.service.Create(s.ctx, "alice@example.com")
		s.Require().NoError(err)
		s.False(seen[session.Token])
		seen[session.Token] = true
	}
}

func (s *SessionServiceSuite) TestResolveEmptyToken() {
	account, err := s.service.Resolve(s.ctx, "")
	s.Require().NoError(err)
	s.Nil(account)
}

func (s *SessionServiceSuite) TestResolveUnknownToken() {
	account, err := s.service.Resolve(s.ctx, "no-such-token")
	s.Require().NoError(err)
	s.Nil(account)
}

func (s *SessionServiceSuite) TestResolveDanglingSession() {
	// Session exists but the account it points at does not
	session, err := s.service.Create(s.ctx, "ghost@example.com")
	s.Require().NoError(err)

	account, err := s.service.Resolve(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Nil(account)
}

func (s *SessionServiceSuite) TestRevoke() {
	s.saveAccount("alice@example.com")
	session, err := s.service.Create(s.ctx, "alice@example.com")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Revoke(s.ctx, session.Token))

	account, err := s.service.Resolve(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Nil(account)
}

func (s *SessionServiceSuite) TestRevokeUnknownTokenIsNoOp() {
	s.NoError(s.service.Revoke(s.ctx, "no-such-token"))
	s.NoError(s.service.Revoke(s.ctx, ""))
}

func (s *SessionServiceSuite) TestNoExpiryByDefault() {
	s.saveAccount("alice@example.com")
	session, err := s.service.Create(s.ctx, "alice@example.com")
	s.Require().NoError(err)

	s.clock.Advance(365 * 24 * time.Hour)

	account, err := s.service.Resolve(s.ctx, session.Token)
	s.Require().NoError(err)
	s.NotNil(account)
}

func (s *SessionServiceSuite) TestExpiryWithTTL() {
	service := New(s.storage, s.clock, Config{TTL: time.Hour})
	s.saveAccount("alice@example.com")

	session, err := service.Create(s.ctx, "alice@example.com")
	s.Require().NoError(err)

	s.clock.Advance(30 * time.Minute)
	account, err := service.Resolve(s.ctx, session.Token)
	s.Require().NoError(err)
	s.NotNil(account)

	s.clock.Advance(31 * time.Minute)
	account, err = service.Resolve(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Nil(account)

	// The expired session is removed, not just hidden
	_, err = s.storage.GetSession(s.ctx, session.Token)
	s.ErrorIs(err, model.ErrSessionNotFound)
}
