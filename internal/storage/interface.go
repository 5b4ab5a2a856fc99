package storage

import (
	"context"

	"github.com/snakearena/server/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	// DeleteSession is a no-op for tokens that are not stored
	DeleteSession(ctx context.Context, token string) error

	// Leaderboard operations. Entries are append-only and listed in
	// insertion order; ranking is the leaderboard service's concern.
	SaveLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error
	ListLeaderboardEntries(ctx context.Context) ([]*model.LeaderboardEntry, error)
	// RecordScore persists a new leaderboard entry together with the
	// submitting account in one atomic step, so the account's high score
	// and the leaderboard can never diverge on a crash between writes.
	RecordScore(ctx context.Context, entry *model.LeaderboardEntry, account *model.Account) error

	// Live player operations. Snapshots are written by the external
	// game loop; SaveLivePlayer exists for that feed and for seeding.
	SaveLivePlayer(ctx context.Context, player *model.LivePlayer) error
	GetLivePlayer(ctx context.Context, id string) (*model.LivePlayer, error)
	ListLivePlayers(ctx context.Context) ([]*model.LivePlayer, error)
}
