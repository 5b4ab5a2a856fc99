package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	s.queueAccount(ctx, pipe, account, data)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) queueAccount(ctx context.Context, pipe redis.Pipeliner, account *model.Account, data []byte) {
	pipe.Set(ctx, accountKey(account.ID), data, 0)
	pipe.Set(ctx, emailIndexKey(account.Email), account.ID, 0)
}

func (s *Storage) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	id, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	return s.GetAccount(ctx, id)
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(session.Token), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// Leaderboard operations

func (s *Storage) SaveLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return s.client.RPush(ctx, leaderboardKey(), data).Err()
}

func (s *Storage) ListLeaderboardEntries(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	values, err := s.client.LRange(ctx, leaderboardKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*model.LeaderboardEntry, 0, len(values))
	for _, val := range values {
		var entry model.LeaderboardEntry
		if err := json.Unmarshal([]byte(val), &entry); err != nil {
			continue // Skip invalid data
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (s *Storage) RecordScore(ctx context.Context, entry *model.LeaderboardEntry, account *model.Account) error {
	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	accountData, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// Entry append and account update go out as one MULTI/EXEC block
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, leaderboardKey(), entryData)
	s.queueAccount(ctx, pipe, account, accountData)
	_, err = pipe.Exec(ctx)
	return err
}

// Live player operations

func (s *Storage) SaveLivePlayer(ctx context.Context, player *model.LivePlayer) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	exists, err := s.client.Exists(ctx, livePlayerKey(player.ID)).Result()
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, livePlayerKey(player.ID), data, 0)
	if exists == 0 {
		pipe.RPush(ctx, liveOrderKey(), player.ID)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetLivePlayer(ctx context.Context, id string) (*model.LivePlayer, error) {
	data, err := s.client.Get(ctx, livePlayerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrLivePlayerNotFound
		}
		return nil, err
	}

	var player model.LivePlayer
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListLivePlayers(ctx context.Context) ([]*model.LivePlayer, error) {
	ids, err := s.client.LRange(ctx, liveOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.LivePlayer{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = livePlayerKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.LivePlayer, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Snapshot removed since indexing
		}
		var player model.LivePlayer
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}

	return players, nil
}
