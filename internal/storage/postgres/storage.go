package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    high_score INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS sessions (
    token TEXT PRIMARY KEY,
    email TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS leaderboard_entries (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT UNIQUE NOT NULL,
    username TEXT NOT NULL,
    score INTEGER NOT NULL,
    mode TEXT NOT NULL,
    played_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS live_players (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT UNIQUE NOT NULL,
    username TEXT NOT NULL,
    score INTEGER NOT NULL,
    mode TEXT NOT NULL,
    snake JSONB NOT NULL,
    food JSONB NOT NULL,
    direction TEXT NOT NULL,
    is_playing BOOLEAN NOT NULL DEFAULT true
);
`

// Storage implements the storage interface using PostgreSQL
type Storage struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and initializes the schema
func New(ctx context.Context, databaseURL string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

// Close releases database resources
func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO accounts (id, username, email, password_hash, high_score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE
		 SET username = $2, email = $3, password_hash = $4, high_score = $5`,
		account.ID, account.Username, account.Email, account.PasswordHash,
		account.HighScore, account.CreatedAt)
	return err
}

func (s *Storage) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, high_score, created_at
		 FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, high_score, created_at
		 FROM accounts WHERE email = $1`, email)
	return scanAccount(row)
}

func scanAccount(row pgx.Row) (*model.Account, error) {
	var account model.Account
	err := row.Scan(&account.ID, &account.Username, &account.Email,
		&account.PasswordHash, &account.HighScore, &account.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (token, email, created_at) VALUES ($1, $2, $3)
		 ON CONFLICT (token) DO NOTHING`,
		session.Token, session.Email, session.CreatedAt)
	return err
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT token, email, created_at FROM sessions WHERE token = $1`, token)

	var session model.Session
	err := row.Scan(&session.Token, &session.Email, &session.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

// Leaderboard operations

func (s *Storage) SaveLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO leaderboard_entries (id, username, score, mode, played_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Username, entry.Score, string(entry.Mode), entry.PlayedAt)
	return err
}

func (s *Storage) ListLeaderboardEntries(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, score, mode, played_at
		 FROM leaderboard_entries ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*model.LeaderboardEntry{}
	for rows.Next() {
		var entry model.LeaderboardEntry
		var mode string
		if err := rows.Scan(&entry.ID, &entry.Username, &entry.Score, &mode, &entry.PlayedAt); err != nil {
			return nil, err
		}
		entry.Mode = model.GameMode(mode)
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

func (s *Storage) RecordScore(ctx context.Context, entry *model.LeaderboardEntry, account *model.Account) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO leaderboard_entries (id, username, score, mode, played_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Username, entry.Score, string(entry.Mode), entry.PlayedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE accounts SET high_score = $1 WHERE id = $2`,
		account.HighScore, account.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Live player operations

func (s *Storage) SaveLivePlayer(ctx context.Context, player *model.LivePlayer) error {
	snake, err := json.Marshal(player.Snake)
	if err != nil {
		return err
	}
	food, err := json.Marshal(player.Food)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO live_players (id, username, score, mode, snake, food, direction, is_playing)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE
		 SET username = $2, score = $3, mode = $4, snake = $5, food = $6,
		     direction = $7, is_playing = $8`,
		player.ID, player.Username, player.Score, string(player.Mode),
		snake, food, string(player.Direction), player.IsPlaying)
	return err
}

func (s *Storage) GetLivePlayer(ctx context.Context, id string) (*model.LivePlayer, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, username, score, mode, snake, food, direction, is_playing
		 FROM live_players WHERE id = $1`, id)

	player, err := scanLivePlayer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrLivePlayerNotFound
	}
	return player, err
}

func (s *Storage) ListLivePlayers(ctx context.Context) ([]*model.LivePlayer, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, score, mode, snake, food, direction, is_playing
		 FROM live_players ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []*model.LivePlayer{}
	for rows.Next() {
		player, err := scanLivePlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func scanLivePlayer(row pgx.Row) (*model.LivePlayer, error) {
	var player model.LivePlayer
	var mode, direction string
	var snake, food []byte
	err := row.Scan(&player.ID, &player.Username, &player.Score, &mode,
		&snake, &food, &direction, &player.IsPlaying)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snake, &player.Snake); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(food, &player.Food); err != nil {
		return nil, err
	}
	player.Mode = model.GameMode(mode)
	player.Direction = model.Direction(direction)
	return &player, nil
}
