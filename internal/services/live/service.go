package live

import (
	"context"
	"errors"

	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/storage"
)

// Service exposes read-only lookups of in-progress game snapshots.
// The snapshots themselves are owned and written by the external game loop.
type Service struct {
	storage storage.Storage
}

// New creates a new live player registry
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// List returns every stored snapshot in insertion order
func (s *Service) List(ctx context.Context) ([]*model.LivePlayer, error) {
	return s.storage.ListLivePlayers(ctx)
}

// Get looks up one snapshot by player id. An unknown id returns (nil, nil):
// absence is a valid answer, not a failure.
func (s *Service) Get(ctx context.Context, id string) (*model.LivePlayer, error) {
	player, err := s.storage.GetLivePlayer(ctx, id)
	if errors.Is(err, model.ErrLivePlayerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return player, nil
}
