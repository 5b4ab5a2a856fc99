package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/storage/memory"
)

func TestSeedPopulatesEmptyStore(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, store))

	account, err := store.GetAccountByEmail(ctx, "player1@test.com")
	require.NoError(t, err)
	assert.Equal(t, "SnakeMaster", account.Username)
	assert.Equal(t, 1250, account.HighScore)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("password123")))

	entries, err := store.ListLeaderboardEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 12)
	assert.Equal(t, "SnakeMaster", entries[0].Username)
	assert.Equal(t, model.ModePassThrough, entries[11].Mode)

	players, err := store.ListLivePlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 5)
	assert.Equal(t, "live1", players[0].ID)
	assert.True(t, players[0].IsPlaying)
}

func TestSeedIsIdempotent(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, store))
	require.NoError(t, Seed(ctx, store))

	entries, err := store.ListLeaderboardEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 12)
}

func TestSeedSkipsPopulatedStore(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	existing := &model.Account{ID: "1", Username: "Custom", Email: "player1@test.com"}
	require.NoError(t, store.SaveAccount(ctx, existing))

	require.NoError(t, Seed(ctx, store))

	account, err := store.GetAccountByEmail(ctx, "player1@test.com")
	require.NoError(t, err)
	assert.Equal(t, "Custom", account.Username)

	entries, err := store.ListLeaderboardEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
