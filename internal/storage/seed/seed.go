package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/storage"
)

// demoPassword is the shared password of all seeded demo accounts
const demoPassword = "password123"

// Seed populates demo accounts, leaderboard entries, and live player
// snapshots into an empty store. A store that already holds the first demo
// account is left untouched, so seeding is safe to run on every startup.
func Seed(ctx context.Context, store storage.Storage) error {
	accounts := demoAccounts()

	_, err := store.GetAccountByEmail(ctx, accounts[0].Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		account.PasswordHash = string(hash)
		if err := store.SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.Email, err)
		}
	}

	for _, entry := range demoLeaderboard() {
		if err := store.SaveLeaderboardEntry(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed leaderboard entry %s: %w", entry.ID, err)
		}
	}

	for _, player := range demoLivePlayers() {
		if err := store.SaveLivePlayer(ctx, player); err != nil {
			return fmt.Errorf("failed to seed live player %s: %w", player.ID, err)
		}
	}

	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func demoAccounts() []*model.Account {
	return []*model.Account{
		{ID: "1", Username: "SnakeMaster", Email: "player1@test.com", HighScore: 1250, CreatedAt: date(2024, 1, 15)},
		{ID: "2", Username: "VenomStrike", Email: "player2@test.com", HighScore: 980, CreatedAt: date(2024, 2, 20)},
		{ID: "3", Username: "CobraKai", Email: "player3@test.com", HighScore: 820, CreatedAt: date(2024, 3, 5)},
		{ID: "4", Username: "SerpentKing", Email: "player4@test.com", HighScore: 750, CreatedAt: date(2024, 3, 22)},
		{ID: "5", Username: "Sidewinder", Email: "player5@test.com", HighScore: 420, CreatedAt: date(2024, 4, 1)},
	}
}

func demoLeaderboard() []*model.LeaderboardEntry {
	return []*model.LeaderboardEntry{
		{ID: "1", Username: "SnakeMaster", Score: 1250, Mode: model.ModeWalls, PlayedAt: date(2024, 12, 5)},
		{ID: "2", Username: "VenomStrike", Score: 980, Mode: model.ModePassThrough, PlayedAt: date(2024, 12, 4)},
		{ID: "3", Username: "PyThonX", Score: 875, Mode: model.ModeWalls, PlayedAt: date(2024, 12, 3)},
		{ID: "4", Username: "CobraKai", Score: 820, Mode: model.ModePassThrough, PlayedAt: date(2024, 12, 2)},
		{ID: "5", Username: "SerpentKing", Score: 750, Mode: model.ModeWalls, PlayedAt: date(2024, 12, 1)},
		{ID: "6", Username: "ViperVenom", Score: 680, Mode: model.ModePassThrough, PlayedAt: date(2024, 11, 30)},
		{ID: "7", Username: "Anaconda99", Score: 620, Mode: model.ModeWalls, PlayedAt: date(2024, 11, 29)},
		{ID: "8", Username: "RattleSnake", Score: 550, Mode: model.ModeWalls, PlayedAt: date(2024, 11, 28)},
		{ID: "9", Username: "BoomSlang", Score: 480, Mode: model.ModeWalls, PlayedAt: date(2024, 11, 27)},
		{ID: "10", Username: "Sidewinder", Score: 420, Mode: model.ModePassThrough, PlayedAt: date(2024, 11, 26)},
		{ID: "11", Username: "GhostAdder", Score: 390, Mode: model.ModeWalls, PlayedAt: date(2024, 11, 25)},
		{ID: "12", Username: "Pythonic", Score: 360, Mode: model.ModePassThrough, PlayedAt: date(2024, 11, 24)},
	}
}

func demoLivePlayers() []*model.LivePlayer {
	return []*model.LivePlayer{
		{
			ID: "live1", Username: "PyThonX", Score: 45, Mode: model.ModeWalls,
			Snake:     []model.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
			Food:      model.Position{X: 10, Y: 8},
			Direction: model.DirectionRight, IsPlaying: true,
		},
		{
			ID: "live2", Username: "CobraKai", Score: 32, Mode: model.ModePassThrough,
			Snake:     []model.Position{{X: 12, Y: 7}, {X: 12, Y: 6}, {X: 12, Y: 5}},
			Food:      model.Position{X: 3, Y: 12},
			Direction: model.DirectionDown, IsPlaying: true,
		},
		{
			ID: "live3", Username: "SerpentKing", Score: 78, Mode: model.ModeWalls,
			Snake:     []model.Position{{X: 8, Y: 10}, {X: 9, Y: 10}, {X: 10, Y: 10}, {X: 11, Y: 10}},
			Food:      model.Position{X: 2, Y: 5},
			Direction: model.DirectionLeft, IsPlaying: true,
		},
		{
			ID: "live4", Username: "BoomSlang", Score: 64, Mode: model.ModePassThrough,
			Snake:     []model.Position{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}},
			Food:      model.Position{X: 14, Y: 9},
			Direction: model.DirectionUp, IsPlaying: true,
		},
		{
			ID: "live5", Username: "RattleSnake", Score: 12, Mode: model.ModeWalls,
			Snake:     []model.Position{{X: 6, Y: 14}, {X: 6, Y: 13}, {X: 6, Y: 12}},
			Food:      model.Position{X: 9, Y: 3},
			Direction: model.DirectionRight, IsPlaying: true,
		},
	}
}
