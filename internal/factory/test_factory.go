package factory

import (
	"time"

	"github.com/snakearena/server/internal/dependencies/mocks"
	"github.com/snakearena/server/internal/services/session"
	"github.com/snakearena/server/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	Memory    *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithSessionConfig(session.Config{})
}

// NewTestAppWithSessionConfig creates a test App with explicit session settings
func NewTestAppWithSessionConfig(sessionCfg session.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, sessionCfg)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Memory:    store,
	}
}
