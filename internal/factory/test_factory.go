package factory

import (
	"time"

	"github.com/fiverow/gomoku/internal/dependencies/mocks"
	"github.com/fiverow/gomoku/internal/services/game"
	"github.com/fiverow/gomoku/internal/storage/memory"
	"github.com/fiverow/gomoku/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(game.DefaultConfig())
}

// NewTestAppWithConfig creates a TestApp with custom rule settings
func NewTestAppWithConfig(gameCfg game.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, gameCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
