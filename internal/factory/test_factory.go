package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/scorekeep/scorekeep/internal/dependencies/mocks"
	"github.com/scorekeep/scorekeep/internal/services/token"
	"github.com/scorekeep/scorekeep/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MockClock controls time for test scenarios
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app, err := newWithDependencies(store, mockClock, token.Config{Secret: "test-secret"}, logger)
	if err != nil {
		// Only reachable with an empty secret, which is fixed above
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
