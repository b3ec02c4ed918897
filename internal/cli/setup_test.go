package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fleet-overtime/internal/config"
	"fleet-overtime/internal/logging"
	"fleet-overtime/internal/repository/buntdb"
	"fleet-overtime/internal/services"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// setupTestApp wires the real service stack over an in-memory store, the
// same shape production gets from NewAppWithDefaultStore.
func setupTestApp(t *testing.T) *App {
	t.Helper()
	return setupTestAppWithClock(t, services.NewSystemClock())
}

func setupTestAppWithClock(t *testing.T, clock services.Clock) *App {
	t.Helper()

	store, err := buntdb.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := logging.NewNop()
	sweeper := services.NewSweeper(store, clock, logger)
	service := services.NewOvertimeService(store, sweeper, logger, 0)
	return NewApp(service, sweeper, config.NewConfig())
}
