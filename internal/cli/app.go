package cli

import (
	"fmt"

	"fleet-overtime/internal/config"
	"fleet-overtime/internal/logging"
	"fleet-overtime/internal/services"
)

// App bundles the service surface the command handlers work against.
type App struct {
	service services.OvertimeService
	sweeper *services.Sweeper
	config  *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(service services.OvertimeService, sweeper *services.Sweeper, cfg *config.Config) *App {
	return &App{
		service: service,
		sweeper: sweeper,
		config:  cfg,
	}
}

// NewAppWithDefaultStore creates the production application: configuration
// from environment, the configured store backend, and the service stack on
// top. The returned cleanup closes the store.
func NewAppWithDefaultStore(cfg *config.Config) (*App, func() error, error) {
	store, err := config.CreateStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	logger := logging.New(cfg.Logging.Level)
	sweeper := services.NewSweeper(store, services.NewSystemClock(), logger)
	service := services.NewOvertimeService(store, sweeper, logger, cfg.Sweep.SampleRate)

	return NewApp(service, sweeper, cfg), store.Close, nil
}
