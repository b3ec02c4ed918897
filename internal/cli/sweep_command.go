package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"fleet-overtime/internal/services"
)

// SweepCommand handles the sweep command
type SweepCommand struct {
	sweeper      *services.Sweeper
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewSweepCommand creates a new sweep command handler
func NewSweepCommand(app *App) *SweepCommand {
	return &SweepCommand{
		sweeper:      app.sweeper,
		errorHandler: NewErrorHandler(),
		out:          os.Stdout,
	}
}

// Execute runs a retention sweep: for one mechanic when an id is given,
// otherwise across every mechanic.
func (c *SweepCommand) Execute(ctx context.Context, mechanicID string) error {
	if mechanicID != "" {
		removed, err := c.sweeper.SweepMechanic(ctx, mechanicID)
		if err != nil {
			return c.errorHandler.Handle("sweep mechanic", err)
		}
		fmt.Fprintf(c.out, "Removed %d expired bucket(s) for mechanic %s\n", removed, mechanicID)
		return nil
	}

	removed, err := c.sweeper.SweepAll(ctx)
	if err != nil {
		return c.errorHandler.Handle("sweep mechanics", err)
	}
	fmt.Fprintf(c.out, "Removed %d expired bucket(s)\n", removed)
	return nil
}
