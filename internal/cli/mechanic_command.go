package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"fleet-overtime/internal/duration"
	"fleet-overtime/internal/services"
)

// MechanicCommand handles the mechanic subcommands
type MechanicCommand struct {
	service      services.OvertimeService
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewMechanicCommand creates a new mechanic command handler
func NewMechanicCommand(app *App) *MechanicCommand {
	return &MechanicCommand{
		service:      app.service,
		errorHandler: NewErrorHandler(),
		out:          os.Stdout,
	}
}

// Add onboards a new mechanic
func (c *MechanicCommand) Add(ctx context.Context, name, code string) error {
	mech, err := c.service.CreateMechanic(ctx, name, code)
	if err != nil {
		return c.errorHandler.Handle("add mechanic", err)
	}
	fmt.Fprintf(c.out, "Added mechanic %s (%s): %s\n", mech.Name, mech.Code, mech.ID)
	return nil
}

// List renders all mechanics with their bucket rollups
func (c *MechanicCommand) List(ctx context.Context) error {
	mechs, err := c.service.ListMechanics(ctx)
	if err != nil {
		return c.errorHandler.Handle("list mechanics", err)
	}

	if len(mechs) == 0 {
		fmt.Fprintln(c.out, "No mechanics found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.AppendHeader(table.Row{"ID", "Name", "Code", "Months", "Total Overtime"})
	for _, mech := range mechs {
		total := 0
		for _, bucket := range mech.Buckets {
			total += bucket.TotalMinutes
		}
		t.AppendRow(table.Row{mech.ID, mech.Name, mech.Code, len(mech.Buckets), duration.Format(total)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}

// Remove deletes a mechanic and everything hanging off the aggregate
func (c *MechanicCommand) Remove(ctx context.Context, id string) error {
	if err := c.service.DeleteMechanic(ctx, id); err != nil {
		return c.errorHandler.Handle("remove mechanic", err)
	}
	fmt.Fprintf(c.out, "Removed mechanic %s\n", id)
	return nil
}
