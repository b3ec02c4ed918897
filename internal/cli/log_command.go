package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"fleet-overtime/internal/errors"
	"fleet-overtime/internal/services"
	"fleet-overtime/internal/validation"
)

// LogCommand handles the log command
type LogCommand struct {
	service      services.OvertimeService
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{
		service:      app.service,
		errorHandler: NewErrorHandler(),
		out:          os.Stdout,
	}
}

// Execute logs an overtime submission for a mechanic. Windows are given as
// "HH:MM-HH:MM" strings; "HH:MM-" records an open-ended window.
func (c *LogCommand) Execute(ctx context.Context, mechanicID, dateStr string, windowStrs, details, equipment []string) error {
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return errors.NewInvalidInputError("date", dateStr, "expected YYYY-MM-DD")
	}

	windows, err := parseWindows(date, windowStrs)
	if err != nil {
		return err
	}

	bucket, err := c.service.LogOvertime(ctx, mechanicID, services.OvertimeInput{
		Date:          date,
		TimeWindows:   windows,
		WorkDetails:   details,
		EquipmentRefs: equipment,
	})
	if err != nil {
		return c.errorHandler.Handle("log overtime", err)
	}

	fmt.Fprintf(c.out, "Logged overtime for %s: %s now at %s\n",
		dateStr, bucket.MonthKey.String(), bucket.FormattedTotal)
	return nil
}

// parseWindows turns "HH:MM-HH:MM" strings into windows anchored to date.
func parseWindows(date time.Time, windowStrs []string) ([]validation.WindowInput, error) {
	windows := make([]validation.WindowInput, 0, len(windowStrs))
	for _, s := range windowStrs {
		parts := strings.SplitN(s, "-", 2)
		if len(parts) != 2 {
			return nil, errors.NewInvalidInputError("window", s, "expected HH:MM-HH:MM")
		}

		in, err := clockOnDate(date, parts[0])
		if err != nil {
			return nil, errors.NewInvalidInputError("window", s, "expected HH:MM-HH:MM")
		}

		window := validation.WindowInput{In: in}
		if parts[1] != "" {
			out, err := clockOnDate(date, parts[1])
			if err != nil {
				return nil, errors.NewInvalidInputError("window", s, "expected HH:MM-HH:MM")
			}
			window.Out = &out
		}
		windows = append(windows, window)
	}
	return windows, nil
}

func clockOnDate(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
