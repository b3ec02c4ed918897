package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"fleet-overtime/internal/domain"
	"fleet-overtime/internal/duration"
	"fleet-overtime/internal/services"
)

// ReportCommand handles the report command
type ReportCommand struct {
	service      services.OvertimeService
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		service:      app.service,
		errorHandler: NewErrorHandler(),
		out:          os.Stdout,
	}
}

// Execute renders a mechanic's overtime report. With month and year it
// covers that single month; with neither it covers every retained bucket.
func (c *ReportCommand) Execute(ctx context.Context, mechanicID string, month, year int) error {
	mech, err := c.service.GetMechanic(ctx, mechanicID)
	if err != nil {
		return c.errorHandler.Handle("report overtime", err)
	}

	buckets, err := c.service.GetMonthlyOvertime(ctx, mechanicID, month, year)
	if err != nil {
		return c.errorHandler.Handle("report overtime", err)
	}

	fmt.Fprintf(c.out, "Overtime report for %s (%s)\n", mech.Name, mech.Code)
	if len(buckets) == 0 {
		fmt.Fprintln(c.out, "No overtime recorded")
		return nil
	}

	c.renderBuckets(buckets)
	return nil
}

func (c *ReportCommand) renderBuckets(buckets []domain.MonthlyOvertimeBucket) {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.AppendHeader(table.Row{"Month", "Date", "Windows", "Details", "Equipment", "Time"})

	grandTotal := 0
	for _, bucket := range buckets {
		grandTotal += bucket.TotalMinutes
		for _, entry := range bucket.Entries {
			t.AppendRow(table.Row{
				bucket.MonthKey.String(),
				entry.FormattedDate,
				formatWindows(entry.TimeWindows),
				strings.Join(entry.WorkDetails, "; "),
				strings.Join(entry.EquipmentRefs, ", "),
				entry.FormattedTime,
			})
		}
		t.AppendRow(table.Row{
			bucket.MonthKey.String(), "", "", "", "month total", bucket.FormattedTotal,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "total", duration.Format(grandTotal)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	// Footer cells keep their case so the grand total renders "3h 30m",
	// matching the duration format everywhere else.
	style := table.StyleRounded
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.Render()
}

func formatWindows(windows []domain.TimeWindow) string {
	parts := make([]string, 0, len(windows))
	for _, w := range windows {
		if w.Out == nil {
			parts = append(parts, w.In.Format("15:04")+"-")
			continue
		}
		parts = append(parts, w.In.Format("15:04")+"-"+w.Out.Format("15:04"))
	}
	return strings.Join(parts, " ")
}
