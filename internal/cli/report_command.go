package cli

import (
	"context"
	"fmt"

	"clockifish/internal/api"
	"clockifish/internal/cli/formatter"
	"clockifish/internal/errors"
)

// ReportCommand handles the report command and its week/month subcommands
type ReportCommand struct {
	api          api.TrackerAPI
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the report command for the given period ("week", "month", or
// "" for both). With raw set, only the two-decimal hour total is printed.
func (c *ReportCommand) Execute(ctx context.Context, period string, raw bool) error {
	now := timeNow()

	switch period {
	case "week":
		rep, err := c.api.WeekReport(ctx, now)
		if err != nil {
			return c.errorHandler.Handle("build week report", err)
		}
		c.printReport("This week", rep, raw)
		return nil
	case "month":
		rep, err := c.api.MonthReport(ctx, now)
		if err != nil {
			return c.errorHandler.Handle("build month report", err)
		}
		c.printReport("This month", rep, raw)
		return nil
	case "":
		week, err := c.api.WeekReport(ctx, now)
		if err != nil {
			return c.errorHandler.Handle("build week report", err)
		}
		month, err := c.api.MonthReport(ctx, now)
		if err != nil {
			return c.errorHandler.Handle("build month report", err)
		}
		c.printReport("This week", week, false)
		c.printReport("This month", month, false)
		return nil
	default:
		return errors.NewInvalidInputError("period", period, "expected week or month")
	}
}

func (c *ReportCommand) printReport(title string, rep *api.Report, raw bool) {
	if raw {
		fmt.Printf("%.2f\n", rep.TotalHours)
		return
	}
	fmt.Print(formatter.FormatReport(title, rep.Window, rep.TotalHours))
}
