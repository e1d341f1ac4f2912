package cli

import (
	"context"
	"fmt"

	"clockifish/internal/api"
	"clockifish/internal/cli/formatter"
)

// StopCommand handles the timer stop command
type StopCommand struct {
	api          api.TrackerAPI
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stop command. Nothing running is an informational
// result, not a failure.
func (c *StopCommand) Execute(ctx context.Context) error {
	entry, err := c.api.StopTimer(ctx)
	if err != nil {
		return c.errorHandler.Handle("stop timer", err)
	}

	if entry == nil {
		fmt.Println("No timer is currently running")
		return nil
	}

	fmt.Println(formatter.FormatStoppedTimer(entry))
	return nil
}
