package cli

import (
	"context"
	"fmt"

	"clockifish/internal/api"
	"clockifish/internal/cli/formatter"
)

// StartCommand handles the timer start command
type StartCommand struct {
	api          api.TrackerAPI
	errorHandler *ErrorHandler
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the start command. Empty description or projectID means the
// field is not sent at all.
func (c *StartCommand) Execute(ctx context.Context, description, projectID string) error {
	entry, err := c.api.StartTimer(ctx, description, projectID)
	if err != nil {
		return c.errorHandler.Handle("start timer", err)
	}

	fmt.Println(formatter.FormatRunningTimer(entry, timeNow()))
	return nil
}
