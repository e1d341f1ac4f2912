package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"clockifish/internal/api"
	"clockifish/internal/cli/formatter"
	"clockifish/internal/errors"
)

// ErrNoTimerRunning is returned by `timer status id` when nothing is
// running. It surfaces as a non-zero exit so shell scripts can branch on
// the timer state; plain `timer status` treats the same condition as an
// informational message and exits zero.
var ErrNoTimerRunning = stderrors.New("no timer is currently running")

// StatusCommand handles the timer status command
type StatusCommand struct {
	api          api.TrackerAPI
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the status command. With the "id" argument it prints just
// the bare entry ID for scripting.
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	switch {
	case len(args) == 0:
		return c.showStatus(ctx)
	case len(args) == 1 && args[0] == "id":
		return c.showID(ctx)
	default:
		return errors.NewInvalidInputError("argument", args[0], "usage: clockifish timer status [id]")
	}
}

func (c *StatusCommand) showStatus(ctx context.Context) error {
	entry, err := c.api.CurrentTimer(ctx)
	if err != nil {
		return c.errorHandler.Handle("get timer status", err)
	}

	if entry == nil {
		fmt.Println("No timer is currently running")
		return nil
	}

	fmt.Println(formatter.FormatRunningTimer(entry, timeNow()))
	return nil
}

func (c *StatusCommand) showID(ctx context.Context) error {
	entry, err := c.api.CurrentTimer(ctx)
	if err != nil {
		return c.errorHandler.Handle("get timer status", err)
	}

	if entry == nil {
		return ErrNoTimerRunning
	}

	fmt.Println(entry.ID)
	return nil
}
