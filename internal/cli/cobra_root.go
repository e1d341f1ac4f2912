package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "clockifish",
		Short: "A command-line client for the Clockify time tracker",
		Long: `clockifish is a command-line client for the Clockify time-tracking API.

It manages a single current timer per user and aggregates historical time
entries into weekly and monthly hour totals.

EXAMPLES:
  clockifish timer start -d "writing docs"     # Start a timer
  clockifish timer status                      # Show the running timer
  clockifish timer status id                   # Bare entry ID (scripting; exits 1 when idle)
  clockifish timer stop                        # Stop the running timer
  clockifish report                            # Week and month totals
  clockifish report week --raw                 # Just the hour figure (scripting)

CONFIGURATION:
  CLOCKIFY_API_KEY        API key (required)
  CLOCKIFY_WORKSPACE_ID   Workspace ID (required)
  CLOCKIFY_BASE_URL       API base URL override
  CLOCKIFY_HTTP_TIMEOUT   Per-request timeout (default: 30s)
  CLOCKIFY_MAX_RETRIES    Retry budget for transport/5xx failures (default: 0)
  CLOCKIFISH_VERSION      Version string override for --version
  CLOCKIFISH_TIMEOUT      Whole-command timeout (default: 60s)
  CLOCKIFISH_DEBUG        Enable request tracing on stderr`,
		Version:       app.config.Application.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// commandContext returns a context bounded by the application timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.app.config.Application.Timeout)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Timer command group
	timerCmd := &cobra.Command{
		Use:   "timer",
		Short: "Manage the current timer",
	}

	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new timer",
		Long:  "Start a new time entry beginning now. Description and project are optional.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			description, _ := cmd.Flags().GetString("description")
			project, _ := cmd.Flags().GetString("project")
			return NewStartCommand(r.app).Execute(ctx, description, project)
		},
	}
	startCmd.Flags().StringP("description", "d", "", "Description for the new time entry")
	startCmd.Flags().StringP("project", "p", "", "Project ID the entry is booked against")

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		Long:  "End the currently running time entry. Does nothing when no timer is running.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewStopCommand(r.app).Execute(ctx)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status [id]",
		Short: "Show the running timer",
		Long: `Show the currently running timer, if any.

With the "id" argument, print only the bare entry ID and exit non-zero when
no timer is running, for use in shell scripts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewStatusCommand(r.app).Execute(ctx, args)
		},
	}

	timerCmd.AddCommand(startCmd, stopCmd, statusCmd)

	// Report command group
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate tracked hours",
		Long:  "Aggregate time entries into hour totals. Without a subcommand, prints both the week and month windows.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewReportCommand(r.app).Execute(ctx, "", false)
		},
	}

	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Hours tracked this week",
		Long:  "Total hours for the current week, Monday through Sunday.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			raw, _ := cmd.Flags().GetBool("raw")
			return NewReportCommand(r.app).Execute(ctx, "week", raw)
		},
	}
	weekCmd.Flags().Bool("raw", false, "Print only the two-decimal hour total")

	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Hours tracked this month",
		Long:  "Total hours for the current calendar month.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			raw, _ := cmd.Flags().GetBool("raw")
			return NewReportCommand(r.app).Execute(ctx, "month", raw)
		},
	}
	monthCmd.Flags().Bool("raw", false, "Print only the two-decimal hour total")

	reportCmd.AddCommand(weekCmd, monthCmd)

	r.cmd.AddCommand(timerCmd, reportCmd)
}
