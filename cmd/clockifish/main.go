package main

import (
	"fmt"
	"os"

	"clockifish/internal/api"
	"clockifish/internal/cli"
	"clockifish/internal/clockify"
	"clockifish/internal/config"
	"clockifish/internal/errors"
)

func main() {
	// Load credentials and settings from the environment. A missing
	// credential fails here, before any request is attempted.
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetUserMessage(err))
		os.Exit(1)
	}

	// Create the HTTP client and the business API over it
	client := clockify.New(cfg)
	trackerAPI := api.New(client)

	// Create app with injected API
	app := cli.NewApp(trackerAPI, cfg)

	if err := cli.NewRootCommand(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
