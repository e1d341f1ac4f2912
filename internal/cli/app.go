package cli

import (
	"time"

	"clockifish/internal/api"
	"clockifish/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App holds the shared dependencies for command handlers.
type App struct {
	api    api.TrackerAPI
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection.
func NewApp(trackerAPI api.TrackerAPI, cfg *config.Config) *App {
	return &App{
		api:    trackerAPI,
		config: cfg,
	}
}
