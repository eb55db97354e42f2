package cli

import (
	"github.com/sportsms/courtside/internal/app"
)

// App aliases the wired dependency container for CLI commands.
type App = app.Container

var cliApp *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	cliApp = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return cliApp
}
