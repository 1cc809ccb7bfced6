package app

import "log/slog"

// Option configures the App before Run.
type Option func(app *App)

// WithLogHandler replaces the default zap-backed slog handler, used by tests
// to capture log output.
func WithLogHandler(handler slog.Handler) Option {
	return func(app *App) {
		app.logHandler = handler
	}
}
