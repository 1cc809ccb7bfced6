package shell

const (
	// LogMsgCommandStarted is logged when command processing begins.
	LogMsgCommandStarted = "command handler started"

	// LogMsgCommandCompleted is logged when command processing succeeds.
	LogMsgCommandCompleted = "command handler completed"

	// LogMsgCommandFailed is logged when command processing fails.
	LogMsgCommandFailed = "command handler failed"

	// LogMsgDispatchFailed is logged when publishing a produced event fails.
	// The business transition is already committed at that point.
	LogMsgDispatchFailed = "event dispatch failed"

	// LogAttrCommandType labels log entries with the command being handled.
	LogAttrCommandType = "command_type"

	// LogAttrEventType labels log entries with the event being dispatched.
	LogAttrEventType = "event_type"

	// LogAttrBookID labels log entries with the subject aggregate.
	LogAttrBookID = "book_id"

	// LogAttrCorrelationID labels log entries with the active correlation identifier.
	LogAttrCorrelationID = "correlation_id"

	// LogAttrError labels log entries with an error message.
	LogAttrError = "error"
)

// Logger is the dependency-free logging interface used by command handlers
// and adapters. The service wires a zap-backed slog.Logger behind it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoopLogger discards all log output. Useful as a default and in tests.
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...any) {}
func (NoopLogger) Info(string, ...any)  {}
func (NoopLogger) Warn(string, ...any)  {}
func (NoopLogger) Error(string, ...any) {}
