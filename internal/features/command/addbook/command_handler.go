package addbook

import (
	"context"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/shell"
)

// BookRepository defines the persistence operations needed by this use case.
type BookRepository interface {
	SaveBook(ctx context.Context, record core.BookRecord) error
}

// CommandHandler orchestrates the add-book workflow:
// create aggregate -> persist snapshot -> dispatch produced event.
type CommandHandler struct {
	repository BookRepository
	dispatcher shell.Dispatcher
	logger     shell.Logger
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithLogger sets the logger for the handler.
func WithLogger(logger shell.Logger) Option {
	return func(h *CommandHandler) {
		h.logger = logger
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(repository BookRepository, dispatcher shell.Dispatcher, opts ...Option) CommandHandler {
	handler := CommandHandler{
		repository: repository,
		dispatcher: dispatcher,
		logger:     shell.NoopLogger{},
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle creates the aggregate, persists it and dispatches BookAdded.
// Dispatch happens strictly after the snapshot is durable and is
// fire-and-forget: a publish failure does not fail the command.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.BookRecord, error) {
	record, event := core.CreateBook(command.ISBN, command.Title, command.OccurredAt)

	if err := h.repository.SaveBook(ctx, record); err != nil {
		h.logger.Error(shell.LogMsgCommandFailed,
			shell.LogAttrCommandType, command.CommandType(),
			shell.LogAttrError, err,
		)

		return core.BookRecord{}, err
	}

	shell.DispatchCommitted(ctx, h.dispatcher, h.logger, event)

	return record, nil
}
