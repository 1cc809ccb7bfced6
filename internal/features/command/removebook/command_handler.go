package removebook

import (
	"context"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/shell"
)

// BookRepository defines the persistence operations needed by this use case.
type BookRepository interface {
	GetBook(ctx context.Context, id core.BookID) (core.BookRecord, error)
	DeleteBook(ctx context.Context, id core.BookID, expectedVersion uint) error
}

// CommandHandler orchestrates the removal workflow:
// load snapshot -> compare-and-swap delete -> dispatch BookRemoved.
// After the delete no further transitions are possible for the aggregate.
type CommandHandler struct {
	repository   BookRepository
	dispatcher   shell.Dispatcher
	logger       shell.Logger
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithLogger sets the logger for the handler.
func WithLogger(logger shell.Logger) Option {
	return func(h *CommandHandler) {
		h.logger = logger
	}
}

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
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

// Handle deletes the snapshot and dispatches BookRemoved.
func (h CommandHandler) Handle(ctx context.Context, command Command) error {
	var produced core.BookRemoved

	err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		record, getErr := h.repository.GetBook(retryCtx, command.BookID)
		if getErr != nil {
			return getErr
		}

		event := record.Remove(command.OccurredAt)

		if deleteErr := h.repository.DeleteBook(retryCtx, record.ID, record.Version); deleteErr != nil {
			return deleteErr
		}

		produced = event

		return nil
	}, h.retryOptions...)

	if err != nil {
		h.logger.Error(shell.LogMsgCommandFailed,
			shell.LogAttrCommandType, command.CommandType(),
			shell.LogAttrBookID, command.BookID.String(),
			shell.LogAttrError, err,
		)

		return err
	}

	shell.DispatchCommitted(ctx, h.dispatcher, h.logger, produced)

	return nil
}
