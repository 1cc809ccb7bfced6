package borrowbook

import (
	"context"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/shell"
)

// BookRepository defines the persistence operations needed by this use case.
type BookRepository interface {
	GetBook(ctx context.Context, id core.BookID) (core.BookRecord, error)
	UpdateBook(ctx context.Context, record core.BookRecord) error
}

// CommandHandler orchestrates the borrow workflow:
// load snapshot -> transition -> compare-and-swap -> dispatch produced event.
//
// Resilience: a missed compare-and-swap (postgres.ErrConcurrentModification)
// is retried with exponential backoff by re-reading and reapplying the
// transition. Domain rule violations fail fast.
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

// Handle executes the borrow transition against the current snapshot.
// The produced BookBorrowed event is dispatched exactly once, strictly after
// the transition committed, and in commit order relative to other events of
// the same book (dispatch is synchronous and in-line).
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.BookRecord, error) {
	var (
		updated  core.BookRecord
		produced core.BookBorrowed
	)

	err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		record, getErr := h.repository.GetBook(retryCtx, command.BookID)
		if getErr != nil {
			return getErr
		}

		next, event, transitionErr := record.Borrow(command.Borrower, command.OccurredAt)
		if transitionErr != nil {
			return transitionErr
		}

		if updateErr := h.repository.UpdateBook(retryCtx, next); updateErr != nil {
			return updateErr
		}

		updated = next
		produced = event

		return nil
	}, h.retryOptions...)

	if err != nil {
		h.logger.Error(shell.LogMsgCommandFailed,
			shell.LogAttrCommandType, command.CommandType(),
			shell.LogAttrBookID, command.BookID.String(),
			shell.LogAttrError, err,
		)

		return core.BookRecord{}, err
	}

	shell.DispatchCommitted(ctx, h.dispatcher, h.logger, produced)

	return updated, nil
}
