package borrowbook

import (
	"time"

	"github.com/openshelf/book-catalog-go/internal/core"
)

const (
	commandType = "BorrowBook"
)

// Command represents the intent to borrow a book.
type Command struct {
	BookID     core.BookID
	Borrower   core.Borrower
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for logging.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookID, borrower core.Borrower, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		Borrower:   borrower,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
