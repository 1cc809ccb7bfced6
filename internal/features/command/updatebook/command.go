package updatebook

import (
	"time"

	"github.com/openshelf/book-catalog-go/internal/core"
)

const (
	commandType = "UpdateBook"
)

// Command represents the intent to replace a book's catalog metadata.
type Command struct {
	BookID     core.BookID
	NewBook    core.Book
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for logging.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookID, newBook core.Book, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		NewBook:    newBook,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
