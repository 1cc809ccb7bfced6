package returnbook

import (
	"time"

	"github.com/openshelf/book-catalog-go/internal/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to return a borrowed book.
type Command struct {
	BookID     core.BookID
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for logging.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookID, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
