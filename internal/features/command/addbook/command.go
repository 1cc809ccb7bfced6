package addbook

import (
	"time"

	"github.com/openshelf/book-catalog-go/internal/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a book to the catalog.
// It carries already-validated value types; raw input validation happens
// at the boundary that builds them.
type Command struct {
	ISBN       core.ISBN13
	Title      core.Title
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for logging.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(isbn core.ISBN13, title core.Title, occurredAt time.Time) Command {
	return Command{
		ISBN:       isbn,
		Title:      title,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
