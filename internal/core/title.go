package core

import (
	"errors"
	"strings"
)

var errEmptyTitle = errors.New("title must not be empty")

// Title is the non-empty descriptive title of a book. Equality by value.
type Title struct {
	value string
}

// BuildTitle trims the raw input and rejects empty titles.
func BuildTitle(raw string) (Title, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Title{}, errors.Join(ErrMalformedValue, errEmptyTitle)
	}

	return Title{value: trimmed}, nil
}

func (t Title) String() string {
	return t.value
}

// Equals reports whether two Titles have the same value.
func (t Title) Equals(other Title) bool {
	return t.value == other.value
}
