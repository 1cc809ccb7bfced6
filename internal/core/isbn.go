package core

import (
	"errors"
	"fmt"
	"strings"
)

const isbn13Length = 13

var (
	errISBNLength   = errors.New("isbn must have exactly 13 digits")
	errISBNDigits   = errors.New("isbn must contain only digits")
	errISBNChecksum = errors.New("isbn checksum mismatch")
)

// ISBN13 is a 13-digit identifier validated by checksum at construction time.
// Two instances are equal iff their normalized digit strings match.
type ISBN13 struct {
	digits string
}

// BuildISBN13 normalizes the raw input (hyphens and spaces are stripped)
// and validates length, digit content and the ISBN-13 checksum.
// Returns an error wrapping ErrMalformedValue if validation fails.
func BuildISBN13(raw string) (ISBN13, error) {
	normalized := normalizeISBN(raw)

	if len(normalized) != isbn13Length {
		return ISBN13{}, errors.Join(ErrMalformedValue, errISBNLength)
	}

	sum := 0

	for pos, char := range normalized {
		if char < '0' || char > '9' {
			return ISBN13{}, errors.Join(ErrMalformedValue, errISBNDigits)
		}

		digit := int(char - '0')
		if pos%2 == 1 {
			digit *= 3
		}

		sum += digit
	}

	if sum%10 != 0 {
		return ISBN13{}, errors.Join(ErrMalformedValue, fmt.Errorf("%w: %s", errISBNChecksum, normalized))
	}

	return ISBN13{digits: normalized}, nil
}

func normalizeISBN(raw string) string {
	normalized := strings.ReplaceAll(raw, "-", "")
	normalized = strings.ReplaceAll(normalized, " ", "")

	return normalized
}

func (i ISBN13) String() string {
	return i.digits
}

// Equals reports whether two ISBNs have the same normalized digit string.
func (i ISBN13) Equals(other ISBN13) bool {
	return i.digits == other.digits
}
