package httpapi

import (
	"time"

	"github.com/openshelf/book-catalog-go/internal/core"
)

type addBookRequest struct {
	ISBN  string `json:"isbn"`
	Title string `json:"title"`
}

type updateBookRequest struct {
	ISBN  string `json:"isbn"`
	Title string `json:"title"`
}

type borrowBookRequest struct {
	Borrower string `json:"borrower"`
}

type bookResponse struct {
	ID         string     `json:"id"`
	ISBN       string     `json:"isbn"`
	Title      string     `json:"title"`
	State      string     `json:"state"`
	BorrowedBy string     `json:"borrowedBy,omitempty"`
	BorrowedAt *time.Time `json:"borrowedAt,omitempty"`
	Version    uint       `json:"version"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func bookResponseFrom(record core.BookRecord) bookResponse {
	response := bookResponse{
		ID:      record.ID.String(),
		ISBN:    record.Book.ISBN.String(),
		Title:   record.Book.Title.String(),
		State:   record.State.StateName(),
		Version: record.Version,
	}

	if borrowed, ok := record.State.(core.Borrowed); ok {
		borrowedAt := borrowed.On
		response.BorrowedBy = borrowed.By.String()
		response.BorrowedAt = &borrowedAt
	}

	return response
}
