package getbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/features/query/getbook"
	"github.com/openshelf/book-catalog-go/internal/postgres"
)

type repositoryFake struct {
	record core.BookRecord
}

func (f *repositoryFake) GetBook(_ context.Context, id core.BookID) (core.BookRecord, error) {
	if !f.record.ID.Equals(id) {
		return core.BookRecord{}, postgres.ErrBookNotFound
	}

	return f.record, nil
}

func Test_GetBook_ReturnsTheCurrentSnapshot(t *testing.T) {
	// arrange
	isbn, err := core.BuildISBN13("9780132350884")
	require.NoError(t, err)

	title, err := core.BuildTitle("Clean Code")
	require.NoError(t, err)

	record, _ := core.CreateBook(isbn, title, time.Now())
	handler := getbook.NewQueryHandler(&repositoryFake{record: record})

	// act
	found, err := handler.Handle(context.Background(), getbook.BuildQuery(record.ID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, record, found)
}

func Test_GetBook_Fails_WhenBookDoesNotExist(t *testing.T) {
	// arrange
	handler := getbook.NewQueryHandler(&repositoryFake{})

	// act
	_, err := handler.Handle(context.Background(), getbook.BuildQuery(core.NewBookID()))

	// assert
	require.Error(t, err)
	assert.ErrorIs(t, err, postgres.ErrBookNotFound)
}
