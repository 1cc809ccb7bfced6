package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/openshelf/book-catalog-go/internal/core"
	"github.com/openshelf/book-catalog-go/internal/postgres/internal/adapters"
)

const (
	defaultBooksTableName = "books"

	colID         = "id"
	colISBN       = "isbn"
	colTitle      = "title"
	colState      = "state"
	colBorrowedBy = "borrowed_by"
	colBorrowedAt = "borrowed_at"
	colVersion    = "version"

	dialectPostgres = "postgres"

	logMsgBuildQueryFailed = "failed to build sql query"
	logMsgDBQueryFailed    = "database query execution failed"
	logMsgDBExecFailed     = "database execution failed"
	logMsgVersionConflict  = "concurrency conflict detected"
	logAttrError           = "error"
	logAttrBookID          = "book_id"
	logAttrVersion         = "version"
)

// Logger interface for SQL logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// BookRepository stores BookRecord snapshots with optimistic concurrency.
type BookRepository struct {
	db        adapters.DBAdapter
	tableName string
	logger    Logger
}

// Option defines a functional option for configuring BookRepository.
type Option func(*BookRepository) error

// WithTableName sets the table name for the BookRepository.
func WithTableName(tableName string) Option {
	return func(r *BookRepository) error {
		if tableName == "" {
			return ErrEmptyTableNameSupplied
		}

		r.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the BookRepository.
func WithLogger(logger Logger) Option {
	return func(r *BookRepository) error {
		r.logger = logger
		return nil
	}
}

// NewBookRepositoryFromPGXPool creates a BookRepository backed by a pgx pool.
func NewBookRepositoryFromPGXPool(pool *pgxpool.Pool, options ...Option) (BookRepository, error) {
	return newBookRepository(adapters.NewPGXAdapter(pool), options...)
}

// NewBookRepositoryFromSQLX creates a BookRepository backed by sqlx over lib/pq.
func NewBookRepositoryFromSQLX(db *sqlx.DB, options ...Option) (BookRepository, error) {
	return newBookRepository(adapters.NewSQLXAdapter(db), options...)
}

func newBookRepository(db adapters.DBAdapter, options ...Option) (BookRepository, error) {
	repository := BookRepository{
		db:        db,
		tableName: defaultBooksTableName,
	}

	for _, option := range options {
		if err := option(&repository); err != nil {
			return BookRepository{}, err
		}
	}

	return repository, nil
}

// SaveBook inserts a freshly created aggregate snapshot.
func (r BookRepository) SaveBook(ctx context.Context, record core.BookRecord) error {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(r.tableName).
		Rows(rowFromRecord(record))

	query, _, err := insertStmt.ToSQL()
	if err != nil {
		r.logError(logMsgBuildQueryFailed, err, record)
		return err
	}

	if _, execErr := r.db.Exec(ctx, query); execErr != nil {
		r.logError(logMsgDBExecFailed, execErr, record)
		return execErr
	}

	return nil
}

// GetBook loads the current snapshot for the given BookID.
// Returns ErrBookNotFound if no row exists.
func (r BookRepository) GetBook(ctx context.Context, id core.BookID) (core.BookRecord, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(r.tableName).
		Select(colID, colISBN, colTitle, colState, colBorrowedBy, colBorrowedAt, colVersion).
		Where(goqu.C(colID).Eq(id.String()))

	query, _, err := selectStmt.ToSQL()
	if err != nil {
		return core.BookRecord{}, err
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		if r.logger != nil {
			r.logger.Error(logMsgDBQueryFailed, logAttrError, err, logAttrBookID, id.String())
		}

		return core.BookRecord{}, err
	}

	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return core.BookRecord{}, ErrBookNotFound
	}

	return scanRecord(rows)
}

// UpdateBook compare-and-swaps the snapshot: the row is only written when its
// stored version equals record.Version-1 (the version the caller read).
// Returns ErrConcurrentModification when the swap misses on a stale version,
// ErrBookNotFound when the row is gone.
func (r BookRepository) UpdateBook(ctx context.Context, record core.BookRecord) error {
	updateStmt := goqu.Dialect(dialectPostgres).
		Update(r.tableName).
		Set(rowFromRecord(record)).
		Where(
			goqu.C(colID).Eq(record.ID.String()),
			goqu.C(colVersion).Eq(record.Version-1),
		)

	query, _, err := updateStmt.ToSQL()
	if err != nil {
		r.logError(logMsgBuildQueryFailed, err, record)
		return err
	}

	result, execErr := r.db.Exec(ctx, query)
	if execErr != nil {
		r.logError(logMsgDBExecFailed, execErr, record)
		return execErr
	}

	return r.checkRowsAffected(ctx, result, record.ID, record.Version)
}

// DeleteBook removes the row, compare-and-swapped against the version the
// caller read. Same error contract as UpdateBook.
func (r BookRepository) DeleteBook(ctx context.Context, id core.BookID, expectedVersion uint) error {
	deleteStmt := goqu.Dialect(dialectPostgres).
		Delete(r.tableName).
		Where(
			goqu.C(colID).Eq(id.String()),
			goqu.C(colVersion).Eq(expectedVersion),
		)

	query, _, err := deleteStmt.ToSQL()
	if err != nil {
		return err
	}

	result, execErr := r.db.Exec(ctx, query)
	if execErr != nil {
		if r.logger != nil {
			r.logger.Error(logMsgDBExecFailed, logAttrError, execErr, logAttrBookID, id.String())
		}

		return execErr
	}

	return r.checkRowsAffected(ctx, result, id, expectedVersion+1)
}

// checkRowsAffected distinguishes a missed compare-and-swap from a vanished
// row: zero rows affected means either the version was stale or the book no
// longer exists.
func (r BookRepository) checkRowsAffected(
	ctx context.Context,
	result adapters.DBResult,
	id core.BookID,
	attemptedVersion uint,
) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected > 0 {
		return nil
	}

	if _, getErr := r.GetBook(ctx, id); errors.Is(getErr, ErrBookNotFound) {
		return ErrBookNotFound
	}

	if r.logger != nil {
		r.logger.Info(logMsgVersionConflict, logAttrBookID, id.String(), logAttrVersion, attemptedVersion)
	}

	return ErrConcurrentModification
}

func (r BookRepository) logError(msg string, err error, record core.BookRecord) {
	if r.logger != nil {
		r.logger.Error(msg, logAttrError, err, logAttrBookID, record.ID.String())
	}
}

// rowFromRecord maps an aggregate snapshot to its table row, switching
// exhaustively over the sealed state variants.
func rowFromRecord(record core.BookRecord) goqu.Record {
	row := goqu.Record{
		colID:         record.ID.String(),
		colISBN:       record.Book.ISBN.String(),
		colTitle:      record.Book.Title.String(),
		colVersion:    record.Version,
		colBorrowedBy: nil,
		colBorrowedAt: nil,
	}

	switch state := record.State.(type) {
	case core.Available:
		row[colState] = core.AvailableStateName

	case core.Borrowed:
		row[colState] = core.BorrowedStateName
		row[colBorrowedBy] = state.By.String()
		row[colBorrowedAt] = state.On.UTC()
	}

	return row
}

func scanRecord(rows adapters.DBRows) (core.BookRecord, error) {
	var (
		rawID      string
		rawISBN    string
		rawTitle   string
		rawState   string
		borrowedBy sql.NullString
		borrowedAt sql.NullTime
		version    uint
	)

	if err := rows.Scan(&rawID, &rawISBN, &rawTitle, &rawState, &borrowedBy, &borrowedAt, &version); err != nil {
		return core.BookRecord{}, err
	}

	id, err := core.ParseBookID(rawID)
	if err != nil {
		return core.BookRecord{}, errors.Join(ErrInconsistentState, err)
	}

	isbn, err := core.BuildISBN13(rawISBN)
	if err != nil {
		return core.BookRecord{}, errors.Join(ErrInconsistentState, err)
	}

	title, err := core.BuildTitle(rawTitle)
	if err != nil {
		return core.BookRecord{}, errors.Join(ErrInconsistentState, err)
	}

	state, err := stateFromRow(rawState, borrowedBy, borrowedAt)
	if err != nil {
		return core.BookRecord{}, err
	}

	return core.BookRecord{
		ID:      id,
		Book:    core.BuildBook(isbn, title),
		State:   state,
		Version: version,
	}, nil
}

func stateFromRow(rawState string, borrowedBy sql.NullString, borrowedAt sql.NullTime) (core.BookState, error) {
	switch rawState {
	case core.AvailableStateName:
		return core.Available{}, nil

	case core.BorrowedStateName:
		if !borrowedBy.Valid || !borrowedAt.Valid {
			return nil, fmt.Errorf("%w: borrowed row without borrower or timestamp", ErrInconsistentState)
		}

		by, err := core.BuildBorrower(borrowedBy.String)
		if err != nil {
			return nil, errors.Join(ErrInconsistentState, err)
		}

		return core.Borrowed{By: by, On: borrowedAt.Time.UTC()}, nil

	default:
		return nil, fmt.Errorf("%w: unknown state %q", ErrInconsistentState, rawState)
	}
}
