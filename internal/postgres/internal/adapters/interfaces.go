// Package adapters wraps the supported database drivers behind a common
// interface so the repository stays driver-agnostic.
package adapters

import "context"

// DBAdapter defines the database operations needed by the book repository.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBRows defines the interface for query result rows
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

// DBResult defines the interface for execution results
type DBResult interface {
	RowsAffected() (int64, error)
}
