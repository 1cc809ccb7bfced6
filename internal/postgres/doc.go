// Package postgres persists BookRecord snapshots in a Postgres table.
//
// The repository enforces optimistic concurrency: updates and deletes are
// compare-and-swapped against the version the caller read, and a missed
// swap surfaces as ErrConcurrentModification so the caller can re-read and
// reapply the transition. The aggregate only increments the version; the
// compare-and-swap lives here.
//
// SQL statements are built with goqu. Database access goes through a small
// adapter interface with implementations for pgxpool and sqlx, so the
// service can run on either driver.
package postgres
