// Package core contains the book catalog domain:
// validated value types, the BookRecord aggregate with its lifecycle
// state machine, and the domain events produced by state transitions.
//
// Everything in this package is a pure data transformation. Transitions
// take the current aggregate snapshot plus input and return a new snapshot
// together with the produced domain event; persisting the snapshot and
// dispatching the event are the caller's responsibility.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would
// be called the 'domain' layer.
package core
