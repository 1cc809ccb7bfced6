// Package shell is the boundary layer around the core domain.
//
// It owns the dispatch contract that moves a produced domain event to an
// external message channel: the event envelope wire format, the event
// metadata (message, causation and correlation identifiers), the
// per-request correlation context, and the retry discipline for
// optimistic-concurrency conflicts.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would
// be called the 'application' or 'adapter-facing' layer.
package shell
