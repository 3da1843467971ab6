// Package dlx implements a four-way circular doubly-linked sparse boolean
// matrix — Knuth's "Dancing Links" — the backtracking substrate package
// cover uses to enumerate partial covers.
//
// A Matrix has a header, one row sentinel per row, one column sentinel per
// column, and one entry per (row, column) cell where the construction
// predicate held. Every node carries six links (up, down, left, right,
// row, col); none is ever nil, and every link always points back into the
// same Matrix. Node role — header, row sentinel, column sentinel, or
// entry — is never tagged explicitly; it is always derivable structurally:
//
//	header        : row == col == self
//	row sentinel  : row == self, col == header
//	column sentinel: col == self, row == header
//	entry         : row != self, col != self
//
// Rows and nodes are held in an arena (a single growable slice) and
// addressed by index rather than by pointer, so a Matrix is trivially
// relocatable and carries no cyclic Go pointers for the garbage collector
// to chase.
//
// DetachRow/ReattachRow mutate a Matrix in place; they are the primitives
// package cover's backtracking search is built on. A Matrix is not safe
// for concurrent use: callers must not retain a Node across a mutating
// call on the same Matrix from another goroutine. Independent Matrix
// values may be driven from independent goroutines without interference.
//
// NewMatrix returns ErrBadShape for inputs that cannot describe a
// well-formed matrix (a nil predicate, or a nil row/column payload).
// ErrBrokenInvariant is never returned from the hot path; it surfaces only
// from CheckInvariants, a debug-only assertion helper for tests and
// invariant audits.
package dlx
