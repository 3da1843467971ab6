// errors.go — sentinel errors for the dlx package.
//
// Error policy: only sentinel variables are exposed, callers branch with
// errors.Is, and sentinels are never stringified at the definition site.

package dlx

import "errors"

// ErrForeignNode is returned when an iteration or mutation anchor does not
// belong to the Matrix it was passed to. The matrix is left unmodified.
var ErrForeignNode = errors.New("dlx: node belongs to a different matrix")

// ErrBadShape is returned by NewMatrix when its inputs cannot describe a
// well-formed matrix: a nil predicate, or a row/column payload slice
// containing a nil entry (a nil payload is indistinguishable from the
// unused datum every entry and the header carry, so a sentinel built from
// one could never be told apart from an unpopulated node).
var ErrBadShape = errors.New("dlx: inconsistent construction inputs")

// ErrBrokenInvariant is raised only by CheckInvariants, a debug-only
// assertion helper: it reports that some node's reciprocal links do not
// hold. This is never returned from the hot path (construction,
// DetachRow/ReattachRow, iteration) — a matrix that fails this check has
// already left the corrupting operation behind it, so there is nothing a
// caller could recover from; this exists for tests and invariant audits,
// not request-time error handling.
var ErrBrokenInvariant = errors.New("dlx: reciprocal link invariant violated")
