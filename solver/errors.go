package solver

import "errors"

// ErrMalformedDiscount is the sentinel family for every way a Rule's
// output can be rejected: wrap it with %w so callers can use errors.Is
// against this value regardless of which specific condition fired.
var ErrMalformedDiscount = errors.New("solver: malformed discount")

// ErrUnknownItem reports that a discount referenced an item_id absent from
// the order it was computed from. ApplyDeal returns it wrapped together
// with ErrMalformedDiscount, so both match with errors.Is.
var ErrUnknownItem = errors.New("solver: discount references an item not in the order")

// ErrNegativeSavings reports that a discount's savings were negative.
// ApplyDeal returns it wrapped together with ErrMalformedDiscount, so both
// match with errors.Is.
var ErrNegativeSavings = errors.New("solver: discount has negative savings")
