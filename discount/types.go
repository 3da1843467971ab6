package discount

// OrderItem is one line of a customer's order. ID is unique within a given
// order; Price is an integer in the shop's base currency unit (no floating
// point, no currency conversion).
type OrderItem struct {
	ID    uint64
	Name  string
	Price int64
}

// Discount is a candidate reduction produced by applying a Deal's Rule to
// an order. Items is the set of OrderItem.ID values the discount covers;
// it is also the deduplication key solver.CollectDiscounts uses to pick
// between competing discounts that cover the same items.
type Discount struct {
	Name    string
	Items   map[uint64]struct{}
	Savings int64
}

// Rule computes the discounts a Deal grants for a given order. A Rule must
// be pure: called twice with the same order it must return equal results,
// and it must never reference item IDs absent from order. Implementations
// live in this package (see rules.go) or are supplied by the caller.
type Rule func(order []OrderItem) ([]Discount, error)

// Deal pairs a human-readable name and a monotonically assigned ID with the
// Rule that computes its discounts. Deals are created through a
// DealFactory so the ID sequence stays caller-controlled instead of
// relying on a package-level counter.
type Deal struct {
	ID   int
	Name string
	Rule Rule
}

// DealFactoryOption configures a DealFactory at construction time.
type DealFactoryOption func(*DealFactory)

// WithStartID sets the ID assigned to the first Deal the factory creates.
// The default start ID is 1.
func WithStartID(id int) DealFactoryOption {
	return func(f *DealFactory) {
		f.next = id
	}
}

// DealFactory assigns monotonically increasing IDs to the Deals it
// constructs. It replaces a process-wide counter with an explicit value a
// caller owns, can reset, and can run multiple independent instances of
// side by side in tests.
type DealFactory struct {
	start int
	next  int
}

// NewDealFactory builds a DealFactory, applying opts in order.
func NewDealFactory(opts ...DealFactoryOption) *DealFactory {
	f := &DealFactory{start: 1, next: 1}
	for _, opt := range opts {
		opt(f)
	}
	f.start = f.next

	return f
}

// NewDeal constructs a Deal with the next ID in the sequence and advances
// the counter.
func (f *DealFactory) NewDeal(name string, rule Rule) Deal {
	d := Deal{ID: f.next, Name: name, Rule: rule}
	f.next++

	return d
}

// Reset rewinds the factory's counter to the start ID it was constructed
// with, so the next NewDeal call reassigns the same ID sequence.
func (f *DealFactory) Reset() {
	f.next = f.start
}
