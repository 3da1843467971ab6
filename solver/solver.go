package solver

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/dlxdeals/cover"
	"github.com/katalvlaran/dlxdeals/discount"
	"github.com/katalvlaran/dlxdeals/dlx"
)

// ItemSetKey is the canonical, order-independent string form of a
// discount's item set, used as the deduplication and map key throughout
// this package. Two Discounts cover the same items iff their keys match.
type ItemSetKey string

// Key canonicalizes a set of item IDs into an ItemSetKey: sorted numeric
// order, comma-joined. Plain map iteration order is not stable enough to
// use a set directly as a map key across calls, so the IDs are sorted once
// here instead.
func Key(items map[uint64]struct{}) ItemSetKey {
	ids := make([]uint64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}

	return ItemSetKey(strings.Join(parts, ","))
}

// ApplyDeal invokes deal's rule against order and validates every Discount
// it returns: every item_id in Discount.Items must be present in order,
// and Savings must not be negative. A Rule returning an invalid Discount
// aborts the whole call with ErrMalformedDiscount (wrapping the more
// specific sentinel).
func ApplyDeal(deal discount.Deal, order []discount.OrderItem) ([]discount.Discount, error) {
	known := make(map[uint64]struct{}, len(order))
	for _, it := range order {
		known[it.ID] = struct{}{}
	}

	discounts, err := deal.Rule(order)
	if err != nil {
		return nil, fmt.Errorf("solver: deal %q (id %d): %w", deal.Name, deal.ID, err)
	}

	for _, d := range discounts {
		if d.Savings < 0 {
			return nil, fmt.Errorf("solver: deal %q (id %d) discount %q: %w: %w", deal.Name, deal.ID, d.Name, ErrMalformedDiscount, ErrNegativeSavings)
		}
		for id := range d.Items {
			if _, ok := known[id]; !ok {
				return nil, fmt.Errorf("solver: deal %q (id %d) discount %q: %w: %w (item %d)", deal.Name, deal.ID, d.Name, ErrMalformedDiscount, ErrUnknownItem, id)
			}
		}
	}

	return discounts, nil
}

// candidate pairs a Discount with the position at which CollectDiscounts
// produced it. "First wins on ties" follows from CollectDiscounts
// replacing an incumbent only on strictly greater savings; index is
// recorded but not read afterwards.
type candidate struct {
	discount discount.Discount
	index    int
}

// CollectDiscounts applies every deal to order and deduplicates the
// resulting Discounts by their item-set key: when two Discounts share a
// key, the one with strictly greater Savings wins; an exact tie keeps
// whichever was produced first. The returned map's values are the
// candidate rows solve builds its matrix from.
func CollectDiscounts(deals []discount.Deal, order []discount.OrderItem) (map[ItemSetKey]discount.Discount, error) {
	byKey := make(map[ItemSetKey]candidate)
	next := 0

	for _, deal := range deals {
		discounts, err := ApplyDeal(deal, order)
		if err != nil {
			return nil, err
		}
		for _, d := range discounts {
			key := Key(d.Items)
			incumbent, ok := byKey[key]
			if !ok || d.Savings > incumbent.discount.Savings {
				byKey[key] = candidate{discount: d, index: next}
			}
			next++
		}
	}

	out := make(map[ItemSetKey]discount.Discount, len(byKey))
	for key, c := range byKey {
		out[key] = c.discount
	}

	return out, nil
}

// SolveOption configures Solve's optional behavior.
type SolveOption func(*solveConfig)

type solveConfig struct {
	logger *log.Logger
}

// WithLogger attaches a logger Solve uses to record the number of
// candidate discounts and coverings it considers. A nil logger (the
// default) disables this output entirely.
func WithLogger(l *log.Logger) SolveOption {
	return func(c *solveConfig) {
		c.logger = l
	}
}

func resolveSolveOptions(opts []SolveOption) solveConfig {
	var c solveConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func sumSavings(discounts []discount.Discount) int64 {
	var total int64
	for _, d := range discounts {
		total += d.Savings
	}

	return total
}

// Solve computes the maximum-savings set of mutually compatible discounts
// for order against deals. Compatibility means the discounts' item sets
// are pairwise disjoint. Returns nil, nil (not an error) when no
// non-empty covering beats the empty one, i.e. when no discount applies or
// every combination nets zero or negative savings relative to doing
// nothing.
func Solve(deals []discount.Deal, order []discount.OrderItem, opts ...SolveOption) ([]discount.Discount, error) {
	cfg := resolveSolveOptions(opts)

	byKey, err := CollectDiscounts(deals, order)
	if err != nil {
		return nil, err
	}

	candidates := make([]discount.Discount, 0, len(byKey))
	keys := make([]ItemSetKey, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, key := range keys {
		candidates = append(candidates, byKey[key])
	}

	if cfg.logger != nil {
		cfg.logger.Printf("solver: %d candidate discount(s) after dedup", len(candidates))
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	rows := make([]any, len(candidates))
	for i, d := range candidates {
		rows[i] = d
	}
	cols := make([]any, len(order))
	for i, it := range order {
		cols[i] = it
	}

	m, err := dlx.NewMatrix(rows, cols, func(r, c any) bool {
		d := r.(discount.Discount)
		it := c.(discount.OrderItem)
		_, ok := d.Items[it.ID]

		return ok
	})
	if err != nil {
		return nil, err
	}

	coverings, err := cover.New(m).CoveringRows()
	if err != nil {
		return nil, err
	}

	if cfg.logger != nil {
		cfg.logger.Printf("solver: %d covering(s) enumerated", len(coverings))
	}

	var best []discount.Discount
	var bestSavings int64
	haveBest := false
	for _, covering := range coverings {
		discounts := make([]discount.Discount, len(covering))
		for i, payload := range covering {
			discounts[i] = payload.(discount.Discount)
		}
		total := sumSavings(discounts)
		if !haveBest || total > bestSavings {
			best, bestSavings, haveBest = discounts, total, true
		}
	}

	if len(best) == 0 {
		return nil, nil
	}

	return best, nil
}
