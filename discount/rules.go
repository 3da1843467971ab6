package discount

import "fmt"

// itemSet builds a Discount's Items set from the given item IDs.
func itemSet(ids ...uint64) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// PercentCombo returns a Rule granting percent% off the combined price of
// every pair (a, b) with a drawn from the items isFirst accepts and b from
// the items isSecond accepts. The same item is never paired with itself,
// and an item accepted by both predicates may appear on either side of a
// pair but not paired with itself. Savings are truncated toward zero, as
// integer arithmetic naturally does.
func PercentCombo(percent int64, isFirst, isSecond func(OrderItem) bool) Rule {
	return func(order []OrderItem) ([]Discount, error) {
		var discounts []Discount
		for _, a := range order {
			if !isFirst(a) {
				continue
			}
			for _, b := range order {
				if a.ID == b.ID || !isSecond(b) {
					continue
				}
				discounts = append(discounts, Discount{
					Name:    fmt.Sprintf("%d%% off %s + %s", percent, a.Name, b.Name),
					Items:   itemSet(a.ID, b.ID),
					Savings: (a.Price + b.Price) * percent / 100,
				})
			}
		}

		return discounts, nil
	}
}

// pairRule returns a Rule that, for every unordered pair of distinct items
// both accepted by qualifies, grants a discount named label whose savings
// are amount(a, b).
func pairRule(label string, qualifies func(OrderItem) bool, amount func(a, b OrderItem) int64) Rule {
	return func(order []OrderItem) ([]Discount, error) {
		var qualified []OrderItem
		for _, it := range order {
			if qualifies(it) {
				qualified = append(qualified, it)
			}
		}

		var discounts []Discount
		for i := 0; i < len(qualified); i++ {
			for j := i + 1; j < len(qualified); j++ {
				a, b := qualified[i], qualified[j]
				discounts = append(discounts, Discount{
					Name:    fmt.Sprintf("%s: %s + %s", label, a.Name, b.Name),
					Items:   itemSet(a.ID, b.ID),
					Savings: amount(a, b),
				})
			}
		}

		return discounts, nil
	}
}

// CheapestFree returns a "2 for 1, cheapest free" Rule over the items
// qualifies accepts: every qualifying pair grants a discount equal to the
// lower of the two prices.
func CheapestFree(qualifies func(OrderItem) bool) Rule {
	return pairRule("2-for-1 cheapest free", qualifies, func(a, b OrderItem) int64 {
		if a.Price < b.Price {
			return a.Price
		}

		return b.Price
	})
}

// MostExpensiveFree returns a "2 for 1, priciest free" Rule over the items
// qualifies accepts: every qualifying pair grants a discount equal to the
// higher of the two prices. A nil qualifies accepts every item.
func MostExpensiveFree(qualifies func(OrderItem) bool) Rule {
	if qualifies == nil {
		qualifies = func(OrderItem) bool { return true }
	}

	return pairRule("2-for-1 priciest free", qualifies, func(a, b OrderItem) int64 {
		if a.Price > b.Price {
			return a.Price
		}

		return b.Price
	})
}
