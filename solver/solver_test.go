package solver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dlxdeals/discount"
	"github.com/katalvlaran/dlxdeals/solver"
)

type SolverSuite struct {
	suite.Suite
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func foodAndDrinkOrder() []discount.OrderItem {
	return []discount.OrderItem{
		{ID: 1, Name: "Food 1", Price: 1000},
		{ID: 2, Name: "Food 2", Price: 2000},
		{ID: 3, Name: "Drink 1", Price: 300},
		{ID: 4, Name: "Drink 2", Price: 400},
	}
}

func isFood(it discount.OrderItem) bool  { return len(it.Name) >= 4 && it.Name[:4] == "Food" }
func isDrink(it discount.OrderItem) bool { return len(it.Name) >= 5 && it.Name[:5] == "Drink" }

func foodAndDrinkDeals() []discount.Deal {
	f := discount.NewDealFactory()

	return []discount.Deal{
		f.NewDeal("20% off Food+Drink combo", discount.PercentCombo(20, isFood, isDrink)),
		f.NewDeal("2 for 1 drinks, cheapest free", discount.CheapestFree(isDrink)),
		f.NewDeal("2 for 1 anything, expensive free", discount.MostExpensiveFree(nil)),
	}
}

// TestAnyPairPriciestFreeDominatesNarrowerCombos exercises an order of
// two foods and two drinks against three overlapping deals: a percentage
// food+drink combo, a cheapest-free drink pair, and a priciest-free pair
// over any two items. Pairing the priciest-free deal across the whole
// order, rather than only splitting foods from drinks, yields a larger
// disjoint combination ({1,3}+{2,4} or {1,4}+{2,3}, both worth 3000), so
// any lower total would indicate the solver settled for a weaker pairing.
func (s *SolverSuite) TestAnyPairPriciestFreeDominatesNarrowerCombos() {
	order := foodAndDrinkOrder()
	deals := foodAndDrinkDeals()

	best, err := solver.Solve(deals, order)
	s.Require().NoError(err)

	var total int64
	covered := map[uint64]bool{}
	for _, d := range best {
		total += d.Savings
		for id := range d.Items {
			s.False(covered[id], "item %d covered twice", id)
			covered[id] = true
		}
	}
	s.Equal(int64(3000), total)
	s.GreaterOrEqual(total, int64(2400))
}

// TestEmptyOrderYieldsNoDiscounts checks that an empty order yields no
// discounts, and that this is not treated as an error.
func (s *SolverSuite) TestEmptyOrderYieldsNoDiscounts() {
	deals := foodAndDrinkDeals()
	best, err := solver.Solve(deals, nil)
	s.Require().NoError(err)
	s.Nil(best)
}

// TestNoApplicableDealYieldsNoDiscounts checks that a single-item order
// with a deal whose rule never applies yields no discounts.
func (s *SolverSuite) TestNoApplicableDealYieldsNoDiscounts() {
	order := []discount.OrderItem{{ID: 1, Name: "Widget", Price: 500}}
	f := discount.NewDealFactory()
	deals := []discount.Deal{
		f.NewDeal("never applies", discount.CheapestFree(func(discount.OrderItem) bool { return false })),
	}

	best, err := solver.Solve(deals, order)
	s.Require().NoError(err)
	s.Nil(best)
}

// TestDedupKeepsLargerSavingsOnSharedItemSet checks that when two deals
// produce a Discount over the identical item set with different savings,
// only the larger-savings Discount survives deduplication.
func (s *SolverSuite) TestDedupKeepsLargerSavingsOnSharedItemSet() {
	order := []discount.OrderItem{
		{ID: 1, Name: "A", Price: 100},
		{ID: 2, Name: "B", Price: 200},
	}
	small := discount.Deal{ID: 1, Name: "small", Rule: func(order []discount.OrderItem) ([]discount.Discount, error) {
		return []discount.Discount{{Name: "small", Items: map[uint64]struct{}{1: {}, 2: {}}, Savings: 10}}, nil
	}}
	large := discount.Deal{ID: 2, Name: "large", Rule: func(order []discount.OrderItem) ([]discount.Discount, error) {
		return []discount.Discount{{Name: "large", Items: map[uint64]struct{}{1: {}, 2: {}}, Savings: 50}}, nil
	}}

	byKey, err := solver.CollectDiscounts([]discount.Deal{small, large}, order)
	s.Require().NoError(err)
	s.Len(byKey, 1)
	for _, d := range byKey {
		s.Equal(int64(50), d.Savings)
	}
}

func (s *SolverSuite) TestApplyDealRejectsUnknownItem() {
	order := []discount.OrderItem{{ID: 1, Name: "A", Price: 100}}
	deal := discount.Deal{ID: 1, Name: "bad", Rule: func([]discount.OrderItem) ([]discount.Discount, error) {
		return []discount.Discount{{Name: "bad", Items: map[uint64]struct{}{99: {}}, Savings: 1}}, nil
	}}

	_, err := solver.ApplyDeal(deal, order)
	s.Require().Error(err)
	s.True(errors.Is(err, solver.ErrMalformedDiscount))
	s.True(errors.Is(err, solver.ErrUnknownItem))
}

func (s *SolverSuite) TestApplyDealRejectsNegativeSavings() {
	order := []discount.OrderItem{{ID: 1, Name: "A", Price: 100}}
	deal := discount.Deal{ID: 1, Name: "bad", Rule: func([]discount.OrderItem) ([]discount.Discount, error) {
		return []discount.Discount{{Name: "bad", Items: map[uint64]struct{}{1: {}}, Savings: -5}}, nil
	}}

	_, err := solver.ApplyDeal(deal, order)
	s.Require().Error(err)
	s.True(errors.Is(err, solver.ErrMalformedDiscount))
	s.True(errors.Is(err, solver.ErrNegativeSavings))
}

func (s *SolverSuite) TestKeyIsOrderIndependent() {
	a := solver.Key(map[uint64]struct{}{1: {}, 2: {}, 3: {}})
	b := solver.Key(map[uint64]struct{}{3: {}, 1: {}, 2: {}})
	s.Equal(a, b)
}
