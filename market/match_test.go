package market

import (
	"errors"
	"testing"

	"github.com/weyoume/wenode-sub002/objects"
)

// TestMatchFullFill verifies a taker selling 100 at 1:2 and a maker selling
// 200 at the reciprocal 2:1 rate fully consume each other.
func TestMatchFullFill(t *testing.T) {
	makers := []*Maker{
		{Owner: "bob", OrderID: 1, Remaining: objects.NewAmount(200), Rate: objects.Price{BaseAmount: 2, QuoteAmount: 1}},
	}
	res, err := Match("alice", 1, objects.Price{BaseAmount: 1, QuoteAmount: 2}, objects.NewAmount(100), makers, false)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if !res.TakerRemaining.IsZero() {
		t.Fatalf("expected taker fully filled, remaining %s", res.TakerRemaining)
	}
	if len(res.MakerUpdates) != 1 || !res.MakerUpdates[0].Filled {
		t.Fatalf("expected the single maker fully filled: %+v", res.MakerUpdates)
	}
}

func TestMatchFillOrKillFailsWhenUnfillable(t *testing.T) {
	makers := []*Maker{
		{Owner: "bob", OrderID: 1, Remaining: objects.NewAmount(10), Rate: objects.Price{BaseAmount: 1, QuoteAmount: 1}},
	}
	_, err := Match("alice", 1, objects.Price{BaseAmount: 1, QuoteAmount: 1}, objects.NewAmount(100), makers, true)
	if !errors.Is(err, ErrFillOrKill) {
		t.Fatalf("expected ErrFillOrKill, got %v", err)
	}
}

// TestMatchRemainingNeverExceedsOriginalOrGoesNegative verifies that for
// every maker touched by a match, its remaining amount after the match is
// no greater than its remaining amount before, and — whenever the maker
// is not marked Filled — strictly positive.
func TestMatchRemainingNeverExceedsOriginalOrGoesNegative(t *testing.T) {
	makers := []*Maker{
		{Owner: "bob", OrderID: 1, Remaining: objects.NewAmount(30), Rate: objects.Price{BaseAmount: 1, QuoteAmount: 1}},
		{Owner: "carol", OrderID: 2, Remaining: objects.NewAmount(500), Rate: objects.Price{BaseAmount: 1, QuoteAmount: 1}},
	}
	original := make(map[uint64]objects.Amount, len(makers))
	for _, m := range makers {
		original[m.OrderID] = m.Remaining
	}

	res, err := Match("alice", 1, objects.Price{BaseAmount: 1, QuoteAmount: 1}, objects.NewAmount(100), makers, false)
	if err != nil {
		t.Fatalf("match: %v", err)
	}

	for _, upd := range res.MakerUpdates {
		before := original[upd.OrderID]
		if upd.NewRemaining.Cmp(before) > 0 {
			t.Fatalf("order %d: remaining %s exceeds original %s", upd.OrderID, upd.NewRemaining, before)
		}
		if !upd.Filled && upd.NewRemaining.IsZero() {
			t.Fatalf("order %d: not marked filled but remaining is zero", upd.OrderID)
		}
		if upd.Filled && !upd.NewRemaining.IsZero() {
			t.Fatalf("order %d: marked filled but remaining %s is nonzero", upd.OrderID, upd.NewRemaining)
		}
	}
	if !res.TakerRemaining.IsZero() {
		t.Fatalf("expected the taker to be fully filled while only partially draining the book, remaining %s", res.TakerRemaining)
	}
}

func TestCrossesRejectsNonOverlappingRates(t *testing.T) {
	taker := objects.Price{BaseAmount: 1, QuoteAmount: 2} // wants 2 receive per 1 sell
	maker := objects.Price{BaseAmount: 1, QuoteAmount: 3} // only gives 1/3 receive per sell
	if Crosses(taker, maker) {
		t.Fatalf("expected rates not to cross")
	}
}
