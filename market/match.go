package market

import "github.com/weyoume/wenode-sub002/objects"

// Maker is the matcher's view of one resting order on the opposing book;
// callers adapt their concrete order type (LimitOrder, or a CallOrder's
// synthetic offer) into this shape.
type Maker struct {
	Owner     string
	OrderID   uint64
	Remaining objects.Amount // in the maker's sell symbol (the taker's receive symbol)
	Rate      objects.Price  // maker's own sell:receive rate
}

// MakerUpdate is the matcher's verdict on one maker order: either it is
// fully consumed (Filled) or its remaining amount shrinks to NewRemaining.
type MakerUpdate struct {
	OrderID      uint64
	Filled       bool
	NewRemaining objects.Amount
	Paid         objects.Amount // sell-symbol amount the maker gave up
	Received     objects.Amount // receive-symbol amount the maker got
}

// Result is the outcome of matching one taker against a price-ordered slice
// of opposing makers.
type Result struct {
	Fills          []Fill
	TakerRemaining objects.Amount
	MakerUpdates   []MakerUpdate
}

// Match walks `makers` (already in best-price-first order from the book's
// declared index) against a taker offering
// takerAmount of takerSell for takerReceive at takerRate, stopping when the
// taker is exhausted or the next maker's price no longer crosses. If
// fillOrKill is set and the taker cannot be fully filled, Match returns
// ErrFillOrKill and no mutation should be applied by the caller.
func Match(takerOwner string, takerOrderID uint64, takerRate objects.Price, takerAmount objects.Amount, makers []*Maker, fillOrKill bool) (Result, error) {
	remaining := takerAmount
	var res Result
	for _, m := range makers {
		if remaining.IsZero() {
			break
		}
		if !Crosses(takerRate, m.Rate) {
			break
		}
		// Amount of takerSell needed to fully clear this maker, valued at
		// the maker's rate (maker's price prevails for the fill, per spec
		// §4.5 step 2).
		neededToClearMaker, err := m.Remaining.MulDiv(m.Rate.QuoteAmount, m.Rate.BaseAmount)
		if err != nil {
			return Result{}, err
		}
		fillSell := remaining
		if neededToClearMaker.Cmp(fillSell) < 0 {
			fillSell = neededToClearMaker
		}
		if fillSell.IsZero() {
			break
		}
		// Amount of maker's sell-symbol (taker's receive-symbol) paid out,
		// at the maker's rate.
		fillReceive, err := fillSell.MulDiv(m.Rate.BaseAmount, m.Rate.QuoteAmount)
		if err != nil {
			return Result{}, err
		}
		newMakerRemaining, err := m.Remaining.Sub(fillReceive)
		if err != nil {
			return Result{}, err
		}
		remaining, err = remaining.Sub(fillSell)
		if err != nil {
			return Result{}, err
		}

		res.Fills = append(res.Fills, Fill{
			TakerOwner: takerOwner, TakerOrderID: takerOrderID,
			MakerOwner: m.Owner, MakerOrderID: m.OrderID,
			PaysSymbol: "", PaysAmount: fillSell,
			ReceiveSymbol: "", ReceiveAmount: fillReceive,
		})
		res.MakerUpdates = append(res.MakerUpdates, MakerUpdate{
			OrderID: m.OrderID, Filled: newMakerRemaining.IsZero(),
			NewRemaining: newMakerRemaining, Paid: fillReceive, Received: fillSell,
		})
	}
	res.TakerRemaining = remaining

	if fillOrKill && !remaining.IsZero() {
		return Result{}, ErrFillOrKill
	}
	return res, nil
}
