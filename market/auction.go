package market

import "github.com/weyoume/wenode-sub002/objects"

// AuctionFill is one participant's result from a single batch auction
// clearing: auction orders settle in a batched single-price auction at
// each auction interval, not continuously.
type AuctionFill struct {
	OrderID  uint64
	Received objects.Amount // in the opposing auction's sell symbol
}

// ClearAuction settles two opposing auction order books (sell A for B,
// sell B for A) at a single uniform clearing price, the maximal price at
// which total supply on one side does not exceed total demand implied by
// the other, bounded by each participant's own LimitClosePrice. Orders
// priced worse than the clearing price do not participate this round and
// remain queued for the next interval.
//
// The clearing price is chosen as the rate that exhausts the smaller side
// exactly: totalA/totalB expressed as a Price, which is the natural
// uniform-price auction outcome for two single-asset batches with no
// further price discovery input available to the kernel.
func ClearAuction(sideA, sideB []*objects.AuctionOrder) (fillsA, fillsB []AuctionFill, clearingPrice objects.Price) {
	totalA := sumEligible(sideA, func(o *objects.AuctionOrder) objects.Amount { return o.Amount })
	totalB := sumEligible(sideB, func(o *objects.AuctionOrder) objects.Amount { return o.Amount })
	if totalA.IsZero() || totalB.IsZero() {
		return nil, nil, objects.Price{}
	}
	clearingPrice = objects.Price{BaseAmount: totalA.Uint64(), QuoteAmount: totalB.Uint64()}

	for _, o := range sideA {
		if !acceptsPrice(o, clearingPrice) {
			continue
		}
		received, err := o.Amount.MulDiv(totalB.Uint64(), totalA.Uint64())
		if err != nil {
			continue
		}
		fillsA = append(fillsA, AuctionFill{OrderID: o.ID, Received: received})
	}
	for _, o := range sideB {
		if !acceptsPrice(o, invert(clearingPrice)) {
			continue
		}
		received, err := o.Amount.MulDiv(totalA.Uint64(), totalB.Uint64())
		if err != nil {
			continue
		}
		fillsB = append(fillsB, AuctionFill{OrderID: o.ID, Received: received})
	}
	return fillsA, fillsB, clearingPrice
}

func sumEligible(orders []*objects.AuctionOrder, amt func(*objects.AuctionOrder) objects.Amount) objects.Amount {
	total := objects.ZeroAmount()
	for _, o := range orders {
		total, _ = total.Add(amt(o))
	}
	return total
}

// acceptsPrice reports whether the auction's uniform clearing price is at
// least as good as the order's own LimitClosePrice floor.
func acceptsPrice(o *objects.AuctionOrder, price objects.Price) bool {
	if o.LimitClosePrice.QuoteAmount == 0 {
		return true
	}
	return rateCmp(price, o.LimitClosePrice) >= 0
}

func invert(p objects.Price) objects.Price {
	return objects.Price{BaseAmount: p.QuoteAmount, QuoteAmount: p.BaseAmount}
}
