// Package feed implements bitasset price-feed aggregation, global
// settlement, collateral bids, and forced settlement. Fund bookkeeping
// follows a collateral-into-fund shape, with redemption converted at the
// settlement price and collateral seizure tracked as a simple ledger.
package feed

import (
	"fmt"
	"sort"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
)

// Median computes the current_feed: the median price over every feed in
// the map whose age (now - published) is within maxAge. A feed exactly at
// maxAge is excluded from the median — the comparison below is therefore
// strict.
func Median(feeds map[string]objects.PriceFeed, now, maxAge int64) objects.Price {
	var live []objects.Price
	for _, f := range feeds {
		if now-f.Published < maxAge {
			live = append(live, f.Price)
		}
	}
	if len(live) == 0 {
		return objects.Price{}
	}
	sort.Slice(live, func(i, j int) bool {
		return live[i].BaseAmount*live[j].QuoteAmount < live[j].BaseAmount*live[i].QuoteAmount
	})
	return live[len(live)/2]
}

// Publish inserts or replaces publisher's feed entry, failing with
// Unauthorized when publisher is not in the asset's feed-producer set.
func Publish(bitasset *objects.BitassetData, publisher string, price objects.Price, now int64) error {
	if !bitasset.FeedProducers[publisher] {
		return fmt.Errorf("%w: %s is not an authorized feed producer", kernelerr.ErrUnauthorized, publisher)
	}
	if bitasset.Feed == nil {
		bitasset.Feed = make(map[string]objects.PriceFeed)
	}
	bitasset.Feed[publisher] = objects.PriceFeed{Published: now, Price: price}
	return nil
}

// DefaultFeedMaxAgeSeconds bounds how stale a single producer's feed may be
// before it drops out of the median (a chain property in full systems;
// fixed here as a default).
const DefaultFeedMaxAgeSeconds = 86400

// GlobalSettlement is the state recorded when a bitasset is force-settled
// chain-wide: it fixes a settlement_price and moves all collateral of
// outstanding call orders into a settlement_fund.
type GlobalSettlement struct {
	SettlementPrice objects.Price
	SettlementFund  objects.Amount
}

// Settle fixes the settlement price at the current feed and returns the
// GlobalSettlement record; callers (the global_settle evaluator) are
// responsible for sweeping every outstanding call order's
// collateral into SettlementFund via the object store and marking the
// bitasset GloballySettled.
func Settle(feedPrice objects.Price, totalCollateralSeized objects.Amount) GlobalSettlement {
	return GlobalSettlement{SettlementPrice: feedPrice, SettlementFund: totalCollateralSeized}
}

// RedeemAtSettlement computes the collateral-asset payout for redeeming
// amount units of a globally-settled bitasset by converting amount at the
// fixed settlement price. SettlementFund is not consulted: the payout is not
// pro-rata against the fund and is not capped by what the fund holds.
func RedeemAtSettlement(amount objects.Amount, settlement GlobalSettlement) (objects.Amount, error) {
	return amount.MulDiv(settlement.SettlementPrice.BaseAmount, settlement.SettlementPrice.QuoteAmount)
}

// CollateralBid is one post-settlement revival bid: bidders offer
// collateral for debt.
type CollateralBid struct {
	Bidder     string
	Collateral objects.Amount
	Debt       objects.Amount
}

// RevivalMet reports whether the collected bids' aggregate collateral ratio
// meets MCR, at which point the asset revives with a new call-order
// ladder built from the bids.
func RevivalMet(bids []CollateralBid, mcrBps uint32, feedPrice objects.Price) (bool, error) {
	totalCollateral := objects.ZeroAmount()
	totalDebt := objects.ZeroAmount()
	var err error
	for _, b := range bids {
		totalCollateral, err = totalCollateral.Add(b.Collateral)
		if err != nil {
			return false, err
		}
		totalDebt, err = totalDebt.Add(b.Debt)
		if err != nil {
			return false, err
		}
	}
	if totalDebt.IsZero() {
		return false, nil
	}
	debtValueInCollateral, err := totalDebt.MulDiv(feedPrice.BaseAmount, feedPrice.QuoteAmount)
	if err != nil {
		return false, err
	}
	if debtValueInCollateral.IsZero() {
		return true, nil
	}
	ratio, err := totalCollateral.MulDiv(10000, debtValueInCollateral.Uint64())
	if err != nil {
		return false, err
	}
	return ratio.Uint64() >= uint64(mcrBps), nil
}

// ForcedSettlement is a queued redemption request: an asset holder can
// queue a redemption at the current feed price with a
// force_settlement_delay.
type ForcedSettlement struct {
	Owner      string
	Amount     objects.Amount
	QueuedAt   int64
	ExecutesAt int64
}

// QueueForcedSettlement builds the queued request, executing
// delaySeconds after now.
func QueueForcedSettlement(owner string, amount objects.Amount, now, delaySeconds int64) ForcedSettlement {
	return ForcedSettlement{Owner: owner, Amount: amount, QueuedAt: now, ExecutesAt: now + delaySeconds}
}
