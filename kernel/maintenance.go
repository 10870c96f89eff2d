package kernel

import (
	"github.com/weyoume/wenode-sub002/amm"
	"github.com/weyoume/wenode-sub002/balance"
	"github.com/weyoume/wenode-sub002/credit"
	"github.com/weyoume/wenode-sub002/feed"
	"github.com/weyoume/wenode-sub002/market"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/prediction"
	"github.com/weyoume/wenode-sub002/producer"
	"github.com/weyoume/wenode-sub002/undo"
)

// ActiveProducerCount is the size of the top-producer set a schedule refresh
// selects from, the 21-producer, 2/3+1 convention named alongside
// IrreversibleThreshold.
const ActiveProducerCount = 21

// RunMaintenance executes every scheduled-maintenance task in a fixed
// order (feed medians → expired orders → matured loans → cashouts →
// delegations → schedule refresh), with the additional subsystems the
// expanded module set introduces threaded into their natural place in
// that same sequence.
func (c *Chain) RunMaintenance(sess *undo.Session, now int64) error {
	c.recordSpotPrices(sess)
	c.refreshFeeds(sess)

	if err := c.clearAuctions(sess); err != nil {
		return err
	}
	if err := c.expireLimitOrders(sess, now); err != nil {
		return err
	}
	if err := c.expireAuctionOrders(sess, now); err != nil {
		return err
	}
	if err := c.scanMarginTriggers(sess); err != nil {
		return err
	}
	if err := c.scanCallableOrders(sess); err != nil {
		return err
	}

	if err := c.accrueLoans(sess, now); err != nil {
		return err
	}

	if err := c.processCashouts(sess, now); err != nil {
		return err
	}
	if err := c.Bal.AccrueVesting(sess, now); err != nil {
		return err
	}
	if err := c.completeDelegations(sess, now); err != nil {
		return err
	}
	if err := c.completeSavingsWithdraws(sess, now); err != nil {
		return err
	}
	if err := c.expireEscrows(sess, now); err != nil {
		return err
	}

	if err := c.executeForcedSettlements(sess, now); err != nil {
		return err
	}
	if err := c.checkCollateralBidRevivals(sess); err != nil {
		return err
	}
	if err := c.tallyPredictionResolutions(sess, now); err != nil {
		return err
	}

	c.refreshProducerSchedule(sess, now)
	return nil
}

// recordSpotPrices ticks the price-oracle ring buffer of every liquidity
// pool; every maintenance tick records the spot price. Each pool's ring
// is independent of every other's, so unordered Table.Each
// iteration still yields a fully deterministic final state.
func (c *Chain) recordSpotPrices(sess *undo.Session) {
	var pools []*objects.LiquidityPool
	c.LiquidityPools.Each(func(p *objects.LiquidityPool) { pools = append(pools, p) })
	for _, p := range pools {
		work := *p
		amm.RecordSpotPrice(&work)
		c.LiquidityPools.Modify(sess, p, func(pool *objects.LiquidityPool) {
			pool.PriceRing = work.PriceRing
			pool.PriceRingNext = work.PriceRingNext
			pool.PriceRingCount = work.PriceRingCount
		})
	}
}

// refreshFeeds recomputes every bitasset's current_feed from its live
// producer feed map. Independent per asset, so Each's unspecified order
// does not affect the resulting state.
func (c *Chain) refreshFeeds(sess *undo.Session) {
	c.Assets.Each(func(a *objects.Asset) {
		if a.Bitasset == nil {
			return
		}
		median := feed.Median(a.Bitasset.Feed, c.Now, feed.DefaultFeedMaxAgeSeconds)
		if median.QuoteAmount == 0 {
			return
		}
		c.Assets.Modify(sess, a, func(asset *objects.Asset) {
			asset.Bitasset.CurrentFeed = objects.PriceFeed{Published: c.Now, Price: median}
		})
	})
}

// clearAuctions settles every pending pair of opposing auction order books
// at a single uniform clearing price: auction orders settle in a batched
// single-price auction at each auction interval, not continuously. Pairs
// are discovered in AuctionByPair's deterministic
// order, each processed exactly once via its lexicographically smaller
// symbol.
func (c *Chain) clearAuctions(sess *undo.Session) error {
	seen := make(map[Pair]bool)
	var pairs []Pair
	for _, o := range c.AuctionByPair.All() {
		p := Pair{}
		p.A, p.B = orderedPair(o.SellSymbol, o.ReceiveSymbol)
		if seen[p] {
			continue
		}
		seen[p] = true
		pairs = append(pairs, p)
	}
	for _, p := range pairs {
		if err := c.clearAuctionPair(sess, p.A, p.B); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chain) clearAuctionPair(sess *undo.Session, symA, symB string) error {
	sideA := c.AuctionByPair.Range(func(k Pair) bool { return k == (Pair{symA, symB}) })
	sideB := c.AuctionByPair.Range(func(k Pair) bool { return k == (Pair{symB, symA}) })
	if len(sideA) == 0 || len(sideB) == 0 {
		return nil
	}
	fillsA, fillsB, _ := market.ClearAuction(sideA, sideB)
	for _, fill := range fillsA {
		if err := c.settleAuctionFill(sess, fill, symB); err != nil {
			return err
		}
	}
	for _, fill := range fillsB {
		if err := c.settleAuctionFill(sess, fill, symA); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chain) settleAuctionFill(sess *undo.Session, fill market.AuctionFill, receiveSymbol string) error {
	order, ok := c.AuctionOrders.Get(fill.OrderID)
	if !ok {
		return nil // already consumed by the opposing side's own fill in this same pass
	}
	if err := c.Bal.Adjust(sess, order.Owner, receiveSymbol, balance.Liquid, objects.Pos(fill.Received)); err != nil {
		return err
	}
	c.AuctionOrders.Remove(sess, order)
	return nil
}

// expireLimitOrders refunds and removes every resting limit order whose
// expiration has arrived, in ascending-expiration order by iterating
// secondary indices ordered by timestamp.
func (c *Chain) expireLimitOrders(sess *undo.Session, now int64) error {
	due := c.LimitByExpiration.Range(func(t int64) bool { return t > 0 && t <= now })
	for _, o := range due {
		if err := c.Bal.Adjust(sess, o.Owner, o.SellSymbol, balance.Liquid, objects.Pos(o.AmountForSale)); err != nil {
			return err
		}
		c.LimitOrders.Remove(sess, o)
	}
	return nil
}

// expireAuctionOrders refunds and removes every unfilled auction order past
// its expiration (orders that cleared this tick were already removed by
// clearAuctions).
func (c *Chain) expireAuctionOrders(sess *undo.Session, now int64) error {
	due := c.AuctionByExpiration.Range(func(t int64) bool { return t > 0 && t <= now })
	for _, o := range due {
		if err := c.Bal.Adjust(sess, o.Owner, o.SellSymbol, balance.Liquid, objects.Pos(o.Amount)); err != nil {
			return err
		}
		c.AuctionOrders.Remove(sess, o)
	}
	return nil
}

// scanMarginTriggers force-closes every margin order whose stop-loss or
// take-profit level the current AMM price has crossed, in MarginOrdered's
// deterministic (owner, order id) order — later closers in
// the same pass necessarily trade at whatever price the earlier ones left
// the pool at, so the iteration order itself is part of the chain's
// consensus-critical behavior.
func (c *Chain) scanMarginTriggers(sess *undo.Session) error {
	for _, rec := range c.MarginOrdered.All() {
		pool, inverted, err := c.marginPool(rec.CollateralSymbol, rec.DebtSymbol)
		if err != nil {
			continue // no pricing pool yet for this pair; leave the position open
		}
		price := collateralPerDebt(pool, inverted)
		if market.CheckTriggers(rec, price) == market.NoTrigger {
			continue
		}
		if err := c.closeMarginOrder(sess, rec, pool, inverted); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chain) closeMarginOrder(sess *undo.Session, rec *objects.MarginOrder, pool *objects.LiquidityPool, inverted bool) error {
	creditPool, ok := c.CreditByBase.Find(rec.DebtSymbol)
	if !ok {
		return nil
	}
	closeIn := market.CloseThroughPool(rec)
	proceeds, err := c.poolExchange(sess, pool, closeIn, inverted)
	if err != nil {
		return nil // pool lacks liquidity to close this tick; retry next maintenance pass
	}
	residual, shortfall := market.SettleCloseProceeds(proceeds, rec.DebtBalance)
	repaid := rec.DebtBalance
	if !shortfall.IsZero() {
		repaid, _ = repaid.Sub(shortfall)
	}
	c.CreditPools.Modify(sess, creditPool, func(p *objects.CreditPool) {
		p.BorrowedBalance, _ = p.BorrowedBalance.Sub(rec.DebtBalance)
		p.BaseBalance, _ = p.BaseBalance.Add(repaid)
	})
	if !residual.IsZero() {
		if err := c.Bal.Adjust(sess, rec.Owner, rec.DebtSymbol, balance.Liquid, objects.Pos(residual)); err != nil {
			return err
		}
	}
	c.MarginOrders.Remove(sess, rec)
	return nil
}

// scanCallableOrders force-closes every call order the feed price has made
// callable, filling it against the best-priced resting
// limit orders selling the debt asset for the collateral asset, in
// CallByDebtSymbol's deterministic order.
func (c *Chain) scanCallableOrders(sess *undo.Session) error {
	for _, order := range c.CallByDebtSymbol.All() {
		asset, ok := c.AssetsBySymbol.Find(order.DebtSymbol)
		if !ok || asset.Bitasset == nil || asset.Bitasset.CurrentFeed.Price.QuoteAmount == 0 {
			continue
		}
		callPrice := market.CallPrice(order, asset.Bitasset.MaintenanceCollateral, asset.Bitasset.CurrentFeed.Price)
		if !market.Callable(asset.Bitasset.CurrentFeed.Price, callPrice) {
			continue
		}
		if err := c.fillCallOrder(sess, order); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chain) fillCallOrder(sess *undo.Session, order *objects.CallOrder) error {
	makers := c.LimitBook.Range(func(k market.BookKey) bool {
		return k.Sell == order.DebtSymbol && k.Receive == order.CollateralSymbol
	})
	for _, maker := range makers {
		if order.Debt.IsZero() {
			break
		}
		debtFilled, collateralPaid, err := market.SettleCall(order, maker.AmountForSale, maker.ExchangeRate)
		if err != nil {
			return err
		}
		if debtFilled.IsZero() {
			break
		}
		if err := c.Bal.Adjust(sess, maker.Owner, order.CollateralSymbol, balance.Liquid, objects.Pos(collateralPaid)); err != nil {
			return err
		}
		remainingMaker, err := maker.AmountForSale.Sub(debtFilled)
		if err != nil {
			return err
		}
		if remainingMaker.IsZero() {
			c.LimitOrders.Remove(sess, maker)
		} else {
			c.LimitOrders.Modify(sess, maker, func(m *objects.LimitOrder) { m.AmountForSale = remainingMaker })
		}
		newDebt, err := order.Debt.Sub(debtFilled)
		if err != nil {
			return err
		}
		newCollateral, err := order.Collateral.Sub(collateralPaid)
		if err != nil {
			return err
		}
		if newDebt.IsZero() {
			c.CallOrders.Remove(sess, order)
			return nil
		}
		c.CallOrders.Modify(sess, order, func(co *objects.CallOrder) {
			co.Debt = newDebt
			co.Collateral = newCollateral
		})
	}
	return nil
}

// accrueLoans applies interest (debt · rate · Δt / 365d) to every
// outstanding credit loan and liquidates any that has fallen below
// credit_liquidation_ratio, in LoanOrdered's deterministic order.
func (c *Chain) accrueLoans(sess *undo.Session, now int64) error {
	rateModel := c.rateModel()
	props := c.currentProperties()
	for _, loan := range c.LoanOrdered.All() {
		pool, ok := c.CreditByBase.Find(loan.DebtSymbol)
		if !ok {
			continue
		}
		elapsed := now - loan.LastAccrual
		if elapsed > 0 {
			utilization := credit.Utilization(bigFromAmount(pool.BaseBalance), bigFromAmount(pool.BorrowedBalance))
			annualRate := rateModel.AnnualRate(utilization)
			interest := credit.AccrueInterest(bigFromAmount(loan.DebtAmount), annualRate, elapsed)
			fee, _ := credit.NetworkFee(interest, props.InterestFeePercent)
			accrued := objects.NewAmount(interest.Uint64())
			c.CreditLoans.Modify(sess, loan, func(l *objects.CreditLoan) {
				l.AccruedInterest, _ = l.AccruedInterest.Add(accrued)
				l.LastAccrual = now
			})
			if debtAsset, ok := c.AssetsBySymbol.Find(loan.DebtSymbol); ok {
				feeAmount := objects.NewAmount(fee.Uint64())
				c.Assets.Modify(sess, debtAsset, func(a *objects.Asset) {
					a.Dynamic.AccumulatedFees, _ = a.Dynamic.AccumulatedFees.Add(feeAmount)
				})
			}
		}
		if err := c.checkLoanLiquidation(sess, loan, pool, props.CreditLiquidationRatioBps); err != nil {
			return err
		}
	}
	return nil
}

// checkLoanLiquidation force-sells a loan's pledged collateral through the
// AMM pool once its live collateralization drops below
// credit_liquidation_ratio, scheduling the collateral against the AMM to
// repay the debt. Any shortfall is absorbed as pool loss rather than
// tracked per-borrower, matching the margin-close simplification in
// market.SettleCloseProceeds; no repayment-priority mechanism is
// implemented for a per-borrower default balance.
func (c *Chain) checkLoanLiquidation(sess *undo.Session, loan *objects.CreditLoan, pool *objects.CreditPool, liquidationRatioBps uint32) error {
	if liquidationRatioBps == 0 {
		return nil
	}
	ammPool, inverted, err := c.marginPool(loan.CollateralSymbol, loan.DebtSymbol)
	if err != nil {
		return nil
	}
	price := collateralPerDebt(ammPool, inverted)
	owed, err := loan.DebtAmount.Add(loan.AccruedInterest)
	if err != nil {
		return err
	}
	ratio, err := market.CollateralizationBps(loan.CollateralAmount, owed, price)
	if err != nil {
		return err
	}
	c.CreditLoans.Modify(sess, loan, func(l *objects.CreditLoan) { l.LiquidationPrice = price })
	if ratio >= liquidationRatioBps {
		return nil
	}
	proceeds, err := c.poolExchange(sess, ammPool, loan.CollateralAmount, inverted)
	if err != nil {
		return nil // pool lacks liquidity to liquidate this tick; retry next pass
	}
	repaid := owed
	if proceeds.Cmp(owed) < 0 {
		repaid = proceeds
	}
	c.CreditPools.Modify(sess, pool, func(p *objects.CreditPool) {
		p.BorrowedBalance, _ = p.BorrowedBalance.Sub(loan.DebtAmount)
		p.BaseBalance, _ = p.BaseBalance.Add(repaid)
	})
	residual, _ := proceeds.Sub(repaid)
	if !residual.IsZero() {
		if err := c.Bal.Adjust(sess, loan.Owner, loan.CollateralSymbol, balance.Liquid, objects.Pos(residual)); err != nil {
			return err
		}
	}
	c.CreditLoans.Remove(sess, loan)
	return nil
}

// completeDelegations removes delegation records whose undelegation
// cooldown has elapsed; the delegated/receiving sub-balances were already
// returned immediately at cancellation, so this is pure record cleanup.
func (c *Chain) completeDelegations(sess *undo.Session, now int64) error {
	due := c.DelegationByEffective.Range(func(t int64) bool { return t > 0 && t <= now })
	for _, d := range due {
		c.Delegations.Remove(sess, d)
	}
	return nil
}

// completeSavingsWithdraws credits a matured from_savings request's
// destination account and removes the request.
func (c *Chain) completeSavingsWithdraws(sess *undo.Session, now int64) error {
	due := c.SavingsByComplete.Range(func(t int64) bool { return t > 0 && t <= now })
	for _, w := range due {
		if err := c.Bal.Adjust(sess, w.To, w.Symbol, balance.Liquid, objects.Pos(w.Amount)); err != nil {
			return err
		}
		c.SavingsWithdraws.Remove(sess, w)
	}
	return nil
}

// expireEscrows auto-refunds an escrow that reached its expiration without
// ever being disputed; a disputed escrow stays frozen past expiration
// pending the agent's explicit release.
func (c *Chain) expireEscrows(sess *undo.Session, now int64) error {
	due := c.EscrowByExpiration.Range(func(t int64) bool { return t > 0 && t <= now })
	for _, e := range due {
		if e.Disputed {
			continue
		}
		total, err := e.Amount.Add(e.Fee)
		if err != nil {
			return err
		}
		if err := c.Bal.Adjust(sess, e.From, e.Symbol, balance.Liquid, objects.Pos(total)); err != nil {
			return err
		}
		c.Escrows.Remove(sess, e)
	}
	return nil
}

// executeForcedSettlements redeems every queued bitasset settlement request
// at the feed price in effect when its delay elapses.
func (c *Chain) executeForcedSettlements(sess *undo.Session, now int64) error {
	due := c.ForcedSettlementByTime.Range(func(t int64) bool { return t > 0 && t <= now })
	for _, req := range due {
		asset, ok := c.AssetsBySymbol.Find(req.Symbol)
		if !ok || asset.Bitasset == nil || asset.Bitasset.CurrentFeed.Price.QuoteAmount == 0 {
			continue // no live feed to settle against yet; retry next pass
		}
		payout, err := feed.RedeemAtSettlement(req.Amount, feed.GlobalSettlement{SettlementPrice: asset.Bitasset.CurrentFeed.Price})
		if err != nil {
			return err
		}
		if err := c.Bal.Adjust(sess, req.Owner, asset.Bitasset.BackingAsset, balance.Liquid, objects.Pos(payout)); err != nil {
			return err
		}
		c.ForcedSettlements.Remove(sess, req)
	}
	return nil
}

// checkCollateralBidRevivals revives a globally-settled bitasset once its
// queued collateral bids collectively meet the maintenance collateral
// ratio, rebuilding a fresh call-order ladder from the winning bids.
// Distinct bitasset symbols never interact, so Each's unspecified iteration
// order does not affect the resulting state.
func (c *Chain) checkCollateralBidRevivals(sess *undo.Session) error {
	var reviveErr error
	c.Assets.Each(func(a *objects.Asset) {
		if reviveErr != nil || a.Bitasset == nil || !a.Bitasset.GloballySettled {
			return
		}
		bids := c.CollateralBidBySymbol.Range(func(s string) bool { return s == a.Symbol })
		if len(bids) == 0 {
			return
		}
		feedBids := make([]feed.CollateralBid, len(bids))
		for i, b := range bids {
			feedBids[i] = feed.CollateralBid{Bidder: b.Bidder, Collateral: b.Collateral, Debt: b.Debt}
		}
		met, err := feed.RevivalMet(feedBids, a.Bitasset.MaintenanceCollateral, a.Bitasset.SettlementPrice)
		if err != nil {
			reviveErr = err
			return
		}
		if !met {
			return
		}
		for _, b := range bids {
			c.CallOrders.Create(sess, func(co *objects.CallOrder) {
				co.Borrower = b.Bidder
				co.DebtSymbol = a.Symbol
				co.CollateralSymbol = a.Bitasset.BackingAsset
				co.Collateral = b.Collateral
				co.Debt = b.Debt
				co.TargetCollateralRatio = a.Bitasset.MaintenanceCollateral
			})
			c.CollateralBids.Remove(sess, b)
		}
		c.Assets.Modify(sess, a, func(asset *objects.Asset) {
			asset.Bitasset.GloballySettled = false
			asset.Bitasset.SettlementFund = objects.ZeroAmount()
		})
	})
	return reviveErr
}

// tallyPredictionResolutions tallies every prediction pool whose resolution
// window has closed, setting WinningOutcome and refunding every
// resolution-voter's staked bond out of BondPool.
func (c *Chain) tallyPredictionResolutions(sess *undo.Session, now int64) error {
	for _, pool := range c.PredictionOrdered.All() {
		if pool.Resolved || now < pool.ResolutionTime || len(pool.PendingVotes) == 0 {
			continue
		}
		votes := make([]prediction.ResolutionVote, len(pool.PendingVotes))
		for i, v := range pool.PendingVotes {
			votes[i] = prediction.ResolutionVote{Voter: v.Voter, Outcome: v.Outcome, Stake: v.Stake}
		}
		winner, err := prediction.TallyResolution(votes)
		if err != nil {
			return err
		}
		for _, v := range pool.PendingVotes {
			if err := c.Bal.Adjust(sess, v.Voter, pool.PredictionSymbol, balance.Liquid, objects.Pos(v.Stake)); err != nil {
				return err
			}
		}
		c.PredictionPools.Modify(sess, pool, func(p *objects.PredictionPool) {
			p.Resolved = true
			p.WinningOutcome = winner
			p.BondPool = objects.ZeroAmount()
			p.PendingVotes = nil
		})
	}
	return nil
}

// refreshProducerSchedule recomputes the top producer sets and the median
// ChainProperties from every registered producer's vote — the derived
// ChainProperties are recomputed once per schedule refresh, the last step
// of the fixed maintenance order. Producers are ranked by VoteStake
// for the witness set and by MiningPower for the miner set, each tie broken
// by account name for determinism.
func (c *Chain) refreshProducerSchedule(sess *undo.Session, now int64) {
	var producers []*objects.Producer
	c.Producers.Each(func(p *objects.Producer) { producers = append(producers, p) })
	if len(producers) == 0 {
		return
	}

	votes := make([]objects.ChainProperties, len(producers))
	for i, p := range producers {
		votes[i] = p.PropsVote
	}
	properties := producer.MedianProperties(votes)

	topWitnesses := topProducers(producers, func(p *objects.Producer) uint64 { return p.VoteStake.Uint64() })
	topMiners := topProducers(producers, func(p *objects.Producer) uint64 { return p.MiningPower.Uint64() })

	c.Schedules.Create(sess, func(s *objects.ProducerSchedule) {
		s.TopWitnesses = topWitnesses
		s.TopMiners = topMiners
		s.Properties = properties
		s.RefreshedAt = now
	})
}

// topProducers returns up to ActiveProducerCount account names, ranked by
// weight descending, ties broken by account name ascending so the result is
// a pure function of the producer set.
func topProducers(producers []*objects.Producer, weight func(*objects.Producer) uint64) []string {
	ranked := make([]*objects.Producer, len(producers))
	copy(ranked, producers)
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0; j-- {
			a, b := ranked[j-1], ranked[j]
			if weight(a) > weight(b) || (weight(a) == weight(b) && a.Account <= b.Account) {
				break
			}
			ranked[j-1], ranked[j] = ranked[j], ranked[j-1]
		}
	}
	n := ActiveProducerCount
	if n > len(ranked) {
		n = len(ranked)
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = ranked[i].Account
	}
	return names
}
