package kernel

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/amm"
	"github.com/weyoume/wenode-sub002/balance"
	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/market"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/prediction"
	"github.com/weyoume/wenode-sub002/undo"
)

func (c *Chain) opposingMakers(sell, receive string) []*objects.LimitOrder {
	return c.LimitBook.Range(func(k market.BookKey) bool { return k.Sell == receive && k.Receive == sell })
}

func (c *Chain) evalLimitOrderCreate(sess *undo.Session, o ops.LimitOrderCreate) error {
	if err := c.requireAccount(o.Owner); err != nil {
		return err
	}
	if _, exists := c.LimitByOwnerID.Find(OwnerID{o.Owner, o.OrderID}); exists {
		return fmt.Errorf("%w: limit order %s/%d already exists", kernelerr.ErrInvariant, o.Owner, o.OrderID)
	}
	if o.Expiration != 0 && o.Expiration <= c.Now {
		return fmt.Errorf("%w: limit order already expired", kernelerr.ErrExpired)
	}
	// The full sell amount is escrowed out of liquid up front; fills draw on
	// the escrow and any unfilled remainder becomes (or stays) the resting
	// order's balance.
	if err := c.Bal.Adjust(sess, o.Owner, o.SellSymbol, balance.Liquid, objects.Neg(o.AmountForSale)); err != nil {
		return err
	}

	opposing := c.opposingMakers(o.SellSymbol, o.ReceiveSymbol)
	makers := make([]*market.Maker, len(opposing))
	for i, m := range opposing {
		makers[i] = &market.Maker{Owner: m.Owner, OrderID: m.OrderID, Remaining: m.AmountForSale, Rate: m.ExchangeRate}
	}

	result, err := market.Match(o.Owner, o.OrderID, o.ExchangeRate, o.AmountForSale, makers, o.FillOrKill)
	if err != nil {
		return err
	}

	for i, fill := range result.Fills {
		makerOrder := opposing[i]
		update := result.MakerUpdates[i]
		if err := c.Bal.Adjust(sess, o.Owner, o.ReceiveSymbol, balance.Liquid, objects.Pos(fill.ReceiveAmount)); err != nil {
			return err
		}
		if err := c.Bal.Adjust(sess, makerOrder.Owner, o.SellSymbol, balance.Liquid, objects.Pos(update.Received)); err != nil {
			return err
		}
		if update.Filled {
			c.LimitOrders.Remove(sess, makerOrder)
		} else {
			c.LimitOrders.Modify(sess, makerOrder, func(m *objects.LimitOrder) { m.AmountForSale = update.NewRemaining })
		}
	}

	if !result.TakerRemaining.IsZero() {
		seq := c.NextLimitOrderSeq()
		c.LimitOrders.Create(sess, func(rec *objects.LimitOrder) {
			rec.Owner = o.Owner
			rec.OrderID = o.OrderID
			rec.SellSymbol = o.SellSymbol
			rec.ReceiveSymbol = o.ReceiveSymbol
			rec.AmountForSale = result.TakerRemaining
			rec.ExchangeRate = o.ExchangeRate
			rec.Expiration = o.Expiration
			rec.Interface = o.Interface
			rec.FillOrKill = o.FillOrKill
			rec.Seq = seq
		})
	}
	return nil
}

func (c *Chain) evalLimitOrderCancel(sess *undo.Session, o ops.LimitOrderCancel) error {
	rec, ok := c.LimitByOwnerID.Find(OwnerID{o.Owner, o.OrderID})
	if !ok {
		return fmt.Errorf("%w: limit order %s/%d", kernelerr.ErrNotFound, o.Owner, o.OrderID)
	}
	if err := c.Bal.Adjust(sess, o.Owner, rec.SellSymbol, balance.Liquid, objects.Pos(rec.AmountForSale)); err != nil {
		return err
	}
	c.LimitOrders.Remove(sess, rec)
	return nil
}

// marginPool finds the AMM pool pricing collateral against debt for margin
// collateralization checks, regardless of which side is lexicographically
// first in the pool's own (SymbolA, SymbolB) ordering.
func (c *Chain) marginPool(collateralSymbol, debtSymbol string) (*objects.LiquidityPool, bool, error) {
	if p, ok := c.PoolByPair.Find(Pair{collateralSymbol, debtSymbol}); ok {
		return p, false, nil
	}
	if p, ok := c.PoolByPair.Find(Pair{debtSymbol, collateralSymbol}); ok {
		return p, true, nil
	}
	return nil, false, fmt.Errorf("%w: no liquidity pool for %s/%s", kernelerr.ErrNotFound, collateralSymbol, debtSymbol)
}

// collateralPerDebt returns the pool's hour-median price expressed
// collateral-per-debt, inverting it when the pool's own side ordering is the
// other way around.
func collateralPerDebt(pool *objects.LiquidityPool, inverted bool) objects.Price {
	p := amm.HourMedian(pool)
	if inverted {
		return objects.Price{BaseAmount: p.QuoteAmount, QuoteAmount: p.BaseAmount}
	}
	return p
}

// evalMarginOrderOpen pledges collateral and borrows debt from the asset's
// credit pool to open a leveraged position. The borrowed debt is credited
// directly to the owner's liquid balance: this kernel does not auto-route
// it through a limit or AMM order, leaving further leverage actions to a
// follow-up operation.
func (c *Chain) evalMarginOrderOpen(sess *undo.Session, o ops.MarginOrderOpen) error {
	if err := c.requireAccount(o.Owner); err != nil {
		return err
	}
	if _, exists := c.MarginByOwnerID.Find(OwnerID{o.Owner, o.OrderID}); exists {
		return fmt.Errorf("%w: margin order %s/%d already exists", kernelerr.ErrInvariant, o.Owner, o.OrderID)
	}
	pool, inverted, err := c.marginPool(o.CollateralSymbol, o.DebtSymbol)
	if err != nil {
		return err
	}
	price := collateralPerDebt(pool, inverted)
	if err := market.CheckOpenRatio(o.Collateral, o.Debt, price, c.currentProperties().MarginOpenRatioBps); err != nil {
		return err
	}

	creditPool, ok := c.CreditByBase.Find(o.DebtSymbol)
	if !ok {
		return fmt.Errorf("%w: no credit pool for %s", kernelerr.ErrNotFound, o.DebtSymbol)
	}
	if o.Debt.Cmp(creditPool.BaseBalance) > 0 {
		return fmt.Errorf("%w: credit pool lacks liquidity to lend %s", kernelerr.ErrPrecondition, o.DebtSymbol)
	}
	if err := c.Bal.Adjust(sess, o.Owner, o.CollateralSymbol, balance.Liquid, objects.Neg(o.Collateral)); err != nil {
		return err
	}
	c.CreditPools.Modify(sess, creditPool, func(p *objects.CreditPool) {
		p.BaseBalance, _ = p.BaseBalance.Sub(o.Debt)
		p.BorrowedBalance, _ = p.BorrowedBalance.Add(o.Debt)
	})
	if err := c.Bal.Adjust(sess, o.Owner, o.DebtSymbol, balance.Liquid, objects.Pos(o.Debt)); err != nil {
		return err
	}

	ratio, err := market.CollateralizationBps(o.Collateral, o.Debt, price)
	if err != nil {
		return err
	}
	c.MarginOrders.Create(sess, func(rec *objects.MarginOrder) {
		rec.Owner = o.Owner
		rec.OrderID = o.OrderID
		rec.DebtSymbol = o.DebtSymbol
		rec.CollateralSymbol = o.CollateralSymbol
		rec.Debt = o.Debt
		rec.DebtBalance = o.Debt
		rec.Collateral = o.Collateral
		rec.Collateralization = ratio
		rec.StopLoss = o.StopLoss
		rec.TakeProfit = o.TakeProfit
	})
	return nil
}

// poolExchange sells amountIn of a margin/credit-liquidation position's
// collateral side through pool for its debt side, using the same
// swapped-working-copy trick evalLiquidityPoolExchange uses whenever the
// pool's own (SymbolA, SymbolB) ordering runs opposite to the caller's
// collateral-to-debt direction, and committing the result back through
// Table.Modify so the trade is captured by the undo journal like every
// other kernel mutation: forced liquidation runs through the AMM pool at
// the current price.
func (c *Chain) poolExchange(sess *undo.Session, pool *objects.LiquidityPool, amountIn objects.Amount, inverted bool) (objects.Amount, error) {
	work := *pool
	if inverted {
		work.BalanceA, work.BalanceB = pool.BalanceB, pool.BalanceA
	}
	output, _, err := amm.Exchange(&work, amountIn)
	if err != nil {
		return objects.Amount{}, err
	}
	if inverted {
		work.BalanceA, work.BalanceB = work.BalanceB, work.BalanceA
	}
	amm.RecordSpotPrice(&work)
	c.LiquidityPools.Modify(sess, pool, func(p *objects.LiquidityPool) {
		p.BalanceA = work.BalanceA
		p.BalanceB = work.BalanceB
		p.PriceRing = work.PriceRing
		p.PriceRingNext = work.PriceRingNext
		p.PriceRingCount = work.PriceRingCount
	})
	return output, nil
}

// evalMarginOrderClose liquidates the pledged collateral through the AMM
// pool at the current price, repays the credit pool, and returns any
// residual to the owner.
func (c *Chain) evalMarginOrderClose(sess *undo.Session, o ops.MarginOrderClose) error {
	rec, ok := c.MarginByOwnerID.Find(OwnerID{o.Owner, o.OrderID})
	if !ok {
		return fmt.Errorf("%w: margin order %s/%d", kernelerr.ErrNotFound, o.Owner, o.OrderID)
	}
	pool, inverted, err := c.marginPool(rec.CollateralSymbol, rec.DebtSymbol)
	if err != nil {
		return err
	}
	creditPool, ok := c.CreditByBase.Find(rec.DebtSymbol)
	if !ok {
		return fmt.Errorf("%w: no credit pool for %s", kernelerr.ErrNotFound, rec.DebtSymbol)
	}

	closeIn := market.CloseThroughPool(rec)
	proceeds, err := c.poolExchange(sess, pool, closeIn, inverted)
	if err != nil {
		return err
	}
	residual, shortfall := market.SettleCloseProceeds(proceeds, rec.DebtBalance)

	repaid := rec.DebtBalance
	if shortfall.Cmp(objects.ZeroAmount()) > 0 {
		repaid, _ = repaid.Sub(shortfall)
	}
	c.CreditPools.Modify(sess, creditPool, func(p *objects.CreditPool) {
		p.BorrowedBalance, _ = p.BorrowedBalance.Sub(rec.DebtBalance)
		p.BaseBalance, _ = p.BaseBalance.Add(repaid)
	})
	if !residual.IsZero() {
		if err := c.Bal.Adjust(sess, o.Owner, rec.DebtSymbol, balance.Liquid, objects.Pos(residual)); err != nil {
			return err
		}
	}
	c.MarginOrders.Remove(sess, rec)
	return nil
}

// evalCallOrderUpdate opens, adjusts, or closes a bitasset debt position:
// collateral and debt move by signed deltas, settling through the
// borrower's liquid balances.
func (c *Chain) evalCallOrderUpdate(sess *undo.Session, o ops.CallOrderUpdate) error {
	if err := c.requireAccount(o.Borrower); err != nil {
		return err
	}
	asset, ok := c.AssetsBySymbol.Find(o.DebtSymbol)
	if !ok || asset.Bitasset == nil {
		return fmt.Errorf("%w: %s is not a bitasset", kernelerr.ErrInvariant, o.DebtSymbol)
	}

	applyCollateral := func() error {
		if o.DeltaCollateral.Negative {
			return c.Bal.Adjust(sess, o.Borrower, o.CollateralSymbol, balance.Liquid, objects.Pos(o.DeltaCollateral.Magnitude))
		}
		return c.Bal.Adjust(sess, o.Borrower, o.CollateralSymbol, balance.Liquid, objects.Neg(o.DeltaCollateral.Magnitude))
	}
	applyDebt := func() error {
		if o.DeltaDebt.Negative {
			return c.Bal.Adjust(sess, o.Borrower, o.DebtSymbol, balance.Liquid, objects.Neg(o.DeltaDebt.Magnitude))
		}
		return c.Bal.Adjust(sess, o.Borrower, o.DebtSymbol, balance.Liquid, objects.Pos(o.DeltaDebt.Magnitude))
	}
	if err := applyCollateral(); err != nil {
		return err
	}
	if err := applyDebt(); err != nil {
		return err
	}

	rec, ok := c.CallByBorrowerDebt.Find(TripleKey{o.Borrower, o.DebtSymbol, ""})
	if !ok {
		newCollateral := o.DeltaCollateral.Magnitude
		if o.DeltaCollateral.Negative {
			return fmt.Errorf("%w: no existing call order to reduce", kernelerr.ErrNotFound)
		}
		newDebt := o.DeltaDebt.Magnitude
		if o.DeltaDebt.Negative {
			return fmt.Errorf("%w: no existing call order to reduce", kernelerr.ErrNotFound)
		}
		c.CallOrders.Create(sess, func(co *objects.CallOrder) {
			co.Borrower = o.Borrower
			co.DebtSymbol = o.DebtSymbol
			co.CollateralSymbol = o.CollateralSymbol
			co.Collateral = newCollateral
			co.Debt = newDebt
			co.TargetCollateralRatio = o.TargetCollateralRatio
		})
		return nil
	}

	newCollateral := rec.Collateral
	var err error
	if o.DeltaCollateral.Negative {
		newCollateral, err = newCollateral.Sub(o.DeltaCollateral.Magnitude)
	} else {
		newCollateral, err = newCollateral.Add(o.DeltaCollateral.Magnitude)
	}
	if err != nil {
		return err
	}
	newDebt := rec.Debt
	if o.DeltaDebt.Negative {
		newDebt, err = newDebt.Sub(o.DeltaDebt.Magnitude)
	} else {
		newDebt, err = newDebt.Add(o.DeltaDebt.Magnitude)
	}
	if err != nil {
		return err
	}

	if newDebt.IsZero() {
		if !newCollateral.IsZero() {
			if err := c.Bal.Adjust(sess, o.Borrower, o.CollateralSymbol, balance.Liquid, objects.Pos(newCollateral)); err != nil {
				return err
			}
		}
		c.CallOrders.Remove(sess, rec)
		return nil
	}
	c.CallOrders.Modify(sess, rec, func(co *objects.CallOrder) {
		co.Collateral = newCollateral
		co.Debt = newDebt
		if o.TargetCollateralRatio != 0 {
			co.TargetCollateralRatio = o.TargetCollateralRatio
		}
	})
	return nil
}

func (c *Chain) evalAuctionOrderCreate(sess *undo.Session, o ops.AuctionOrderCreate) error {
	if err := c.requireAccount(o.Owner); err != nil {
		return err
	}
	if o.Expiration != 0 && o.Expiration <= c.Now {
		return fmt.Errorf("%w: auction order already expired", kernelerr.ErrExpired)
	}
	if err := c.Bal.Adjust(sess, o.Owner, o.SellSymbol, balance.Liquid, objects.Neg(o.Amount)); err != nil {
		return err
	}
	c.AuctionOrders.Create(sess, func(rec *objects.AuctionOrder) {
		rec.Owner = o.Owner
		rec.SellSymbol = o.SellSymbol
		rec.ReceiveSymbol = o.ReceiveSymbol
		rec.Amount = o.Amount
		rec.LimitClosePrice = o.LimitClosePrice
		rec.Expiration = o.Expiration
	})
	return nil
}

func (c *Chain) evalOptionOrderCreate(sess *undo.Session, o ops.OptionOrderCreate) error {
	if err := c.requireAccount(o.Owner); err != nil {
		return err
	}
	optionPool, ok := c.findOptionPoolBySymbol(o.OptionPoolSymbol)
	if !ok {
		return fmt.Errorf("%w: option pool %s", kernelerr.ErrNotFound, o.OptionPoolSymbol)
	}
	symbol, ok := optionPool.OptionAssets[objects.OptionKey{Expiry: o.Expiry, Strike: o.Strike}]
	if !ok {
		return fmt.Errorf("%w: no option rung for expiry %d strike %v", kernelerr.ErrNotFound, o.Expiry, o.Strike)
	}
	if err := c.Bal.Adjust(sess, o.Owner, o.CollateralAsset, balance.Liquid, objects.Neg(o.Collateral)); err != nil {
		return err
	}
	issued := prediction.IssueOption(o.Collateral)
	if err := c.Bal.Adjust(sess, o.Owner, symbol, balance.Liquid, objects.Pos(issued)); err != nil {
		return err
	}
	c.OptionOrders.Create(sess, func(rec *objects.OptionOrder) {
		rec.Owner = o.Owner
		rec.OptionPoolSymbol = o.OptionPoolSymbol
		rec.Strike = o.Strike
		rec.Expiry = o.Expiry
		rec.CollateralAsset = o.CollateralAsset
		rec.Collateral = o.Collateral
		rec.OptionAsset = symbol
		rec.Issued = issued
	})
	return nil
}

func (c *Chain) findOptionPoolBySymbol(poolSymbol string) (*objects.OptionPool, bool) {
	var found *objects.OptionPool
	c.OptionPools.Each(func(p *objects.OptionPool) {
		if p.BaseSymbol+"/"+p.QuoteSymbol == poolSymbol {
			found = p
		}
	})
	return found, found != nil
}

// evalOptionExercise redeems amount of an in-the-money option order using
// the backing pair's AMM hour-median as the settlement price.
func (c *Chain) evalOptionExercise(sess *undo.Session, o ops.OptionExercise) error {
	rec, ok := c.OptionByOwnerID.Find(OwnerID{o.Owner, o.OrderID})
	if !ok {
		return fmt.Errorf("%w: option order %s/%d", kernelerr.ErrNotFound, o.Owner, o.OrderID)
	}
	if o.Amount.Cmp(rec.Issued) > 0 {
		return fmt.Errorf("%w: exercise amount exceeds issued option balance", kernelerr.ErrPrecondition)
	}
	optionPool, ok := c.findOptionPoolBySymbol(rec.OptionPoolSymbol)
	if !ok {
		return fmt.Errorf("%w: option pool %s", kernelerr.ErrNotFound, rec.OptionPoolSymbol)
	}
	pool, ok := c.PoolByPair.Find(Pair{optionPool.BaseSymbol, optionPool.QuoteSymbol})
	if !ok {
		return fmt.Errorf("%w: no AMM pool backing option pool %s", kernelerr.ErrNotFound, rec.OptionPoolSymbol)
	}
	settlePrice := amm.HourMedian(pool)
	payout, err := prediction.ExerciseOption(o.Amount, rec.Strike, settlePrice)
	if err != nil {
		return err
	}
	if err := c.Bal.Adjust(sess, o.Owner, rec.OptionAsset, balance.Liquid, objects.Neg(o.Amount)); err != nil {
		return err
	}
	if err := c.Bal.Adjust(sess, o.Owner, rec.CollateralAsset, balance.Liquid, objects.Pos(payout)); err != nil {
		return err
	}
	remaining, err := rec.Issued.Sub(o.Amount)
	if err != nil {
		return err
	}
	if remaining.IsZero() {
		c.OptionOrders.Remove(sess, rec)
		return nil
	}
	c.OptionOrders.Modify(sess, rec, func(m *objects.OptionOrder) { m.Issued = remaining })
	return nil
}
