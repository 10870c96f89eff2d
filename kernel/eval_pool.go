package kernel

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/amm"
	"github.com/weyoume/wenode-sub002/balance"
	"github.com/weyoume/wenode-sub002/credit"
	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/prediction"
	"github.com/weyoume/wenode-sub002/undo"
)

// registerDerivedAsset creates the backing Asset record a pool-issued
// symbol (option or prediction-outcome) needs before balance.Tables.Adjust
// will touch it; a no-op if the symbol is already registered, since option
// and prediction pools may share strike/expiry rungs across repeated calls.
func (c *Chain) registerDerivedAsset(sess *undo.Session, symbol, issuer string, kind objects.AssetKind) {
	if _, exists := c.AssetsBySymbol.Find(symbol); exists {
		return
	}
	c.Assets.Create(sess, func(a *objects.Asset) {
		a.Symbol = symbol
		a.Kind = kind
		a.Issuer = issuer
	})
}

func orderedPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

func (c *Chain) evalLiquidityPoolCreate(sess *undo.Session, o ops.LiquidityPoolCreate) error {
	if err := c.requireAccount(o.Creator); err != nil {
		return err
	}
	symA, symB := orderedPair(o.SymbolA, o.SymbolB)
	if _, exists := c.PoolByPair.Find(Pair{symA, symB}); exists {
		return fmt.Errorf("%w: liquidity pool %s/%s already exists", kernelerr.ErrInvariant, symA, symB)
	}
	if _, exists := c.PoolByLPSymbol.Find(o.LPSymbol); exists {
		return fmt.Errorf("%w: LP symbol %s already in use", kernelerr.ErrInvariant, o.LPSymbol)
	}
	amountA, amountB := o.AmountA, o.AmountB
	if symA != o.SymbolA {
		amountA, amountB = o.AmountB, o.AmountA
	}
	if err := c.Bal.Adjust(sess, o.Creator, symA, balance.Liquid, objects.Neg(amountA)); err != nil {
		return err
	}
	if err := c.Bal.Adjust(sess, o.Creator, symB, balance.Liquid, objects.Neg(amountB)); err != nil {
		return err
	}
	pool := c.LiquidityPools.Create(sess, func(p *objects.LiquidityPool) {
		p.SymbolA = symA
		p.SymbolB = symB
		p.BalanceA = amountA
		p.BalanceB = amountB
		p.LPSymbol = o.LPSymbol
	})
	lpShares, err := amm.LPSupplyForDeposit(pool, amountA)
	if err != nil {
		return err
	}
	c.LiquidityPools.Modify(sess, pool, func(p *objects.LiquidityPool) { p.LPSupply = lpShares })
	return c.Bal.Adjust(sess, o.Creator, o.LPSymbol, balance.Liquid, objects.Pos(lpShares))
}

func (c *Chain) findPool(symA, symB string) (*objects.LiquidityPool, bool, error) {
	a, b := orderedPair(symA, symB)
	pool, ok := c.PoolByPair.Find(Pair{a, b})
	if !ok {
		return nil, false, fmt.Errorf("%w: liquidity pool %s/%s", kernelerr.ErrNotFound, symA, symB)
	}
	return pool, a != symA, nil // inverted reports whether caller's A/B is swapped from pool's own ordering
}

// evalLiquidityPoolExchange sells o.SymbolA for o.SymbolB through the pool:
// all of o.AmountIn in a plain exchange, up to o.AmountIn under a limit
// price, and whatever input buys exactly o.AmountIn of o.SymbolB in acquire
// mode. amm.Exchange/ExchangeAcquire/ExchangeLimit always treat
// the pool's own BalanceA as the input side, so when the pool's stored
// (SymbolA,SymbolB) ordering runs opposite to the caller's, the exchange
// runs against a view with BalanceA/BalanceB swapped and the result is
// copied back un-swapped: trades are symmetric in either direction across
// the same pool.
func (c *Chain) evalLiquidityPoolExchange(sess *undo.Session, o ops.LiquidityPoolExchange) error {
	if err := c.requireAccount(o.Account); err != nil {
		return err
	}
	pool, inverted, err := c.findPool(o.SymbolA, o.SymbolB)
	if err != nil {
		return err
	}

	work := *pool
	if inverted {
		work.BalanceA, work.BalanceB = pool.BalanceB, pool.BalanceA
	}
	limit := o.LimitPrice
	if inverted && limit.QuoteAmount != 0 {
		limit = objects.Price{BaseAmount: o.LimitPrice.QuoteAmount, QuoteAmount: o.LimitPrice.BaseAmount}
	}

	startA := work.BalanceA
	var output, fee objects.Amount
	switch {
	case limit.QuoteAmount != 0:
		output, fee, err = amm.ExchangeLimit(&work, o.AmountIn, limit)
	case o.Acquire:
		_, fee, err = amm.ExchangeAcquire(&work, o.AmountIn)
		output = o.AmountIn
	default:
		output, fee, err = amm.Exchange(&work, o.AmountIn)
	}
	if err != nil {
		return err
	}
	// The account pays what entered the pool plus the fee; the fee goes to
	// the input asset's accumulated fees.
	input, _ := work.BalanceA.Sub(startA)
	input, _ = input.Add(fee)
	if err := c.Bal.Adjust(sess, o.Account, o.SymbolA, balance.Liquid, objects.Neg(input)); err != nil {
		return err
	}
	if inAsset, ok := c.AssetsBySymbol.Find(o.SymbolA); ok {
		c.Assets.Modify(sess, inAsset, func(a *objects.Asset) { a.Dynamic.AccumulatedFees, _ = a.Dynamic.AccumulatedFees.Add(fee) })
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
	return c.Bal.Adjust(sess, o.Account, o.SymbolB, balance.Liquid, objects.Pos(output))
}

func (c *Chain) evalLiquidityPoolFund(sess *undo.Session, o ops.LiquidityPoolFund) error {
	if err := c.requireAccount(o.Account); err != nil {
		return err
	}
	pool, inverted, err := c.findPool(o.SymbolA, o.SymbolB)
	if err != nil {
		return err
	}
	amountA, amountB := o.AmountA, o.AmountB
	if inverted {
		amountA, amountB = o.AmountB, o.AmountA
	}
	if err := c.Bal.Adjust(sess, o.Account, pool.SymbolA, balance.Liquid, objects.Neg(amountA)); err != nil {
		return err
	}
	if err := c.Bal.Adjust(sess, o.Account, pool.SymbolB, balance.Liquid, objects.Neg(amountB)); err != nil {
		return err
	}
	lpShares, err := amm.LPSupplyForDeposit(pool, amountA)
	if err != nil {
		return err
	}
	c.LiquidityPools.Modify(sess, pool, func(p *objects.LiquidityPool) {
		p.BalanceA, _ = p.BalanceA.Add(amountA)
		p.BalanceB, _ = p.BalanceB.Add(amountB)
		p.LPSupply, _ = p.LPSupply.Add(lpShares)
	})
	return c.Bal.Adjust(sess, o.Account, pool.LPSymbol, balance.Liquid, objects.Pos(lpShares))
}

func (c *Chain) evalLiquidityPoolWithdraw(sess *undo.Session, o ops.LiquidityPoolWithdraw) error {
	pool, ok := c.PoolByLPSymbol.Find(o.LPSymbol)
	if !ok {
		return fmt.Errorf("%w: LP symbol %s", kernelerr.ErrNotFound, o.LPSymbol)
	}
	if o.Amount.Cmp(pool.LPSupply) > 0 {
		return fmt.Errorf("%w: withdraw amount exceeds LP supply", kernelerr.ErrPrecondition)
	}
	if err := c.Bal.Adjust(sess, o.Account, o.LPSymbol, balance.Liquid, objects.Neg(o.Amount)); err != nil {
		return err
	}
	outA, err := pool.BalanceA.MulDiv(o.Amount.Uint64(), pool.LPSupply.Uint64())
	if err != nil {
		return err
	}
	outB, err := pool.BalanceB.MulDiv(o.Amount.Uint64(), pool.LPSupply.Uint64())
	if err != nil {
		return err
	}
	c.LiquidityPools.Modify(sess, pool, func(p *objects.LiquidityPool) {
		p.BalanceA, _ = p.BalanceA.Sub(outA)
		p.BalanceB, _ = p.BalanceB.Sub(outB)
		p.LPSupply, _ = p.LPSupply.Sub(o.Amount)
	})
	if err := c.Bal.Adjust(sess, o.Account, pool.SymbolA, balance.Liquid, objects.Pos(outA)); err != nil {
		return err
	}
	return c.Bal.Adjust(sess, o.Account, pool.SymbolB, balance.Liquid, objects.Pos(outB))
}

func (c *Chain) rateModel() credit.RateModel {
	props := c.currentProperties()
	return credit.RateModel{MinRateBps: props.CreditMinInterest, VariableRateBps: props.CreditVariableInterest}
}

func (c *Chain) evalCreditPoolCollateral(sess *undo.Session, o ops.CreditPoolCollateral) error {
	if err := c.requireAccount(o.Account); err != nil {
		return err
	}
	if err := c.Bal.Adjust(sess, o.Account, o.Symbol, balance.Liquid, objects.Neg(o.Amount)); err != nil {
		return err
	}
	rec, has := c.CollateralByOwnerSymbol.Find(TripleKey{o.Account, o.Symbol, ""})
	if has {
		c.CreditCollaterals.Modify(sess, rec, func(cc *objects.CreditCollateral) {
			cc.Amount, _ = cc.Amount.Add(o.Amount)
		})
		return nil
	}
	c.CreditCollaterals.Create(sess, func(cc *objects.CreditCollateral) {
		cc.Owner = o.Account
		cc.Symbol = o.Symbol
		cc.Amount = o.Amount
	})
	return nil
}

func (c *Chain) evalCreditPoolBorrow(sess *undo.Session, o ops.CreditPoolBorrow) error {
	if err := c.requireAccount(o.Account); err != nil {
		return err
	}
	if _, exists := c.LoanByOwnerID.Find(OwnerID{o.Account, o.LoanID}); exists {
		return fmt.Errorf("%w: loan %s/%d already exists", kernelerr.ErrInvariant, o.Account, o.LoanID)
	}
	pool, ok := c.CreditByBase.Find(o.DebtSymbol)
	if !ok {
		return fmt.Errorf("%w: no credit pool for %s", kernelerr.ErrNotFound, o.DebtSymbol)
	}
	if o.DebtAmount.Cmp(pool.BaseBalance) > 0 {
		return fmt.Errorf("%w: credit pool lacks liquidity to lend %s", kernelerr.ErrPrecondition, o.DebtSymbol)
	}
	collateralRec, has := c.CollateralByOwnerSymbol.Find(TripleKey{o.Account, o.CollateralSymbol, ""})
	if !has || o.CollateralAmount.Cmp(collateralRec.Amount) > 0 {
		return fmt.Errorf("%w: insufficient pledged collateral in %s", kernelerr.ErrPrecondition, o.CollateralSymbol)
	}
	c.CreditCollaterals.Modify(sess, collateralRec, func(cc *objects.CreditCollateral) {
		cc.Amount, _ = cc.Amount.Sub(o.CollateralAmount)
	})
	c.CreditPools.Modify(sess, pool, func(p *objects.CreditPool) {
		p.BaseBalance, _ = p.BaseBalance.Sub(o.DebtAmount)
		p.BorrowedBalance, _ = p.BorrowedBalance.Add(o.DebtAmount)
	})
	if err := c.Bal.Adjust(sess, o.Account, o.DebtSymbol, balance.Liquid, objects.Pos(o.DebtAmount)); err != nil {
		return err
	}
	c.CreditLoans.Create(sess, func(l *objects.CreditLoan) {
		l.Owner = o.Account
		l.LoanID = o.LoanID
		l.DebtSymbol = o.DebtSymbol
		l.DebtAmount = o.DebtAmount
		l.CollateralSymbol = o.CollateralSymbol
		l.CollateralAmount = o.CollateralAmount
		l.OpenedAt = c.Now
		l.LastAccrual = c.Now
		l.FlashLoan = o.FlashLoan
	})
	return nil
}

func (c *Chain) evalCreditPoolLend(sess *undo.Session, o ops.CreditPoolLend) error {
	if err := c.requireAccount(o.Account); err != nil {
		return err
	}
	pool, ok := c.CreditByBase.Find(o.Symbol)
	if !ok {
		return fmt.Errorf("%w: no credit pool for %s", kernelerr.ErrNotFound, o.Symbol)
	}
	if err := c.Bal.Adjust(sess, o.Account, o.Symbol, balance.Liquid, objects.Neg(o.Amount)); err != nil {
		return err
	}
	var shares objects.Amount
	if pool.SatelliteSupply.IsZero() {
		shares = o.Amount
	} else {
		var err error
		total, _ := pool.BaseBalance.Add(pool.BorrowedBalance)
		shares, err = pool.SatelliteSupply.MulDiv(o.Amount.Uint64(), total.Uint64())
		if err != nil {
			return err
		}
	}
	c.CreditPools.Modify(sess, pool, func(p *objects.CreditPool) {
		p.BaseBalance, _ = p.BaseBalance.Add(o.Amount)
		p.SatelliteSupply, _ = p.SatelliteSupply.Add(shares)
	})
	return c.Bal.Adjust(sess, o.Account, pool.SatelliteSymbol, balance.Liquid, objects.Pos(shares))
}

func (c *Chain) evalCreditPoolWithdraw(sess *undo.Session, o ops.CreditPoolWithdraw) error {
	pool, ok := c.CreditByBase.Find(o.Symbol)
	if !ok {
		return fmt.Errorf("%w: no credit pool for %s", kernelerr.ErrNotFound, o.Symbol)
	}
	if o.LoanID != 0 {
		loan, ok := c.LoanByOwnerID.Find(OwnerID{o.Account, o.LoanID})
		if !ok {
			return fmt.Errorf("%w: loan %s/%d", kernelerr.ErrNotFound, o.Account, o.LoanID)
		}
		owed, err := loan.DebtAmount.Add(loan.AccruedInterest)
		if err != nil {
			return err
		}
		if o.Amount.Cmp(owed) < 0 {
			return fmt.Errorf("%w: repayment must cover principal plus accrued interest", kernelerr.ErrPrecondition)
		}
		if err := c.Bal.Adjust(sess, o.Account, loan.DebtSymbol, balance.Liquid, objects.Neg(owed)); err != nil {
			return err
		}
		c.CreditPools.Modify(sess, pool, func(p *objects.CreditPool) {
			p.BaseBalance, _ = p.BaseBalance.Add(owed)
			p.BorrowedBalance, _ = p.BorrowedBalance.Sub(loan.DebtAmount)
		})
		if err := c.Bal.Adjust(sess, o.Account, loan.CollateralSymbol, balance.Liquid, objects.Pos(loan.CollateralAmount)); err != nil {
			return err
		}
		c.CreditLoans.Remove(sess, loan)
		return nil
	}
	if o.Amount.Cmp(pool.SatelliteSupply) > 0 {
		return fmt.Errorf("%w: withdraw amount exceeds satellite supply", kernelerr.ErrPrecondition)
	}
	if err := c.Bal.Adjust(sess, o.Account, pool.SatelliteSymbol, balance.Liquid, objects.Neg(o.Amount)); err != nil {
		return err
	}
	total, _ := pool.BaseBalance.Add(pool.BorrowedBalance)
	out, err := total.MulDiv(o.Amount.Uint64(), pool.SatelliteSupply.Uint64())
	if err != nil {
		return err
	}
	if out.Cmp(pool.BaseBalance) > 0 {
		return fmt.Errorf("%w: withdraw exceeds pool's unborrowed liquidity", kernelerr.ErrPrecondition)
	}
	c.CreditPools.Modify(sess, pool, func(p *objects.CreditPool) {
		p.BaseBalance, _ = p.BaseBalance.Sub(out)
		p.SatelliteSupply, _ = p.SatelliteSupply.Sub(o.Amount)
	})
	return c.Bal.Adjust(sess, o.Account, o.Symbol, balance.Liquid, objects.Pos(out))
}

func (c *Chain) evalOptionPoolCreate(sess *undo.Session, o ops.OptionPoolCreate) error {
	if err := c.requireAccount(o.Creator); err != nil {
		return err
	}
	poolSymbol := o.BaseSymbol + "/" + o.QuoteSymbol
	if _, exists := c.findOptionPoolBySymbol(poolSymbol); exists {
		return fmt.Errorf("%w: option pool %s already exists", kernelerr.ErrInvariant, poolSymbol)
	}
	ammPool, inverted, err := c.findPool(o.BaseSymbol, o.QuoteSymbol)
	if err != nil {
		return err
	}
	dayMedian := amm.DayMedian(ammPool)
	if inverted {
		dayMedian = objects.Price{BaseAmount: dayMedian.QuoteAmount, QuoteAmount: dayMedian.BaseAmount}
	}
	strikes := prediction.BuildStrikeLadder(dayMedian)
	expirations := prediction.BuildExpirationLadder(c.Now)

	assets := make(map[objects.OptionKey]string, len(strikes)*len(expirations))
	for _, exp := range expirations {
		for _, strike := range strikes {
			symbol := prediction.OptionAssetSymbol(o.BaseSymbol, o.QuoteSymbol, exp, int64(strike.BaseAmount))
			assets[objects.OptionKey{Expiry: exp, Strike: strike}] = symbol
			c.registerDerivedAsset(sess, symbol, o.Creator, objects.AssetOption)
		}
	}
	c.OptionPools.Create(sess, func(p *objects.OptionPool) {
		p.BaseSymbol = o.BaseSymbol
		p.QuoteSymbol = o.QuoteSymbol
		p.OptionAssets = assets
		p.Expirations = expirations
		p.Strikes = strikes
	})
	return nil
}

func (c *Chain) evalPredictionPoolCreate(sess *undo.Session, o ops.PredictionPoolCreate) error {
	if err := c.requireAccount(o.Creator); err != nil {
		return err
	}
	if _, exists := c.PredictionBySymbol.Find(o.PredictionSymbol); exists {
		return fmt.Errorf("%w: prediction pool %s already exists", kernelerr.ErrInvariant, o.PredictionSymbol)
	}
	predictionAsset, ok := c.AssetsBySymbol.Find(o.PredictionSymbol)
	if !ok || predictionAsset.Kind != objects.AssetPrediction {
		return fmt.Errorf("%w: %s must first be created as an AssetPrediction asset", kernelerr.ErrPrecondition, o.PredictionSymbol)
	}
	outcomes := append([]string{}, o.Outcomes...)
	outcomes = append(outcomes, o.PredictionSymbol+prediction.InvalidOutcomeSuffix)
	for _, outcome := range outcomes {
		c.registerDerivedAsset(sess, outcome, o.Creator, objects.AssetPrediction)
	}
	c.PredictionPools.Create(sess, func(p *objects.PredictionPool) {
		p.PredictionSymbol = o.PredictionSymbol
		p.CollateralSymbol = o.CollateralSymbol
		p.OutcomeSymbols = outcomes
		p.OutcomeTime = o.OutcomeTime
		p.ResolutionTime = o.OutcomeTime + prediction.ResolutionDelaySeconds
	})
	return nil
}

func (c *Chain) evalPredictionPoolExchange(sess *undo.Session, o ops.PredictionPoolExchange) error {
	if err := c.requireAccount(o.Account); err != nil {
		return err
	}
	pool, ok := c.PredictionBySymbol.Find(o.PredictionSymbol)
	if !ok {
		return fmt.Errorf("%w: prediction pool %s", kernelerr.ErrNotFound, o.PredictionSymbol)
	}
	if pool.Resolved {
		// Once resolved, redemption pays out the winning outcome's holders
		// pro-rata against the remaining collateral pool; an INVALID
		// resolution splits proportionally across every outcome's
		// outstanding supply instead.
		if !o.Redeem {
			return fmt.Errorf("%w: prediction pool %s is resolved, mint is no longer possible", kernelerr.ErrPrecondition, o.PredictionSymbol)
		}
		winningAsset, ok := c.AssetsBySymbol.Find(pool.WinningOutcome)
		if !ok {
			return fmt.Errorf("%w: winning outcome asset %s", kernelerr.ErrNotFound, pool.WinningOutcome)
		}
		invalidOutcome := pool.PredictionSymbol + prediction.InvalidOutcomeSuffix

		var payout objects.Amount
		var err error
		if pool.WinningOutcome == invalidOutcome {
			var totalSupply objects.Amount
			for _, outcome := range pool.OutcomeSymbols {
				outcomeAsset, ok := c.AssetsBySymbol.Find(outcome)
				if !ok {
					continue
				}
				totalSupply, _ = totalSupply.Add(outcomeAsset.Dynamic.Total)
			}
			payout, err = prediction.SplitInvalid(o.Amount, totalSupply, pool.CollateralPool)
		} else {
			payout, err = prediction.RedeemWinner(o.Amount, winningAsset.Dynamic.Total, pool.CollateralPool)
		}
		if err != nil {
			return err
		}
		if err := c.Bal.Adjust(sess, o.Account, pool.WinningOutcome, balance.Liquid, objects.Neg(o.Amount)); err != nil {
			return err
		}
		c.PredictionPools.Modify(sess, pool, func(p *objects.PredictionPool) {
			p.CollateralPool, _ = p.CollateralPool.Sub(payout)
		})
		return c.Bal.Adjust(sess, o.Account, pool.CollateralSymbol, balance.Liquid, objects.Pos(payout))
	}
	if o.Redeem {
		for _, outcome := range pool.OutcomeSymbols {
			if err := c.Bal.Adjust(sess, o.Account, outcome, balance.Liquid, objects.Neg(o.Amount)); err != nil {
				return err
			}
		}
		c.PredictionPools.Modify(sess, pool, func(p *objects.PredictionPool) {
			p.CollateralPool, _ = p.CollateralPool.Sub(o.Amount)
		})
		return c.Bal.Adjust(sess, o.Account, pool.CollateralSymbol, balance.Liquid, objects.Pos(o.Amount))
	}
	minted := prediction.MintFullSet(o.Amount)
	if err := c.Bal.Adjust(sess, o.Account, pool.CollateralSymbol, balance.Liquid, objects.Neg(minted)); err != nil {
		return err
	}
	c.PredictionPools.Modify(sess, pool, func(p *objects.PredictionPool) {
		p.CollateralPool, _ = p.CollateralPool.Add(minted)
	})
	for _, outcome := range pool.OutcomeSymbols {
		if err := c.Bal.Adjust(sess, o.Account, outcome, balance.Liquid, objects.Pos(minted)); err != nil {
			return err
		}
	}
	return nil
}

// evalPredictionPoolResolve stakes the prediction asset itself toward a
// candidate outcome; the stake is escrowed into BondPool until maintenance
// tallies every vote at ResolutionTime and refunds the stakes.
func (c *Chain) evalPredictionPoolResolve(sess *undo.Session, o ops.PredictionPoolResolve) error {
	pool, ok := c.PredictionBySymbol.Find(o.PredictionSymbol)
	if !ok {
		return fmt.Errorf("%w: prediction pool %s", kernelerr.ErrNotFound, o.PredictionSymbol)
	}
	if pool.Resolved {
		return fmt.Errorf("%w: prediction pool %s already resolved", kernelerr.ErrPrecondition, o.PredictionSymbol)
	}
	if c.Now < pool.OutcomeTime {
		return fmt.Errorf("%w: resolution voting has not opened yet", kernelerr.ErrPrecondition)
	}
	if err := c.Bal.Adjust(sess, o.Voter, o.PredictionSymbol, balance.Liquid, objects.Neg(o.Stake)); err != nil {
		return err
	}
	c.PredictionPools.Modify(sess, pool, func(p *objects.PredictionPool) {
		p.BondPool, _ = p.BondPool.Add(o.Stake)
		p.PendingVotes = append(p.PendingVotes, objects.ResolutionVote{Voter: o.Voter, Outcome: o.Outcome, Stake: o.Stake})
	})
	return nil
}
