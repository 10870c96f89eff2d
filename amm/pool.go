// Package amm implements constant-product liquidity pools. Pool exchanges
// follow a flash-accounting structure — lock a scope, settle deltas — with
// the plain constant-product curve in place of tick-based concentrated
// liquidity.
package amm

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
)

// FeeBps is the network exchange fee taken from the input side of every
// trade, before the constant-product curve is applied: the fee is deducted
// from Δa, not from Δb.
const FeeBps = 30 // 0.3%, the conventional constant-product AMM fee.

// Exchange computes the output amount for input deltaA added to the a-side
// of the pool, applies the fee, and mutates pool's reserves in place. The
// caller is responsible for crediting/debiting account balances with the
// returned output and for recording the fee into the asset's accumulated
// fees.
func Exchange(pool *objects.LiquidityPool, deltaA objects.Amount) (output objects.Amount, fee objects.Amount, err error) {
	if pool.BalanceA.IsZero() || pool.BalanceB.IsZero() {
		return objects.Amount{}, objects.Amount{}, fmt.Errorf("%w: pool has no liquidity", kernelerr.ErrPrecondition)
	}

	fee, err = deltaA.MulDiv(FeeBps, 10000)
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}
	netIn, err := deltaA.Sub(fee)
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}

	newBalanceA, err := pool.BalanceA.Add(netIn)
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}

	// deltaB = balanceB * netIn / (balanceA + netIn)
	deltaB, err := pool.BalanceB.MulDiv(mustUint64(netIn), mustUint64(newBalanceA))
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}
	if deltaB.Cmp(pool.BalanceB) >= 0 {
		return objects.Amount{}, objects.Amount{}, fmt.Errorf("%w: exchange would drain pool", kernelerr.ErrPrecondition)
	}

	pool.BalanceA = newBalanceA
	pool.BalanceB, err = pool.BalanceB.Sub(deltaB)
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}
	return deltaB, fee, nil
}

// ExchangeAcquire solves the curve inversely: "give me exactly wantB of the
// output asset", returning the required input amount.
func ExchangeAcquire(pool *objects.LiquidityPool, wantB objects.Amount) (requiredA objects.Amount, fee objects.Amount, err error) {
	if wantB.Cmp(pool.BalanceB) >= 0 {
		return objects.Amount{}, objects.Amount{}, fmt.Errorf("%w: requested output exceeds pool reserve", kernelerr.ErrPrecondition)
	}
	newBalanceB, err := pool.BalanceB.Sub(wantB)
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}
	// netIn = balanceA * wantB / newBalanceB
	netIn, err := pool.BalanceA.MulDiv(mustUint64(wantB), mustUint64(newBalanceB))
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}
	// invert the fee: netIn = grossIn * (10000-FeeBps) / 10000
	grossIn, err := netIn.MulDiv(10000, 10000-FeeBps)
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}
	fee, err = grossIn.Sub(netIn)
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}
	pool.BalanceA, err = pool.BalanceA.Add(netIn)
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}
	pool.BalanceB = newBalanceB
	return grossIn, fee, nil
}

// ExchangeLimit exchanges only the marginal amount of deltaA that leaves the
// pool at exactly the supplied limit price (balance_b/balance_a), refusing
// to cross past it.
func ExchangeLimit(pool *objects.LiquidityPool, deltaA objects.Amount, limit objects.Price) (objects.Amount, objects.Amount, error) {
	// Solve for the deltaA that drives the post-trade price to exactly
	// limit: (balanceB - deltaB)/(balanceA + deltaA) = limit.Base/limit.Quote,
	// with deltaB derived from the constant-product curve. We compute the
	// maximal permissible input by bisecting the curve rather than solving
	// the quadratic directly, since all arithmetic must stay in integer
	// amounts.
	maxA := deltaA
	lo, hi := objects.ZeroAmount(), maxA
	for i := 0; i < 64 && lo.Cmp(hi) < 0; i++ {
		mid, _ := lo.Add(hi)
		mid, _ = mid.MulDiv(1, 2)
		if mid.Cmp(lo) == 0 {
			break
		}
		trial := *pool
		if _, _, err := Exchange(&trial, mid); err != nil {
			hi = mid
			continue
		}
		if priceAtLeast(trial, limit) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Exchange(pool, lo)
}

func priceAtLeast(p objects.LiquidityPool, limit objects.Price) bool {
	// price = balanceB/balanceA, the orientation ExchangeLimit's limit uses;
	// compare against limit.Base/limit.Quote via cross-multiplication to
	// avoid fractional math.
	lhs := new(big.Int).Mul(bigOf(p.BalanceB), big.NewInt(int64(limit.QuoteAmount)))
	rhs := new(big.Int).Mul(bigOf(p.BalanceA), big.NewInt(int64(limit.BaseAmount)))
	return lhs.Cmp(rhs) >= 0
}

func bigOf(a objects.Amount) *big.Int {
	return new(big.Int).SetUint64(a.Uint64())
}

func mustUint64(a objects.Amount) uint64 { return a.Uint64() }

// RecordSpotPrice writes the pool's current spot price into the minute
// price ring for the hour/day median oracle.
func RecordSpotPrice(pool *objects.LiquidityPool) {
	pool.PriceRing[pool.PriceRingNext] = objects.Price{
		BaseAmount:  pool.BalanceA.Uint64(),
		QuoteAmount: pool.BalanceB.Uint64(),
	}
	pool.PriceRingNext = (pool.PriceRingNext + 1) % len(pool.PriceRing)
	if pool.PriceRingCount < len(pool.PriceRing) {
		pool.PriceRingCount++
	}
}

// HourMedian returns the median of the last 60 recorded spot-price samples.
func HourMedian(pool *objects.LiquidityPool) objects.Price { return windowMedian(pool, 60) }

// DayMedian returns the median of the last 1440 recorded spot-price samples.
func DayMedian(pool *objects.LiquidityPool) objects.Price { return windowMedian(pool, 1440) }

func windowMedian(pool *objects.LiquidityPool, window int) objects.Price {
	n := window
	if pool.PriceRingCount < n {
		n = pool.PriceRingCount
	}
	if n == 0 {
		return objects.Price{BaseAmount: pool.BalanceA.Uint64(), QuoteAmount: pool.BalanceB.Uint64()}
	}
	samples := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		idx := (pool.PriceRingNext - 1 - i + len(pool.PriceRing)) % len(pool.PriceRing)
		p := pool.PriceRing[idx]
		if p.QuoteAmount == 0 {
			continue
		}
		samples = append(samples, float64(p.BaseAmount)/float64(p.QuoteAmount))
	}
	if len(samples) == 0 {
		return objects.Price{BaseAmount: pool.BalanceA.Uint64(), QuoteAmount: pool.BalanceB.Uint64()}
	}
	sort.Float64s(samples)
	mid := samples[len(samples)/2]
	// Express the median ratio as a Price with a fixed quote scale for
	// deterministic downstream comparisons.
	const scale = 1_000_000
	return objects.Price{BaseAmount: uint64(mid * scale), QuoteAmount: scale}
}

// LPSupplyForDeposit computes the LP shares to mint for depositing amountA on
// the a-side of a pool with existing reserves; minting is proportional to
// amountA against the a-side reserve and the existing supply. On an empty
// supply it returns sqrt(balanceA*balanceB) of the pool's current reserves
// and amountA is not used.
func LPSupplyForDeposit(pool *objects.LiquidityPool, amountA objects.Amount) (objects.Amount, error) {
	if pool.LPSupply.IsZero() {
		// bootstrap: shares = sqrt(balanceA * balanceB), the conventional
		// initial-mint rule for a constant-product pool.
		prod := new(big.Int).Mul(bigOf(pool.BalanceA), bigOf(pool.BalanceB))
		root := new(big.Int).Sqrt(prod)
		return objects.NewAmount(root.Uint64()), nil
	}
	return pool.LPSupply.MulDiv(mustUint64(amountA), mustUint64(pool.BalanceA))
}
