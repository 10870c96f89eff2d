// Package reward implements the content reward accumulation curve:
// per-post weight accumulators, curator weight differentials, and cashout
// payout splitting. Arithmetic style (scale-then-divide, RAY-like fixed
// point) follows credit.RateModel's idiom for consistency within this
// codebase.
package reward

import (
	"math/big"

	"github.com/weyoume/wenode-sub002/objects"
)

// CurveKind names a reward fund's declared payout curve.
type CurveKind int

const (
	CurveLinear CurveKind = iota
	CurveBoundedCuration
)

// curveScale is the fixed-point scale shared with credit.RAY-style math.
var curveScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Curve evaluates a reward fund's declared curve at accumulated power p
// (already scaled to curveScale). Linear returns p unchanged; bounded
// curation applies sqrt, which concentrates reward among early, larger
// actions — the conventional "bounded curation" shape.
func Curve(kind CurveKind, power *big.Int) *big.Int {
	switch kind {
	case CurveBoundedCuration:
		return new(big.Int).Sqrt(new(big.Int).Mul(power, curveScale))
	default:
		return new(big.Int).Set(power)
	}
}

// CurationAuctionWindowSeconds is the roughly-10-minutes curation ramp.
const CurationAuctionWindowSeconds = 10 * 60

// LinearAuctionDecay ramps from 0 (scale) to curveScale over
// CurationAuctionWindowSeconds, then holds at curveScale.
func LinearAuctionDecay(deltaSeconds int64) *big.Int {
	if deltaSeconds <= 0 {
		return big.NewInt(0)
	}
	if deltaSeconds >= CurationAuctionWindowSeconds {
		return new(big.Int).Set(curveScale)
	}
	d := new(big.Int).Mul(curveScale, big.NewInt(deltaSeconds))
	return d.Div(d, big.NewInt(CurationAuctionWindowSeconds))
}

// GeometricCountDecay computes 0.5^(n/decayConst) at curveScale precision,
// suppressing reward for late curators. Implemented by repeated halving
// scaled by the fractional remainder via a short binary-exponentiation-
// style loop, since decayConst and n are both small integers in practice
// (producer-voted chain properties).
func GeometricCountDecay(n int, decayConst uint32) *big.Int {
	if decayConst == 0 {
		return new(big.Int).Set(curveScale)
	}
	result := new(big.Int).Set(curveScale)
	whole := n / int(decayConst)
	for i := 0; i < whole; i++ {
		result.Div(result, big.NewInt(2))
	}
	remainder := n % int(decayConst)
	if remainder != 0 {
		// Linear interpolation between the two surrounding halvings for the
		// fractional step; adequate precision for a decay factor, and keeps
		// the whole computation in integer arithmetic.
		frac := new(big.Int).Mul(result, big.NewInt(int64(decayConst-uint32(remainder))))
		frac.Div(frac, big.NewInt(int64(decayConst)))
		half := new(big.Int).Div(result, big.NewInt(2))
		extra := new(big.Int).Mul(half, big.NewInt(int64(remainder)))
		extra.Div(extra, big.NewInt(int64(decayConst)))
		result = new(big.Int).Add(frac, extra)
	}
	return result
}

// CuratorWeight computes the curator weight differential:
//
//	w = (curve(new_power) - curve(old_power)) * linear_auction_decay(Δt) *
//	    geometric_count_decay(n_prior_actors)
//
// all at curveScale precision, descaled twice (once per decay factor
// multiplied in) at the end.
func CuratorWeight(kind CurveKind, oldPower, newPower *big.Int, deltaSeconds int64, decayConst uint32, nPriorActors int) *big.Int {
	diff := new(big.Int).Sub(Curve(kind, newPower), Curve(kind, oldPower))
	if diff.Sign() <= 0 {
		return big.NewInt(0)
	}
	w := new(big.Int).Mul(diff, LinearAuctionDecay(deltaSeconds))
	w.Div(w, curveScale)
	w.Mul(w, GeometricCountDecay(nPriorActors, decayConst))
	w.Div(w, curveScale)
	return w
}

// UsedPower computes the actor's spent power for one curation action: a
// percentBps fraction (0..10000) of their currently regenerated power,
// converting the regenerating uint16 power gauge (0..10000) into the
// weight units added to the post.
func UsedPower(regeneratedPower uint16, percentBps uint16) uint64 {
	return uint64(regeneratedPower) * uint64(percentBps) / 10000
}

// CashoutSplit is the payout of one comment's net_reward at cashout time:
// split across author, beneficiaries, and curators by their stored weight
// fractions.
type CashoutSplit struct {
	Author        objects.Amount
	Beneficiaries map[string]objects.Amount
	Curators      objects.Amount
}

// CuratorSplit is one curator's share of a post's total curator weight.
type CuratorSplit struct {
	Account string
	Weight  objects.Amount
}

// SplitCashout allocates total among beneficiaries (by their stored
// percentage), then the remainder between the author and curators (by the
// fund's curation_percent, the complement going to the author), then
// curators among themselves proportional to their stored weight.
func SplitCashout(total objects.Amount, beneficiaries []objects.Beneficiary, curationPercentBps uint16, curators []CuratorSplit) (CashoutSplit, error) {
	split := CashoutSplit{Beneficiaries: make(map[string]objects.Amount)}
	remaining := total
	for _, b := range beneficiaries {
		share, err := total.MulDiv(uint64(b.PercentBps), 10000)
		if err != nil {
			return CashoutSplit{}, err
		}
		split.Beneficiaries[b.Account] = share
		remaining, err = remaining.Sub(share)
		if err != nil {
			return CashoutSplit{}, err
		}
	}

	curatorShare, err := remaining.MulDiv(uint64(curationPercentBps), 10000)
	if err != nil {
		return CashoutSplit{}, err
	}
	split.Author, err = remaining.Sub(curatorShare)
	if err != nil {
		return CashoutSplit{}, err
	}

	totalWeight := objects.ZeroAmount()
	for _, c := range curators {
		totalWeight, err = totalWeight.Add(c.Weight)
		if err != nil {
			return CashoutSplit{}, err
		}
	}
	split.Curators = curatorShare
	if totalWeight.IsZero() {
		// No curators: their share reverts to the author, per the
		// conventional "unclaimed curation returns to author" rule.
		split.Author, err = split.Author.Add(curatorShare)
		if err != nil {
			return CashoutSplit{}, err
		}
		split.Curators = objects.ZeroAmount()
	}
	return split, nil
}

// CuratorPayout computes one curator's share of curatorShare proportional
// to their stored weight against totalWeight.
func CuratorPayout(curatorShare, weight, totalWeight objects.Amount) (objects.Amount, error) {
	if totalWeight.IsZero() {
		return objects.ZeroAmount(), nil
	}
	return curatorShare.MulDiv(weight.Uint64(), totalWeight.Uint64())
}
