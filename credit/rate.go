// Package credit implements the credit-pool interest rate model:
// utilization, the annual rate, interest accrual and the network fee split.
// Interest-rate scaling uses the RAY = 1e18 big.Int scale-then-divide
// idiom, with a single min+variable*utilization interest line rather than a
// two-slope kink curve. Loan open, repayment and liquidation are evaluated
// in package kernel, not here.
package credit

import "math/big"

// RAY is the fixed-point scale used throughout rate math, 10^18.
var RAY = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

const SecondsPerYear = 365 * 24 * 60 * 60

// RateModel is the pool's interest curve: rate = min_rate + variable_rate *
// utilization. Both components are median chain properties (basis points),
// converted to RAY scale here.
type RateModel struct {
	MinRateBps      uint32
	VariableRateBps uint32
}

// Utilization computes borrowed/(base+borrowed) at RAY scale; zero when the
// pool has no liquidity at all.
func Utilization(base, borrowed *big.Int) *big.Int {
	total := new(big.Int).Add(base, borrowed)
	if total.Sign() == 0 {
		return big.NewInt(0)
	}
	u := new(big.Int).Mul(borrowed, RAY)
	return u.Div(u, total)
}

// AnnualRate returns the RAY-scaled annual interest rate for the given
// utilization (also RAY-scaled).
func (m RateModel) AnnualRate(utilization *big.Int) *big.Int {
	minRate := bpsToRay(m.MinRateBps)
	variableRate := bpsToRay(m.VariableRateBps)

	variableComponent := new(big.Int).Mul(variableRate, utilization)
	variableComponent.Div(variableComponent, RAY)

	return new(big.Int).Add(minRate, variableComponent)
}

func bpsToRay(bps uint32) *big.Int {
	r := new(big.Int).Mul(big.NewInt(int64(bps)), RAY)
	return r.Div(r, big.NewInt(10000))
}

// AccrueInterest computes simple interest over elapsedSeconds:
// principal * annualRate * elapsed / (365 days).
func AccrueInterest(principal *big.Int, annualRate *big.Int, elapsedSeconds int64) *big.Int {
	if elapsedSeconds <= 0 || principal.Sign() == 0 {
		return big.NewInt(0)
	}
	interest := new(big.Int).Mul(principal, annualRate)
	interest.Mul(interest, big.NewInt(elapsedSeconds))
	interest.Div(interest, RAY)
	interest.Div(interest, big.NewInt(SecondsPerYear))
	return interest
}

// NetworkFee splits interest into (networkFee, remainder) given a
// basis-point fee fraction, INTEREST_FEE_PERCENT.
func NetworkFee(interest *big.Int, feeBps uint32) (fee, remainder *big.Int) {
	fee = new(big.Int).Mul(interest, big.NewInt(int64(feeBps)))
	fee.Div(fee, big.NewInt(10000))
	remainder = new(big.Int).Sub(interest, fee)
	return fee, remainder
}
