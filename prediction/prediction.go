// Package prediction implements option-pool and prediction-pool mechanics:
// full-set issuance, resolution voting, and pro-rata redemption.
package prediction

import (
	"fmt"
	"math/big"
	"time"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
)

// MonthlyExpirations is the number of monthly expirations an option pool
// registers at creation.
const MonthlyExpirations = 12

// BuildExpirationLadder returns MonthlyExpirations unix timestamps, each one
// calendar month after the last, starting one month after created.
func BuildExpirationLadder(created int64) []int64 {
	t := time.Unix(created, 0).UTC()
	out := make([]int64, 0, MonthlyExpirations)
	for i := 1; i <= MonthlyExpirations; i++ {
		out = append(out, t.AddDate(0, i, 0).Unix())
	}
	return out
}

// StrikeLadderSize is the number of strikes generated around the current
// AMM day-median price at pool creation.
const StrikeLadderSize = 9 // four below, the median itself, four above

// StrikeStepBps is the percentage distance between adjacent rungs (basis
// points of the median price).
const StrikeStepBps = 500 // 5%

// BuildStrikeLadder derives StrikeLadderSize strikes spaced StrikeStepBps
// apart around dayMedian, the current AMM day-median price.
func BuildStrikeLadder(dayMedian objects.Price) []objects.Price {
	out := make([]objects.Price, 0, StrikeLadderSize)
	half := StrikeLadderSize / 2
	for i := -half; i <= half; i++ {
		bps := int64(10000) + int64(i)*StrikeStepBps
		if bps <= 0 {
			continue
		}
		out = append(out, objects.Price{
			BaseAmount:  uint64(int64(dayMedian.BaseAmount) * bps / 10000),
			QuoteAmount: dayMedian.QuoteAmount,
		})
	}
	return out
}

// OptionAssetSymbol names the synthetic option asset for one rung of an
// option pool's ladder, e.g. "OPT.COIN.USD.1700000000.105".
func OptionAssetSymbol(base, quote string, expiry int64, strikeBps int64) string {
	return fmt.Sprintf("OPT.%s.%s.%d.%d", base, quote, expiry, strikeBps)
}

// IssueOption computes the option-asset amount minted for a deposit of
// collateral into one rung: 1:1 with the deposited call-side asset.
func IssueOption(collateral objects.Amount) objects.Amount { return collateral }

// ExerciseOption redeems amount of an in-the-money option asset bundle for
// its settlement payout: (strike-adjusted collateral, debited from the
// option pool's locked collateral). settlePrice is the market price at
// expiry.
func ExerciseOption(amount objects.Amount, strike, settlePrice objects.Price) (payout objects.Amount, err error) {
	if rateCmp(settlePrice, strike) <= 0 {
		return objects.ZeroAmount(), fmt.Errorf("%w: option is out of the money", kernelerr.ErrPrecondition)
	}
	diff, err := settlePrice2(settlePrice, strike)
	if err != nil {
		return objects.ZeroAmount(), err
	}
	return amount.MulDiv(diff.BaseAmount, diff.QuoteAmount)
}

func settlePrice2(settlePrice, strike objects.Price) (objects.Price, error) {
	// Intrinsic value per unit, expressed as a Price so MulDiv stays in
	// integer arithmetic: (settle - strike) as a ratio over strike's quote
	// scale.
	if strike.QuoteAmount != settlePrice.QuoteAmount {
		return objects.Price{}, fmt.Errorf("%w: settlement and strike price scales differ", kernelerr.ErrInvariant)
	}
	return objects.Price{BaseAmount: settlePrice.BaseAmount - strike.BaseAmount, QuoteAmount: strike.QuoteAmount}, nil
}

func rateCmp(a, b objects.Price) int {
	lhs := new(big.Int).Mul(big.NewInt(int64(a.BaseAmount)), big.NewInt(int64(b.QuoteAmount)))
	rhs := new(big.Int).Mul(big.NewInt(int64(b.BaseAmount)), big.NewInt(int64(a.QuoteAmount)))
	return lhs.Cmp(rhs)
}
