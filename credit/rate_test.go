package credit

import (
	"math/big"
	"testing"
)

func TestAccrueInterestSimpleInterestOverElapsedTime(t *testing.T) {
	// 1000 X at 10%/year, repaid at t = 36.5 days -> owed interest ~= 10 X.
	principal := bigOf(1000)
	annualRate := bpsToRay(1000) // 10%
	elapsed := int64(36.5 * 24 * 60 * 60)

	interest := AccrueInterest(principal, annualRate, elapsed)
	got := interest.Int64()
	if got < 9 || got > 11 {
		t.Fatalf("expected ~10 X interest, got %d", got)
	}
}

func TestUtilizationZeroWhenNoLiquidity(t *testing.T) {
	u := Utilization(bigOf(0), bigOf(0))
	if u.Sign() != 0 {
		t.Fatalf("expected zero utilization, got %s", u)
	}
}

func TestNetworkFeeSplitsExactly(t *testing.T) {
	fee, rem := NetworkFee(bigOf(100), 1000) // 10%
	if fee.Int64() != 10 || rem.Int64() != 90 {
		t.Fatalf("expected fee=10 rem=90, got fee=%s rem=%s", fee, rem)
	}
}

func bigOf(v int64) *big.Int { return big.NewInt(v) }
