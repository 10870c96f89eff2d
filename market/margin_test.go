package market

import (
	"errors"
	"testing"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
)

func TestCollateralizationBpsExactRatio(t *testing.T) {
	// 200 collateral backing 100 debt at a 1:1 price is a 200% ratio.
	ratio, err := CollateralizationBps(objects.NewAmount(200), objects.NewAmount(100), objects.Price{BaseAmount: 1, QuoteAmount: 1})
	if err != nil {
		t.Fatalf("collateralization: %v", err)
	}
	if ratio != 20000 {
		t.Fatalf("expected 20000 bps (200%%), got %d", ratio)
	}
}

func TestCollateralizationBpsZeroDebtIsMaximal(t *testing.T) {
	ratio, err := CollateralizationBps(objects.NewAmount(200), objects.ZeroAmount(), objects.Price{BaseAmount: 1, QuoteAmount: 1})
	if err != nil {
		t.Fatalf("collateralization: %v", err)
	}
	if ratio != ^uint32(0) {
		t.Fatalf("expected max ratio for zero debt, got %d", ratio)
	}
}

// TestCheckOpenRatioEnforcesMinimumCollateralization verifies a margin
// order may open only when collateral_value/debt_value is at least the
// producer-voted open ratio; anything below that is rejected before a
// loan/position record is ever created.
func TestCheckOpenRatioEnforcesMinimumCollateralization(t *testing.T) {
	price := objects.Price{BaseAmount: 1, QuoteAmount: 1}
	const openRatioBps = 15000 // 150%

	if err := CheckOpenRatio(objects.NewAmount(200), objects.NewAmount(100), price, openRatioBps); err != nil {
		t.Fatalf("200%% collateralization should clear a 150%% open ratio: %v", err)
	}

	err := CheckOpenRatio(objects.NewAmount(120), objects.NewAmount(100), price, openRatioBps)
	if !errors.Is(err, kernelerr.ErrPrecondition) {
		t.Fatalf("expected 120%% collateralization to fail a 150%% open ratio with ErrPrecondition, got %v", err)
	}
}
