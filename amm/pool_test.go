package amm

import (
	"math/big"
	"testing"

	"github.com/weyoume/wenode-sub002/objects"
)

func TestExchangeMatchesConstantProductFormula(t *testing.T) {
	pool := &objects.LiquidityPool{
		SymbolA: "COIN", SymbolB: "X",
		BalanceA: objects.NewAmount(10000),
		BalanceB: objects.NewAmount(10000),
	}
	out, fee, err := Exchange(pool, objects.NewAmount(100))
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	// fee = 100*30/10000 = 0 (integer truncation at this scale); net in 100.
	// deltaB = 10000*100/10100 = 99 (integer floor).
	if out.Uint64() != 99 {
		t.Fatalf("expected deltaB ~99, got %s (fee=%s)", out, fee)
	}
	if pool.BalanceA.Uint64() != 10100 {
		t.Fatalf("expected balanceA=10100, got %s", pool.BalanceA)
	}
}

func TestExchangeRejectsEmptyPool(t *testing.T) {
	pool := &objects.LiquidityPool{}
	_, _, err := Exchange(pool, objects.NewAmount(10))
	if err == nil {
		t.Fatalf("expected error on empty pool")
	}
}

// TestExchangeNeverDrainsEitherSideAndKeepsConstantProduct checks that
// after any exchange, both reserves remain positive and the product
// balanceA*balanceB does not decrease — the fee is taken off the input
// before it enters the pool and the output is rounded down, so repeated
// trades can only keep or grow the product, never shrink it.
func TestExchangeNeverDrainsEitherSideAndKeepsConstantProduct(t *testing.T) {
	pool := &objects.LiquidityPool{
		SymbolA: "COIN", SymbolB: "X",
		BalanceA: objects.NewAmount(10_000),
		BalanceB: objects.NewAmount(10_000),
	}
	productBefore := new(big.Int).Mul(bigOf(pool.BalanceA), bigOf(pool.BalanceB))

	for _, deltaA := range []uint64{100, 250, 37, 1000} {
		if _, _, err := Exchange(pool, objects.NewAmount(deltaA)); err != nil {
			t.Fatalf("exchange %d: %v", deltaA, err)
		}
		if pool.BalanceA.IsZero() || pool.BalanceB.IsZero() {
			t.Fatalf("pool reserve hit zero after exchanging %d: a=%s b=%s", deltaA, pool.BalanceA, pool.BalanceB)
		}
	}

	productAfter := new(big.Int).Mul(bigOf(pool.BalanceA), bigOf(pool.BalanceB))
	if productAfter.Cmp(productBefore) < 0 {
		t.Fatalf("constant product shrank: before=%s after=%s", productBefore, productAfter)
	}
}

func TestPriceRingMedian(t *testing.T) {
	pool := &objects.LiquidityPool{BalanceA: objects.NewAmount(100), BalanceB: objects.NewAmount(100)}
	for i := 0; i < 10; i++ {
		RecordSpotPrice(pool)
	}
	med := HourMedian(pool)
	if med.BaseAmount == 0 || med.QuoteAmount == 0 {
		t.Fatalf("expected a non-zero median price, got %+v", med)
	}
}
