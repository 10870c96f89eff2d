package market

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
)

// CollateralizationBps computes collateral_value/debt_value in basis
// points, both valued in a common unit via the supplied AMM hour-median
// price. price is expressed collateral-per-debt.
func CollateralizationBps(collateral, debt objects.Amount, price objects.Price) (uint32, error) {
	if debt.IsZero() {
		return ^uint32(0), nil
	}
	debtValueInCollateral, err := debt.MulDiv(price.BaseAmount, price.QuoteAmount)
	if err != nil {
		return 0, err
	}
	if debtValueInCollateral.IsZero() {
		return ^uint32(0), nil
	}
	ratio, err := collateral.MulDiv(10000, debtValueInCollateral.Uint64())
	if err != nil {
		return 0, err
	}
	return uint32(ratio.Uint64()), nil
}

// CheckOpenRatio fails unless a newly-opened margin position's
// collateralization meets the producer-voted margin_open_ratio.
func CheckOpenRatio(collateral, debt objects.Amount, price objects.Price, marginOpenRatioBps uint32) error {
	ratio, err := CollateralizationBps(collateral, debt, price)
	if err != nil {
		return err
	}
	if ratio < marginOpenRatioBps {
		return fmt.Errorf("%w: margin order collateralization %d bps below open ratio %d bps", kernelerr.ErrPrecondition, ratio, marginOpenRatioBps)
	}
	return nil
}

// TriggerKind names why a margin order's maintenance scan flagged it for
// automatic closing.
type TriggerKind int

const (
	NoTrigger TriggerKind = iota
	TriggerStopLoss
	TriggerTakeProfit
)

// CheckTriggers reports whether the current AMM price has crossed a margin
// order's stop-loss or take-profit level; these levels trigger automatic
// closing orders during maintenance scans. currentPrice and both trigger
// levels are collateral-per-debt.
func CheckTriggers(order *objects.MarginOrder, currentPrice objects.Price) TriggerKind {
	if order.StopLoss.QuoteAmount != 0 && rateCmp(currentPrice, order.StopLoss) <= 0 {
		return TriggerStopLoss
	}
	if order.TakeProfit.QuoteAmount != 0 && rateCmp(currentPrice, order.TakeProfit) >= 0 {
		return TriggerTakeProfit
	}
	return NoTrigger
}

// CloseThroughPool computes the proceeds of force-closing a margin position
// by exchanging its pledged collateral through the AMM pool at the current
// price, then settling the debt balance. Returns the collateral amount to
// feed into amm.Exchange and,
// after that exchange returns its debt-asset proceeds, the residual to
// return to the owner once debtBalance is repaid (computed by the caller
// once the AMM leg has actually run, since Exchange mutates pool state).
func CloseThroughPool(order *objects.MarginOrder) objects.Amount {
	return order.Collateral
}

// SettleCloseProceeds splits AMM exchange proceeds between retiring the
// position's outstanding DebtBalance and returning any residual to the
// owner; if proceeds fall short, the shortfall becomes unrealized loss
// (reported, not separately escalated — spec names no default-balance
// mechanism for margin as it does for credit loans).
func SettleCloseProceeds(proceeds, debtBalance objects.Amount) (ownerResidual objects.Amount, shortfall objects.Amount) {
	if proceeds.Cmp(debtBalance) >= 0 {
		residual, _ := proceeds.Sub(debtBalance)
		return residual, objects.ZeroAmount()
	}
	short, _ := debtBalance.Sub(proceeds)
	return objects.ZeroAmount(), short
}
