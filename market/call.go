package market

import (
	"math/big"

	"github.com/weyoume/wenode-sub002/objects"
)

// CallPrice computes the call price: max(debt/collateral * MCR,
// feed.settlement), expressed as a collateral:debt Price so it compares
// directly against the bitasset's current feed using the same rateCmp
// convention as limit orders.
func CallPrice(order *objects.CallOrder, mcrBps uint32, settlementPrice objects.Price) objects.Price {
	// debt/collateral * MCR, as a collateral-per-debt ratio scaled by
	// MCR/10000; expressed as Price{Base: collateral-units, Quote:
	// debt-units} so that a lower feed price (less collateral required per
	// debt) compared against a higher call price triggers callability.
	debt := new(big.Int).SetUint64(order.Debt.Uint64())
	mcr := new(big.Int).SetUint64(uint64(mcrBps))
	num := new(big.Int).Mul(debt, mcr)
	// call_price (collateral per debt) = debt*MCR / (collateral*10000)
	den := new(big.Int).Mul(new(big.Int).SetUint64(order.Collateral.Uint64()), big.NewInt(10000))
	if den.Sign() == 0 {
		return objects.Price{BaseAmount: ^uint64(0), QuoteAmount: 1} // infinitely expensive: uncollateralized debt is always callable
	}
	computed := objects.Price{BaseAmount: num.Uint64(), QuoteAmount: den.Uint64()}
	if rateCmp(computed, settlementPrice) >= 0 {
		return computed
	}
	return settlementPrice
}

// Callable reports whether a call order is eligible for forced closure: the
// feed price has fallen to or below the order's call price. feedPrice and
// callPrice are both collateral-per-debt ratios.
func Callable(feedPrice, callPrice objects.Price) bool {
	return rateCmp(feedPrice, callPrice) <= 0
}

// SettleCall computes the collateral to seize and debt to retire when a
// call order matches a limit order selling the debt asset, filling up to
// the order's target collateral ratio. makerRate is the limit order's
// sell:receive rate,
// selling the debt asset for the collateral asset.
func SettleCall(order *objects.CallOrder, makerRemaining objects.Amount, makerRate objects.Price) (debtFilled, collateralPaid objects.Amount, err error) {
	// target debt after fill such that collateral/debt' = target ratio;
	// simplest well-defined closure: fill min(order.Debt, maker's capacity)
	// fully against the maker's rate, mirroring the plain limit-order Match
	// loop with the call order playing the taker role buying back its own
	// debt asset.
	neededDebt, err := makerRemaining.MulDiv(makerRate.BaseAmount, makerRate.QuoteAmount)
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}
	debtFilled = order.Debt
	if neededDebt.Cmp(debtFilled) < 0 {
		debtFilled = neededDebt
	}
	collateralPaid, err = debtFilled.MulDiv(makerRate.QuoteAmount, makerRate.BaseAmount)
	if err != nil {
		return objects.Amount{}, objects.Amount{}, err
	}
	return debtFilled, collateralPaid, nil
}
