package objects

import "github.com/weyoume/wenode-sub002/store"

// LimitOrder rests on the order book until matched, cancelled, or expired.
type LimitOrder struct {
	store.Base

	Owner          string
	OrderID        uint64
	SellSymbol     string
	ReceiveSymbol  string
	AmountForSale  Amount
	ExchangeRate   Price // sell:receive
	Expiration     int64
	Interface      string
	FillOrKill     bool
	Seq            uint64 // monotonic insertion sequence, matching tie-break
}

// Remaining is tracked as AmountForSale itself; matching decrements it
// in place via store.Table.Modify.

// MarginOrder is a leveraged position opened against a credit pool.
type MarginOrder struct {
	store.Base

	Owner         string
	OrderID       uint64
	DebtSymbol    string
	CollateralSymbol string

	Debt              Amount
	DebtBalance       Amount // remaining unpaid principal + accrued interest
	Collateral        Amount
	Collateralization uint32 // basis points: collateral_value / debt_value
	UnrealizedPnL     SignedAmount

	StopLoss    Price
	TakeProfit  Price
	LimitStop   Price
	LimitTake   Price
	Liquidating bool

	Seq int64
}

// CallOrder is a collateralized bitasset debt position.
type CallOrder struct {
	store.Base

	Borrower              string
	DebtSymbol            string
	CollateralSymbol      string
	Collateral            Amount
	Debt                  Amount
	TargetCollateralRatio uint32 // basis points
}

// AuctionOrder settles in a batched single-price auction.
type AuctionOrder struct {
	store.Base

	Owner           string
	SellSymbol      string
	ReceiveSymbol   string
	Amount          Amount
	LimitClosePrice Price
	Expiration      int64
}

// OptionOrder issues option-contract tokens against deposited collateral.
type OptionOrder struct {
	store.Base

	Owner           string
	OptionPoolSymbol string
	Strike          Price
	Expiry          int64
	CollateralAsset string
	Collateral      Amount
	OptionAsset     string
	Issued          Amount
}
