package objects

import "github.com/weyoume/wenode-sub002/store"

// CreditCollateral is an amount pledged from the owner's liquid balance and
// held in this record while pledged; no supply accumulator (pending or
// other) counts it.
type CreditCollateral struct {
	store.Base

	Owner  string
	Symbol string
	Amount Amount
}

func (c *CreditCollateral) OwnerSymbolKey() (string, string) { return c.Owner, c.Symbol }

// CreditLoan is an open loan against pledged CreditCollateral.
type CreditLoan struct {
	store.Base

	Owner  string
	LoanID uint64

	DebtSymbol       string
	DebtAmount       Amount
	AccruedInterest  Amount

	CollateralSymbol string
	CollateralAmount Amount

	LiquidationPrice Price

	OpenedAt     int64
	LastAccrual  int64

	FlashLoan bool
}
