package ops

import "github.com/weyoume/wenode-sub002/objects"

// LiquidityPoolCreate registers a new (symbol_a, symbol_b) AMM pool. In
// practice this is invoked implicitly by AssetCreate's seed-liquidity
// invariant as well as explicitly.
type LiquidityPoolCreate struct {
	Creator  string         `wire:"0"`
	SymbolA  string         `wire:"1"`
	SymbolB  string         `wire:"2"`
	AmountA  objects.Amount `wire:"3"`
	AmountB  objects.Amount `wire:"4"`
	LPSymbol string         `wire:"5"`
}

func (o LiquidityPoolCreate) Kind() Kind           { return KindLiquidityPoolCreate }
func (o LiquidityPoolCreate) ActorAccount() string { return o.Creator }

// LiquidityPoolExchange trades into or out of a pool, in one of three
// modes: plain exchange, acquire-exact-output, limit-price.
type LiquidityPoolExchange struct {
	Account    string         `wire:"0"`
	SymbolA    string         `wire:"1"`
	SymbolB    string         `wire:"2"`
	AmountIn   objects.Amount `wire:"3"`
	Acquire    bool           `wire:"4"` // if set, AmountIn is instead the exact wanted output
	LimitPrice objects.Price  `wire:"5"` // zero quote = no limit
}

func (o LiquidityPoolExchange) Kind() Kind           { return KindLiquidityPoolExchange }
func (o LiquidityPoolExchange) ActorAccount() string { return o.Account }

// LiquidityPoolFund deposits both sides of a pair proportionally, minting
// LP shares.
type LiquidityPoolFund struct {
	Account string         `wire:"0"`
	SymbolA string         `wire:"1"`
	SymbolB string         `wire:"2"`
	AmountA objects.Amount `wire:"3"`
	AmountB objects.Amount `wire:"4"`
}

func (o LiquidityPoolFund) Kind() Kind           { return KindLiquidityPoolFund }
func (o LiquidityPoolFund) ActorAccount() string { return o.Account }

// LiquidityPoolWithdraw burns LP shares for a proportional share of both
// reserves.
type LiquidityPoolWithdraw struct {
	Account  string         `wire:"0"`
	LPSymbol string         `wire:"1"`
	Amount   objects.Amount `wire:"2"`
}

func (o LiquidityPoolWithdraw) Kind() Kind           { return KindLiquidityPoolWithdraw }
func (o LiquidityPoolWithdraw) ActorAccount() string { return o.Account }

// CreditPoolCollateral pledges liquid balance as credit collateral.
type CreditPoolCollateral struct {
	Account string         `wire:"0"`
	Symbol  string         `wire:"1"`
	Amount  objects.Amount `wire:"2"`
}

func (o CreditPoolCollateral) Kind() Kind           { return KindCreditPoolCollateral }
func (o CreditPoolCollateral) ActorAccount() string { return o.Account }

// CreditPoolBorrow opens a loan against pledged collateral.
type CreditPoolBorrow struct {
	Account          string         `wire:"0"`
	LoanID           uint64         `wire:"1"`
	DebtSymbol       string         `wire:"2"`
	DebtAmount       objects.Amount `wire:"3"`
	CollateralSymbol string         `wire:"4"`
	CollateralAmount objects.Amount `wire:"5"`
	FlashLoan        bool           `wire:"6"`
}

func (o CreditPoolBorrow) Kind() Kind           { return KindCreditPoolBorrow }
func (o CreditPoolBorrow) ActorAccount() string { return o.Account }

// CreditPoolLend deposits base-asset liquidity into a credit pool, minting
// satellite LP shares.
type CreditPoolLend struct {
	Account string         `wire:"0"`
	Symbol  string         `wire:"1"`
	Amount  objects.Amount `wire:"2"`
}

func (o CreditPoolLend) Kind() Kind           { return KindCreditPoolLend }
func (o CreditPoolLend) ActorAccount() string { return o.Account }

// CreditPoolWithdraw burns satellite LP shares and/or repays+closes a loan
// (LoanID nonzero selects the latter).
type CreditPoolWithdraw struct {
	Account string         `wire:"0"`
	Symbol  string         `wire:"1"`
	LoanID  uint64         `wire:"2"`
	Amount  objects.Amount `wire:"3"`
}

func (o CreditPoolWithdraw) Kind() Kind           { return KindCreditPoolWithdraw }
func (o CreditPoolWithdraw) ActorAccount() string { return o.Account }

// OptionPoolCreate registers a new option pool's monthly/strike ladder.
type OptionPoolCreate struct {
	Creator     string `wire:"0"`
	BaseSymbol  string `wire:"1"`
	QuoteSymbol string `wire:"2"`
}

func (o OptionPoolCreate) Kind() Kind           { return KindOptionPoolCreate }
func (o OptionPoolCreate) ActorAccount() string { return o.Creator }

// PredictionPoolCreate registers a new prediction market over the supplied
// outcome set plus the distinguished invalid outcome.
type PredictionPoolCreate struct {
	Creator          string   `wire:"0"`
	PredictionSymbol string   `wire:"1"`
	CollateralSymbol string   `wire:"2"`
	Outcomes         []string `wire:"3"`
	OutcomeTime      int64    `wire:"4"`
}

func (o PredictionPoolCreate) Kind() Kind           { return KindPredictionPoolCreate }
func (o PredictionPoolCreate) ActorAccount() string { return o.Creator }

// PredictionPoolExchange mints or redeems a full outcome set against
// collateral.
type PredictionPoolExchange struct {
	Account          string         `wire:"0"`
	PredictionSymbol string         `wire:"1"`
	Amount           objects.Amount `wire:"2"`
	Redeem           bool           `wire:"3"`
}

func (o PredictionPoolExchange) Kind() Kind           { return KindPredictionPoolExchange }
func (o PredictionPoolExchange) ActorAccount() string { return o.Account }

// PredictionPoolResolve stakes the prediction asset to vote a winning
// outcome.
type PredictionPoolResolve struct {
	Voter            string         `wire:"0"`
	PredictionSymbol string         `wire:"1"`
	Outcome          string         `wire:"2"`
	Stake            objects.Amount `wire:"3"`
}

func (o PredictionPoolResolve) Kind() Kind           { return KindPredictionPoolResolve }
func (o PredictionPoolResolve) ActorAccount() string { return o.Voter }
