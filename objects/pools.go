package objects

import "github.com/weyoume/wenode-sub002/store"

// LiquidityPool is a constant-product AMM pool. SymbolA < SymbolB
// lexicographically by construction (enforced at creation, never
// re-checked after).
type LiquidityPool struct {
	store.Base

	SymbolA string
	SymbolB string

	BalanceA Amount
	BalanceB Amount

	LPSymbol  string
	LPSupply  Amount

	// PriceRing holds one spot-price sample per maintenance tick and one per
	// exchange against the pool, indexed modulo len(PriceRing); HourMedian/DayMedian read windows of
	// it.
	PriceRing      [1440]Price
	PriceRingNext  int
	PriceRingCount int
}

// PairKey returns the pool's ordered symbol pair, the composite secondary
// index key.
func (p *LiquidityPool) PairKey() (string, string) { return p.SymbolA, p.SymbolB }

// CreditPool is a satellite-share lending pool backing margin/credit loans.
type CreditPool struct {
	store.Base

	BaseSymbol      string
	SatelliteSymbol string // LP share asset

	BaseBalance     Amount
	BorrowedBalance Amount
	SatelliteSupply Amount
	LastPrice       Price
}

// OptionPool is an expiry/strike ladder of option contract issuances.
type OptionPool struct {
	store.Base

	BaseSymbol  string
	QuoteSymbol string

	// OptionAssets maps (expiry, strike-ladder-index) -> issued option
	// asset symbol.
	OptionAssets map[OptionKey]string
	Expirations  []int64
	Strikes      []Price
}

// OptionKey identifies one rung of an option pool's expiry/strike ladder.
type OptionKey struct {
	Expiry int64
	Strike Price
}

// PredictionPool is an outcome-set market settled by staked voting.
type PredictionPool struct {
	store.Base

	PredictionSymbol string
	CollateralSymbol string

	CollateralPool Amount
	OutcomeSymbols []string // includes the distinguished INVALID outcome
	BondPool       Amount

	OutcomeTime    int64
	ResolutionTime int64 // OutcomeTime + 7 days

	Resolved      bool
	WinningOutcome string // empty until resolved; may be the INVALID symbol

	// PendingVotes accumulates resolution-voter ballots (each staking the
	// prediction asset itself into BondPool) until maintenance tallies them
	// at ResolutionTime.
	PendingVotes []ResolutionVote
}

// ResolutionVote is one resolution-voter's staked ballot for a candidate
// outcome, held on the pool until maintenance tallies it.
type ResolutionVote struct {
	Voter   string
	Outcome string
	Stake   Amount
}

// InvalidOutcomeSuffix marks the distinguished invalid-outcome asset within
// a prediction pool's OutcomeSymbols.
const InvalidOutcomeSuffix = ".INVALID"
