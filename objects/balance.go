package objects

import "github.com/weyoume/wenode-sub002/store"

// Balance is one record per (account, asset) holding the seven named
// sub-balances and the two vesting cursors.
type Balance struct {
	store.Base

	Account string
	Symbol  string

	Liquid    Amount
	Staked    Amount
	Reward    Amount
	Savings   Amount
	Delegated Amount
	Receiving Amount
	Pending   Amount

	ToStake       Amount
	StakeRate     Amount
	NextStakeTime int64

	ToUnstake       Amount
	UnstakeRate     Amount
	NextUnstakeTime int64
	UnstakeRoutes   []UnstakeRoute
}

// UnstakeRoute dispatches a percentage of unstaked amounts to another
// account, optionally re-staking there.
type UnstakeRoute struct {
	ToAccount  string
	PercentBps uint16 // basis points, sums to <= 10000 across a balance's routes
	AutoStake  bool
}

// AccountSymbolKey returns the composite key used by Balance's secondary
// index.
func (b *Balance) AccountSymbolKey() (string, string) { return b.Account, b.Symbol }
