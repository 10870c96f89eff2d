package ops

import "github.com/weyoume/wenode-sub002/objects"

// Transfer moves liquid balance between two accounts.
type Transfer struct {
	From   string          `wire:"0"`
	To     string          `wire:"1"`
	Symbol string          `wire:"2"`
	Amount objects.Amount  `wire:"3"`
	Memo   string          `wire:"4"` // "#"-prefixed memos are wallet-encrypted ciphertext; opaque to the kernel
}

func (o Transfer) Kind() Kind           { return KindTransfer }
func (o Transfer) ActorAccount() string { return o.From }

// ClaimReward moves an account's accumulated reward sub-balance into its
// liquid and staked balances according to the reward-claim split.
type ClaimReward struct {
	Account string         `wire:"0"`
	Symbol  string         `wire:"1"`
	Amount  objects.Amount `wire:"2"`
}

func (o ClaimReward) Kind() Kind           { return KindClaimReward }
func (o ClaimReward) ActorAccount() string { return o.Account }

// Stake begins a vesting cursor moving liquid into staked over the asset's
// StakeIntervals.
type Stake struct {
	From    string         `wire:"0"`
	To      string         `wire:"1"` // may differ from From: staking on behalf of another account
	Symbol  string         `wire:"2"`
	Amount  objects.Amount `wire:"3"`
}

func (o Stake) Kind() Kind           { return KindStake }
func (o Stake) ActorAccount() string { return o.From }

// Unstake begins the symmetric vesting cursor moving staked back to liquid,
// dispatching through any configured unstake routes.
type Unstake struct {
	Account string         `wire:"0"`
	Symbol  string         `wire:"1"`
	Amount  objects.Amount `wire:"2"`
}

func (o Unstake) Kind() Kind           { return KindUnstake }
func (o Unstake) ActorAccount() string { return o.Account }

// UnstakeRoute configures the percentage of future unstaked amounts routed
// to another account.
type UnstakeRoute struct {
	Account    string `wire:"0"`
	Symbol     string `wire:"1"`
	ToAccount  string `wire:"2"`
	PercentBps uint16 `wire:"3"`
	AutoStake  bool   `wire:"4"`
}

func (o UnstakeRoute) Kind() Kind           { return KindUnstakeRoute }
func (o UnstakeRoute) ActorAccount() string { return o.Account }

// ToSavings moves liquid balance into the savings sub-balance.
type ToSavings struct {
	From   string         `wire:"0"`
	To     string         `wire:"1"`
	Symbol string         `wire:"2"`
	Amount objects.Amount `wire:"3"`
	Memo   string         `wire:"4"`
}

func (o ToSavings) Kind() Kind           { return KindToSavings }
func (o ToSavings) ActorAccount() string { return o.From }

// FromSavings queues a delayed savings withdrawal.
type FromSavings struct {
	From      string         `wire:"0"`
	To        string         `wire:"1"`
	RequestID uint64         `wire:"2"`
	Symbol    string         `wire:"3"`
	Amount    objects.Amount `wire:"4"`
	Memo      string         `wire:"5"`
}

func (o FromSavings) Kind() Kind           { return KindFromSavings }
func (o FromSavings) ActorAccount() string { return o.From }

// DelegateAsset transfers usage power from the delegator's staked balance
// to the delegatee's receiving balance. Amount zero cancels an existing
// delegation, beginning its cooldown.
type DelegateAsset struct {
	Delegator string         `wire:"0"`
	Delegatee string         `wire:"1"`
	Symbol    string         `wire:"2"`
	Amount    objects.Amount `wire:"3"`
}

func (o DelegateAsset) Kind() Kind           { return KindDelegateAsset }
func (o DelegateAsset) ActorAccount() string { return o.Delegator }
