package objects

import (
	"github.com/weyoume/wenode-sub002/authority"
	"github.com/weyoume/wenode-sub002/store"
)

// Escrow holds funds pending multi-party release, dispute, or refund.
type Escrow struct {
	store.Base

	From   string
	To     string
	Agent  string
	ID     uint64

	Symbol    string
	Amount    Amount
	Fee       Amount

	Disputed  bool
	Approved  map[string]bool // party -> approved release
	Expiration int64
}

// RecoveryRequest is a pending owner-authority recovery filed by a
// recovery_account.
type RecoveryRequest struct {
	store.Base

	Account       string
	NewOwner      authority.Authority
	Expiration    int64
}

// SavingsWithdraw is a delayed savings withdrawal request.
type SavingsWithdraw struct {
	store.Base

	From       string
	To         string
	RequestID  uint64
	Symbol     string
	Amount     Amount
	Memo       string
	Complete   int64
}

// AssetDelegation is delegated voting/usage power with a cooldown-gated
// return.
type AssetDelegation struct {
	store.Base

	Delegator string
	Delegatee string
	Symbol    string
	Amount    Amount
	EffectiveOn int64 // zero while active; set once undelegation begins
}

// MinDelegationTimeSeconds is the floor on a delegation's return-of-power
// cooldown.
const MinDelegationTimeSeconds = 5 * 24 * 60 * 60

// ForcedSettlementRequest is a queued bitasset redemption: an asset
// holder's liquid balance is escrowed here until ExecutesAt, when
// maintenance redeems it at the feed price then in effect.
type ForcedSettlementRequest struct {
	store.Base

	Owner      string
	Symbol     string
	Amount     Amount
	QueuedAt   int64
	ExecutesAt int64
}

// CollateralBidRecord is a post-global-settlement revival bid, held until
// maintenance checks whether the aggregate of all bids for a symbol meets
// the asset's MCR.
type CollateralBidRecord struct {
	store.Base

	Bidder     string
	Symbol     string
	Collateral Amount
	Debt       Amount
}
