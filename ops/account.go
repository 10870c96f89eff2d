package ops

import "github.com/weyoume/wenode-sub002/authority"

// AccountCreate registers a new named account.
type AccountCreate struct {
	Creator   string `wire:"0"`
	NewName   string `wire:"1"`
	Owner     authority.Authority `wire:"2"`
	Active    authority.Authority `wire:"3"`
	Posting   authority.Authority `wire:"4"`
	Fee       uint64 `wire:"5"` // core-asset units, must meet the median account creation fee
}

func (o AccountCreate) Kind() Kind               { return KindAccountCreate }
func (o AccountCreate) ActorAccount() string     { return o.Creator }

// AccountUpdate edits an existing account's authorities/keys/recovery
// fields. A nil authority pointer leaves that authority unchanged.
type AccountUpdate struct {
	Account  string `wire:"0"`
	Owner    *authority.Authority `wire:"1"`
	Active   *authority.Authority `wire:"2"`
	Posting  *authority.Authority `wire:"3"`
	RecoveryAccount string `wire:"4"`
}

func (o AccountUpdate) Kind() Kind           { return KindAccountUpdate }
func (o AccountUpdate) ActorAccount() string { return o.Account }

// WitnessVote casts or rescinds a voter's approval of a producer.
type WitnessVote struct {
	Voter    string `wire:"0"`
	Witness  string `wire:"1"`
	Approve  bool   `wire:"2"`
}

func (o WitnessVote) Kind() Kind           { return KindWitnessVote }
func (o WitnessVote) ActorAccount() string { return o.Voter }

// UpdateProxy delegates voting to a proxy account, or clears it when Proxy
// is empty.
type UpdateProxy struct {
	Account string `wire:"0"`
	Proxy   string `wire:"1"`
}

func (o UpdateProxy) Kind() Kind           { return KindUpdateProxy }
func (o UpdateProxy) ActorAccount() string { return o.Account }

// RequestAccountRecovery is filed by an account's recovery_account to begin
// restoring a compromised account's owner authority.
type RequestAccountRecovery struct {
	RecoveryAccount string              `wire:"0"`
	AccountToRecover string             `wire:"1"`
	NewOwner        authority.Authority `wire:"2"`
}

func (o RequestAccountRecovery) Kind() Kind           { return KindRequestAccountRecovery }
func (o RequestAccountRecovery) ActorAccount() string { return o.RecoveryAccount }

// RecoverAccount is submitted by the account owner, proving control of
// either the old or new owner authority, to complete a pending recovery
// request.
type RecoverAccount struct {
	AccountToRecover string              `wire:"0"`
	NewOwner         authority.Authority `wire:"1"`
	RecentOwner      authority.Authority `wire:"2"`
}

func (o RecoverAccount) Kind() Kind           { return KindRecoverAccount }
func (o RecoverAccount) ActorAccount() string { return o.AccountToRecover }

// ResetAccount is filed by an account's configured reset_account once
// reset_delay has elapsed since the account's last activity.
type ResetAccount struct {
	ResetAccount     string              `wire:"0"`
	AccountToReset   string              `wire:"1"`
	NewOwner         authority.Authority `wire:"2"`
}

func (o ResetAccount) Kind() Kind           { return KindResetAccount }
func (o ResetAccount) ActorAccount() string { return o.ResetAccount }

// DeclineVoting toggles an account's declined-voting flag.
type DeclineVoting struct {
	Account string `wire:"0"`
	Decline bool   `wire:"1"`
}

func (o DeclineVoting) Kind() Kind           { return KindDeclineVoting }
func (o DeclineVoting) ActorAccount() string { return o.Account }

// Follow records a one-way follow/unfollow relationship, used by feed
// construction outside the kernel's scope; the kernel only checks that both
// accounts exist and stores no follow record.
type Follow struct {
	Follower string `wire:"0"`
	Following string `wire:"1"`
	Unfollow bool   `wire:"2"`
}

func (o Follow) Kind() Kind           { return KindFollow }
func (o Follow) ActorAccount() string { return o.Follower }
