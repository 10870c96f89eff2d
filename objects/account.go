// Package objects declares the kernel's record types. Every type embeds
// store.Base for its object identity and is designed to be stored in a
// store.Table[T] with the secondary indexes declared in kernel/schema.go.
package objects

import (
	"github.com/weyoume/wenode-sub002/authority"
	"github.com/weyoume/wenode-sub002/store"
)

// Account is the kernel's per-user record.
type Account struct {
	store.Base

	Name string

	Owner   authority.Authority
	Active  authority.Authority
	Posting authority.Authority

	SecureKey     [33]byte
	ConnectionKey [33]byte
	FriendKey     [33]byte
	CompanionKey  [33]byte

	PostCount     uint32
	FollowerCount uint32

	VotingPower  uint16 // 0..10000, regenerates over time
	ViewPower    uint16
	SharePower   uint16
	CommentPower uint16

	LastVoteTime    int64
	LastPostTime    int64
	LastCommentTime int64
	LastOwnerUpdate int64

	RecoveryAccount string
	ResetAccount    string
	ResetDelaySec   int64

	MembershipTier       uint8
	MembershipExpiration int64
	RecurringMonths      uint8

	LoanDefaultBalance Amount // in the network credit asset

	DeclinedVoting bool
	Active_        bool // soft-deactivation flag; named Active_ to avoid clashing with the Active authority field
}

func (a *Account) ObjectIDKey() string { return a.Name }

// OwnerUpdateLimitSeconds is OWNER_UPDATE_LIMIT: an owner authority may be
// changed at most once per this interval.
const OwnerUpdateLimitSeconds = 60 * 60

// CanUpdateOwner reports whether enough time has elapsed since the last
// owner-authority update at evaluation time now. The boundary is exclusive:
// exactly OwnerUpdateLimitSeconds ago is still rejected; one second earlier
// is accepted.
func (a *Account) CanUpdateOwner(now int64) bool {
	return now-a.LastOwnerUpdate > OwnerUpdateLimitSeconds
}
