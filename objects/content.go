package objects

import "github.com/weyoume/wenode-sub002/store"

// ReachTag is a post's visibility class.
type ReachTag int

const (
	ReachTagFollow ReachTag = iota
	ReachFollow
	ReachMutual
	ReachConnection
	ReachFriend
	ReachCompanion
	ReachCommunity
	ReachNoFeed
)

// CommentOptions is a comment's payout/curation options sub-record.
type CommentOptions struct {
	MaxPayout     Amount
	AllowCuration bool
	AllowVotes    bool
	AllowViews    bool
	AllowShares   bool
	Beneficiaries []Beneficiary
}

// Beneficiary is one (account, share) payout split entry.
type Beneficiary struct {
	Account    string
	PercentBps uint16
}

// Comment is a post or reply.
type Comment struct {
	store.Base

	Author   string
	Permlink string

	ParentAuthor   string
	ParentPermlink string // empty marks a root post

	Created int64

	Body       []byte
	IPFS       string
	Magnet     string
	JSONMeta   []byte
	Ciphertext bool
	PublicKey  [33]byte // empty unless Ciphertext

	Language  string
	Community string
	Tags      []string
	Reach     ReachTag

	Options CommentOptions

	NetReward   SignedAmount
	VotePower   Amount
	ViewPower   Amount
	SharePower  Amount
	CommentPow  Amount

	TotalVoteWeight    Amount
	TotalViewWeight    Amount
	TotalShareWeight   Amount
	TotalCommentWeight Amount

	CashoutTime int64
	CuratorCount int

	// CuratorWeights accumulates each curator's stored weight (the
	// curator differential) keyed by account, consumed once at cashout
	// by reward.SplitCashout/CuratorPayout.
	CuratorWeights map[string]Amount
}

func (c *Comment) AuthorPermlinkKey() (string, string) { return c.Author, c.Permlink }
