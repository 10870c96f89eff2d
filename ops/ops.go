// Package ops declares the kernel's closed operation catalogue: one Go
// struct per operation kind, implementing the Operation interface so
// the kernel's Chain.Dispatch can type-switch over them. These types carry no
// evaluation logic — they are the wire-decoded shape of a transaction's
// contents; kernel/ owns the state needed to evaluate them.
//
// Field order matters: wire struct tags (wire:"N") record the strictly
// positional encoding index, independent of Go field declaration order,
// mirrored by the hand-written codecs in wire/ (ops_*.go).
package ops

// Kind tags the closed union of operation variants. Values are stable wire
// identifiers; never renumber once assigned, since this value is encoded
// directly as a uvarint tag on the wire.
type Kind uint32

const (
	KindAccountCreate Kind = iota
	KindAccountUpdate
	KindWitnessVote
	KindUpdateProxy
	KindRequestAccountRecovery
	KindRecoverAccount
	KindResetAccount
	KindDeclineVoting
	KindFollow

	KindComment
	KindCommentVote
	KindCommentView
	KindCommentShare

	KindTransfer
	KindClaimReward
	KindStake
	KindUnstake
	KindUnstakeRoute
	KindToSavings
	KindFromSavings
	KindDelegateAsset

	KindEscrowTransfer
	KindEscrowApprove
	KindEscrowDispute
	KindEscrowRelease

	KindLimitOrderCreate
	KindLimitOrderCancel
	KindMarginOrderOpen
	KindMarginOrderClose
	KindCallOrderUpdate
	KindAuctionOrderCreate
	KindOptionOrderCreate
	KindOptionExercise

	KindLiquidityPoolCreate
	KindLiquidityPoolExchange
	KindLiquidityPoolFund
	KindLiquidityPoolWithdraw
	KindCreditPoolCollateral
	KindCreditPoolBorrow
	KindCreditPoolLend
	KindCreditPoolWithdraw
	KindOptionPoolCreate
	KindPredictionPoolCreate
	KindPredictionPoolExchange
	KindPredictionPoolResolve

	KindAssetCreate
	KindAssetUpdate
	KindAssetIssue
	KindAssetReserve
	KindUpdateFeedProducers
	KindPublishFeed
	KindSettle
	KindGlobalSettle
	KindCollateralBid

	KindProducerUpdate
	KindProofOfWork
	KindVerifyBlock
	KindCommitBlock
	KindProducerViolation

	KindCustom
	KindCustomJSON
)

// Operation is implemented by every operation struct.
type Operation interface {
	Kind() Kind
}

// Actor is implemented by operations whose primary signatory-checked field
// is named something other than a fixed "Account"/"Owner" — the evaluator
// resolves this name as the authorizing account.
type Actor interface {
	ActorAccount() string
}
