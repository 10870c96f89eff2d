package wire

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/ops"
)

// decodeFn decodes one operation body, having already consumed its tag.
type decodeFn func(*Reader) (ops.Operation, error)

// decoders is the tag -> decoder dispatch table the operation catalogue's
// closed union resolves through. Built once at package init rather than
// as a runtime-constructed map literal per call.
var decoders = map[ops.Kind]decodeFn{
	ops.KindAccountCreate:           decodeAccountCreate,
	ops.KindAccountUpdate:           decodeAccountUpdate,
	ops.KindWitnessVote:             decodeWitnessVote,
	ops.KindUpdateProxy:             decodeUpdateProxy,
	ops.KindRequestAccountRecovery:  decodeRequestAccountRecovery,
	ops.KindRecoverAccount:          decodeRecoverAccount,
	ops.KindResetAccount:            decodeResetAccount,
	ops.KindDeclineVoting:           decodeDeclineVoting,
	ops.KindFollow:                  decodeFollow,

	ops.KindComment:      decodeComment,
	ops.KindCommentVote:  decodeCommentVote,
	ops.KindCommentView:  decodeCommentView,
	ops.KindCommentShare: decodeCommentShare,

	ops.KindTransfer:      decodeTransfer,
	ops.KindClaimReward:   decodeClaimReward,
	ops.KindStake:         decodeStake,
	ops.KindUnstake:       decodeUnstake,
	ops.KindUnstakeRoute:  decodeUnstakeRoute,
	ops.KindToSavings:     decodeToSavings,
	ops.KindFromSavings:   decodeFromSavings,
	ops.KindDelegateAsset: decodeDelegateAsset,

	ops.KindEscrowTransfer: decodeEscrowTransfer,
	ops.KindEscrowApprove:  decodeEscrowApprove,
	ops.KindEscrowDispute:  decodeEscrowDispute,
	ops.KindEscrowRelease:  decodeEscrowRelease,

	ops.KindLimitOrderCreate:   decodeLimitOrderCreate,
	ops.KindLimitOrderCancel:   decodeLimitOrderCancel,
	ops.KindMarginOrderOpen:    decodeMarginOrderOpen,
	ops.KindMarginOrderClose:   decodeMarginOrderClose,
	ops.KindCallOrderUpdate:    decodeCallOrderUpdate,
	ops.KindAuctionOrderCreate: decodeAuctionOrderCreate,
	ops.KindOptionOrderCreate:  decodeOptionOrderCreate,
	ops.KindOptionExercise:     decodeOptionExercise,

	ops.KindLiquidityPoolCreate:     decodeLiquidityPoolCreate,
	ops.KindLiquidityPoolExchange:   decodeLiquidityPoolExchange,
	ops.KindLiquidityPoolFund:       decodeLiquidityPoolFund,
	ops.KindLiquidityPoolWithdraw:   decodeLiquidityPoolWithdraw,
	ops.KindCreditPoolCollateral:    decodeCreditPoolCollateral,
	ops.KindCreditPoolBorrow:        decodeCreditPoolBorrow,
	ops.KindCreditPoolLend:          decodeCreditPoolLend,
	ops.KindCreditPoolWithdraw:      decodeCreditPoolWithdraw,
	ops.KindOptionPoolCreate:        decodeOptionPoolCreate,
	ops.KindPredictionPoolCreate:    decodePredictionPoolCreate,
	ops.KindPredictionPoolExchange:  decodePredictionPoolExchange,
	ops.KindPredictionPoolResolve:   decodePredictionPoolResolve,

	ops.KindAssetCreate:         decodeAssetCreate,
	ops.KindAssetUpdate:         decodeAssetUpdate,
	ops.KindAssetIssue:          decodeAssetIssue,
	ops.KindAssetReserve:        decodeAssetReserve,
	ops.KindUpdateFeedProducers: decodeUpdateFeedProducers,
	ops.KindPublishFeed:         decodePublishFeed,
	ops.KindSettle:              decodeSettle,
	ops.KindGlobalSettle:        decodeGlobalSettle,
	ops.KindCollateralBid:       decodeCollateralBid,

	ops.KindProducerUpdate:    decodeProducerUpdate,
	ops.KindProofOfWork:       decodeProofOfWork,
	ops.KindVerifyBlock:       decodeVerifyBlock,
	ops.KindCommitBlock:       decodeCommitBlock,
	ops.KindProducerViolation: decodeProducerViolation,

	ops.KindCustom:     decodeCustom,
	ops.KindCustomJSON: decodeCustomJSON,
}

// EncodeOperation appends op's uvarint tag followed by its positionally
// encoded fields.
func EncodeOperation(w *Writer, op ops.Operation) error {
	w.WriteUvarint(uint64(op.Kind()))
	switch o := op.(type) {
	case ops.AccountCreate:
		encodeAccountCreate(w, o)
	case ops.AccountUpdate:
		encodeAccountUpdate(w, o)
	case ops.WitnessVote:
		encodeWitnessVote(w, o)
	case ops.UpdateProxy:
		encodeUpdateProxy(w, o)
	case ops.RequestAccountRecovery:
		encodeRequestAccountRecovery(w, o)
	case ops.RecoverAccount:
		encodeRecoverAccount(w, o)
	case ops.ResetAccount:
		encodeResetAccount(w, o)
	case ops.DeclineVoting:
		encodeDeclineVoting(w, o)
	case ops.Follow:
		encodeFollow(w, o)

	case ops.Comment:
		encodeComment(w, o)
	case ops.CommentVote:
		encodeCommentVote(w, o)
	case ops.CommentView:
		encodeCommentView(w, o)
	case ops.CommentShare:
		encodeCommentShare(w, o)

	case ops.Transfer:
		encodeTransfer(w, o)
	case ops.ClaimReward:
		encodeClaimReward(w, o)
	case ops.Stake:
		encodeStake(w, o)
	case ops.Unstake:
		encodeUnstake(w, o)
	case ops.UnstakeRoute:
		encodeUnstakeRoute(w, o)
	case ops.ToSavings:
		encodeToSavings(w, o)
	case ops.FromSavings:
		encodeFromSavings(w, o)
	case ops.DelegateAsset:
		encodeDelegateAsset(w, o)

	case ops.EscrowTransfer:
		encodeEscrowTransfer(w, o)
	case ops.EscrowApprove:
		encodeEscrowApprove(w, o)
	case ops.EscrowDispute:
		encodeEscrowDispute(w, o)
	case ops.EscrowRelease:
		encodeEscrowRelease(w, o)

	case ops.LimitOrderCreate:
		encodeLimitOrderCreate(w, o)
	case ops.LimitOrderCancel:
		encodeLimitOrderCancel(w, o)
	case ops.MarginOrderOpen:
		encodeMarginOrderOpen(w, o)
	case ops.MarginOrderClose:
		encodeMarginOrderClose(w, o)
	case ops.CallOrderUpdate:
		encodeCallOrderUpdate(w, o)
	case ops.AuctionOrderCreate:
		encodeAuctionOrderCreate(w, o)
	case ops.OptionOrderCreate:
		encodeOptionOrderCreate(w, o)
	case ops.OptionExercise:
		encodeOptionExercise(w, o)

	case ops.LiquidityPoolCreate:
		encodeLiquidityPoolCreate(w, o)
	case ops.LiquidityPoolExchange:
		encodeLiquidityPoolExchange(w, o)
	case ops.LiquidityPoolFund:
		encodeLiquidityPoolFund(w, o)
	case ops.LiquidityPoolWithdraw:
		encodeLiquidityPoolWithdraw(w, o)
	case ops.CreditPoolCollateral:
		encodeCreditPoolCollateral(w, o)
	case ops.CreditPoolBorrow:
		encodeCreditPoolBorrow(w, o)
	case ops.CreditPoolLend:
		encodeCreditPoolLend(w, o)
	case ops.CreditPoolWithdraw:
		encodeCreditPoolWithdraw(w, o)
	case ops.OptionPoolCreate:
		encodeOptionPoolCreate(w, o)
	case ops.PredictionPoolCreate:
		encodePredictionPoolCreate(w, o)
	case ops.PredictionPoolExchange:
		encodePredictionPoolExchange(w, o)
	case ops.PredictionPoolResolve:
		encodePredictionPoolResolve(w, o)

	case ops.AssetCreate:
		encodeAssetCreate(w, o)
	case ops.AssetUpdate:
		encodeAssetUpdate(w, o)
	case ops.AssetIssue:
		encodeAssetIssue(w, o)
	case ops.AssetReserve:
		encodeAssetReserve(w, o)
	case ops.UpdateFeedProducers:
		encodeUpdateFeedProducers(w, o)
	case ops.PublishFeed:
		encodePublishFeed(w, o)
	case ops.Settle:
		encodeSettle(w, o)
	case ops.GlobalSettle:
		encodeGlobalSettle(w, o)
	case ops.CollateralBid:
		encodeCollateralBid(w, o)

	case ops.ProducerUpdate:
		encodeProducerUpdate(w, o)
	case ops.ProofOfWork:
		encodeProofOfWork(w, o)
	case ops.VerifyBlock:
		encodeVerifyBlock(w, o)
	case ops.CommitBlock:
		encodeCommitBlock(w, o)
	case ops.ProducerViolation:
		encodeProducerViolation(w, o)

	case ops.Custom:
		encodeCustom(w, o)
	case ops.CustomJSON:
		encodeCustomJSON(w, o)

	default:
		return fmt.Errorf("%w: unrecognized operation kind %T", ErrMalformed, op)
	}
	return nil
}

// DecodeOperation reads one tagged operation: a uvarint kind followed by
// its positionally encoded fields.
func DecodeOperation(r *Reader) (ops.Operation, error) {
	tag, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	decode, ok := decoders[ops.Kind(tag)]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized operation tag %d", ErrMalformed, tag)
	}
	return decode(r)
}
