package kernel

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/undo"
)

// Dispatch routes one decoded operation to its evaluator: the closed
// operation catalogue means every ops.Kind maps to exactly one evaluator,
// run inside its own undo scope by ApplyTransaction.
func (c *Chain) Dispatch(sess *undo.Session, op ops.Operation) error {
	switch o := op.(type) {
	case ops.AccountCreate:
		return c.evalAccountCreate(sess, o)
	case ops.AccountUpdate:
		return c.evalAccountUpdate(sess, o)
	case ops.WitnessVote:
		return c.evalWitnessVote(sess, o)
	case ops.UpdateProxy:
		return c.evalUpdateProxy(sess, o)
	case ops.RequestAccountRecovery:
		return c.evalRequestAccountRecovery(sess, o)
	case ops.RecoverAccount:
		return c.evalRecoverAccount(sess, o)
	case ops.ResetAccount:
		return c.evalResetAccount(sess, o)
	case ops.DeclineVoting:
		return c.evalDeclineVoting(sess, o)
	case ops.Follow:
		return c.evalFollow(sess, o)

	case ops.Comment:
		return c.evalComment(sess, o)
	case ops.CommentVote:
		return c.evalCommentVote(sess, o)
	case ops.CommentView:
		return c.evalCommentView(sess, o)
	case ops.CommentShare:
		return c.evalCommentShare(sess, o)

	case ops.Transfer:
		return c.evalTransfer(sess, o)
	case ops.ClaimReward:
		return c.evalClaimReward(sess, o)
	case ops.Stake:
		return c.evalStake(sess, o)
	case ops.Unstake:
		return c.evalUnstake(sess, o)
	case ops.UnstakeRoute:
		return c.evalUnstakeRoute(sess, o)
	case ops.ToSavings:
		return c.evalToSavings(sess, o)
	case ops.FromSavings:
		return c.evalFromSavings(sess, o)
	case ops.DelegateAsset:
		return c.evalDelegateAsset(sess, o)

	case ops.EscrowTransfer:
		return c.evalEscrowTransfer(sess, o)
	case ops.EscrowApprove:
		return c.evalEscrowApprove(sess, o)
	case ops.EscrowDispute:
		return c.evalEscrowDispute(sess, o)
	case ops.EscrowRelease:
		return c.evalEscrowRelease(sess, o)

	case ops.LimitOrderCreate:
		return c.evalLimitOrderCreate(sess, o)
	case ops.LimitOrderCancel:
		return c.evalLimitOrderCancel(sess, o)
	case ops.MarginOrderOpen:
		return c.evalMarginOrderOpen(sess, o)
	case ops.MarginOrderClose:
		return c.evalMarginOrderClose(sess, o)
	case ops.CallOrderUpdate:
		return c.evalCallOrderUpdate(sess, o)
	case ops.AuctionOrderCreate:
		return c.evalAuctionOrderCreate(sess, o)
	case ops.OptionOrderCreate:
		return c.evalOptionOrderCreate(sess, o)
	case ops.OptionExercise:
		return c.evalOptionExercise(sess, o)

	case ops.LiquidityPoolCreate:
		return c.evalLiquidityPoolCreate(sess, o)
	case ops.LiquidityPoolExchange:
		return c.evalLiquidityPoolExchange(sess, o)
	case ops.LiquidityPoolFund:
		return c.evalLiquidityPoolFund(sess, o)
	case ops.LiquidityPoolWithdraw:
		return c.evalLiquidityPoolWithdraw(sess, o)
	case ops.CreditPoolCollateral:
		return c.evalCreditPoolCollateral(sess, o)
	case ops.CreditPoolBorrow:
		return c.evalCreditPoolBorrow(sess, o)
	case ops.CreditPoolLend:
		return c.evalCreditPoolLend(sess, o)
	case ops.CreditPoolWithdraw:
		return c.evalCreditPoolWithdraw(sess, o)
	case ops.OptionPoolCreate:
		return c.evalOptionPoolCreate(sess, o)
	case ops.PredictionPoolCreate:
		return c.evalPredictionPoolCreate(sess, o)
	case ops.PredictionPoolExchange:
		return c.evalPredictionPoolExchange(sess, o)
	case ops.PredictionPoolResolve:
		return c.evalPredictionPoolResolve(sess, o)

	case ops.AssetCreate:
		return c.evalAssetCreate(sess, o)
	case ops.AssetUpdate:
		return c.evalAssetUpdate(sess, o)
	case ops.AssetIssue:
		return c.evalAssetIssue(sess, o)
	case ops.AssetReserve:
		return c.evalAssetReserve(sess, o)
	case ops.UpdateFeedProducers:
		return c.evalUpdateFeedProducers(sess, o)
	case ops.PublishFeed:
		return c.evalPublishFeed(sess, o)
	case ops.Settle:
		return c.evalSettle(sess, o)
	case ops.GlobalSettle:
		return c.evalGlobalSettle(sess, o)
	case ops.CollateralBid:
		return c.evalCollateralBid(sess, o)

	case ops.ProducerUpdate:
		return c.evalProducerUpdate(sess, o)
	case ops.ProofOfWork:
		return c.evalProofOfWork(sess, o)
	case ops.VerifyBlock:
		return c.evalVerifyBlock(sess, o)
	case ops.CommitBlock:
		return c.evalCommitBlock(sess, o)
	case ops.ProducerViolation:
		return c.evalProducerViolation(sess, o)

	case ops.Custom:
		return c.evalCustom(sess, o)
	case ops.CustomJSON:
		return c.evalCustomJSON(sess, o)

	default:
		return fmt.Errorf("%w: unrecognized operation kind %T", kernelerr.ErrInvariant, op)
	}
}
