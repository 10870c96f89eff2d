package kernel

import (
	"math/big"
	"sort"

	"github.com/weyoume/wenode-sub002/balance"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/reward"
	"github.com/weyoume/wenode-sub002/undo"
)

func bigFromAmount(a objects.Amount) *big.Int { return new(big.Int).SetUint64(a.Uint64()) }
func bigFromUint64(v uint64) *big.Int         { return new(big.Int).SetUint64(v) }

// curationPercentBps is the complement of the author's share of a post's
// curation-eligible remainder; fixed here since there is no
// producer-voted override for it.
const curationPercentBps = 5000

// processCashouts pays out every comment whose CashoutTime has arrived,
// splitting NetReward across beneficiaries, curators, and the author via
// reward.SplitCashout, crediting the reward sub-balance of each recipient.
// contentRewardPoolPerCashout is the fixed amount of CoreSymbol minted per
// matured comment's reward curve (a per-asset reward fund in a full
// system; fixed here since there is no issuance schedule for it).
var contentRewardPoolPerCashout = objects.NewAmount(1_000_000)

func (c *Chain) processCashouts(sess *undo.Session, now int64) error {
	due := c.CommentByCashout.Range(func(t int64) bool { return t > 0 && t <= now })
	for _, cm := range due {
		totalEngagement, _ := cm.TotalVoteWeight.Add(cm.TotalViewWeight)
		totalEngagement, _ = totalEngagement.Add(cm.TotalShareWeight)
		totalEngagement, _ = totalEngagement.Add(cm.TotalCommentWeight)
		if !totalEngagement.IsZero() && !cm.NetReward.Negative {
			// Bounded-curation shape: reward grows with the square root of
			// accumulated engagement weight, capped at the fixed per-post
			// pool.
			curved := new(big.Int).Sqrt(bigFromAmount(totalEngagement))
			payout := objects.NewAmount(curved.Uint64())
			if payout.Cmp(contentRewardPoolPerCashout) > 0 {
				payout = contentRewardPoolPerCashout
			}
			c.Comments.Modify(sess, cm, func(m *objects.Comment) { m.NetReward = objects.Pos(payout) })
		}
		if cm.NetReward.Magnitude.IsZero() || cm.NetReward.Negative {
			c.Comments.Modify(sess, cm, func(m *objects.Comment) { m.CashoutTime = 0 })
			continue
		}
		curators := make([]reward.CuratorSplit, 0, len(cm.CuratorWeights))
		for acct, w := range cm.CuratorWeights {
			curators = append(curators, reward.CuratorSplit{Account: acct, Weight: w})
		}
		sort.Slice(curators, func(i, j int) bool { return curators[i].Account < curators[j].Account })

		split, err := reward.SplitCashout(cm.NetReward.Magnitude, cm.Options.Beneficiaries, curationPercentBps, curators)
		if err != nil {
			return err
		}
		if err := c.Bal.Adjust(sess, cm.Author, CoreSymbol, balance.Reward, objects.Pos(split.Author)); err != nil {
			return err
		}
		for account, share := range split.Beneficiaries {
			if err := c.Bal.Adjust(sess, account, CoreSymbol, balance.Reward, objects.Pos(share)); err != nil {
				return err
			}
		}
		totalWeight := objects.ZeroAmount()
		for _, cur := range curators {
			totalWeight, _ = totalWeight.Add(cur.Weight)
		}
		for _, cur := range curators {
			payout, err := reward.CuratorPayout(split.Curators, cur.Weight, totalWeight)
			if err != nil {
				return err
			}
			if err := c.Bal.Adjust(sess, cur.Account, CoreSymbol, balance.Reward, objects.Pos(payout)); err != nil {
				return err
			}
		}
		c.Comments.Modify(sess, cm, func(m *objects.Comment) {
			m.CashoutTime = 0
			m.NetReward = objects.SignedAmount{}
		})
	}
	return nil
}
