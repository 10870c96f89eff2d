package kernel

import (
	"fmt"
	"math/big"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/reward"
	"github.com/weyoume/wenode-sub002/undo"
)

// cashoutDelaySeconds is how long after creation a comment accumulates
// curation weight before its net_reward is split and paid out (spec
// §4.9); the window also bounds LinearAuctionDecay's ramp for every
// curation action that lands on it.
const cashoutDelaySeconds = 7 * 24 * 60 * 60

func (c *Chain) evalComment(sess *undo.Session, o ops.Comment) error {
	if err := c.requireAccount(o.Author); err != nil {
		return err
	}
	if o.ParentAuthor != "" {
		if _, ok := c.CommentByAuthorPermlink.Find(TripleKey{o.ParentAuthor, o.ParentPermlink, ""}); !ok {
			return fmt.Errorf("%w: parent comment %s/%s", kernelerr.ErrNotFound, o.ParentAuthor, o.ParentPermlink)
		}
	}
	var totalBps uint16
	for _, b := range o.Options.Beneficiaries {
		totalBps += b.PercentBps
	}
	if totalBps > 10000 {
		return fmt.Errorf("%w: beneficiary shares exceed 100%%", kernelerr.ErrInvariant)
	}

	if existing, ok := c.CommentByAuthorPermlink.Find(TripleKey{o.Author, o.Permlink, ""}); ok {
		if c.Now >= existing.CashoutTime {
			return fmt.Errorf("%w: comment already cashed out, no further edits", kernelerr.ErrPrecondition)
		}
		c.Comments.Modify(sess, existing, func(cm *objects.Comment) {
			cm.Body = o.Body
			cm.IPFS = o.IPFS
			cm.Magnet = o.Magnet
			cm.JSONMeta = o.JSONMeta
			cm.Tags = o.Tags
			cm.Options = o.Options
		})
		return nil
	}

	c.Comments.Create(sess, func(cm *objects.Comment) {
		cm.Author = o.Author
		cm.Permlink = o.Permlink
		cm.ParentAuthor = o.ParentAuthor
		cm.ParentPermlink = o.ParentPermlink
		cm.Created = c.Now
		cm.Body = o.Body
		cm.IPFS = o.IPFS
		cm.Magnet = o.Magnet
		cm.JSONMeta = o.JSONMeta
		cm.Ciphertext = o.Ciphertext
		cm.PublicKey = o.PublicKey
		cm.Language = o.Language
		cm.Community = o.Community
		cm.Tags = o.Tags
		cm.Reach = o.Reach
		cm.Options = o.Options
		cm.CashoutTime = c.Now + cashoutDelaySeconds
		cm.CuratorWeights = make(map[string]objects.Amount)
	})
	acc, _ := c.AccountsByName.Find(o.Author)
	c.Accounts.Modify(sess, acc, func(a *objects.Account) {
		a.PostCount++
		a.LastPostTime = c.Now
		a.LastCommentTime = c.Now
	})
	return nil
}

// curationTarget looks up a comment by (author, permlink), failing if it is
// absent, closed for curation, or past cashout — the three preconditions
// every vote/view/share evaluator shares: curation is only eligible before
// a post's cashout_time.
func (c *Chain) curationTarget(author, permlink string, allow func(objects.CommentOptions) bool) (*objects.Comment, error) {
	cm, ok := c.CommentByAuthorPermlink.Find(TripleKey{author, permlink, ""})
	if !ok {
		return nil, fmt.Errorf("%w: comment %s/%s", kernelerr.ErrNotFound, author, permlink)
	}
	if c.Now >= cm.CashoutTime {
		return nil, fmt.Errorf("%w: comment has already cashed out", kernelerr.ErrPrecondition)
	}
	if !allow(cm.Options) {
		return nil, fmt.Errorf("%w: curation action disallowed by comment options", kernelerr.ErrPrecondition)
	}
	return cm, nil
}

func (c *Chain) evalCommentVote(sess *undo.Session, o ops.CommentVote) error {
	acc, ok := c.AccountsByName.Find(o.Voter)
	if !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.Voter)
	}
	if o.WeightBps > 10000 || o.WeightBps < -10000 {
		return fmt.Errorf("%w: vote weight out of range", kernelerr.ErrInvariant)
	}
	cm, err := c.curationTarget(o.Author, o.Permlink, func(opt objects.CommentOptions) bool { return opt.AllowVotes })
	if err != nil {
		return err
	}
	percent := o.WeightBps
	if percent < 0 {
		percent = -percent
	}
	used := reward.UsedPower(acc.VotingPower, uint16(percent))
	props := c.currentProperties()
	oldPower := bigFromAmount(cm.TotalVoteWeight)
	newPower := new(big.Int).Add(oldPower, bigFromUint64(used))
	weight := reward.CuratorWeight(reward.CurveBoundedCuration, oldPower, newPower,
		c.Now-cm.Created, props.VoteCurationDecay, cm.CuratorCount)
	c.Comments.Modify(sess, cm, func(m *objects.Comment) {
		if o.WeightBps < 0 {
			m.NetReward.Negative = true
		}
		m.TotalVoteWeight, _ = m.TotalVoteWeight.Add(objects.NewAmount(used))
		m.CuratorCount++
		if m.CuratorWeights == nil {
			m.CuratorWeights = make(map[string]objects.Amount)
		}
		cur := m.CuratorWeights[o.Voter]
		m.CuratorWeights[o.Voter], _ = cur.Add(objects.NewAmount(weight.Uint64()))
	})
	c.Accounts.Modify(sess, acc, func(a *objects.Account) { a.LastVoteTime = c.Now })
	return nil
}

func (c *Chain) evalCommentView(sess *undo.Session, o ops.CommentView) error {
	acc, ok := c.AccountsByName.Find(o.Viewer)
	if !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.Viewer)
	}
	cm, err := c.curationTarget(o.Author, o.Permlink, func(opt objects.CommentOptions) bool { return opt.AllowViews })
	if err != nil {
		return err
	}
	c.Comments.Modify(sess, cm, func(m *objects.Comment) {
		m.TotalViewWeight, _ = m.TotalViewWeight.Add(objects.NewAmount(uint64(acc.ViewPower)))
		m.CuratorCount++
	})
	return nil
}

func (c *Chain) evalCommentShare(sess *undo.Session, o ops.CommentShare) error {
	acc, ok := c.AccountsByName.Find(o.Sharer)
	if !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.Sharer)
	}
	cm, err := c.curationTarget(o.Author, o.Permlink, func(opt objects.CommentOptions) bool { return opt.AllowShares })
	if err != nil {
		return err
	}
	c.Comments.Modify(sess, cm, func(m *objects.Comment) {
		m.TotalShareWeight, _ = m.TotalShareWeight.Add(objects.NewAmount(uint64(acc.SharePower)))
		m.CuratorCount++
	})
	return nil
}
