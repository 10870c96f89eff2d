package kernel

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/balance"
	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/undo"
)

func (c *Chain) requireAccount(name string) error {
	if _, ok := c.AccountsByName.Find(name); !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, name)
	}
	return nil
}

func (c *Chain) evalTransfer(sess *undo.Session, o ops.Transfer) error {
	if err := c.requireAccount(o.From); err != nil {
		return err
	}
	if err := c.requireAccount(o.To); err != nil {
		return err
	}
	if err := c.Bal.Adjust(sess, o.From, o.Symbol, balance.Liquid, objects.Neg(o.Amount)); err != nil {
		return err
	}
	return c.Bal.Adjust(sess, o.To, o.Symbol, balance.Liquid, objects.Pos(o.Amount))
}

func (c *Chain) evalClaimReward(sess *undo.Session, o ops.ClaimReward) error {
	if err := c.Bal.Adjust(sess, o.Account, o.Symbol, balance.Reward, objects.Neg(o.Amount)); err != nil {
		return err
	}
	return c.Bal.Adjust(sess, o.Account, o.Symbol, balance.Liquid, objects.Pos(o.Amount))
}

func (c *Chain) evalStake(sess *undo.Session, o ops.Stake) error {
	if err := c.requireAccount(o.To); err != nil {
		return err
	}
	asset, ok := c.AssetsBySymbol.Find(o.Symbol)
	if !ok {
		return fmt.Errorf("%w: asset %s", kernelerr.ErrNotFound, o.Symbol)
	}
	// The vesting cursor lives on the recipient's own balance (vesting.go
	// drains its own Liquid into its own Staked one interval at a time), so
	// staking on behalf of another account first moves the liquid there
	// immediately, then begins that account's cursor.
	if o.From != o.To {
		if err := c.Bal.Adjust(sess, o.From, o.Symbol, balance.Liquid, objects.Neg(o.Amount)); err != nil {
			return err
		}
		if err := c.Bal.Adjust(sess, o.To, o.Symbol, balance.Liquid, objects.Pos(o.Amount)); err != nil {
			return err
		}
	}
	bal := c.getOrCreateBalance(sess, o.To, o.Symbol)
	if o.Amount.Cmp(bal.Liquid) > 0 {
		return fmt.Errorf("%w: insufficient liquid balance to stake", kernelerr.ErrPrecondition)
	}
	intervals := asset.StakeIntervals
	if intervals == 0 {
		intervals = 1
	}
	c.Bal.BeginStake(sess, bal, o.Amount, intervals, c.Now)
	return nil
}

func (c *Chain) evalUnstake(sess *undo.Session, o ops.Unstake) error {
	asset, ok := c.AssetsBySymbol.Find(o.Symbol)
	if !ok {
		return fmt.Errorf("%w: asset %s", kernelerr.ErrNotFound, o.Symbol)
	}
	bal, ok := c.Bal.ByAccountSymbol.Find([2]string{o.Account, o.Symbol})
	if !ok {
		return fmt.Errorf("%w: no balance for %s/%s", kernelerr.ErrNotFound, o.Account, o.Symbol)
	}
	if o.Amount.Cmp(bal.Staked) > 0 {
		return fmt.Errorf("%w: unstake amount exceeds staked balance", kernelerr.ErrPrecondition)
	}
	intervals := asset.UnstakeIntervals
	if intervals == 0 {
		intervals = 1
	}
	c.Bal.BeginUnstake(sess, bal, o.Amount, intervals, c.Now)
	return nil
}

func (c *Chain) evalUnstakeRoute(sess *undo.Session, o ops.UnstakeRoute) error {
	if err := c.requireAccount(o.ToAccount); err != nil {
		return err
	}
	bal := c.getOrCreateBalance(sess, o.Account, o.Symbol)
	var total uint32
	for _, r := range bal.UnstakeRoutes {
		if r.ToAccount != o.ToAccount {
			total += uint32(r.PercentBps)
		}
	}
	total += uint32(o.PercentBps)
	if total > 10000 {
		return fmt.Errorf("%w: unstake routes would exceed 100%%", kernelerr.ErrInvariant)
	}
	c.Bal.Balances.Modify(sess, bal, func(b *objects.Balance) {
		routes := make([]objects.UnstakeRoute, 0, len(b.UnstakeRoutes)+1)
		for _, r := range b.UnstakeRoutes {
			if r.ToAccount != o.ToAccount {
				routes = append(routes, r)
			}
		}
		if o.PercentBps > 0 {
			routes = append(routes, objects.UnstakeRoute{ToAccount: o.ToAccount, PercentBps: o.PercentBps, AutoStake: o.AutoStake})
		}
		b.UnstakeRoutes = routes
	})
	return nil
}

func (c *Chain) getOrCreateBalance(sess *undo.Session, account, symbol string) *objects.Balance {
	if bal, ok := c.Bal.ByAccountSymbol.Find([2]string{account, symbol}); ok {
		return bal
	}
	return c.Bal.Balances.Create(sess, func(b *objects.Balance) {
		b.Account = account
		b.Symbol = symbol
	})
}

func (c *Chain) evalToSavings(sess *undo.Session, o ops.ToSavings) error {
	if err := c.requireAccount(o.To); err != nil {
		return err
	}
	if err := c.Bal.Adjust(sess, o.From, o.Symbol, balance.Liquid, objects.Neg(o.Amount)); err != nil {
		return err
	}
	return c.Bal.Adjust(sess, o.To, o.Symbol, balance.Savings, objects.Pos(o.Amount))
}

func (c *Chain) evalFromSavings(sess *undo.Session, o ops.FromSavings) error {
	if err := c.requireAccount(o.To); err != nil {
		return err
	}
	bal, ok := c.Bal.ByAccountSymbol.Find([2]string{o.From, o.Symbol})
	if !ok || o.Amount.Cmp(bal.Savings) > 0 {
		return fmt.Errorf("%w: insufficient savings balance", kernelerr.ErrPrecondition)
	}
	if err := c.Bal.Adjust(sess, o.From, o.Symbol, balance.Savings, objects.Neg(o.Amount)); err != nil {
		return err
	}
	const savingsWithdrawDelaySeconds = 3 * 24 * 60 * 60
	c.SavingsWithdraws.Create(sess, func(w *objects.SavingsWithdraw) {
		w.From = o.From
		w.To = o.To
		w.RequestID = o.RequestID
		w.Symbol = o.Symbol
		w.Amount = o.Amount
		w.Memo = o.Memo
		w.Complete = c.Now + savingsWithdrawDelaySeconds
	})
	return nil
}

func (c *Chain) evalDelegateAsset(sess *undo.Session, o ops.DelegateAsset) error {
	if err := c.requireAccount(o.Delegatee); err != nil {
		return err
	}
	if o.Delegator == o.Delegatee {
		return fmt.Errorf("%w: an account may not delegate to itself", kernelerr.ErrInvariant)
	}
	existing, has := c.DelegationByTriple.Find(TripleKey{o.Delegator, o.Delegatee, o.Symbol})
	if o.Amount.IsZero() {
		if !has {
			return fmt.Errorf("%w: no delegation to cancel", kernelerr.ErrNotFound)
		}
		if err := c.Bal.Adjust(sess, o.Delegator, o.Symbol, balance.Delegated, objects.Neg(existing.Amount)); err != nil {
			return err
		}
		if err := c.Bal.Adjust(sess, o.Delegatee, o.Symbol, balance.Receiving, objects.Neg(existing.Amount)); err != nil {
			return err
		}
		c.Delegations.Modify(sess, existing, func(d *objects.AssetDelegation) {
			d.EffectiveOn = c.Now + objects.MinDelegationTimeSeconds
			d.Amount = objects.ZeroAmount()
		})
		return nil
	}
	if has {
		delta, err := o.Amount.Sub(existing.Amount)
		if err != nil {
			return err
		}
		if err := c.Bal.Adjust(sess, o.Delegator, o.Symbol, balance.Delegated, objects.Pos(delta)); err != nil {
			return err
		}
		if err := c.Bal.Adjust(sess, o.Delegatee, o.Symbol, balance.Receiving, objects.Pos(delta)); err != nil {
			return err
		}
		c.Delegations.Modify(sess, existing, func(d *objects.AssetDelegation) { d.Amount = o.Amount })
		return nil
	}
	if err := c.Bal.Adjust(sess, o.Delegator, o.Symbol, balance.Delegated, objects.Pos(o.Amount)); err != nil {
		return err
	}
	if err := c.Bal.Adjust(sess, o.Delegatee, o.Symbol, balance.Receiving, objects.Pos(o.Amount)); err != nil {
		return err
	}
	c.Delegations.Create(sess, func(d *objects.AssetDelegation) {
		d.Delegator = o.Delegator
		d.Delegatee = o.Delegatee
		d.Symbol = o.Symbol
		d.Amount = o.Amount
	})
	return nil
}
