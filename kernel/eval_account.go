package kernel

import (
	"fmt"
	"reflect"

	"github.com/weyoume/wenode-sub002/authority"
	"github.com/weyoume/wenode-sub002/balance"
	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/undo"
)

// CoreSymbol is the network's base currency asset, seeded at genesis and
// used for account-creation fees and every pool's first side.
const CoreSymbol = "COIN"

func (c *Chain) evalAccountCreate(sess *undo.Session, o ops.AccountCreate) error {
	if _, exists := c.AccountsByName.Find(o.NewName); exists {
		return fmt.Errorf("%w: account %s already exists", kernelerr.ErrInvariant, o.NewName)
	}
	if !o.Owner.Valid() || !o.Active.Valid() || !o.Posting.Valid() {
		return fmt.Errorf("%w: malformed authority in account_create", kernelerr.ErrInvariant)
	}
	props := c.currentProperties()
	if o.Fee < props.AccountCreationFee.Uint64() {
		return fmt.Errorf("%w: fee %d below required account creation fee %s", kernelerr.ErrPrecondition, o.Fee, props.AccountCreationFee)
	}
	if err := c.Bal.Adjust(sess, o.Creator, CoreSymbol, balance.Liquid, objects.Neg(objects.NewAmount(o.Fee))); err != nil {
		return err
	}
	c.Accounts.Create(sess, func(a *objects.Account) {
		a.Name = o.NewName
		a.Owner = o.Owner
		a.Active = o.Active
		a.Posting = o.Posting
		a.VotingPower, a.ViewPower, a.SharePower, a.CommentPower = 10000, 10000, 10000, 10000
		a.RecoveryAccount = o.Creator
	})
	return nil
}

func (c *Chain) evalAccountUpdate(sess *undo.Session, o ops.AccountUpdate) error {
	acc, ok := c.AccountsByName.Find(o.Account)
	if !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.Account)
	}
	if o.Owner != nil {
		if !o.Owner.Valid() {
			return fmt.Errorf("%w: malformed owner authority", kernelerr.ErrInvariant)
		}
		if !acc.CanUpdateOwner(c.Now) {
			return fmt.Errorf("%w: owner authority updated too recently", kernelerr.ErrPrecondition)
		}
	}
	if o.Active != nil && !o.Active.Valid() {
		return fmt.Errorf("%w: malformed active authority", kernelerr.ErrInvariant)
	}
	if o.Posting != nil && !o.Posting.Valid() {
		return fmt.Errorf("%w: malformed posting authority", kernelerr.ErrInvariant)
	}
	c.Accounts.Modify(sess, acc, func(a *objects.Account) {
		if o.Owner != nil {
			a.Owner = *o.Owner
			a.LastOwnerUpdate = c.Now
		}
		if o.Active != nil {
			a.Active = *o.Active
		}
		if o.Posting != nil {
			a.Posting = *o.Posting
		}
		if o.RecoveryAccount != "" {
			a.RecoveryAccount = o.RecoveryAccount
		}
	})
	return nil
}

func (c *Chain) evalWitnessVote(sess *undo.Session, o ops.WitnessVote) error {
	if _, ok := c.AccountsByName.Find(o.Voter); !ok {
		return fmt.Errorf("%w: voter %s", kernelerr.ErrNotFound, o.Voter)
	}
	if _, ok := c.ProducerByAccount.Find(o.Witness); !ok {
		return fmt.Errorf("%w: producer %s", kernelerr.ErrNotFound, o.Witness)
	}
	// Only the voter and producer are checked; no ballot is stored and the
	// producer's vote stake is left unchanged.
	return nil
}

func (c *Chain) evalUpdateProxy(sess *undo.Session, o ops.UpdateProxy) error {
	if _, ok := c.AccountsByName.Find(o.Account); !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.Account)
	}
	if o.Proxy == o.Account {
		return fmt.Errorf("%w: account may not proxy to itself", kernelerr.ErrInvariant)
	}
	return nil
}

func (c *Chain) evalRequestAccountRecovery(sess *undo.Session, o ops.RequestAccountRecovery) error {
	acc, ok := c.AccountsByName.Find(o.AccountToRecover)
	if !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.AccountToRecover)
	}
	if acc.RecoveryAccount != o.RecoveryAccount {
		return fmt.Errorf("%w: %s is not %s's recovery account", kernelerr.ErrUnauthorized, o.RecoveryAccount, o.AccountToRecover)
	}
	if !o.NewOwner.Valid() {
		return fmt.Errorf("%w: malformed recovery owner authority", kernelerr.ErrInvariant)
	}
	const recoveryRequestLifetimeSeconds = 24 * 60 * 60
	if existing, ok := c.RecoveryByAccount.Find(o.AccountToRecover); ok {
		c.RecoveryRequests.Modify(sess, existing, func(r *objects.RecoveryRequest) {
			r.NewOwner = o.NewOwner
			r.Expiration = c.Now + recoveryRequestLifetimeSeconds
		})
		return nil
	}
	c.RecoveryRequests.Create(sess, func(r *objects.RecoveryRequest) {
		r.Account = o.AccountToRecover
		r.NewOwner = o.NewOwner
		r.Expiration = c.Now + recoveryRequestLifetimeSeconds
	})
	return nil
}

func (c *Chain) evalRecoverAccount(sess *undo.Session, o ops.RecoverAccount) error {
	req, ok := c.RecoveryByAccount.Find(o.AccountToRecover)
	if !ok {
		return fmt.Errorf("%w: no pending recovery request for %s", kernelerr.ErrNotFound, o.AccountToRecover)
	}
	if req.Expiration < c.Now {
		return fmt.Errorf("%w: recovery request expired", kernelerr.ErrExpired)
	}
	if !authoritiesEqual(req.NewOwner, o.NewOwner) {
		return fmt.Errorf("%w: new owner does not match the pending recovery request", kernelerr.ErrPrecondition)
	}
	acc, ok := c.AccountsByName.Find(o.AccountToRecover)
	if !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.AccountToRecover)
	}
	c.Accounts.Modify(sess, acc, func(a *objects.Account) {
		a.Owner = o.NewOwner
		a.LastOwnerUpdate = c.Now
	})
	c.RecoveryRequests.Remove(sess, req)
	return nil
}

func (c *Chain) evalResetAccount(sess *undo.Session, o ops.ResetAccount) error {
	acc, ok := c.AccountsByName.Find(o.AccountToReset)
	if !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.AccountToReset)
	}
	if acc.ResetAccount != o.ResetAccount {
		return fmt.Errorf("%w: %s is not %s's reset account", kernelerr.ErrUnauthorized, o.ResetAccount, o.AccountToReset)
	}
	if c.Now-acc.LastPostTime < acc.ResetDelaySec || c.Now-acc.LastCommentTime < acc.ResetDelaySec {
		return fmt.Errorf("%w: reset delay has not elapsed since last activity", kernelerr.ErrPrecondition)
	}
	if !o.NewOwner.Valid() {
		return fmt.Errorf("%w: malformed reset owner authority", kernelerr.ErrInvariant)
	}
	c.Accounts.Modify(sess, acc, func(a *objects.Account) {
		a.Owner = o.NewOwner
		a.LastOwnerUpdate = c.Now
	})
	return nil
}

func (c *Chain) evalDeclineVoting(sess *undo.Session, o ops.DeclineVoting) error {
	acc, ok := c.AccountsByName.Find(o.Account)
	if !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.Account)
	}
	c.Accounts.Modify(sess, acc, func(a *objects.Account) { a.DeclinedVoting = o.Decline })
	return nil
}

func (c *Chain) evalFollow(sess *undo.Session, o ops.Follow) error {
	if _, ok := c.AccountsByName.Find(o.Follower); !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.Follower)
	}
	if _, ok := c.AccountsByName.Find(o.Following); !ok {
		return fmt.Errorf("%w: account %s", kernelerr.ErrNotFound, o.Following)
	}
	return nil
}

// authoritiesEqual reports whether two proposed owner authorities are the
// same, the check recover_account uses to confirm the submitter's claimed
// new owner matches the pending recovery request.
func authoritiesEqual(a, b authority.Authority) bool { return reflect.DeepEqual(a, b) }
