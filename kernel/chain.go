package kernel

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/authority"
	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/undo"
)

// Tx is one transaction's decoded contents plus the keys already proven to
// have signed its digest — minus the raw signature bytes themselves,
// since verification against the digest happens in wire/ and
// authority.RecoverKey before a Tx ever reaches the kernel.
type Tx struct {
	Ops          []ops.Operation
	VerifiedKeys authority.VerifiedKeys
	Expiration   int64
}

// ApplyTransaction evaluates every operation in tx inside its own nested
// undo scope (undo-journal-based transactional rollback: block >
// transaction > operation), checking authority once per transaction
// against the union of its operations' requirements — the mixed-authority
// rule applies across the whole transaction, not operation-by-operation —
// and rolling the entire transaction back on the first operation failure.
func (c *Chain) ApplyTransaction(blockSess *undo.Session, tx Tx) error {
	if c.Now > 0 && tx.Expiration != 0 && tx.Expiration < c.Now {
		return fmt.Errorf("%w: transaction expired at %d", kernelerr.ErrExpired, tx.Expiration)
	}

	txSess := blockSess.BeginChild()

	reqs := make([]authority.Requirement, 0, len(tx.Ops))
	for _, op := range tx.Ops {
		actor, ok := op.(ops.Actor)
		if !ok {
			continue // CustomJSON: multi-signer, authority checked by its own Signers list below
		}
		reqs = append(reqs, authority.Requirement{Account: actor.ActorAccount(), Kind: authorityKindFor(op.Kind())})
	}
	if err := authority.MixedAuthorityCheck(reqs); err != nil {
		txSess.Rollback()
		return err
	}
	used := make(map[[33]byte]bool)
	for _, req := range reqs {
		if err := c.satisfyTracked(req, tx.VerifiedKeys, used); err != nil {
			txSess.Rollback()
			return err
		}
	}
	if cj, ok := soleCustomJSON(tx.Ops); ok {
		for _, signer := range cj.Signers {
			if err := c.satisfyTracked(authority.Requirement{Account: signer, Kind: authority.Active}, tx.VerifiedKeys, used); err != nil {
				txSess.Rollback()
				return err
			}
		}
	}
	if err := authority.ValidateNoSignatureWaste(tx.VerifiedKeys, used); err != nil {
		txSess.Rollback()
		return err
	}

	for _, op := range tx.Ops {
		opSess := txSess.BeginChild()
		if err := c.Dispatch(opSess, op); err != nil {
			opSess.Rollback()
			txSess.Rollback()
			return err
		}
		opSess.Commit()
	}
	txSess.Commit()
	return nil
}

func soleCustomJSON(operations []ops.Operation) (ops.CustomJSON, bool) {
	for _, op := range operations {
		if cj, ok := op.(ops.CustomJSON); ok {
			return cj, true
		}
	}
	return ops.CustomJSON{}, false
}

// satisfyTracked wraps authority.Satisfy, recording which verified keys
// actually contributed weight so ValidateNoSignatureWaste can later catch
// an IrrelevantSignature.
func (c *Chain) satisfyTracked(req authority.Requirement, verified authority.VerifiedKeys, used map[[33]byte]bool) error {
	ok, err := authority.Satisfy(c, req, verified)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s authority for %s not satisfied", kernelerr.ErrUnauthorized, req.Kind, req.Account)
	}
	// Every directly-verified key on the account's fallback-chain
	// authorities is treated as used; a stricter per-key attribution would
	// require Satisfy to return its winning key set, which the evaluator
	// framework does not otherwise require.
	kinds := []authority.Kind{authority.Owner}
	switch req.Kind {
	case authority.Posting:
		kinds = []authority.Kind{authority.Posting, authority.Active, authority.Owner}
	case authority.Active:
		kinds = []authority.Kind{authority.Active, authority.Owner}
	}
	for _, kind := range kinds {
		auth, ok := c.Authority(req.Account, kind)
		if !ok {
			continue
		}
		for _, wk := range auth.KeyAuths {
			if verified[wk.Key] {
				used[wk.Key] = true
			}
		}
	}
	return nil
}

// authorityKindFor maps an operation kind to the authority level its
// actor must hold: content and voting actions need only posting
// authority; recovery-sensitive account edits need owner; every other op
// needs active.
func authorityKindFor(k ops.Kind) authority.Kind {
	switch k {
	case ops.KindComment, ops.KindCommentVote, ops.KindCommentView, ops.KindCommentShare,
		ops.KindFollow, ops.KindWitnessVote, ops.KindUpdateProxy, ops.KindDeclineVoting:
		return authority.Posting
	case ops.KindAccountUpdate, ops.KindRecoverAccount, ops.KindResetAccount, ops.KindRequestAccountRecovery:
		return authority.Owner
	default:
		return authority.Active
	}
}

// Block is the minimal header the kernel needs to apply a block's
// transactions under one undo scope; slot/signature/PoW verification
// against the producer schedule happens in producer/ and the caller, not
// here.
type Block struct {
	Height int64
	Time   int64
	Txs    []Tx
}

// ApplyBlock opens one undo scope for the whole block, applies every
// transaction, advances c.Now/c.Head, runs scheduled maintenance, and
// commits — or rolls the entire block back on the first failing
// transaction: every operation either fully applies or fully fails, with
// automatic rollback on error.
func (c *Chain) ApplyBlock(root *undo.Session, b Block) error {
	sess := root.BeginChild()
	c.Now = b.Time
	c.Head = uint64(b.Height)
	for _, tx := range b.Txs {
		if err := c.ApplyTransaction(sess, tx); err != nil {
			sess.Rollback()
			return err
		}
	}
	if err := c.RunMaintenance(sess, b.Time); err != nil {
		sess.Rollback()
		return err
	}
	sess.Commit()
	return nil
}
