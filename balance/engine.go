// Package balance implements the eight primitive sub-balance mutators (spec
// §4.4) plus stake/unstake vesting. Every
// mutator adjusts exactly one named sub-balance and the matching per-asset
// dynamic-data accumulator together, so the §3.2 supply identity
// (Total == Liquid+Staked+Reward+Savings+Pending+Confidential) holds by
// construction after every call rather than by a post-hoc check.
package balance

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/store"
	"github.com/weyoume/wenode-sub002/undo"
)

// SubBalanceKind names which of the seven sub-balances an Adjust call
// targets.
type SubBalanceKind int

const (
	Liquid SubBalanceKind = iota
	Staked
	Reward
	Savings
	Delegated
	Receiving
	Pending
	Confidential // backs objects.AssetDynamicData.Confidential, not a Balance field
)

// Tables bundles the two tables the balance engine mutates together so every
// call site doesn't have to thread them individually.
type Tables struct {
	Balances *store.Table[objects.Balance]
	Assets   *store.Table[objects.Asset]

	ByAccountSymbol *store.UniqueIndex[objects.Balance, [2]string]
	AssetBySymbol   *store.UniqueIndex[objects.Asset, string]
}

func (t *Tables) getOrCreateBalance(sess *undo.Session, account, symbol string) *objects.Balance {
	if bal, ok := t.ByAccountSymbol.Find([2]string{account, symbol}); ok {
		return bal
	}
	return t.Balances.Create(sess, func(b *objects.Balance) {
		b.Account = account
		b.Symbol = symbol
	})
}

func (t *Tables) asset(symbol string) (*objects.Asset, error) {
	a, ok := t.AssetBySymbol.Find(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: asset %s", kernelerr.ErrNotFound, symbol)
	}
	return a, nil
}

// Adjust applies delta to account's which sub-balance for symbol and the
// matching dynamic-data accumulator. A negative delta that would drive the
// sub-balance below zero fails with ErrPrecondition and applies nothing.
func (t *Tables) Adjust(sess *undo.Session, account, symbol string, which SubBalanceKind, delta objects.SignedAmount) error {
	asset, err := t.asset(symbol)
	if err != nil {
		return err
	}

	if which == Confidential {
		return t.adjustConfidential(sess, asset, delta)
	}

	bal := t.getOrCreateBalance(sess, account, symbol)
	current := subBalanceValue(bal, which)
	newVal, totalDelta, err := applySigned(current, delta)
	if err != nil {
		return err
	}

	t.Balances.Modify(sess, bal, func(b *objects.Balance) {
		setSubBalanceValue(b, which, newVal)
	})
	t.Assets.Modify(sess, asset, func(a *objects.Asset) {
		applyTotalDelta(&a.Dynamic, which, totalDelta)
	})
	return nil
}

func (t *Tables) adjustConfidential(sess *undo.Session, asset *objects.Asset, delta objects.SignedAmount) error {
	newVal, totalDelta, err := applySigned(asset.Dynamic.Confidential, delta)
	if err != nil {
		return err
	}
	t.Assets.Modify(sess, asset, func(a *objects.Asset) {
		a.Dynamic.Confidential = newVal
		a.Dynamic.Total, _ = addSigned(a.Dynamic.Total, totalDelta)
	})
	return nil
}

func subBalanceValue(b *objects.Balance, which SubBalanceKind) objects.Amount {
	switch which {
	case Liquid:
		return b.Liquid
	case Staked:
		return b.Staked
	case Reward:
		return b.Reward
	case Savings:
		return b.Savings
	case Delegated:
		return b.Delegated
	case Receiving:
		return b.Receiving
	case Pending:
		return b.Pending
	default:
		panic("balance: unknown sub-balance kind")
	}
}

func setSubBalanceValue(b *objects.Balance, which SubBalanceKind, v objects.Amount) {
	switch which {
	case Liquid:
		b.Liquid = v
	case Staked:
		b.Staked = v
	case Reward:
		b.Reward = v
	case Savings:
		b.Savings = v
	case Delegated:
		b.Delegated = v
	case Receiving:
		b.Receiving = v
	case Pending:
		b.Pending = v
	default:
		panic("balance: unknown sub-balance kind")
	}
}

// applyTotalDelta mirrors a sub-balance's signed delta into the asset's
// accumulator of the same kind and into Total, except that Delegated and
// Receiving, which are subsets of Staked/off-ledger, do not separately
// contribute to Total (spec §3.2's identity omits them). Confidential is
// handled by the caller.
func applyTotalDelta(dyn *objects.AssetDynamicData, which SubBalanceKind, delta objects.SignedAmount) {
	accumulators := map[SubBalanceKind]*objects.Amount{
		Liquid: &dyn.Liquid, Staked: &dyn.Staked, Reward: &dyn.Reward, Savings: &dyn.Savings,
		Delegated: &dyn.Delegated, Receiving: &dyn.Receiving, Pending: &dyn.Pending,
	}
	if acc, ok := accumulators[which]; ok {
		*acc, _ = addSigned(*acc, delta)
	}
	switch which {
	case Delegated, Receiving:
		return
	}
	dyn.Total, _ = addSigned(dyn.Total, delta)
}

// applySigned adds delta to current, returning the new value and the delta
// itself (for mirroring into the dynamic-data accumulator). Fails with
// ErrPrecondition if the result would be negative.
func applySigned(current objects.Amount, delta objects.SignedAmount) (objects.Amount, objects.SignedAmount, error) {
	newVal, err := addSigned(current, delta)
	if err != nil {
		return objects.Amount{}, objects.SignedAmount{}, err
	}
	return newVal, delta, nil
}

func addSigned(current objects.Amount, delta objects.SignedAmount) (objects.Amount, error) {
	if !delta.Negative {
		return current.Add(delta.Magnitude)
	}
	return current.Sub(delta.Magnitude)
}
