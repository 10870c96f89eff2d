package main

import (
	"encoding/hex"
	"fmt"

	"github.com/weyoume/wenode-sub002/authority"
	"github.com/weyoume/wenode-sub002/kernel"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/undo"
)

// genesisDoc is the JSON shape kernelctl reads to seed a Chain before
// replaying blocks. It is a demonstration format only (§6.6 places
// wire/RPC surfaces besides the operation codec out of kernel scope) — the
// kernel itself has no notion of a genesis file.
type genesisDoc struct {
	ChainID  string            `json:"chain_id"`
	Accounts []genesisAccount  `json:"accounts"`
	Assets   []genesisAsset    `json:"assets"`
	Balances []genesisBalance  `json:"balances"`
}

type genesisKey struct {
	Key    string `json:"key"`
	Weight uint32 `json:"weight"`
}

type genesisAuthority struct {
	Threshold uint32       `json:"threshold"`
	Keys      []genesisKey `json:"keys"`
}

func (g genesisAuthority) build() (authority.Authority, error) {
	a := authority.Authority{Threshold: g.Threshold}
	for _, k := range g.Keys {
		raw, err := hex.DecodeString(k.Key)
		if err != nil {
			return authority.Authority{}, fmt.Errorf("decode key %q: %w", k.Key, err)
		}
		if len(raw) != 33 {
			return authority.Authority{}, fmt.Errorf("key %q: want 33 bytes, got %d", k.Key, len(raw))
		}
		var wk authority.WeightedKey
		copy(wk.Key[:], raw)
		wk.Weight = k.Weight
		a.KeyAuths = append(a.KeyAuths, wk)
	}
	return a, nil
}

type genesisAccount struct {
	Name    string           `json:"name"`
	Owner   genesisAuthority `json:"owner"`
	Active  genesisAuthority `json:"active"`
	Posting genesisAuthority `json:"posting"`
}

type genesisAsset struct {
	Symbol    string `json:"symbol"`
	Kind      int    `json:"kind"`
	MaxSupply uint64 `json:"max_supply"`
	Precision uint8  `json:"precision"`
}

type genesisBalance struct {
	Account string `json:"account"`
	Symbol  string `json:"symbol"`
	Amount  uint64 `json:"amount"`
}

// applyGenesis seeds c directly through its tables rather than through
// ApplyTransaction: a genesis block has no predecessor authority to sign
// against, so the usual authority.Satisfy path has nothing to check
// against yet.
func applyGenesis(c *kernel.Chain, doc genesisDoc) error {
	sess := undo.Begin()
	for _, ga := range doc.Accounts {
		owner, err := ga.Owner.build()
		if err != nil {
			return fmt.Errorf("account %s: owner: %w", ga.Name, err)
		}
		active, err := ga.Active.build()
		if err != nil {
			return fmt.Errorf("account %s: active: %w", ga.Name, err)
		}
		posting, err := ga.Posting.build()
		if err != nil {
			return fmt.Errorf("account %s: posting: %w", ga.Name, err)
		}
		c.Accounts.Create(sess, func(a *objects.Account) {
			a.Name = ga.Name
			a.Owner = owner
			a.Active = active
			a.Posting = posting
			a.VotingPower, a.ViewPower, a.SharePower, a.CommentPower = 10000, 10000, 10000, 10000
		})
	}
	for _, gs := range doc.Assets {
		c.Assets.Create(sess, func(a *objects.Asset) {
			a.Symbol = gs.Symbol
			a.Kind = objects.AssetKind(gs.Kind)
			a.MaxSupply = objects.NewAmount(gs.MaxSupply)
			a.Precision = gs.Precision
		})
	}
	for _, gb := range doc.Balances {
		asset, ok := c.AssetsBySymbol.Find(gb.Symbol)
		if !ok {
			return fmt.Errorf("balance for %s: unknown asset %s", gb.Account, gb.Symbol)
		}
		amount := objects.NewAmount(gb.Amount)
		c.Bal.Balances.Create(sess, func(b *objects.Balance) {
			b.Account = gb.Account
			b.Symbol = gb.Symbol
			b.Liquid = amount
		})
		c.Assets.Modify(sess, asset, func(a *objects.Asset) {
			a.Dynamic.Total, _ = a.Dynamic.Total.Add(amount)
			a.Dynamic.Liquid, _ = a.Dynamic.Liquid.Add(amount)
		})
	}
	sess.Commit()
	return nil
}
