package kernel

import (
	"reflect"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weyoume/wenode-sub002/authority"
	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
	"github.com/weyoume/wenode-sub002/undo"
)

// snapshotBalances returns every balance record's value (not pointer),
// sorted by (account, symbol) so two snapshots can be compared with
// reflect.DeepEqual regardless of the store's internal iteration order.
func snapshotBalances(c *Chain) []objects.Balance {
	var out []objects.Balance
	c.Bal.Balances.Each(func(b *objects.Balance) { out = append(out, *b) })
	sort.Slice(out, func(i, j int) bool {
		if out[i].Account != out[j].Account {
			return out[i].Account < out[j].Account
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// singleKeyAuthority returns a threshold-1 authority over one key, and the
// key itself, for tests that need an account whose authority a given
// VerifiedKeys set can satisfy.
func singleKeyAuthority(seed byte) (authority.Authority, [33]byte) {
	var key [33]byte
	key[0] = 0x02
	key[1] = seed
	return authority.Authority{KeyAuths: []authority.WeightedKey{{Key: key, Weight: 1}}, Threshold: 1}, key
}

// seedAccount creates an account directly in the store, bypassing
// evalAccountCreate's fee/authorization requirements — the same shortcut a
// genesis loader takes (cmd/kernelctl/genesis.go), appropriate here since
// these tests exercise what happens after an account already exists.
func seedAccount(sess *undo.Session, c *Chain, name string, auth authority.Authority) {
	c.Accounts.Create(sess, func(a *objects.Account) {
		a.Name = name
		a.Owner, a.Active, a.Posting = auth, auth, auth
		a.VotingPower, a.ViewPower, a.SharePower, a.CommentPower = 10000, 10000, 10000, 10000
	})
}

func seedBalance(sess *undo.Session, c *Chain, account, symbol string, liquid uint64) {
	c.Bal.Balances.Create(sess, func(b *objects.Balance) {
		b.Account = account
		b.Symbol = symbol
		b.Liquid = objects.NewAmount(liquid)
	})
}

func newTestChain(sess *undo.Session) *Chain {
	c := New([]byte("test-chain"))
	c.Assets.Create(sess, func(a *objects.Asset) {
		a.Symbol = CoreSymbol
		a.Dynamic.Total = objects.NewAmount(100000)
		a.Dynamic.Liquid = objects.NewAmount(100000)
	})
	return c
}

// TestTransfer verifies alice with 1000 COIN transfers 400 to bob; total
// supply is unaffected.
func TestTransfer(t *testing.T) {
	root := undo.Begin()
	c := newTestChain(root)
	seedAccount(root, c, "alice", authority.Authority{Threshold: 1})
	seedAccount(root, c, "bob", authority.Authority{Threshold: 1})
	seedBalance(root, c, "alice", CoreSymbol, 1000)
	seedBalance(root, c, "bob", CoreSymbol, 0)

	err := c.Dispatch(root, ops.Transfer{From: "alice", To: "bob", Symbol: CoreSymbol, Amount: objects.NewAmount(400)})
	require.NoError(t, err)

	alice, _ := c.Bal.ByAccountSymbol.Find([2]string{"alice", CoreSymbol})
	bob, _ := c.Bal.ByAccountSymbol.Find([2]string{"bob", CoreSymbol})
	require.Equal(t, uint64(600), alice.Liquid.Uint64())
	require.Equal(t, uint64(400), bob.Liquid.Uint64())

	asset, _ := c.AssetsBySymbol.Find(CoreSymbol)
	require.Equal(t, uint64(100000), asset.Dynamic.Total.Uint64(), "transfer must not change total supply")
}

func TestApplyTransactionRejectsMissingSignature(t *testing.T) {
	root := undo.Begin()
	c := newTestChain(root)
	auth, _ := singleKeyAuthority(1)
	seedAccount(root, c, "alice", auth)
	seedAccount(root, c, "bob", authority.Authority{Threshold: 1})
	seedBalance(root, c, "alice", CoreSymbol, 1000)
	seedBalance(root, c, "bob", CoreSymbol, 0)

	tx := Tx{
		Ops:          []ops.Operation{ops.Transfer{From: "alice", To: "bob", Symbol: CoreSymbol, Amount: objects.NewAmount(100)}},
		VerifiedKeys: authority.VerifiedKeys{},
	}
	err := c.ApplyTransaction(root, tx)
	require.ErrorIs(t, err, kernelerr.ErrUnauthorized)

	alice, _ := c.Bal.ByAccountSymbol.Find([2]string{"alice", CoreSymbol})
	require.Equal(t, uint64(1000), alice.Liquid.Uint64(), "rejected transaction must not move balance")
}

func TestApplyTransactionWithVerifiedKeySucceeds(t *testing.T) {
	root := undo.Begin()
	c := newTestChain(root)
	auth, key := singleKeyAuthority(1)
	seedAccount(root, c, "alice", auth)
	seedAccount(root, c, "bob", authority.Authority{Threshold: 1})
	seedBalance(root, c, "alice", CoreSymbol, 1000)
	seedBalance(root, c, "bob", CoreSymbol, 0)

	tx := Tx{
		Ops:          []ops.Operation{ops.Transfer{From: "alice", To: "bob", Symbol: CoreSymbol, Amount: objects.NewAmount(100)}},
		VerifiedKeys: authority.VerifiedKeys{key: true},
	}
	require.NoError(t, c.ApplyTransaction(root, tx))

	bob, _ := c.Bal.ByAccountSymbol.Find([2]string{"bob", CoreSymbol})
	require.Equal(t, uint64(100), bob.Liquid.Uint64())
}

// TestBlockRollback verifies a block whose second transaction overdraws
// must roll back in its entirety, leaving balances exactly as they were
// before the block was applied.
func TestBlockRollback(t *testing.T) {
	root := undo.Begin()
	c := newTestChain(root)
	auth, key := singleKeyAuthority(1)
	seedAccount(root, c, "alice", auth)
	seedAccount(root, c, "bob", authority.Authority{Threshold: 1})
	seedBalance(root, c, "alice", CoreSymbol, 1000)
	seedBalance(root, c, "bob", CoreSymbol, 0)

	before, _ := c.Bal.ByAccountSymbol.Find([2]string{"alice", CoreSymbol})
	beforeLiquid := before.Liquid

	block := Block{
		Height: 1,
		Time:   100,
		Txs: []Tx{
			{
				Ops:          []ops.Operation{ops.Transfer{From: "alice", To: "bob", Symbol: CoreSymbol, Amount: objects.NewAmount(100)}},
				VerifiedKeys: authority.VerifiedKeys{key: true},
			},
			{
				// Overdraws what's left after the first transfer; this
				// transaction — and the whole block — must roll back.
				Ops:          []ops.Operation{ops.Transfer{From: "alice", To: "bob", Symbol: CoreSymbol, Amount: objects.NewAmount(5000)}},
				VerifiedKeys: authority.VerifiedKeys{key: true},
			},
		},
	}

	require.Error(t, c.ApplyBlock(root, block), "expected the block to fail on its second transaction")

	after, _ := c.Bal.ByAccountSymbol.Find([2]string{"alice", CoreSymbol})
	require.Equal(t, beforeLiquid.Uint64(), after.Liquid.Uint64(), "failed block must leave balances untouched")
}

// TestRollbackRestoresExactBalanceSnapshot verifies every balance record,
// not just alice's, must be byte-for-byte identical to its pre-block
// snapshot once a failing block rolls back.
func TestRollbackRestoresExactBalanceSnapshot(t *testing.T) {
	root := undo.Begin()
	c := newTestChain(root)
	auth, key := singleKeyAuthority(1)
	seedAccount(root, c, "alice", auth)
	seedAccount(root, c, "bob", authority.Authority{Threshold: 1})
	seedBalance(root, c, "alice", CoreSymbol, 1000)
	seedBalance(root, c, "bob", CoreSymbol, 250)

	before := snapshotBalances(c)

	block := Block{
		Height: 1,
		Time:   100,
		Txs: []Tx{
			{
				Ops:          []ops.Operation{ops.Transfer{From: "alice", To: "bob", Symbol: CoreSymbol, Amount: objects.NewAmount(100)}},
				VerifiedKeys: authority.VerifiedKeys{key: true},
			},
			{
				Ops:          []ops.Operation{ops.Transfer{From: "alice", To: "bob", Symbol: CoreSymbol, Amount: objects.NewAmount(999999)}},
				VerifiedKeys: authority.VerifiedKeys{key: true},
			},
		},
	}
	require.Error(t, c.ApplyBlock(root, block))

	after := snapshotBalances(c)
	require.True(t, reflect.DeepEqual(before, after), "balances differ after rollback:\n before=%+v\n after=%+v", before, after)
}

// TestLimitOrderMatch verifies alice sells 100 COIN at price 1 COIN = 1
// USD, bob sells 100 USD at the reciprocal price; both orders fully fill
// against each other and are removed from the book.
func TestLimitOrderMatch(t *testing.T) {
	root := undo.Begin()
	c := newTestChain(root)
	seedAccount(root, c, "alice", authority.Authority{Threshold: 1})
	seedAccount(root, c, "bob", authority.Authority{Threshold: 1})
	c.Assets.Create(root, func(a *objects.Asset) { a.Symbol = "USD" })
	seedBalance(root, c, "alice", CoreSymbol, 1000)
	seedBalance(root, c, "alice", "USD", 0)
	seedBalance(root, c, "bob", CoreSymbol, 0)
	seedBalance(root, c, "bob", "USD", 1000)

	require.NoError(t, c.Dispatch(root, ops.LimitOrderCreate{
		Owner: "alice", OrderID: 1, SellSymbol: CoreSymbol, ReceiveSymbol: "USD",
		AmountForSale: objects.NewAmount(100), ExchangeRate: objects.Price{BaseAmount: 1, QuoteAmount: 1},
	}))
	require.NoError(t, c.Dispatch(root, ops.LimitOrderCreate{
		Owner: "bob", OrderID: 1, SellSymbol: "USD", ReceiveSymbol: CoreSymbol,
		AmountForSale: objects.NewAmount(100), ExchangeRate: objects.Price{BaseAmount: 1, QuoteAmount: 1},
	}))

	require.Equal(t, 0, c.LimitOrders.Len(), "expected both orders to fully fill and be removed")
	alice, _ := c.Bal.ByAccountSymbol.Find([2]string{"alice", "USD"})
	bob, _ := c.Bal.ByAccountSymbol.Find([2]string{"bob", CoreSymbol})
	require.Equal(t, uint64(100), alice.Liquid.Uint64())
	require.Equal(t, uint64(100), bob.Liquid.Uint64())
}
