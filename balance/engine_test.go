package balance

import (
	"testing"

	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/store"
	"github.com/weyoume/wenode-sub002/undo"
)

func newTestTables() *Tables {
	balances := store.NewTable[objects.Balance]()
	byAcctSym := store.NewUniqueIndex[objects.Balance, [2]string](func(b *objects.Balance) [2]string {
		return [2]string{b.Account, b.Symbol}
	})
	balances.AddIndex(byAcctSym)

	assets := store.NewTable[objects.Asset]()
	assetBySym := store.NewUniqueIndex[objects.Asset, string](func(a *objects.Asset) string { return a.Symbol })
	assets.AddIndex(assetBySym)

	return &Tables{
		Balances:        balances,
		Assets:          assets,
		ByAccountSymbol: byAcctSym,
		AssetBySymbol:   assetBySym,
	}
}

func (t *Tables) seedAsset(sess *undo.Session, symbol string) {
	t.Assets.Create(sess, func(a *objects.Asset) { a.Symbol = symbol })
}

func TestAdjustLiquidUpdatesTotal(t *testing.T) {
	tables := newTestTables()
	sess := undo.Begin()
	tables.seedAsset(sess, "COIN")

	if err := tables.Adjust(sess, "alice", "COIN", Liquid, objects.Pos(objects.NewAmount(1000))); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	asset, _ := tables.AssetBySymbol.Find("COIN")
	if asset.Dynamic.Total.Uint64() != 1000 {
		t.Fatalf("expected total 1000, got %s", asset.Dynamic.Total)
	}
	bal, _ := tables.ByAccountSymbol.Find([2]string{"alice", "COIN"})
	if bal.Liquid.Uint64() != 1000 {
		t.Fatalf("expected liquid 1000, got %s", bal.Liquid)
	}
}

func TestAdjustInsufficientFails(t *testing.T) {
	tables := newTestTables()
	sess := undo.Begin()
	tables.seedAsset(sess, "COIN")

	err := tables.Adjust(sess, "alice", "COIN", Liquid, objects.Neg(objects.NewAmount(1)))
	if err == nil {
		t.Fatalf("expected insufficient-balance error")
	}
}

func TestRollbackRestoresBalance(t *testing.T) {
	tables := newTestTables()
	root := undo.Begin()
	tables.seedAsset(root, "COIN")
	if err := tables.Adjust(root, "alice", "COIN", Liquid, objects.Pos(objects.NewAmount(500))); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	child := root.BeginChild()
	if err := tables.Adjust(child, "alice", "COIN", Liquid, objects.Neg(objects.NewAmount(200))); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	bal, _ := tables.ByAccountSymbol.Find([2]string{"alice", "COIN"})
	if bal.Liquid.Uint64() != 300 {
		t.Fatalf("expected 300 after debit, got %s", bal.Liquid)
	}

	child.Rollback()

	bal, _ = tables.ByAccountSymbol.Find([2]string{"alice", "COIN"})
	if bal.Liquid.Uint64() != 500 {
		t.Fatalf("expected rollback to restore 500, got %s", bal.Liquid)
	}
}

func TestStakeThenUnstakeRoundTrips(t *testing.T) {
	tables := newTestTables()
	sess := undo.Begin()
	tables.seedAsset(sess, "COIN")
	if err := tables.Adjust(sess, "alice", "COIN", Liquid, objects.Pos(objects.NewAmount(1000))); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	bal, _ := tables.ByAccountSymbol.Find([2]string{"alice", "COIN"})

	now := int64(1000)
	tables.BeginStake(sess, bal, objects.NewAmount(1000), 1, now)
	now += StakeWithdrawIntervalSeconds // the first vesting step falls due one interval later
	if err := tables.AccrueVesting(sess, now); err != nil {
		t.Fatalf("accrue: %v", err)
	}
	bal, _ = tables.ByAccountSymbol.Find([2]string{"alice", "COIN"})
	if bal.Liquid.Uint64() != 0 || bal.Staked.Uint64() != 1000 {
		t.Fatalf("expected fully staked, got liquid=%s staked=%s", bal.Liquid, bal.Staked)
	}

	tables.BeginUnstake(sess, bal, objects.NewAmount(1000), 1, now)
	now += StakeWithdrawIntervalSeconds
	if err := tables.AccrueVesting(sess, now); err != nil {
		t.Fatalf("accrue: %v", err)
	}
	bal, _ = tables.ByAccountSymbol.Find([2]string{"alice", "COIN"})
	if bal.Liquid.Uint64() != 1000 || bal.Staked.Uint64() != 0 {
		t.Fatalf("expected fully unstaked back to liquid, got liquid=%s staked=%s", bal.Liquid, bal.Staked)
	}
}
