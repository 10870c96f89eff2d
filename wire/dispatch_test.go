package wire

import (
	"reflect"
	"testing"

	"github.com/weyoume/wenode-sub002/authority"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/ops"
)

func roundTrip(t *testing.T, op ops.Operation) ops.Operation {
	t.Helper()
	w := NewWriter()
	if err := EncodeOperation(w, op); err != nil {
		t.Fatalf("encode %T: %v", op, err)
	}
	got, err := DecodeOperation(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("decode %T: %v", op, err)
	}
	return got
}

func TestOperationRoundTripOneFromEachFamily(t *testing.T) {
	var key [33]byte
	key[0] = 0x02

	cases := []ops.Operation{
		ops.AccountCreate{
			Creator: "alice", NewName: "bob",
			Owner:   authority.Authority{KeyAuths: []authority.WeightedKey{{Key: key, Weight: 1}}, Threshold: 1},
			Active:  authority.Authority{Threshold: 1},
			Posting: authority.Authority{Threshold: 1},
			Fee:     1000,
		},
		ops.AccountUpdate{
			Account: "alice",
			Owner:   &authority.Authority{Threshold: 1, KeyAuths: []authority.WeightedKey{{Key: key, Weight: 1}}},
		},
		ops.Comment{
			Author: "alice", Permlink: "hello", ParentAuthor: "", ParentPermlink: "",
			Body: []byte("world"), JSONMeta: []byte("{}"),
			Tags:    []string{"intro"},
			Reach:   objects.ReachTagFollow,
			Options: objects.CommentOptions{MaxPayout: objects.NewAmount(100)},
		},
		ops.Transfer{From: "alice", To: "bob", Symbol: "COIN", Amount: objects.NewAmount(500), Memo: "thanks"},
		ops.LimitOrderCreate{
			Owner: "alice", OrderID: 7, SellSymbol: "COIN", ReceiveSymbol: "USD",
			AmountForSale: objects.NewAmount(100), ExchangeRate: objects.Price{BaseAmount: 1, QuoteAmount: 2},
			Expiration: 100, Interface: "web", FillOrKill: true,
		},
		ops.LiquidityPoolCreate{Creator: "alice", SymbolA: "COIN", SymbolB: "USD", AmountA: objects.NewAmount(1000), AmountB: objects.NewAmount(2000), LPSymbol: "COIN.USD"},
		ops.AssetCreate{Issuer: "alice", Symbol: "NEW", AssetKind: objects.AssetStandard, MaxSupply: objects.NewAmount(1_000_000), Precision: 3},
		ops.ProducerUpdate{Account: "alice", SigningKey: key, PropsVote: objects.ChainProperties{MaxBlockSize: 65536}},
		ops.CustomJSON{Signers: []string{"alice", "bob"}, ID: "follow", JSON: []byte(`{"op":"follow"}`)},
	}

	for _, want := range cases {
		got := roundTrip(t, want)
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("%T round trip mismatch:\n  want %#v\n  got  %#v", want, want, got)
		}
		if got.Kind() != want.Kind() {
			t.Fatalf("%T kind mismatch: want %d got %d", want, want.Kind(), got.Kind())
		}
	}
}

func TestDecodeOperationRejectsUnknownTag(t *testing.T) {
	w := NewWriter()
	w.WriteUvarint(9999)
	if _, err := DecodeOperation(NewReader(w.Bytes())); err == nil {
		t.Fatalf("expected error decoding an unrecognized operation tag")
	}
}

func TestTransactionDigestChangesWithBody(t *testing.T) {
	base := Transaction{
		RefBlockNum: 1, RefBlockPrefix: 2, Expiration: 100,
		Operations: []ops.Operation{ops.Transfer{From: "alice", To: "bob", Symbol: "COIN", Amount: objects.NewAmount(1)}},
	}
	chainID := []byte("test-chain")
	d1, err := base.Digest(chainID)
	if err != nil {
		t.Fatalf("digest: %v", err)
	}

	changed := base
	changed.Operations = []ops.Operation{ops.Transfer{From: "alice", To: "bob", Symbol: "COIN", Amount: objects.NewAmount(2)}}
	d2, err := changed.Digest(chainID)
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("expected digest to change when the signed body changes")
	}
}

func TestTransactionEncodeDecodeRoundTrip(t *testing.T) {
	tx := Transaction{
		RefBlockNum: 42, RefBlockPrefix: 0xdeadbeef, Expiration: 12345,
		Operations: []ops.Operation{
			ops.Transfer{From: "alice", To: "bob", Symbol: "COIN", Amount: objects.NewAmount(500), Memo: "hi"},
			ops.LimitOrderCancel{Owner: "alice", OrderID: 1},
		},
		Extensions: [][]byte{},
		Signatures: [][65]byte{},
	}
	raw, err := tx.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeTransaction(NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.RefBlockNum != tx.RefBlockNum || got.RefBlockPrefix != tx.RefBlockPrefix || got.Expiration != tx.Expiration {
		t.Fatalf("header mismatch: got %+v", got)
	}
	if len(got.Operations) != len(tx.Operations) {
		t.Fatalf("want %d operations, got %d", len(tx.Operations), len(got.Operations))
	}
	for i := range tx.Operations {
		if !reflect.DeepEqual(tx.Operations[i], got.Operations[i]) {
			t.Fatalf("operation %d mismatch: want %#v got %#v", i, tx.Operations[i], got.Operations[i])
		}
	}
}

func TestTransactionRejectsTrailingBytes(t *testing.T) {
	tx := Transaction{RefBlockNum: 1, RefBlockPrefix: 1, Expiration: 1}
	raw, err := tx.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	raw = append(raw, 0xff)
	if _, err := DecodeTransaction(NewReader(raw)); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}
