package authority

import "testing"

type fakeLookup map[string]map[Kind]Authority

func (f fakeLookup) Authority(account string, kind Kind) (Authority, bool) {
	byKind, ok := f[account]
	if !ok {
		return Authority{}, false
	}
	a, ok := byKind[kind]
	return a, ok
}

func TestSatisfySingleKey(t *testing.T) {
	var key [33]byte
	key[0] = 0x02
	lookup := fakeLookup{
		"alice": {
			Active: Authority{KeyAuths: []WeightedKey{{Key: key, Weight: 1}}, Threshold: 1},
		},
	}
	verified := VerifiedKeys{key: true}
	ok, err := Satisfy(lookup, Requirement{Account: "alice", Kind: Active}, verified)
	if err != nil || !ok {
		t.Fatalf("expected satisfied, got ok=%v err=%v", ok, err)
	}
}

func TestSatisfyPostingFallsBackToActive(t *testing.T) {
	var key [33]byte
	key[0] = 0x03
	lookup := fakeLookup{
		"bob": {
			Posting: Authority{Threshold: 1},
			Active:  Authority{KeyAuths: []WeightedKey{{Key: key, Weight: 2}}, Threshold: 2},
		},
	}
	verified := VerifiedKeys{key: true}
	ok, err := Satisfy(lookup, Requirement{Account: "bob", Kind: Posting}, verified)
	if err != nil || !ok {
		t.Fatalf("expected posting to fall back to active, got ok=%v err=%v", ok, err)
	}
}

func TestSatisfyInsufficientWeight(t *testing.T) {
	var key [33]byte
	key[0] = 0x04
	lookup := fakeLookup{
		"carol": {
			Owner: Authority{KeyAuths: []WeightedKey{{Key: key, Weight: 1}}, Threshold: 2},
		},
	}
	verified := VerifiedKeys{key: true}
	ok, _ := Satisfy(lookup, Requirement{Account: "carol", Kind: Owner}, verified)
	if ok {
		t.Fatalf("expected insufficient weight to fail")
	}
}

func TestMixedAuthorityRejected(t *testing.T) {
	reqs := []Requirement{{Account: "a", Kind: Posting}, {Account: "b", Kind: Active}}
	if err := MixedAuthorityCheck(reqs); err == nil {
		t.Fatalf("expected mixed posting/active to be rejected")
	}
}

// TestValidateNoSignatureWasteRejectsUnusedKey checks that a signature
// which contributed to no passing Satisfy call must fail the transaction,
// even though every requirement it was checked against was independently
// satisfied by other keys.
func TestValidateNoSignatureWasteRejectsUnusedKey(t *testing.T) {
	var used, unused [33]byte
	used[0], unused[0] = 0x02, 0x03
	verified := VerifiedKeys{used: true, unused: true}
	if err := ValidateNoSignatureWaste(verified, map[[33]byte]bool{used: true}); err == nil {
		t.Fatalf("expected the unused signature to be rejected")
	}
}

func TestValidateNoSignatureWasteAcceptsAllUsed(t *testing.T) {
	var key [33]byte
	key[0] = 0x02
	verified := VerifiedKeys{key: true}
	if err := ValidateNoSignatureWaste(verified, map[[33]byte]bool{key: true}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNestedAccountAuthRecursion(t *testing.T) {
	var key [33]byte
	key[0] = 0x05
	lookup := fakeLookup{
		"nested": {
			Active: Authority{KeyAuths: []WeightedKey{{Key: key, Weight: 1}}, Threshold: 1},
		},
		"parent": {
			Active: Authority{
				AccountAuths: []WeightedAccount{{Account: "nested", Weight: 3}},
				Threshold:    3,
			},
		},
	}
	verified := VerifiedKeys{key: true}
	ok, err := Satisfy(lookup, Requirement{Account: "parent", Kind: Active}, verified)
	if err != nil || !ok {
		t.Fatalf("expected recursion through nested account auth to satisfy, got ok=%v err=%v", ok, err)
	}
}
