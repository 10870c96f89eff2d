// Package authority implements weighted multisig authority resolution and
// transaction signature verification.
package authority

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/weyoume/wenode-sub002/kernelerr"
)

// Kind names which of an account's three authorities is required.
type Kind int

const (
	Owner Kind = iota
	Active
	Posting
)

func (k Kind) String() string {
	switch k {
	case Owner:
		return "owner"
	case Active:
		return "active"
	case Posting:
		return "posting"
	default:
		return "unknown"
	}
}

// WeightedAccount is one (account name, weight) entry in an authority's
// account-auths list.
type WeightedAccount struct {
	Account string
	Weight  uint32
}

// WeightedKey is one (public key, weight) entry in an authority's key-auths
// list. Keys are stored compressed, matching the 33-byte secp256k1
// compressed point the wallet signs against.
type WeightedKey struct {
	Key    [33]byte
	Weight uint32
}

// Authority is a weighted-multisig threshold: the union of AccountAuths and
// KeyAuths must supply signatures (after recursing into nested account
// authorities) whose weights sum to at least Threshold.
type Authority struct {
	AccountAuths []WeightedAccount
	KeyAuths     []WeightedKey
	Threshold    uint32
}

// Valid checks the structural invariant: threshold positive and no greater
// than the sum of all weights.
func (a Authority) Valid() bool {
	if a.Threshold == 0 {
		return false
	}
	var total uint32
	for _, w := range a.AccountAuths {
		total += w.Weight
	}
	for _, w := range a.KeyAuths {
		total += w.Weight
	}
	return total >= a.Threshold
}

// AccountLookup resolves an account name to its three authorities; the
// kernel's account table implements this without authority importing
// objects, keeping the dependency direction one way.
type AccountLookup interface {
	Authority(account string, kind Kind) (Authority, bool)
}

// MaxSigCheckDepth bounds the recursion into nested account-auths,
// MAX_SIG_CHECK_DEPTH.
const MaxSigCheckDepth = 2

// Digest computes the signed transaction digest: sha256(chain_id ||
// tx_without_signatures).
func Digest(chainID []byte, txWithoutSignatures []byte) [32]byte {
	h := sha256.New()
	h.Write(chainID)
	h.Write(txWithoutSignatures)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// RecoverKey recovers the compressed public key that produced sig over
// digest. This is the one call site that invokes the underlying ECDSA
// library directly.
func RecoverKey(digest [32]byte, sig [65]byte) ([33]byte, error) {
	pub, _, err := ecdsa.RecoverCompact(sig[:], digest[:])
	if err != nil {
		return [33]byte{}, fmt.Errorf("%w: signature recovery failed: %v", kernelerr.ErrUnauthorized, err)
	}
	var out [33]byte
	copy(out[:], pub.SerializeCompressed())
	return out, nil
}

// VerifyKey checks that sig is a valid signature by key over digest,
// without recovering (used once the candidate key is already known, e.g.
// while walking a weighted key-auths list).
func VerifyKey(key [33]byte, digest [32]byte, sig [65]byte) bool {
	pub, err := secp256k1.ParsePubKey(key[:])
	if err != nil {
		return false
	}
	// Compact signatures are recover-id||r||s; drop the recover id for a
	// plain verification and reparse as r,s.
	r := new(secp256k1.ModNScalar)
	s := new(secp256k1.ModNScalar)
	var rb, sb [32]byte
	copy(rb[:], sig[1:33])
	copy(sb[:], sig[33:65])
	r.SetBytes(&rb)
	s.SetBytes(&sb)
	signature := ecdsa.NewSignature(r, s)
	return signature.Verify(digest[:], pub)
}
