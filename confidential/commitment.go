// Package confidential implements opaque primitives for confidential
// transfers; no operation in the kernel calls them. It provides Pedersen
// commitments to hidden amounts and a structural range-proof check.
//
// The kernel never learns a confidential amount; it only checks that a
// range proof and a non-zero commitment are present (VerifyRangeProof does
// not verify the proof cryptographically), and that the sum of
// input commitments equals the sum of output commitments plus a public fee
// commitment (homomorphic balance).
package confidential

import (
	"errors"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	ErrInvalidCommitment = errors.New("confidential: invalid commitment encoding")
	ErrBalanceMismatch   = errors.New("confidential: commitment sums do not balance")
)

// Commitment is a compressed bn254 G1 point: a Pedersen commitment C = v*G +
// r*H to a hidden value v under blinding factor r.
type Commitment [32]byte

// Committer holds the two nothing-up-my-sleeve generators used by every
// commitment in the kernel. One Committer is shared across the whole chain
// (generators must agree for homomorphic addition to mean anything).
type Committer struct {
	g bn254.G1Affine
	h bn254.G1Affine

	mu sync.Mutex
}

// NewCommitter builds the committer with the standard bn254 generator for G
// and a hash-derived point for H.
func NewCommitter() *Committer {
	c := &Committer{}
	_, _, g1Gen, _ := bn254.Generators()
	c.g = g1Gen
	c.h = hashToG1("wenode_confidential_balance_H")
	return c
}

// Commit computes C = v*G + r*H and returns its compressed encoding.
func (c *Committer) Commit(value, blinding [32]byte) (Commitment, error) {
	var v, r fr.Element
	v.SetBytes(value[:])
	r.SetBytes(blinding[:])

	var vG, rH, sum bn254.G1Affine
	vG.ScalarMultiplication(&c.g, v.BigInt(new(big.Int)))
	rH.ScalarMultiplication(&c.h, r.BigInt(new(big.Int)))
	sum.Add(&vG, &rH)

	var out Commitment
	b := sum.Bytes()
	copy(out[:], b[:])
	return out, nil
}

// Verify checks that commitment opens to (value, blinding).
func (c *Committer) Verify(commitment Commitment, value, blinding [32]byte) (bool, error) {
	expect, err := c.Commit(value, blinding)
	if err != nil {
		return false, err
	}
	return expect == commitment, nil
}

// Add computes the homomorphic sum of two commitments: Commit(v1+v2, r1+r2).
func (c *Committer) Add(a, b Commitment) (Commitment, error) {
	pa, err := decompress(a)
	if err != nil {
		return Commitment{}, err
	}
	pb, err := decompress(b)
	if err != nil {
		return Commitment{}, err
	}
	var sum bn254.G1Affine
	sum.Add(&pa, &pb)
	var out Commitment
	bz := sum.Bytes()
	copy(out[:], bz[:])
	return out, nil
}

// Sub computes the homomorphic difference Commit(v1-v2, r1-r2).
func (c *Committer) Sub(a, b Commitment) (Commitment, error) {
	pa, err := decompress(a)
	if err != nil {
		return Commitment{}, err
	}
	pb, err := decompress(b)
	if err != nil {
		return Commitment{}, err
	}
	var neg, diff bn254.G1Affine
	neg.Neg(&pb)
	diff.Add(&pa, &neg)
	var out Commitment
	bz := diff.Bytes()
	copy(out[:], bz[:])
	return out, nil
}

// VerifyBalance checks that the sum of inputs equals the sum of outputs
// plus the public fee commitment — the invariant transfer_confidential must
// hold without ever learning any individual amount.
func (c *Committer) VerifyBalance(inputs, outputs []Commitment, fee Commitment) (bool, error) {
	lhs, err := sumCommitments(c, inputs)
	if err != nil {
		return false, err
	}
	rhsSum, err := sumCommitments(c, outputs)
	if err != nil {
		return false, err
	}
	rhs, err := c.Add(rhsSum, fee)
	if err != nil {
		return false, err
	}
	return lhs == rhs, nil
}

func sumCommitments(c *Committer, cs []Commitment) (Commitment, error) {
	if len(cs) == 0 {
		return Commitment{}, nil
	}
	acc := cs[0]
	for _, next := range cs[1:] {
		var err error
		acc, err = c.Add(acc, next)
		if err != nil {
			return Commitment{}, err
		}
	}
	return acc, nil
}

func decompress(c Commitment) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	if _, err := p.SetBytes(c[:]); err != nil {
		return bn254.G1Affine{}, ErrInvalidCommitment
	}
	return p, nil
}

func hashToG1(domain string) bn254.G1Affine {
	p, err := bn254.HashToG1([]byte(domain), []byte("wenode-sub002-pedersen"))
	if err != nil {
		// Deterministic domain-separated hash-to-curve never fails for a
		// fixed, valid domain/dst pair; a failure here is a build-time
		// misconfiguration, not a runtime condition to recover from.
		panic(err)
	}
	return p
}
