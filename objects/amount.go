package objects

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/weyoume/wenode-sub002/kernelerr"
)

// Amount is a non-negative consensus-critical quantity. Backed by
// uint256.Int (per SPEC_FULL.md §4.4.1) so overflow is a detected
// kernelerr.ErrInvariant, never silent wraparound.
type Amount struct {
	v uint256.Int
}

// NewAmount builds an Amount from a uint64, the common case for tests and
// genesis data.
func NewAmount(v uint64) Amount {
	var a Amount
	a.v.SetUint64(v)
	return a
}

// ZeroAmount is the additive identity.
func ZeroAmount() Amount { return Amount{} }

// Uint64 returns the amount truncated to 64 bits; bits above the low 64 are
// dropped.
func (a Amount) Uint64() uint64 { return a.v.Uint64() }

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool { return a.v.IsZero() }

// Cmp compares two amounts the way uint256.Int.Cmp does.
func (a Amount) Cmp(b Amount) int { return a.v.Cmp(&b.v) }

// Add returns a+b, failing with ErrInvariant on overflow.
func (a Amount) Add(b Amount) (Amount, error) {
	var out Amount
	if out.v.AddOverflow(&a.v, &b.v) {
		return Amount{}, fmt.Errorf("%w: amount overflow on add", kernelerr.ErrInvariant)
	}
	return out, nil
}

// Sub returns a-b, failing with ErrPrecondition if b > a (balances and pool
// reserves are never allowed to go negative).
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.v.Cmp(&b.v) < 0 {
		return Amount{}, fmt.Errorf("%w: insufficient amount", kernelerr.ErrPrecondition)
	}
	var out Amount
	out.v.Sub(&a.v, &b.v)
	return out, nil
}

// MulDiv computes floor(a*mul/div), the scale-then-divide idiom used
// throughout interest and curve math; fails on overflow of the intermediate
// product.
func (a Amount) MulDiv(mul, div uint64) (Amount, error) {
	var mulV, divV, prod uint256.Int
	mulV.SetUint64(mul)
	divV.SetUint64(div)
	if prod.MulOverflow(&a.v, &mulV) {
		return Amount{}, fmt.Errorf("%w: amount overflow in MulDiv", kernelerr.ErrInvariant)
	}
	if divV.IsZero() {
		return Amount{}, fmt.Errorf("%w: division by zero in MulDiv", kernelerr.ErrInvariant)
	}
	var out Amount
	out.v.Div(&prod, &divV)
	return out, nil
}

func (a Amount) String() string { return a.v.Dec() }

// Bytes32 returns the big-endian 256-bit encoding used by the wire codec
// (wire/values.go) and by anything else needing a fixed-width byte form.
func (a Amount) Bytes32() [32]byte { return a.v.Bytes32() }

// AmountFromBytes32 is Bytes32's inverse.
func AmountFromBytes32(b [32]byte) Amount {
	var a Amount
	a.v.SetBytes32(b[:])
	return a
}

// SignedAmount is a delta that may be negative, used by the balance
// engine's per-sub-balance adjust primitives.
type SignedAmount struct {
	Negative bool
	Magnitude Amount
}

// Pos builds a non-negative SignedAmount.
func Pos(a Amount) SignedAmount { return SignedAmount{Magnitude: a} }

// Neg builds a negative SignedAmount.
func Neg(a Amount) SignedAmount { return SignedAmount{Negative: true, Magnitude: a} }
