// Package producer implements the kernel's producer-facing interaction
// surface: props voting into median chain properties, proof-of-work
// acceptance, block-verification irreversibility tracking, and violation
// slashing. The kernel observes block production but never drives it.
// VerifyBlock/CommitBlock track irreversibility by counting distinct
// attesters reaching a quorum threshold.
package producer

import (
	"fmt"
	"sort"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/objects"
)

// MedianProperties computes the per-field median across every producer's
// currently-voted ChainProperties. Each field is independently medianed.
func MedianProperties(votes []objects.ChainProperties) objects.ChainProperties {
	if len(votes) == 0 {
		return objects.ChainProperties{}
	}
	pick := func(get func(objects.ChainProperties) uint64) uint64 {
		vals := make([]uint64, len(votes))
		for i, v := range votes {
			vals[i] = get(v)
		}
		sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
		return vals[len(vals)/2]
	}
	return objects.ChainProperties{
		AccountCreationFee:        objects.NewAmount(pick(func(c objects.ChainProperties) uint64 { return c.AccountCreationFee.Uint64() })),
		MaxBlockSize:              uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.MaxBlockSize) })),
		CreditMinInterest:         uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.CreditMinInterest) })),
		CreditVariableInterest:    uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.CreditVariableInterest) })),
		InterestFeePercent:        uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.InterestFeePercent) })),
		MarginOpenRatioBps:        uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.MarginOpenRatioBps) })),
		CreditOpenRatioBps:        uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.CreditOpenRatioBps) })),
		CreditLiquidationRatioBps: uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.CreditLiquidationRatioBps) })),
		VoteCurationDecay:         uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.VoteCurationDecay) })),
		ViewCurationDecay:         uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.ViewCurationDecay) })),
		ShareCurationDecay:        uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.ShareCurationDecay) })),
		CommentCurationDecay:      uint32(pick(func(c objects.ChainProperties) uint64 { return uint64(c.CommentCurationDecay) })),
	}
}

// DifficultyMet reports whether a proof-of-work solution's hash beats the
// network target: interpreted as "numerically at or below target", the
// conventional PoW acceptance rule.
func DifficultyMet(hash [32]byte, target [32]byte) bool {
	for i := range hash {
		if hash[i] != target[i] {
			return hash[i] < target[i]
		}
	}
	return true
}

// VerificationTracker accumulates distinct-producer commit verifications
// per block height; Commit reports when a height first reaches
// objects.IrreversibleThreshold distinct committing producers. It counts
// whatever producer names it is given and does not check membership in the
// top-producer set.
type VerificationTracker struct {
	byHeight map[uint64]map[string]bool
}

// NewVerificationTracker builds an empty tracker.
func NewVerificationTracker() *VerificationTracker {
	return &VerificationTracker{byHeight: make(map[uint64]map[string]bool)}
}

// Commit records producer's verification of height, returning true the
// first time that height crosses the irreversibility threshold.
func (v *VerificationTracker) Commit(height uint64, producerName string) bool {
	set, ok := v.byHeight[height]
	if !ok {
		set = make(map[string]bool)
		v.byHeight[height] = set
	}
	wasBelow := len(set) < objects.IrreversibleThreshold
	set[producerName] = true
	return wasBelow && len(set) >= objects.IrreversibleThreshold
}

// Prune drops bookkeeping for every height at or below upTo. Nothing in the
// kernel calls it.
func (v *VerificationTracker) Prune(upTo uint64) {
	for h := range v.byHeight {
		if h <= upTo {
			delete(v.byHeight, h)
		}
	}
}

// ViolationEvidence is the payload of a producer_violation operation: two
// conflicting signed statements from the same producer at the same height.
// The kernel treats the embedded signatures as opaque; it only checks that
// both blame the same (producer, height) and that their digests differ.
type ViolationEvidence struct {
	Producer  string
	Height    uint64
	DigestOne [32]byte
	DigestTwo [32]byte
}

// Validate reports whether evidence actually demonstrates equivocation:
// same producer and height, two different digests.
func Validate(ev ViolationEvidence) error {
	if ev.DigestOne == ev.DigestTwo {
		return fmt.Errorf("%w: producer_violation evidence does not show conflicting statements", kernelerr.ErrConsensus)
	}
	return nil
}

// SlashFractionBps is the fraction of a violating producer's VoteStake seized
// on a validated violation.
const SlashFractionBps = 10000 // full stake forfeiture is the conventional default.

// Slash computes the producer's post-slash stake.
func Slash(stake objects.Amount) (objects.Amount, error) {
	return stake.MulDiv(10000-SlashFractionBps, 10000)
}
