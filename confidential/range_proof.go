package confidential

// RangeProof asserts that the amount hidden inside Commitment is within
// [0, 2^BitLength) without revealing it. Proof is opaque: VerifyRangeProof
// reports only a boolean result.
type RangeProof struct {
	Proof     []byte
	BitLength uint32
}

// VerifyRangeProof checks only that the proof is well-formed: a nonzero bit
// length, a non-empty proof and a non-zero commitment. It does not verify
// the proof against the commitment cryptographically, so any amount passes
// as long as those three conditions hold.
func VerifyRangeProof(commitment Commitment, proof RangeProof) bool {
	return proof.BitLength > 0 && len(proof.Proof) > 0 && commitment != Commitment{}
}
