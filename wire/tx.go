package wire

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/authority"
	"github.com/weyoume/wenode-sub002/ops"
)

// Transaction is the raw wire envelope: ref_block_num/prefix pin it to a
// recent block (TaPoS), expiration bounds its validity window,
// operations is the tagged-union vector wire/dispatch.go encodes, and
// signatures are 65-byte compact-recoverable ECDSA sigs over Digest.
type Transaction struct {
	RefBlockNum    uint16
	RefBlockPrefix uint32
	Expiration     int64
	Operations     []ops.Operation
	Extensions     [][]byte
	Signatures     [][65]byte
}

// encodeBody writes every field except Signatures — the part that is
// itself signed: the signed digest is sha256(chain_id ||
// tx_without_signatures_serialized).
func (t Transaction) encodeBody(w *Writer) error {
	w.WriteUint16(t.RefBlockNum)
	w.WriteUint32(t.RefBlockPrefix)
	w.WriteInt64(t.Expiration)
	w.WriteUvarint(uint64(len(t.Operations)))
	for _, op := range t.Operations {
		if err := EncodeOperation(w, op); err != nil {
			return err
		}
	}
	w.WriteUvarint(uint64(len(t.Extensions)))
	for _, ext := range t.Extensions {
		w.WriteBytes(ext)
	}
	return nil
}

// EncodeWithoutSignatures returns the exact byte string Digest hashes.
func (t Transaction) EncodeWithoutSignatures() ([]byte, error) {
	w := NewWriter()
	if err := t.encodeBody(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Encode appends Signatures after the signed body, producing the complete
// on-the-wire transaction.
func (t Transaction) Encode() ([]byte, error) {
	w := NewWriter()
	if err := t.encodeBody(w); err != nil {
		return nil, err
	}
	w.WriteUvarint(uint64(len(t.Signatures)))
	for _, sig := range t.Signatures {
		w.WriteFixed(sig[:])
	}
	return w.Bytes(), nil
}

// Digest computes sha256(chain_id || tx_without_signatures).
func (t Transaction) Digest(chainID []byte) ([32]byte, error) {
	body, err := t.EncodeWithoutSignatures()
	if err != nil {
		return [32]byte{}, err
	}
	return authority.Digest(chainID, body), nil
}

// RecoverVerifiedKeys recovers the compressed public key behind every
// signature against t's own digest, verifying each recovers to a key whose
// signature actually checks out (authority.VerifyKey) before admitting it —
// the kernel treats an unresolvable or non-verifying signature as simply
// absent rather than as a hard decode error, since a malformed signature
// should fail authorization (ErrUnauthorized), not be rejected at decode
// time as malformed wire data.
func (t Transaction) RecoverVerifiedKeys(chainID []byte) (authority.VerifiedKeys, error) {
	digest, err := t.Digest(chainID)
	if err != nil {
		return nil, err
	}
	verified := make(authority.VerifiedKeys, len(t.Signatures))
	for _, sig := range t.Signatures {
		key, err := authority.RecoverKey(digest, sig)
		if err != nil {
			continue
		}
		if authority.VerifyKey(key, digest, sig) {
			verified[key] = true
		}
	}
	return verified, nil
}

// DecodeTransaction parses a full on-the-wire transaction, including its
// trailing signature vector.
func DecodeTransaction(r *Reader) (Transaction, error) {
	var t Transaction
	var err error
	if t.RefBlockNum, err = r.ReadUint16(); err != nil {
		return Transaction{}, err
	}
	if t.RefBlockPrefix, err = r.ReadUint32(); err != nil {
		return Transaction{}, err
	}
	if t.Expiration, err = r.ReadInt64(); err != nil {
		return Transaction{}, err
	}
	opCount, err := r.ReadUvarint()
	if err != nil {
		return Transaction{}, err
	}
	if opCount > 0 {
		t.Operations = make([]ops.Operation, opCount)
		for i := range t.Operations {
			if t.Operations[i], err = DecodeOperation(r); err != nil {
				return Transaction{}, err
			}
		}
	}
	extCount, err := r.ReadUvarint()
	if err != nil {
		return Transaction{}, err
	}
	if extCount > 0 {
		t.Extensions = make([][]byte, extCount)
		for i := range t.Extensions {
			if t.Extensions[i], err = r.ReadBytes(); err != nil {
				return Transaction{}, err
			}
		}
	}
	sigCount, err := r.ReadUvarint()
	if err != nil {
		return Transaction{}, err
	}
	if sigCount > 0 {
		t.Signatures = make([][65]byte, sigCount)
		for i := range t.Signatures {
			raw, err := r.ReadFixed(65)
			if err != nil {
				return Transaction{}, err
			}
			copy(t.Signatures[i][:], raw)
		}
	}
	if r.Remaining() != 0 {
		return Transaction{}, fmt.Errorf("%w: %d trailing bytes after transaction", ErrMalformed, r.Remaining())
	}
	return t, nil
}
