package store

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// CompositeKey hashes an ordered list of string/uint64 fields into a
// stable 32-byte key. Used whenever a secondary index is keyed by more
// than one field, so the index itself only ever compares fixed-size
// arrays.
func CompositeKey(parts ...string) [32]byte {
	h := blake3.New()
	for _, p := range parts {
		var lenBuf [8]byte
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(p)))
		h.Write(lenBuf[:])
		h.Write([]byte(p))
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// CompositeKeyU64 is CompositeKey for a mix of a string and a numeric id,
// e.g. (owner, order_id).
func CompositeKeyU64(owner string, id uint64) [32]byte {
	var idBuf [8]byte
	binary.LittleEndian.PutUint64(idBuf[:], id)
	return CompositeKey(owner, string(idBuf[:]))
}
