// Package wire implements the kernel's transaction/operation wire format:
// a hand-written uvarint-tagged-union codec, not a reflection-based
// general encoder, because strictly positional field order is what keeps
// the chain-id-invariant signing digest reproducible bit-for-bit across
// implementations. Integers are varint-encoded, strings and byte slices
// are length-prefixed, and fixed-size arrays ([32]byte, [33]byte) are
// written raw with no length prefix.
package wire

import (
	"encoding/binary"
	"errors"
)

// ErrMalformed is wrapped by every decode failure: truncated input, a
// length prefix that overruns the remaining buffer, or an out-of-range
// tag/enum value.
var ErrMalformed = errors.New("malformed wire data")

// Writer accumulates an encoded byte stream.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated encoding.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) WriteByte(b byte) { w.buf = append(w.buf, b) }

func (w *Writer) WriteBool(b bool) {
	if b {
		w.WriteByte(1)
	} else {
		w.WriteByte(0)
	}
}

// WriteUvarint appends v as an unsigned LEB128 varint.
func (w *Writer) WriteUvarint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf = append(w.buf, tmp[:n]...)
}

// WriteVarint zigzag-encodes a signed value, then writes it as a uvarint,
// so small-magnitude negatives stay compact.
func (w *Writer) WriteVarint(v int64) {
	w.WriteUvarint(zigzagEncode(v))
}

func (w *Writer) WriteUint8(v uint8) { w.WriteUvarint(uint64(v)) }

func (w *Writer) WriteUint16(v uint16) { w.WriteUvarint(uint64(v)) }

func (w *Writer) WriteInt16(v int16) { w.WriteVarint(int64(v)) }

func (w *Writer) WriteUint32(v uint32) { w.WriteUvarint(uint64(v)) }

func (w *Writer) WriteUint64(v uint64) { w.WriteUvarint(v) }

func (w *Writer) WriteInt64(v int64) { w.WriteVarint(v) }

// WriteFixed appends b with no length prefix — for [N]byte arrays whose
// length is implied by the field's type, e.g. public keys and hashes.
func (w *Writer) WriteFixed(b []byte) { w.buf = append(w.buf, b...) }

// WriteBytes length-prefixes an opaque byte slice.
func (w *Writer) WriteBytes(b []byte) {
	w.WriteUvarint(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// WriteString length-prefixes a UTF-8 string.
func (w *Writer) WriteString(s string) { w.WriteBytes([]byte(s)) }

// WriteStringVector writes a uvarint count followed by each string.
func (w *Writer) WriteStringVector(xs []string) {
	w.WriteUvarint(uint64(len(xs)))
	for _, s := range xs {
		w.WriteString(s)
	}
}

func zigzagEncode(v int64) uint64 { return uint64((v << 1) ^ (v >> 63)) }

func zigzagDecode(v uint64) int64 { return int64(v>>1) ^ -int64(v&1) }

// Reader consumes an encoded byte stream positionally.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps b for decoding. b is not copied; callers must not mutate
// it while decoding is in progress.
func NewReader(b []byte) *Reader { return &Reader{buf: b} }

// Remaining reports how many bytes are left to decode — used by the
// transaction decoder to confirm an encoding was fully consumed.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, ErrMalformed
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	if b > 1 {
		return false, ErrMalformed
	}
	return b == 1, nil
}

// ReadUvarint decodes an unsigned LEB128 varint.
func (r *Reader) ReadUvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		return 0, ErrMalformed
	}
	r.pos += n
	return v, nil
}

func (r *Reader) ReadVarint() (int64, error) {
	v, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}
	return zigzagDecode(v), nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	v, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if v > 0xff {
		return 0, ErrMalformed
	}
	return uint8(v), nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	v, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if v > 0xffff {
		return 0, ErrMalformed
	}
	return uint16(v), nil
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	if v < -0x8000 || v > 0x7fff {
		return 0, ErrMalformed
	}
	return int16(v), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	v, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if v > 0xffffffff {
		return 0, ErrMalformed
	}
	return uint32(v), nil
}

func (r *Reader) ReadUint64() (uint64, error) { return r.ReadUvarint() }

func (r *Reader) ReadInt64() (int64, error) { return r.ReadVarint() }

// ReadFixed reads exactly n bytes with no length prefix.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, ErrMalformed
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	return r.ReadFixed(int(n))
}

func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *Reader) ReadStringVector() ([]string, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]string, n)
	for i := range out {
		if out[i], err = r.ReadString(); err != nil {
			return nil, err
		}
	}
	return out, nil
}
