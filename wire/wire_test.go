package wire

import (
	"bytes"
	"testing"
)

func TestUvarintRoundTrip(t *testing.T) {
	vals := []uint64{0, 1, 127, 128, 300, 1 << 32, ^uint64(0)}
	for _, v := range vals {
		w := NewWriter()
		w.WriteUvarint(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadUvarint()
		if err != nil {
			t.Fatalf("read %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("uvarint round trip: want %d got %d", v, got)
		}
		if r.Remaining() != 0 {
			t.Fatalf("uvarint %d left %d trailing bytes", v, r.Remaining())
		}
	}
}

func TestVarintRoundTripNegative(t *testing.T) {
	vals := []int64{0, -1, 1, -128, 128, -1 << 40, 1 << 40}
	for _, v := range vals {
		w := NewWriter()
		w.WriteVarint(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadVarint()
		if err != nil {
			t.Fatalf("read %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("varint round trip: want %d got %d", v, got)
		}
	}
}

func TestStringAndBytesRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteString("hello, operations")
	w.WriteBytes([]byte{1, 2, 3, 4})
	w.WriteBool(true)
	w.WriteBool(false)

	r := NewReader(w.Bytes())
	s, err := r.ReadString()
	if err != nil || s != "hello, operations" {
		t.Fatalf("string round trip: %q, err=%v", s, err)
	}
	b, err := r.ReadBytes()
	if err != nil || !bytes.Equal(b, []byte{1, 2, 3, 4}) {
		t.Fatalf("bytes round trip: %v, err=%v", b, err)
	}
	first, err := r.ReadBool()
	if err != nil || !first {
		t.Fatalf("bool round trip (true): %v, err=%v", first, err)
	}
	second, err := r.ReadBool()
	if err != nil || second {
		t.Fatalf("bool round trip (false): %v, err=%v", second, err)
	}
}

func TestReadPastEndIsMalformed(t *testing.T) {
	r := NewReader([]byte{0x05})
	if _, err := r.ReadFixed(32); err == nil {
		t.Fatalf("expected error reading past end of buffer")
	}
}

func TestStringVectorRoundTrip(t *testing.T) {
	w := NewWriter()
	xs := []string{"alice", "bob", "carol"}
	w.WriteStringVector(xs)
	r := NewReader(w.Bytes())
	got, err := r.ReadStringVector()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(xs) {
		t.Fatalf("want %d entries got %d", len(xs), len(got))
	}
	for i := range xs {
		if got[i] != xs[i] {
			t.Fatalf("entry %d: want %q got %q", i, xs[i], got[i])
		}
	}
}
