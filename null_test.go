package x690

import "testing"

func TestNull_roundtrip(t *testing.T) {
	e := EncodeNull(DER)
	if e.Len() != 0 {
		t.Fatalf("%s failed: NULL must have zero-length content", t.Name())
	}
	if err := DecodeNull(e); err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	want := []byte{0x05, 0x00}
	if got := e.Bytes(); string(got) != string(want) {
		t.Fatalf("%s failed:\n\twant: % X\n\tgot:  % X", t.Name(), want, got)
	}
}

func TestNull_rejectsNonEmptyContent(t *testing.T) {
	e := newUniversalPrimitive(BER, TagNull, []byte{0x00})
	if err := DecodeNull(e); err == nil {
		t.Fatalf("%s failed: non-empty NULL content must be rejected", t.Name())
	}
}

func TestNewEndOfContent(t *testing.T) {
	e := NewEndOfContent(BER)
	want := []byte{0x00, 0x00}
	if got := e.Bytes(); string(got) != string(want) {
		t.Fatalf("%s failed:\n\twant: % X\n\tgot:  % X", t.Name(), want, got)
	}
}
