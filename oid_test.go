package x690

import (
	"bytes"
	"testing"
)

func TestObjectIdentifier_1_3_6_4_1(t *testing.T) {
	oid, err := NewObjectIdentifier("1.3.6.4.1")
	if err != nil {
		t.Fatalf("%s failed [construct]: %v", t.Name(), err)
	}
	e, err := EncodeOID(BER, oid)
	if err != nil {
		t.Fatalf("%s failed [encode]: %v", t.Name(), err)
	}
	want := []byte{0x06, 0x04, 0x2B, 0x06, 0x04, 0x01}
	if got := e.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("%s failed:\n\twant: % X\n\tgot:  % X", t.Name(), want, got)
	}

	back, err := DecodeOID(e)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if !back.Eq(oid) {
		t.Fatalf("%s failed [roundtrip]:\n\twant: %s\n\tgot:  %s", t.Name(), oid, back)
	}
}

func TestObjectIdentifier_largeArc(t *testing.T) {
	// Arc 65537 requires three VLQ octets.
	oid, err := NewObjectIdentifier("2.999.65537")
	if err != nil {
		t.Fatalf("%s failed [construct]: %v", t.Name(), err)
	}
	e, err := EncodeOID(DER, oid)
	if err != nil {
		t.Fatalf("%s failed [encode]: %v", t.Name(), err)
	}
	back, err := DecodeOID(e)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if !back.Eq(oid) {
		t.Fatalf("%s failed [roundtrip]:\n\twant: %s\n\tgot:  %s", t.Name(), oid, back)
	}
}

func TestDecodeVLQSequence_rejectsNonMinimalContinuationArc(t *testing.T) {
	// Second arc starts with 0x80: a non-minimal continuation octet,
	// not just a stale leftover from the first arc's accumulator.
	if _, err := decodeVLQSequence([]byte{0x2B, 0x80, 0x04}); err == nil {
		t.Fatalf("%s failed: leading 0x80 on a non-first arc must be rejected", t.Name())
	}
}

func TestDecodeVLQSequence_rejectsLeadingArc(t *testing.T) {
	if _, err := decodeVLQSequence([]byte{0x80, 0x01}); err == nil {
		t.Fatalf("%s failed: leading 0x80 on the first arc must be rejected", t.Name())
	}
}

func TestRelativeOID_roundtrip(t *testing.T) {
	rel, err := NewRelativeOID("1.4.1.56521")
	if err != nil {
		t.Fatalf("%s failed [construct]: %v", t.Name(), err)
	}
	e := EncodeRelativeOIDElement(BER, rel)
	back, err := DecodeRelativeOID(e)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if len(back) != len(rel) {
		t.Fatalf("%s failed [roundtrip length]: want %d got %d", t.Name(), len(rel), len(back))
	}
	for i := range rel {
		if !back[i].Eq(rel[i]) {
			t.Fatalf("%s failed [arc %d]: want %s got %s", t.Name(), i, rel[i], back[i])
		}
	}
}
