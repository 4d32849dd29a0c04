package x690

import (
	"bytes"
	"testing"
)

func TestDecodeBER_definitePrimitive(t *testing.T) {
	buf := []byte{0x02, 0x01, 0x05, 0xAA}
	e, n, err := DecodeBER(buf)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if n != 3 {
		t.Fatalf("%s failed [consumed]: want 3 got %d", t.Name(), n)
	}
	if e.TagNumber() != TagInteger || !e.IsPrimitive() {
		t.Fatalf("%s failed: got tag=%d constr=%s", t.Name(), e.TagNumber(), e.Construction())
	}
	if !bytes.Equal(e.Value(), []byte{0x05}) {
		t.Fatalf("%s failed [value]: got % X", t.Name(), e.Value())
	}
}

func TestDecodeBER_indefiniteConstructed(t *testing.T) {
	// Constructed OCTET STRING [UNIVERSAL 4], indefinite length,
	// carrying one 1-octet primitive child, closed by EOC.
	buf := []byte{0x24, 0x80, 0x04, 0x01, 0xAB, 0x00, 0x00}
	e, n, err := DecodeBER(buf)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if n != len(buf) {
		t.Fatalf("%s failed [consumed]: want %d got %d", t.Name(), len(buf), n)
	}
	if e.IsPrimitive() || !e.Indefinite() {
		t.Fatalf("%s failed: got primitive=%v indefinite=%v", t.Name(), e.IsPrimitive(), e.Indefinite())
	}
	if !bytes.Equal(e.Value(), []byte{0x04, 0x01, 0xAB}) {
		t.Fatalf("%s failed [value]: got % X", t.Name(), e.Value())
	}
}

func TestDecodeBER_indefiniteMissingEOC(t *testing.T) {
	buf := []byte{0x24, 0x80, 0x04, 0x01, 0xAB}
	if _, _, err := DecodeBER(buf); err == nil {
		t.Fatalf("%s failed: missing end-of-content marker must be rejected", t.Name())
	}
}

func TestDecodeDER_rejectsIndefiniteLength(t *testing.T) {
	buf := []byte{0x24, 0x80, 0x04, 0x01, 0xAB, 0x00, 0x00}
	if _, _, err := DecodeDER(buf); err == nil {
		t.Fatalf("%s failed: DER must reject indefinite length", t.Name())
	}
}

func TestDecodeBER_truncatedValue(t *testing.T) {
	buf := []byte{0x02, 0x05, 0x01}
	if _, _, err := DecodeBER(buf); err == nil {
		t.Fatalf("%s failed: declared length exceeding the buffer must be rejected", t.Name())
	}
}

func TestDecodeBER_maxDepthEnforced(t *testing.T) {
	// Two levels of indefinite-length nesting.
	inner := []byte{0x24, 0x80, 0x04, 0x01, 0xAB, 0x00, 0x00}
	outer := append([]byte{0x24, 0x80}, inner...)
	outer = append(outer, 0x00, 0x00)

	if _, _, err := DecodeBER(outer, DecodeOptions{MaxDepth: 1}); err == nil {
		t.Fatalf("%s failed: nesting beyond MaxDepth must be rejected", t.Name())
	}
	if _, _, err := DecodeBER(outer, DecodeOptions{MaxDepth: 2}); err != nil {
		t.Fatalf("%s failed: nesting within MaxDepth must succeed: %v", t.Name(), err)
	}
}
