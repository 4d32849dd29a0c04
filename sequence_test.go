package x690

import "testing"

func TestSequence_roundtrip(t *testing.T) {
	n1, _ := NewInteger(7)
	n2, _ := NewInteger(-3)
	seq := EncodeSequence(BER, []Element{EncodeInteger(BER, n1), EncodeBoolean(BER, true), EncodeInteger(BER, n2)}, false)

	back, n, err := DecodeBER(seq.Bytes())
	if err != nil {
		t.Fatalf("%s failed [decode outer]: %v", t.Name(), err)
	}
	if n != len(seq.Bytes()) {
		t.Fatalf("%s failed [consumed]: want %d got %d", t.Name(), len(seq.Bytes()), n)
	}

	kids, err := DecodeSequence(back)
	if err != nil {
		t.Fatalf("%s failed [decode children]: %v", t.Name(), err)
	}
	if len(kids) != 3 {
		t.Fatalf("%s failed [child count]: want 3 got %d", t.Name(), len(kids))
	}

	v1, err := DecodeInteger(kids[0])
	if err != nil || !v1.Eq(n1) {
		t.Fatalf("%s failed [child 0]: %v %v", t.Name(), v1, err)
	}
	v2, err := DecodeBoolean(kids[1])
	if err != nil || !v2 {
		t.Fatalf("%s failed [child 1]: %v %v", t.Name(), v2, err)
	}
	v3, err := DecodeInteger(kids[2])
	if err != nil || !v3.Eq(n2) {
		t.Fatalf("%s failed [child 2]: %v %v", t.Name(), v3, err)
	}
}

func TestSet_wrongTagRejected(t *testing.T) {
	seq := EncodeSequence(BER, nil, false)
	if _, err := DecodeSet(seq); err == nil {
		t.Fatalf("%s failed: DecodeSet must reject a SEQUENCE-tagged element", t.Name())
	}
}

func TestSequence_indefiniteUnderBER(t *testing.T) {
	n1, _ := NewInteger(42)
	seq := EncodeSequence(BER, []Element{EncodeInteger(BER, n1)}, true)
	if !seq.Indefinite() {
		t.Fatalf("%s failed: expected indefinite-length encoding", t.Name())
	}

	back, _, err := DecodeBER(seq.Bytes())
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	kids, err := DecodeSequence(back)
	if err != nil || len(kids) != 1 {
		t.Fatalf("%s failed [children]: %v %v", t.Name(), kids, err)
	}
}
