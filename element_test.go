package x690

import (
	"bytes"
	"testing"
)

func TestElement_BytesRoundtrip(t *testing.T) {
	e := newUniversalPrimitive(DER, TagInteger, []byte{0x2A})
	buf := e.Bytes()
	back, n, err := DecodeDER(buf)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if n != len(buf) {
		t.Fatalf("%s failed [consumed]: want %d got %d", t.Name(), len(buf), n)
	}
	if !back.Eq(e) {
		t.Fatalf("%s failed [Eq]: want %s got %s", t.Name(), e, back)
	}
	if !bytes.Equal(back.Value(), e.Value()) {
		t.Fatalf("%s failed [value]: want % X got % X", t.Name(), e.Value(), back.Value())
	}
}

func TestElement_classPredicates(t *testing.T) {
	cases := []struct {
		class TagClass
		check func(Element) bool
	}{
		{ClassUniversal, Element.IsUniversal},
		{ClassApplication, Element.IsApplication},
		{ClassContextSpecific, Element.IsContextSpecific},
		{ClassPrivate, Element.IsPrivate},
	}
	for _, c := range cases {
		core := elementCore{class: c.class, tagNumber: 1}
		e := wrapCore(BER, core)
		if !c.check(e) {
			t.Fatalf("%s failed: predicate false for class %s", t.Name(), c.class)
		}
	}
}

func TestElement_constructionPredicates(t *testing.T) {
	prim := wrapCore(BER, elementCore{constr: Primitive})
	if !prim.IsPrimitive() || prim.IsConstructed() {
		t.Fatalf("%s failed: primitive predicates wrong", t.Name())
	}
	cons := wrapCore(BER, elementCore{constr: Constructed})
	if !cons.IsConstructed() || cons.IsPrimitive() {
		t.Fatalf("%s failed: constructed predicates wrong", t.Name())
	}
}

func TestElement_ValidateTag(t *testing.T) {
	e := newUniversalPrimitive(BER, TagBoolean, []byte{0xFF})
	if err := e.ValidateTag([]TagClass{ClassUniversal}, []Construction{Primitive}, []int{TagBoolean}, "test"); err != nil {
		t.Fatalf("%s failed [accept]: %v", t.Name(), err)
	}
	if err := e.ValidateTag([]TagClass{ClassContextSpecific}, nil, nil, "test"); err == nil {
		t.Fatalf("%s failed: wrong class must be rejected", t.Name())
	}
	if err := e.ValidateTag(nil, nil, []int{TagInteger}, "test"); err == nil {
		t.Fatalf("%s failed: wrong tag number must be rejected", t.Name())
	}
}

func TestDERElement_SetIndefiniteIsNoOp(t *testing.T) {
	e := &DERElement{}
	e.SetIndefinite(true)
	if e.Indefinite() {
		t.Fatalf("%s failed: DERElement must never report indefinite", t.Name())
	}
}
