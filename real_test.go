package x690

import (
	"bytes"
	"math"
	"testing"
)

func TestReal_015625(t *testing.T) {
	e, err := EncodeReal(BER, 0.15625)
	if err != nil {
		t.Fatalf("%s failed [encode]: %v", t.Name(), err)
	}
	want := []byte{0x09, 0x03, 0x80, 0xFB, 0x05}
	if got := e.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("%s failed:\n\twant: % X\n\tgot:  % X", t.Name(), want, got)
	}

	r, err := DecodeReal(e)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if got := r.Float64(); got != 0.15625 {
		t.Fatalf("%s failed [roundtrip]: want 0.15625 got %v", t.Name(), got)
	}
}

func TestReal_specialValues(t *testing.T) {
	cases := []float64{math.Inf(1), math.Inf(-1), math.Copysign(0, -1), 0}
	for _, f := range cases {
		e, err := EncodeReal(DER, f)
		if err != nil {
			t.Fatalf("%s failed [encode %v]: %v", t.Name(), f, err)
		}
		r, err := DecodeReal(e)
		if err != nil {
			t.Fatalf("%s failed [decode %v]: %v", t.Name(), f, err)
		}
		got := r.Float64()
		if math.Signbit(got) != math.Signbit(f) || (got != f && !(math.IsInf(got, 1) && math.IsInf(f, 1)) && !(math.IsInf(got, -1) && math.IsInf(f, -1))) {
			t.Fatalf("%s failed [roundtrip %v]: got %v", t.Name(), f, got)
		}
	}
}

func TestReal_NaNRejected(t *testing.T) {
	if _, err := EncodeReal(BER, math.NaN()); err == nil {
		t.Fatalf("%s failed: NaN must be rejected", t.Name())
	}
}

func TestReal_decimalRoundtrip(t *testing.T) {
	cases := []float64{3.14, -17, 0.001, 2.5e10, -6.25e-3}
	for _, f := range cases {
		e, err := EncodeReal(BER, f, RealOptions{Decimal: true})
		if err != nil {
			t.Fatalf("%s failed [encode %v]: %v", t.Name(), f, err)
		}
		if e.Value()[0]&0xC0 != 0x00 {
			t.Fatalf("%s failed [information octet]: %v is not decimal form", t.Name(), f)
		}
		r, err := DecodeReal(e)
		if err != nil {
			t.Fatalf("%s failed [decode %v]: %v", t.Name(), f, err)
		}
		if r.Base != 10 {
			t.Fatalf("%s failed [base]: want 10 got %d", t.Name(), r.Base)
		}
		if got := r.Float64(); math.Abs(got-f) > math.Abs(f)*1e-9 {
			t.Fatalf("%s failed [roundtrip %v]: got %v", t.Name(), f, got)
		}
	}
}

func TestReal_decimalRejectsMalformedNumeral(t *testing.T) {
	v := []byte{0x03, 'n', 'o', 't', 'a', 'n', 'u', 'm'}
	if _, err := decodeRealDecimal(v); err == nil {
		t.Fatalf("%s failed: malformed numeral must be rejected", t.Name())
	}
}
