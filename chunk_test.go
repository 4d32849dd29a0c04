package x690

import (
	"bytes"
	"testing"
)

func TestOctetString_CERChunking_under1000(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 500)
	e := EncodeOctetString(CER, data)
	if e.IsConstructed() {
		t.Fatalf("%s failed: 500-octet value must stay primitive under CER", t.Name())
	}
	got, err := DecodeOctetString(e)
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("%s failed [roundtrip]: %v", t.Name(), err)
	}
}

func TestOctetString_CERChunking_over1000(t *testing.T) {
	data := bytes.Repeat([]byte{0xCD}, 1500)
	e := EncodeOctetString(CER, data)
	if !e.IsConstructed() {
		t.Fatalf("%s failed: 1500-octet value must be constructed/chunked under CER", t.Name())
	}
	if !e.Indefinite() {
		t.Fatalf("%s failed: CER chunking must use the indefinite-length form", t.Name())
	}

	got, err := DecodeOctetString(e)
	if err != nil {
		t.Fatalf("%s failed [decode]: %v", t.Name(), err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("%s failed [roundtrip]: length want %d got %d", t.Name(), len(data), len(got))
	}
}

func TestOctetString_DERNeverChunks1500(t *testing.T) {
	data := bytes.Repeat([]byte{0xEF}, 1500)
	e := EncodeOctetString(DER, data)
	if e.IsConstructed() {
		t.Fatalf("%s failed: DER must never chunk, regardless of length", t.Name())
	}
	got, err := DecodeOctetString(e)
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("%s failed [roundtrip]: %v", t.Name(), err)
	}
}

func TestBMPString_roundtrip(t *testing.T) {
	s := "hello, world"
	e := EncodeBMPString(BER, s)
	got, err := DecodeBMPString(e)
	if err != nil || got != s {
		t.Fatalf("%s failed: want %q got %q err=%v", t.Name(), s, got, err)
	}
}

func TestUniversalString_roundtripBER(t *testing.T) {
	s := "hello, world"
	e := EncodeUniversalString(BER, s)
	got, err := DecodeUniversalString(e)
	if err != nil || got != s {
		t.Fatalf("%s failed: want %q got %q err=%v", t.Name(), s, got, err)
	}
}
