package x690

/*
bitstring.go implements BIT STRING (spec.md §4.3), subject to the
CER chunking rule of §4.6.
*/

/*
BitString is a sequence of bits, most-significant bit first within
each octet of Bytes. BitLength is the number of semantically
meaningful bits; any bits beyond it in the final octet of Bytes are
padding.
*/
type BitString struct {
	Bytes     []byte
	BitLength int
}

func NewBitString(bits []byte, bitLength int) (BitString, error) {
	if bitLength < 0 {
		return BitString{}, newValueError(ValueInvalid, "BIT STRING length cannot be negative")
	}
	if (bitLength+7)/8 != len(bits) {
		return BitString{}, newValueError(ValueSize, "BitLength inconsistent with len(Bytes)")
	}
	return BitString{Bytes: bits, BitLength: bitLength}, nil
}

func EncodeBitString(rule EncodingRule, bs BitString) (Element, error) {
	if bs.BitLength < 0 {
		return nil, newValueError(ValueInvalid, "BIT STRING length cannot be negative")
	}
	expected := (bs.BitLength + 7) / 8
	if expected != len(bs.Bytes) {
		return nil, newValueError(ValueSize, "BitLength inconsistent with len(Bytes)")
	}

	data := bs.Bytes
	if rule == CER || rule == DER {
		// Zero the unused trailing bits of the final octet (spec.md
		// §4.3 and the BIT STRING minimality property of §8).
		if r := bs.BitLength % 8; r != 0 && len(data) > 0 {
			mask := byte(0xFF << uint(8-r))
			cp := append([]byte(nil), data...)
			cp[len(cp)-1] &= mask
			data = cp
		}
	}

	return encodeChunkedBitString(rule, data, bs.BitLength), nil
}

func DecodeBitString(e Element) (BitString, error) {
	if e.IsPrimitive() && e.Len() == 0 {
		return BitString{}, newValueError(ValueSize, "BIT STRING content must not be empty")
	}

	data, unused, err := decodeChunkedBitString(e)
	if err != nil {
		return BitString{}, err
	}
	if unused > 7 {
		return BitString{}, newValueError(ValueInvalid, "BIT STRING unused-bits octet must be in [0,7]")
	}

	bitLength := len(data)*8 - unused
	return BitString{Bytes: data, BitLength: bitLength}, nil
}
