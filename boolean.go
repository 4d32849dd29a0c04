package x690

/*
boolean.go implements BOOLEAN (spec.md §4.3): BER accepts any non-zero
octet as true, CER/DER accept only the canonical 0xFF/0x00 pair.
*/

func EncodeBoolean(rule EncodingRule, v bool) Element {
	var b byte
	if v {
		b = 0xFF
	}
	return newUniversalPrimitive(rule, TagBoolean, []byte{b})
}

func DecodeBoolean(e Element) (bool, error) {
	v := e.Value()
	if len(v) != 1 {
		return false, newValueError(ValueSize, "BOOLEAN content must be exactly one octet")
	}

	if e.Rule() == BER {
		return v[0] != 0x00, nil
	}

	switch v[0] {
	case 0xFF:
		return true, nil
	case 0x00:
		return false, nil
	default:
		return false, newValueError(ValueInvalid, "canonical BOOLEAN must be 0xFF or 0x00")
	}
}
