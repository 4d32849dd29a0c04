package x690

/*
universal.go implements UniversalString (spec.md §4.3): big-endian
UTF-32 code units, subject to the CER chunking rule of §4.6 (250 code
units, i.e. 1000 octets).
*/

func EncodeUniversalString(rule EncodingRule, s string) Element {
	runes := []rune(s)
	content := make([]byte, len(runes)*4)
	for i, r := range runes {
		v := uint32(r)
		content[4*i] = byte(v >> 24)
		content[4*i+1] = byte(v >> 16)
		content[4*i+2] = byte(v >> 8)
		content[4*i+3] = byte(v)
	}
	return encodeChunkedOctets(rule, TagUniversalString, content)
}

func DecodeUniversalString(e Element) (string, error) {
	content, err := decodeChunkedOctets(e, TagUniversalString)
	if err != nil {
		return "", err
	}
	if len(content)%4 != 0 {
		return "", newValueError(ValueSize, "UniversalString content length must be a multiple of 4")
	}
	runes := make([]rune, len(content)/4)
	for i := range runes {
		v := uint32(content[4*i])<<24 | uint32(content[4*i+1])<<16 | uint32(content[4*i+2])<<8 | uint32(content[4*i+3])
		runes[i] = rune(v)
	}
	return string(runes), nil
}
