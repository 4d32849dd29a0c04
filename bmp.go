package x690

/*
bmp.go implements BMPString (spec.md §4.3): big-endian UTF-16 code
units, subject to the CER chunking rule of §4.6 (500 code units, i.e.
1000 octets).
*/

import "unicode/utf16"

func EncodeBMPString(rule EncodingRule, s string) Element {
	units := utf16.Encode([]rune(s))
	content := make([]byte, len(units)*2)
	for i, u := range units {
		content[2*i] = byte(u >> 8)
		content[2*i+1] = byte(u)
	}
	return encodeChunkedOctets(rule, TagBMPString, content)
}

func DecodeBMPString(e Element) (string, error) {
	content, err := decodeChunkedOctets(e, TagBMPString)
	if err != nil {
		return "", err
	}
	if len(content)%2 != 0 {
		return "", newValueError(ValueSize, "BMPString content length must be even")
	}
	units := make([]uint16, len(content)/2)
	for i := range units {
		units[i] = uint16(content[2*i])<<8 | uint16(content[2*i+1])
	}
	return string(utf16.Decode(units)), nil
}
