package x690

/*
octetstring.go implements OCTET STRING (spec.md §4.3), subject to the
CER chunking rule of §4.6.
*/

func EncodeOctetString(rule EncodingRule, v []byte) Element {
	return encodeChunkedOctets(rule, TagOctetString, v)
}

func DecodeOctetString(e Element) ([]byte, error) {
	return decodeChunkedOctets(e, TagOctetString)
}
