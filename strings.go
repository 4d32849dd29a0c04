package x690

/*
strings.go implements the octet-oriented ASN.1 string types of
spec.md §4.3 whose content is a byte slice validated (or not) against
a fixed character repertoire. Each is subject to the CER chunking
rule of §4.6.
*/

/*
RestrictedString identifies which alphabet-restricted string type an
encode/decode call targets.
*/
type RestrictedString int

const (
	UTF8String RestrictedString = iota
	PrintableString
	NumericString
	IA5String
	GeneralString
	VisibleString
	GraphicString
	ObjectDescriptor
	TeletexString
	VideotexString
)

func (s RestrictedString) tag() int {
	switch s {
	case UTF8String:
		return TagUTF8String
	case PrintableString:
		return TagPrintableString
	case NumericString:
		return TagNumericString
	case IA5String:
		return TagIA5String
	case GeneralString:
		return TagGeneralString
	case VisibleString:
		return TagVisibleString
	case GraphicString:
		return TagGraphicString
	case ObjectDescriptor:
		return TagObjectDescriptor
	case TeletexString:
		return TagTeletexString
	case VideotexString:
		return TagVideotexString
	}
	return -1
}

func (s RestrictedString) validate(octets []byte) error {
	switch s {
	case PrintableString:
		for _, b := range octets {
			if !isPrintableStringChar(b) {
				return newValueError(ValueCharacters, "PrintableString: character out of alphabet")
			}
		}
	case NumericString:
		for _, b := range octets {
			if !(b == ' ' || (b >= '0' && b <= '9')) {
				return newValueError(ValueCharacters, "NumericString: character out of alphabet")
			}
		}
	case IA5String, GeneralString:
		for _, b := range octets {
			if b > 0x7F {
				return newValueError(ValueCharacters, "IA5String/GeneralString: non-ASCII octet")
			}
		}
	case VisibleString, GraphicString:
		for _, b := range octets {
			if b < 0x20 || b > 0x7E {
				return newValueError(ValueCharacters, "VisibleString/GraphicString: octet out of [0x20,0x7E]")
			}
		}
	case ObjectDescriptor:
		for _, b := range octets {
			if b < 0x20 || b > 0x7E {
				return newValueError(ValueCharacters, "ObjectDescriptor: octet out of [0x20,0x7E]")
			}
		}
	case UTF8String, TeletexString, VideotexString:
		// Arbitrary octets; UTF8String validity, if desired, is the
		// caller's concern (spec.md §4.3).
	}
	return nil
}

func isPrintableStringChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

/*
EncodeRestrictedString validates octets against kind's alphabet and
produces an [Element], chunking under CER when the content exceeds
1000 octets.
*/
func EncodeRestrictedString(rule EncodingRule, kind RestrictedString, octets []byte) (Element, error) {
	if err := kind.validate(octets); err != nil {
		return nil, err
	}
	return encodeChunkedOctets(rule, kind.tag(), octets), nil
}

/*
DecodeRestrictedString reassembles (if CER-chunked) and validates the
content of e against kind's alphabet.
*/
func DecodeRestrictedString(e Element, kind RestrictedString) ([]byte, error) {
	data, err := decodeChunkedOctets(e, kind.tag())
	if err != nil {
		return nil, err
	}
	if err := kind.validate(data); err != nil {
		return nil, err
	}
	return data, nil
}
