package x690

/*
chunk.go implements the CER constructed-value chunking engine of
spec.md §4.6: encoder-side fragmentation of primitive string-like
values over 1000 octets into an indefinite-length constructed
sequence of ≤1000-octet primitive fragments terminated by EOC, and the
corresponding decoder-side reassembly. Generalized from the teacher's
OCTET-STRING/BIT-STRING-only implementation
(github.com/JesseCoretta/go-asn1plus cer_on.go) to every string-like
universal type spec.md §4.6 names.
*/

const maxPrimitiveOctets = 1000

/*
encodeChunkedOctets produces a primitive element when content fits in
one fragment, or (under CER, when it doesn't) a constructed
indefinite-length element whose children are ≤1000-octet primitive
fragments of the same tag, terminated by EOC on serialization.

1000 divides evenly into both BMPString's 2-octet and UniversalString's
4-octet code units, so a flat byte-oriented chunker never splits a code
unit across fragments.
*/
func encodeChunkedOctets(rule EncodingRule, tag int, content []byte) Element {
	if !rule.RequiresChunking() || len(content) <= maxPrimitiveOctets {
		return newUniversalPrimitive(rule, tag, content)
	}

	var value []byte
	for off := 0; off < len(content); off += maxPrimitiveOctets {
		end := off + maxPrimitiveOctets
		if end > len(content) {
			end = len(content)
		}
		child := newUniversalPrimitive(CER, tag, content[off:end])
		value = append(value, child.Bytes()...)
	}
	return newUniversalConstructed(CER, tag, value, true)
}

/*
decodeChunkedOctets returns the reassembled semantic content of e,
whether e was encoded as a single primitive fragment or as a
CER-chunked constructed sequence.
*/
func decodeChunkedOctets(e Element, tag int) ([]byte, error) {
	if e.IsPrimitive() {
		if e.Rule() == CER && e.Len() > maxPrimitiveOctets {
			return nil, newValueError(ValueInvalid, "CER requires constructed chunking for content over 1000 octets")
		}
		return e.Value(), nil
	}
	if e.Rule() != CER {
		return nil, newValueError(ValueInvalid, "constructed encoding of a primitive-only type is only permitted under CER")
	}
	return reassembleOctetChunks(e.Value(), tag)
}

func reassembleOctetChunks(value []byte, tag int) ([]byte, error) {
	var out []byte
	off := 0
	for off < len(value) {
		core, n, err := decodeOne(CER, value[off:], 0, &DecodeOptions{})
		if err != nil {
			return nil, err
		}
		if core.class != ClassUniversal || core.tagNumber != tag {
			return nil, newValueError(ValueInvalid, "CER chunk child has mismatched tag")
		}
		if core.constr == Constructed {
			inner, err := reassembleOctetChunks(core.value, tag)
			if err != nil {
				return nil, err
			}
			out = append(out, inner...)
		} else {
			out = append(out, core.value...)
		}
		off += n
	}
	return out, nil
}

/*
encodeChunkedBitString fragments a BIT STRING whose semantic bit
length exceeds 999 bits (spec.md §4.6 and §9 Open Question (b)) into
≤1000-octet primitive fragments, each carrying its own unused-bits
octet; only the final fragment may have a nonzero unused-bits count.
*/
func encodeChunkedBitString(rule EncodingRule, bits []byte, bitLength int) Element {
	unused := 0
	if r := bitLength % 8; r != 0 {
		unused = 8 - r
	}

	if !rule.RequiresChunking() || bitLength <= 999 {
		content := append([]byte{byte(unused)}, bits...)
		return newUniversalPrimitive(rule, TagBitString, content)
	}

	// Each fragment's content is its unused-bits octet plus at most 999
	// data octets, so no fragment exceeds 1000 octets.
	var value []byte
	total := len(bits)
	for off := 0; off < total; off += maxPrimitiveOctets - 1 {
		end := off + maxPrimitiveOctets - 1
		if end > total {
			end = total
		}
		segUnused := 0
		if end == total {
			segUnused = unused
		}
		seg := make([]byte, 1+(end-off))
		seg[0] = byte(segUnused)
		copy(seg[1:], bits[off:end])

		child := newUniversalPrimitive(CER, TagBitString, seg)
		value = append(value, child.Bytes()...)
	}
	return newUniversalConstructed(CER, TagBitString, value, true)
}

/*
decodeChunkedBitString reassembles a BIT STRING, whether encoded as a
single primitive fragment or a CER-chunked constructed sequence,
returning the concatenated data bits and the trailing unused-bits
count. It rejects any non-final fragment carrying a nonzero
unused-bits count (spec.md §4.6).
*/
func decodeChunkedBitString(e Element) (data []byte, unused int, err error) {
	if e.IsPrimitive() {
		v := e.Value()
		if len(v) == 0 {
			return nil, 0, newValueError(ValueSize, "BIT STRING content must not be empty")
		}
		if e.Rule() == CER && len(v) > maxPrimitiveOctets {
			return nil, 0, newValueError(ValueInvalid, "CER requires constructed chunking for content over 1000 octets")
		}
		unused = int(v[0])
		if unused > 7 {
			return nil, 0, newValueError(ValueInvalid, "BIT STRING unused-bits octet must be in [0,7]")
		}
		return v[1:], unused, nil
	}

	if e.Rule() != CER {
		return nil, 0, newValueError(ValueInvalid, "constructed BIT STRING is only permitted under CER")
	}

	value := e.Value()
	off := 0
	for off < len(value) {
		core, n, derr := decodeOne(CER, value[off:], 0, &DecodeOptions{})
		if derr != nil {
			return nil, 0, derr
		}
		if core.class != ClassUniversal || core.tagNumber != TagBitString {
			return nil, 0, newValueError(ValueInvalid, "BIT STRING chunk child has mismatched tag")
		}
		off += n

		isLast := off >= len(value)

		if core.constr == Constructed {
			segData, segUnused, derr2 := decodeChunkedBitString(wrapCore(CER, *core))
			if derr2 != nil {
				return nil, 0, derr2
			}
			if !isLast && segUnused != 0 {
				return nil, 0, newValueError(ValueInvalid, "non-final BIT STRING fragment has nonzero unused bits")
			}
			data = append(data, segData...)
			unused = segUnused
			continue
		}

		if len(core.value) == 0 {
			return nil, 0, newValueError(ValueSize, "BIT STRING fragment too short")
		}
		fragUnused := int(core.value[0])
		if !isLast && fragUnused != 0 {
			return nil, 0, newValueError(ValueInvalid, "non-final BIT STRING fragment has nonzero unused bits")
		}
		data = append(data, core.value[1:]...)
		unused = fragUnused
	}

	return data, unused, nil
}
