package x690

/*
sequence.go implements SEQUENCE and SET (spec.md §4.4): constructed
values whose content octets are the concatenation of their children's
complete TLV encodings, in encounter order. Ordering between SEQUENCE
and SET is identical at this layer; the distinction is purely the tag
number; DER's "SET OF must be reordered by encoding" canonicalization
is left to callers building DER SET values, per spec.md §9's notes on
scope kept at the single-element layer.
*/

func encodeConstructed(rule EncodingRule, tag int, children []Element, indefinite bool) Element {
	var value []byte
	for _, c := range children {
		value = append(value, c.Bytes()...)
	}
	return newUniversalConstructed(rule, tag, value, indefinite && rule.AllowsIndefinite())
}

/*
EncodeSequence concatenates children's encodings under a universal
SEQUENCE tag.
*/
func EncodeSequence(rule EncodingRule, children []Element, indefinite bool) Element {
	return encodeConstructed(rule, TagSequence, children, indefinite)
}

/*
EncodeSet concatenates children's encodings under a universal SET tag.
*/
func EncodeSet(rule EncodingRule, children []Element, indefinite bool) Element {
	return encodeConstructed(rule, TagSet, children, indefinite)
}

/*
decodeChildren splits e's value octets into a sequence of top-level
child elements, each re-decoded under the same encoding rule.
*/
func decodeChildren(e Element, opts ...DecodeOptions) ([]Element, error) {
	if !e.IsConstructed() {
		return nil, newValueError(ValueInvalid, "cannot enumerate children of a primitive element")
	}
	o := decodeOpts(opts)
	rule := e.Rule()
	buf := e.Value()

	var out []Element
	off := 0
	for off < len(buf) {
		core, n, err := decodeOne(rule, buf[off:], 0, o)
		if err != nil {
			return nil, err
		}
		out = append(out, wrapCore(rule, *core))
		off += n
	}
	return out, nil
}

/*
DecodeSequence validates e carries a universal SEQUENCE tag and
returns its children in encoding order.
*/
func DecodeSequence(e Element, opts ...DecodeOptions) ([]Element, error) {
	if err := e.ValidateTag([]TagClass{ClassUniversal}, []Construction{Constructed}, []int{TagSequence}, "SEQUENCE"); err != nil {
		return nil, err
	}
	return decodeChildren(e, opts...)
}

/*
DecodeSet validates e carries a universal SET tag and returns its
children in encoding order.
*/
func DecodeSet(e Element, opts ...DecodeOptions) ([]Element, error) {
	if err := e.ValidateTag([]TagClass{ClassUniversal}, []Construction{Constructed}, []int{TagSet}, "SET"); err != nil {
		return nil, err
	}
	return decodeChildren(e, opts...)
}
