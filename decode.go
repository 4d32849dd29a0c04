package x690

/*
decode.go implements the single-element decode state machine of
spec.md §4.7: READ_IDENT, READ_IDENT_EXT (long-form tag), READ_LEN_FIRST,
READ_LEN_EXT, READ_VALUE_DEFINITE, READ_VALUE_INDEFINITE, DONE. The
states are folded into decodeOne's control flow rather than an
explicit state struct, since each state here is exactly one parsing
step with no suspension point (spec.md §5: every operation completes
synchronously).
*/

/*
DecodeOptions configures a decode call. The zero value matches
spec.md §5's "library imposes none" recursion policy: MaxDepth of zero
means unlimited.
*/
type DecodeOptions struct {
	// MaxDepth, if non-zero, bounds the nesting depth of
	// indefinite-length constructed values a single decode will
	// walk into before returning a *RecursionError. This defends
	// against CVE-2010-3445-class unbounded-recursion attacks;
	// spec.md §5 leaves the choice of whether to enforce one to the
	// caller.
	MaxDepth int
}

/*
DecodeBER parses exactly one element from buf starting at offset 0
under the Basic Encoding Rules, returning the element and the number
of octets it consumed.
*/
func DecodeBER(buf []byte, opts ...DecodeOptions) (*BERElement, int, error) {
	o := decodeOpts(opts)
	core, n, err := decodeOne(BER, buf, 0, o)
	if err != nil {
		return nil, 0, err
	}
	return &BERElement{*core}, n, nil
}

/*
DecodeCER parses exactly one element from buf starting at offset 0
under the Canonical Encoding Rules.
*/
func DecodeCER(buf []byte, opts ...DecodeOptions) (*CERElement, int, error) {
	o := decodeOpts(opts)
	core, n, err := decodeOne(CER, buf, 0, o)
	if err != nil {
		return nil, 0, err
	}
	return &CERElement{*core}, n, nil
}

/*
DecodeDER parses exactly one element from buf starting at offset 0
under the Distinguished Encoding Rules.
*/
func DecodeDER(buf []byte, opts ...DecodeOptions) (*DERElement, int, error) {
	o := decodeOpts(opts)
	core, n, err := decodeOne(DER, buf, 0, o)
	if err != nil {
		return nil, 0, err
	}
	return &DERElement{*core}, n, nil
}

func decodeOpts(opts []DecodeOptions) *DecodeOptions {
	if len(opts) > 0 {
		return &opts[0]
	}
	return &DecodeOptions{}
}

func decodeOne(rule EncodingRule, buf []byte, depth int, o *DecodeOptions) (*elementCore, int, error) {
	if o.MaxDepth > 0 && depth > o.MaxDepth {
		return nil, 0, &RecursionError{Limit: o.MaxDepth}
	}

	// READ_IDENT / READ_IDENT_EXT
	class, constr, tagNumber, idLen, err := decodeIdentifier(buf)
	if err != nil {
		return nil, 0, err
	}
	off := idLen

	// READ_LEN_FIRST / READ_LEN_EXT
	if off >= len(buf) {
		return nil, 0, &TruncationError{Reason: "buffer ended before length octet"}
	}
	dl, err := decodeLength(rule, buf[off:])
	if err != nil {
		return nil, 0, err
	}
	off += dl.NOctets

	core := &elementCore{class: class, constr: constr, tagNumber: tagNumber}

	if !dl.Indefinite {
		// READ_VALUE_DEFINITE
		if dl.Length > len(buf)-off {
			return nil, 0, newLengthError(ValueTooSmall, "declared length exceeds remaining buffer")
		}
		core.value = append([]byte(nil), buf[off:off+dl.Length]...)
		off += dl.Length
		return core, off, nil
	}

	// READ_VALUE_INDEFINITE: only constructed values may use this
	// form (enforced upstream by decodeLength's AllowsIndefinite
	// check plus the construction bit itself).
	if constr != Constructed {
		return nil, 0, newValueError(ValueInvalid, "indefinite length on a primitive element")
	}

	var value []byte
	for {
		if off >= len(buf) {
			return nil, 0, &TruncationError{Reason: "indefinite-length value missing end-of-content"}
		}
		// Peek for the two-octet EOC marker (0x00 0x00) before
		// attempting a full child decode, since EOC is not itself a
		// well-formed TLV under the normal identifier/length rules
		// it happens to parse as one (tag 0, length 0).
		if buf[off] == 0x00 {
			if off+1 >= len(buf) {
				return nil, 0, &TruncationError{Reason: "truncated end-of-content marker"}
			}
			if buf[off+1] == 0x00 {
				off += 2
				core.value = value
				core.indefinite = true
				return core, off, nil
			}
		}

		_, childLen, err := decodeOne(rule, buf[off:], depth+1, o)
		if err != nil {
			return nil, 0, err
		}
		value = append(value, buf[off:off+childLen]...)
		off += childLen
	}
}
