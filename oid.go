package x690

/*
oid.go implements OBJECT IDENTIFIER and RELATIVE-OID (spec.md §3, §4.3),
adapted from the arc-array model of github.com/JesseCoretta/go-asn1plus's
oid.go (itself descended from the archived go-objectid package).
*/

import (
	"math/big"
	"math/bits"
	"strings"
)

/*
ObjectIdentifier is an ordered sequence of two or more arcs. The first
arc must be 0, 1, or 2; if 0 or 1, the second arc must be in [0,39].
*/
type ObjectIdentifier []Integer

/*
NewObjectIdentifier parses a dotted-decimal string ("1.3.6.1") into an
[ObjectIdentifier], validating the first-arc/second-arc constraint of
spec.md §3.
*/
func NewObjectIdentifier(dotted string) (ObjectIdentifier, error) {
	parts := strings.Split(dotted, ".")
	if len(parts) < 2 {
		return nil, newValueError(ValueInvalid, "OBJECT IDENTIFIER needs at least two arcs")
	}
	oid := make(ObjectIdentifier, len(parts))
	for i, p := range parts {
		n, err := NewInteger(p)
		if err != nil {
			return nil, newValueError(ValueInvalid, "OBJECT IDENTIFIER arc not numeric: "+p)
		}
		if n.Big().Sign() < 0 {
			return nil, newValueError(ValueInvalid, "OBJECT IDENTIFIER arcs cannot be negative")
		}
		oid[i] = n
	}
	if err := oid.Validate(); err != nil {
		return nil, err
	}
	return oid, nil
}

/*
Validate checks the first-arc/second-arc relationship required by
spec.md §3.
*/
func (o ObjectIdentifier) Validate() error {
	if len(o) < 2 {
		return newValueError(ValueInvalid, "OBJECT IDENTIFIER needs at least two arcs")
	}
	first := o[0].Big()
	if first.Cmp(big.NewInt(2)) > 0 || first.Sign() < 0 {
		return newValueError(ValueInvalid, "OBJECT IDENTIFIER first arc must be 0, 1, or 2")
	}
	if first.Cmp(big.NewInt(2)) < 0 {
		second := o[1].Big()
		if second.Sign() < 0 || second.Cmp(big.NewInt(39)) > 0 {
			return newValueError(ValueInvalid, "OBJECT IDENTIFIER second arc must be in [0,39] when first arc is 0 or 1")
		}
	}
	return nil
}

func (o ObjectIdentifier) String() string {
	parts := make([]string, len(o))
	for i, a := range o {
		parts[i] = a.String()
	}
	return strings.Join(parts, ".")
}

func (o ObjectIdentifier) Eq(other ObjectIdentifier) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if !o[i].Eq(other[i]) {
			return false
		}
	}
	return true
}

// --- wire codec ---

func encodeOIDContent(o ObjectIdentifier) ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var content []byte
	first := o[0].Big()
	second := o[1].Big()

	combined := new(big.Int).Mul(first, big.NewInt(40))
	combined.Add(combined, second)
	content = append(content, encodeVLQ(combined)...)

	for _, arc := range o[2:] {
		content = append(content, encodeVLQ(arc.Big())...)
	}
	return content, nil
}

func decodeOIDContent(data []byte) (ObjectIdentifier, error) {
	if len(data) == 0 {
		return nil, newValueError(ValueSize, "OBJECT IDENTIFIER content must not be empty")
	}

	arcs, err := decodeVLQSequence(data)
	if err != nil {
		return nil, err
	}

	first := arcs[0].Big()
	var firstArc, secondArc *big.Int
	eighty := big.NewInt(80)
	if first.Cmp(eighty) < 0 {
		firstArc = new(big.Int).Div(first, big.NewInt(40))
		secondArc = new(big.Int).Mod(first, big.NewInt(40))
	} else {
		firstArc = big.NewInt(2)
		secondArc = new(big.Int).Sub(first, eighty)
	}

	out := make(ObjectIdentifier, 0, len(arcs)+1)
	out = append(out, fromBig(firstArc), fromBig(secondArc))
	out = append(out, arcs[1:]...)
	return out, nil
}

/*
EncodeOID produces an [Element] under rule encoding o as an ASN.1
OBJECT IDENTIFIER.
*/
func EncodeOID(rule EncodingRule, o ObjectIdentifier) (Element, error) {
	content, err := encodeOIDContent(o)
	if err != nil {
		return nil, err
	}
	return newUniversalPrimitive(rule, TagOID, content), nil
}

/*
DecodeOID extracts the OBJECT IDENTIFIER value carried by e.
*/
func DecodeOID(e Element) (ObjectIdentifier, error) {
	return decodeOIDContent(e.Value())
}

/*
RelativeOID is an ordered sequence of zero or more arcs, without
OBJECT IDENTIFIER's first-two-arc packing.
*/
type RelativeOID []Integer

func NewRelativeOID(dotted string) (RelativeOID, error) {
	if dotted == "" {
		return RelativeOID{}, nil
	}
	parts := strings.Split(dotted, ".")
	rel := make(RelativeOID, len(parts))
	for i, p := range parts {
		n, err := NewInteger(p)
		if err != nil || n.Big().Sign() < 0 {
			return nil, newValueError(ValueInvalid, "RELATIVE-OID arc not a non-negative integer: "+p)
		}
		rel[i] = n
	}
	return rel, nil
}

func (r RelativeOID) String() string {
	parts := make([]string, len(r))
	for i, a := range r {
		parts[i] = a.String()
	}
	return strings.Join(parts, ".")
}

/*
Absolute appends the receiver to base, producing a complete
[ObjectIdentifier].
*/
func (r RelativeOID) Absolute(base ObjectIdentifier) ObjectIdentifier {
	out := make(ObjectIdentifier, 0, len(base)+len(r))
	out = append(out, base...)
	out = append(out, r...)
	return out
}

func EncodeRelativeOID(rule EncodingRule, r RelativeOID) []byte {
	var content []byte
	for _, arc := range r {
		content = append(content, encodeVLQ(arc.Big())...)
	}
	return content
}

/*
EncodeRelativeOIDElement produces an [Element] under rule encoding r
as an ASN.1 RELATIVE-OID.
*/
func EncodeRelativeOIDElement(rule EncodingRule, r RelativeOID) Element {
	return newUniversalPrimitive(rule, TagRelativeOID, EncodeRelativeOID(rule, r))
}

func DecodeRelativeOID(e Element) (RelativeOID, error) {
	arcs, err := decodeVLQSequence(e.Value())
	if err != nil {
		return nil, err
	}
	return RelativeOID(arcs), nil
}

// --- VLQ (base-128, MSB-continuation) arc codec ---

func encodeVLQ(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0x00}
	}
	var rev []byte
	v := new(big.Int).Set(n)
	base := big.NewInt(128)
	rem := new(big.Int)
	for v.Sign() > 0 {
		v.DivMod(v, base, rem)
		rev = append(rev, byte(rem.Int64()))
	}
	out := make([]byte, len(rev))
	for i, b := range rev {
		if i != 0 {
			b |= 0x80
		}
		out[len(rev)-1-i] = b
	}
	return out
}

func decodeVLQSequence(data []byte) ([]Integer, error) {
	var out []Integer
	acc := new(big.Int)
	i := 0
	for i < len(data) {
		if data[i] == 0x80 {
			return nil, newValueError(ValuePadding, "non-minimal VLQ arc (leading 0x80 continuation)")
		}
		acc.SetInt64(0)
		for {
			acc.Lsh(acc, 7)
			acc.Or(acc, big.NewInt(int64(data[i]&0x7F)))
			cont := data[i]&0x80 != 0
			i++
			if !cont {
				break
			}
			if i >= len(data) {
				return nil, &TruncationError{Reason: "truncated OID/RELATIVE-OID arc"}
			}
		}
		if acc.BitLen() > 2*bits.UintSize {
			return nil, newValueError(ValueOverflow, "OID/RELATIVE-OID arc exceeds two machine words")
		}
		out = append(out, fromBig(new(big.Int).Set(acc)))
	}
	return out, nil
}
