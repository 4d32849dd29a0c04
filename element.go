package x690

/*
element.go implements the per-element API of spec.md §6: the common
shape shared by the three codec variants (BER/CER/DER), each a
distinct concrete type per spec.md §9 DESIGN NOTES, and the identifier
|| length || value (|| EOC) serialization that backs Bytes. Decoding
from octets is done by DecodeBER/DecodeCER/DecodeDER in decode.go.
*/

/*
Element is the shared interface implemented by [BERElement],
[CERElement], and [DERElement]. An Element is a single TLV unit: it
owns its value octets exclusively (spec.md §3), and is not safe for
concurrent mutation (spec.md §5).
*/
type Element interface {
	Rule() EncodingRule

	TagClass() TagClass
	SetTagClass(TagClass)
	Construction() Construction
	SetConstruction(Construction)
	TagNumber() int
	SetTagNumber(int)

	Value() []byte
	SetValue([]byte)
	Len() int

	// Indefinite reports whether the element was decoded with (or is
	// set to encode with) the indefinite-length form. DER elements
	// always report false; the field does not exist for them.
	Indefinite() bool
	SetIndefinite(bool)

	IsUniversal() bool
	IsApplication() bool
	IsContextSpecific() bool
	IsPrivate() bool
	IsPrimitive() bool
	IsConstructed() bool

	// Bytes serializes the element to its wire form: identifier
	// octets, length octets, value octets, and (if indefinite) the
	// two-octet end-of-content marker.
	Bytes() []byte

	// ValidateTag fails with a typed error naming context if the
	// element's class, construction, or tag number is not among the
	// acceptable sets. A nil or empty acceptable set for any
	// dimension means "don't check that dimension".
	ValidateTag(classes []TagClass, constructions []Construction, numbers []int, context string) error

	String() string
	Hex() string

	// Eq reports structural equality (class, construction, tag
	// number, and optionally length) against another Element,
	// ignoring which concrete encoding-rule type it is.
	Eq(other Element, compareLength ...bool) bool
}

/*
elementCore holds the state common to all three codec variants. The
exported BERElement/CERElement/DERElement types each wrap one,
mirroring spec.md §9's "three concrete implementations sharing common
infrastructure".
*/
type elementCore struct {
	class      TagClass
	constr     Construction
	tagNumber  int
	value      []byte
	indefinite bool
}

func (c *elementCore) TagClass() TagClass             { return c.class }
func (c *elementCore) SetTagClass(v TagClass)         { c.class = v }
func (c *elementCore) Construction() Construction     { return c.constr }
func (c *elementCore) SetConstruction(v Construction) { c.constr = v }
func (c *elementCore) TagNumber() int                 { return c.tagNumber }
func (c *elementCore) SetTagNumber(v int)             { c.tagNumber = v }
func (c *elementCore) Value() []byte                  { return c.value }
func (c *elementCore) SetValue(v []byte)              { c.value = append([]byte(nil), v...) }
func (c *elementCore) Len() int                       { return len(c.value) }
func (c *elementCore) Indefinite() bool               { return c.indefinite }
func (c *elementCore) SetIndefinite(v bool)           { c.indefinite = v }

func (c *elementCore) IsUniversal() bool       { return c.class == ClassUniversal }
func (c *elementCore) IsApplication() bool     { return c.class == ClassApplication }
func (c *elementCore) IsContextSpecific() bool { return c.class == ClassContextSpecific }
func (c *elementCore) IsPrivate() bool         { return c.class == ClassPrivate }
func (c *elementCore) IsPrimitive() bool       { return c.constr == Primitive }
func (c *elementCore) IsConstructed() bool     { return c.constr == Constructed }

func (c *elementCore) bytes(rule EncodingRule) []byte {
	out := make([]byte, 0, identifierSize(c.tagNumber)+lengthSize(len(c.value))+len(c.value)+2)
	out = encodeIdentifier(out, c.class, c.constr, c.tagNumber)

	indef := c.indefinite && rule.AllowsIndefinite()
	if indef {
		out = append(out, 0x80)
	} else {
		out = encodeLength(out, rule, len(c.value))
	}
	out = append(out, c.value...)
	if indef {
		out = append(out, 0x00, 0x00)
	}
	return out
}

func (c *elementCore) validateTag(classes []TagClass, constructions []Construction, numbers []int, context string) error {
	if len(classes) > 0 && !containsClass(classes, c.class) {
		return newTagError(TagNumberMismatch, context+": unexpected class "+c.class.String())
	}
	if len(constructions) > 0 && !containsConstr(constructions, c.constr) {
		return newTagError(TagNumberMismatch, context+": unexpected construction "+c.constr.String())
	}
	if len(numbers) > 0 && !containsInt(numbers, c.tagNumber) {
		return newTagError(TagNumberMismatch, context+": unexpected tag number")
	}
	return nil
}

func containsClass(s []TagClass, v TagClass) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsConstr(s []Construction, v Construction) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func (c *elementCore) eq(rule, otherRule EncodingRule, other Element, compareLength ...bool) bool {
	ok := c.class == other.TagClass() &&
		c.constr == other.Construction() &&
		c.tagNumber == other.TagNumber()
	if len(compareLength) > 0 && compareLength[0] {
		ok = ok && c.Len() == other.Len()
	}
	return ok
}

func elemString(rule EncodingRule, c *elementCore) string {
	b := make([]byte, 0, 64)
	b = append(b, rule.String()...)
	b = append(b, " {class:"...)
	b = append(b, c.class.String()...)
	b = append(b, ", tag:"...)
	b = append(b, itoaInt(c.tagNumber)...)
	b = append(b, ", "...)
	b = append(b, c.constr.String()...)
	b = append(b, ", len:"...)
	b = append(b, itoaInt(len(c.value))...)
	b = append(b, '}')
	return string(b)
}

func itoaInt(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// --- BERElement ---

/*
BERElement is an [Element] implementing the permissive Basic Encoding
Rules.
*/
type BERElement struct{ elementCore }

func NewBERElement() *BERElement { return &BERElement{} }

func (e *BERElement) Rule() EncodingRule { return BER }
func (e *BERElement) Bytes() []byte      { return e.bytes(BER) }
func (e *BERElement) String() string     { return elemString(BER, &e.elementCore) }
func (e *BERElement) Hex() string        { return hexEncode(e.Bytes()) }
func (e *BERElement) ValidateTag(classes []TagClass, constructions []Construction, numbers []int, context string) error {
	return e.validateTag(classes, constructions, numbers, context)
}
func (e *BERElement) Eq(other Element, compareLength ...bool) bool {
	return e.eq(BER, other.Rule(), other, compareLength...)
}

// --- CERElement ---

/*
CERElement is an [Element] implementing the Canonical Encoding Rules:
minimal definite lengths below 1000 octets, mandatory indefinite-length
chunking above.
*/
type CERElement struct{ elementCore }

func NewCERElement() *CERElement { return &CERElement{} }

func (e *CERElement) Rule() EncodingRule { return CER }
func (e *CERElement) Bytes() []byte      { return e.bytes(CER) }
func (e *CERElement) String() string     { return elemString(CER, &e.elementCore) }
func (e *CERElement) Hex() string        { return hexEncode(e.Bytes()) }
func (e *CERElement) ValidateTag(classes []TagClass, constructions []Construction, numbers []int, context string) error {
	return e.validateTag(classes, constructions, numbers, context)
}
func (e *CERElement) Eq(other Element, compareLength ...bool) bool {
	return e.eq(CER, other.Rule(), other, compareLength...)
}

// --- DERElement ---

/*
DERElement is an [Element] implementing the Distinguished Encoding
Rules: definite lengths only, no indefinite-length chunking.
*/
type DERElement struct{ elementCore }

func NewDERElement() *DERElement { return &DERElement{} }

func (e *DERElement) Rule() EncodingRule { return DER }
func (e *DERElement) Bytes() []byte      { return e.bytes(DER) }
func (e *DERElement) String() string     { return elemString(DER, &e.elementCore) }
func (e *DERElement) Hex() string        { return hexEncode(e.Bytes()) }
func (e *DERElement) ValidateTag(classes []TagClass, constructions []Construction, numbers []int, context string) error {
	return e.validateTag(classes, constructions, numbers, context)
}
func (e *DERElement) Eq(other Element, compareLength ...bool) bool {
	return e.eq(DER, other.Rule(), other, compareLength...)
}

// SetIndefinite on a DERElement is a documented no-op: DER has no
// length_encoding_preference field (spec.md §3).
func (e *DERElement) SetIndefinite(bool) {}

var (
	_ Element = (*BERElement)(nil)
	_ Element = (*CERElement)(nil)
	_ Element = (*DERElement)(nil)
)
