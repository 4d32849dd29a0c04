package x690

/*
integer.go implements the ASN.1 INTEGER/ENUMERATED content-octet codec
(spec.md §4.3) and the arbitrary-precision [Integer] type used for it
and for OID arcs (oid.go).
*/

import (
	"math/big"
	"reflect"

	"golang.org/x/exp/constraints"
)

/*
Integer is an arbitrary-precision signed integer. Small values are
kept as a native int64 to avoid a heap allocation per arc/INTEGER;
once a value exceeds the int64 range it promotes itself to *big.Int
and stays there.
*/
type Integer struct {
	big    bool
	native int64
	bigInt *big.Int
}

/*
NewInteger constructs an [Integer] from any signed or unsigned machine
integer width or a decimal string ([NewIntegerFromBig] wraps a
*[math/big.Int]). The generic bound comes from
golang.org/x/exp/constraints so one constructor serves every integer
type without per-width boilerplate.
*/
func NewInteger[T constraints.Integer | ~string](v T) (Integer, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		x := rv.String()
		b, ok := new(big.Int).SetString(x, 10)
		if !ok {
			return Integer{}, newValueError(ValueInvalid, "not a base-10 integer: "+x)
		}
		return fromBig(b), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt64(rv.Int()), nil
	default:
		return fromBig(new(big.Int).SetUint64(rv.Uint())), nil
	}
}

func toInt64[T constraints.Integer](v T) int64 { return int64(v) }

func fromInt64(v int64) Integer { return Integer{native: v} }

func fromBig(b *big.Int) Integer {
	if b.IsInt64() {
		return Integer{native: b.Int64()}
	}
	return Integer{big: true, bigInt: new(big.Int).Set(b)}
}

/*
NewIntegerFromBig wraps a *[math/big.Int] directly, for callers already
holding one (e.g. OID arc arithmetic, REAL mantissas).
*/
func NewIntegerFromBig(b *big.Int) Integer { return fromBig(b) }

func (n Integer) Big() *big.Int {
	if n.big {
		return n.bigInt
	}
	return big.NewInt(n.native)
}

func (n Integer) IsZero() bool { return n.Big().Sign() == 0 }

func (n Integer) Eq(o Integer) bool { return n.Big().Cmp(o.Big()) == 0 }
func (n Integer) Lt(o Integer) bool { return n.Big().Cmp(o.Big()) < 0 }
func (n Integer) Ge(o Integer) bool { return n.Big().Cmp(o.Big()) >= 0 }

func (n Integer) String() string { return n.Big().String() }

/*
Int64 returns the receiver as an int64 alongside a Boolean indicating
whether the value fit without truncation.
*/
func (n Integer) Int64() (int64, bool) {
	if !n.big {
		return n.native, true
	}
	return n.bigInt.Int64(), n.bigInt.IsInt64()
}

// --- wire codec ---

/*
encodeIntegerBytes returns the minimal two's-complement big-endian
encoding of v, per spec.md §4.3: zero is the single octet 0x00, and no
encoding ever carries a redundant leading 0x00 or 0xFF octet.
*/
func encodeIntegerBytes(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}

	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	// Negative: two's complement. Compute 2^(8*k) + v for the
	// smallest k that keeps the sign bit set.
	bitLen := new(big.Int).Neg(v)
	bitLen.Sub(bitLen, big.NewInt(1))
	nBits := bitLen.BitLen() + 1
	nBytes := (nBits + 7) / 8
	if nBytes == 0 {
		nBytes = 1
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(nBytes*8))
	twos := new(big.Int).Add(mod, v)
	b := twos.Bytes()
	for len(b) < nBytes {
		b = append([]byte{0x00}, b...)
	}
	return b
}

/*
decodeIntegerBytes parses a two's-complement big-endian content
octet string into a *big.Int, rejecting non-minimal (redundant
leading 0x00/0xFF) encodings when canonical is true (CER/DER).
*/
func decodeIntegerBytes(data []byte, canonical bool) (*big.Int, error) {
	if len(data) == 0 {
		return nil, newValueError(ValueSize, "INTEGER content must be at least one octet")
	}

	if canonical && len(data) > 1 {
		b0, b1 := data[0], data[1]
		if (b0 == 0x00 && b1&0x80 == 0) || (b0 == 0xFF && b1&0x80 != 0) {
			return nil, newValueError(ValuePadding, "non-minimal INTEGER encoding")
		}
	}

	v := new(big.Int).SetBytes(data)
	if data[0]&0x80 != 0 {
		// Negative: v currently holds the unsigned magnitude of the
		// two's-complement bit pattern; subtract 2^(8*len).
		mod := new(big.Int).Lsh(big.NewInt(1), uint(len(data)*8))
		v.Sub(v, mod)
	}
	return v, nil
}

/*
EncodeInteger produces an [Element] under rule encoding v as an
ASN.1 INTEGER.
*/
func EncodeInteger(rule EncodingRule, v Integer) Element {
	return newUniversalPrimitive(rule, TagInteger, encodeIntegerBytes(v.Big()))
}

/*
DecodeInteger extracts the INTEGER value carried by e.
*/
func DecodeInteger(e Element) (Integer, error) {
	b, err := decodeIntegerBytes(e.Value(), e.Rule() != BER)
	if err != nil {
		return Integer{}, err
	}
	return fromBig(b), nil
}

/*
DecodeIntegerInto decodes e's INTEGER content into a fixed-width
signed Go integer, failing with a [ValueError] (kind ValueOverflow)
if the encoded magnitude doesn't fit.
*/
func DecodeIntegerInto[T constraints.Signed](e Element) (T, error) {
	n, err := DecodeInteger(e)
	if err != nil {
		return 0, err
	}
	i64, ok := n.Int64()
	if !ok {
		return 0, newValueError(ValueOverflow, "INTEGER does not fit in requested width")
	}
	var zero T
	maxV := int64(^uint64(0) >> 1 >> (64 - bitsOf(zero)))
	minV := -maxV - 1
	if i64 > maxV || i64 < minV {
		return 0, newValueError(ValueOverflow, "INTEGER does not fit in requested width")
	}
	return T(i64), nil
}

func bitsOf[T constraints.Signed](_ T) uint {
	var v T
	switch any(v).(type) {
	case int8:
		return 8
	case int16:
		return 16
	case int32:
		return 32
	default:
		return 64
	}
}

/*
EncodeEnumerated and DecodeEnumerated share INTEGER's content-octet
encoding (spec.md §4.3: "ENUMERATED: encoded identically to INTEGER"),
differing only in tag number.
*/
func EncodeEnumerated(rule EncodingRule, v Integer) Element {
	return newUniversalPrimitive(rule, TagEnumerated, encodeIntegerBytes(v.Big()))
}

func DecodeEnumerated(e Element) (Integer, error) {
	b, err := decodeIntegerBytes(e.Value(), e.Rule() != BER)
	if err != nil {
		return Integer{}, err
	}
	return fromBig(b), nil
}
