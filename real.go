package x690

/*
real.go implements the ASN.1 REAL codec (spec.md §4.5): empty value
(0.0), single special octet (±∞, NaN, −0), decimal character string
(ISO 6093 NR1/NR2/NR3), and binary mantissa/base/exponent encoding.

The base is a per-call parameter (see [RealOptions]), not the
process-wide global the teacher library carries — spec.md §9 DESIGN
NOTES calls that out explicitly as a concurrency/TOCTOU hazard to
avoid.
*/

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

type RealSpecial int

const (
	RealNormal RealSpecial = iota
	RealPlusInfinity
	RealMinusInfinity
	RealNaN
	RealNegativeZero
)

const (
	specialPlusInf  = 0x40
	specialMinusInf = 0x41
	specialNaN      = 0x42
	specialNegZero  = 0x43
)

/*
Real is the decoded/to-be-encoded value of an ASN.1 REAL: either one
of the special states, or Mantissa × Base^Exponent.
*/
type Real struct {
	Special  RealSpecial
	Mantissa *big.Int
	Base     int
	Exponent int
}

/*
RealOptions configures REAL encoding. The zero value selects base 2,
which is the canonical base CER/DER require.
*/
type RealOptions struct {
	// Base must be 2, 8, or 16 when set; zero defaults to 2. Ignored
	// when Decimal is true.
	Base int
	// Decimal selects the ISO 6093 NR3 decimal character-string form
	// (spec.md §4.5) instead of the binary form.
	Decimal bool
}

func (o RealOptions) base() int {
	if o.Base == 0 {
		return 2
	}
	return o.Base
}

func RealFromFloat64(f float64) Real {
	switch {
	case math.IsNaN(f):
		return Real{Special: RealNaN}
	case math.IsInf(f, +1):
		return Real{Special: RealPlusInfinity}
	case math.IsInf(f, -1):
		return Real{Special: RealMinusInfinity}
	case f == 0:
		if math.Signbit(f) {
			return Real{Special: RealNegativeZero}
		}
		return Real{Special: RealNormal, Mantissa: big.NewInt(0), Base: 2, Exponent: 0}
	}
	m, exp, _ := realBinaryComponents(f, 2)
	return Real{Special: RealNormal, Mantissa: m, Base: 2, Exponent: exp}
}

func (r Real) Float64() float64 {
	switch r.Special {
	case RealPlusInfinity:
		return math.Inf(+1)
	case RealMinusInfinity:
		return math.Inf(-1)
	case RealNaN:
		return math.NaN()
	case RealNegativeZero:
		return math.Copysign(0, -1)
	}
	if r.Mantissa == nil || r.Mantissa.Sign() == 0 {
		return 0
	}
	mant := new(big.Float).SetInt(r.Mantissa)
	factor := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(int64(r.Base)), big.NewInt(int64(absInt(r.Exponent))), nil))
	if r.Exponent < 0 {
		factor = new(big.Float).Quo(big.NewFloat(1), factor)
	}
	mant.Mul(mant, factor)
	f, _ := mant.Float64()
	return f
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

/*
EncodeReal produces an [Element] encoding f as an ASN.1 REAL. By
default it uses the binary form canonicalized per spec.md §4.5 (base 2:
mantissa is zero or odd); passing RealOptions{Decimal: true} instead
produces the ISO 6093 NR3 decimal character-string form. NaN fails
with a [ValueError].
*/
func EncodeReal(rule EncodingRule, f float64, opts ...RealOptions) (Element, error) {
	var o RealOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	if math.IsNaN(f) {
		return nil, newValueError(ValueInvalid, "REAL: NaN cannot be encoded")
	}

	var content []byte
	switch {
	case f == 0 && !math.Signbit(f):
		content = nil
	case math.IsInf(f, +1):
		content = []byte{specialPlusInf}
	case math.IsInf(f, -1):
		content = []byte{specialMinusInf}
	case f == 0 && math.Signbit(f):
		content = []byte{specialNegZero}
	case o.Decimal:
		content = encodeRealDecimal(f)
	default:
		mant, exp, err := realBinaryComponents(f, o.base())
		if err != nil {
			return nil, err
		}
		content, err = encodeRealBinary(mant, o.base(), exp)
		if err != nil {
			return nil, err
		}
	}

	return newUniversalPrimitive(rule, TagReal, content), nil
}

/*
DecodeReal extracts the REAL value carried by e, dispatching on the
first content octet as spec.md §4.5 describes.
*/
func DecodeReal(e Element) (Real, error) {
	v := e.Value()
	switch {
	case len(v) == 0:
		return Real{Special: RealNormal, Mantissa: big.NewInt(0), Base: 2, Exponent: 0}, nil
	case len(v) == 1:
		switch v[0] {
		case specialPlusInf:
			return Real{Special: RealPlusInfinity}, nil
		case specialMinusInf:
			return Real{Special: RealMinusInfinity}, nil
		case specialNaN:
			return Real{Special: RealNaN}, nil
		case specialNegZero:
			return Real{Special: RealNegativeZero}, nil
		default:
			return Real{}, newValueError(ValueInvalid, "REAL: unrecognized single-octet special value")
		}
	}

	switch v[0] & 0xC0 {
	case 0x00:
		return decodeRealDecimal(v)
	default:
		if v[0]&0x80 == 0 {
			return Real{}, newValueError(ValueInvalid, "REAL: unsupported information-octet top bits")
		}
		return decodeRealBinary(v)
	}
}

// --- binary form ---

func realBaseHeader(base int) byte {
	switch base {
	case 8:
		return 0x10
	case 16:
		return 0x20
	default:
		return 0x00 // base 2
	}
}

func headerToBase(header byte) int {
	switch (header >> 4) & 0x03 {
	case 1:
		return 8
	case 2:
		return 16
	default:
		return 2
	}
}

func encodeRealBinary(mantissa *big.Int, base, exponent int) ([]byte, error) {
	sign := byte(0)
	m := new(big.Int).Set(mantissa)
	if m.Sign() < 0 {
		sign = 0x40
		m.Neg(m)
	}

	expBytes := encodeTwosComplement(exponent)
	if len(expBytes) > 0x7FFF {
		return nil, newLengthError(LengthOverflow, "REAL exponent too large")
	}

	var expField byte
	var prefix []byte
	switch {
	case len(expBytes) == 1:
		expField = 0x00
	case len(expBytes) == 2:
		expField = 0x01
	case len(expBytes) == 3:
		expField = 0x02
	default:
		if len(expBytes) > 0xFF {
			return nil, newLengthError(LengthOverflow, "REAL exponent length exceeds one octet")
		}
		expField = 0x03
		prefix = []byte{byte(len(expBytes))}
	}

	header := byte(0x80) | sign | realBaseHeader(base) | expField
	out := []byte{header}
	out = append(out, prefix...)
	out = append(out, expBytes...)
	out = append(out, m.Bytes()...)
	return out, nil
}

func decodeRealBinary(v []byte) (Real, error) {
	header := v[0]
	sign := 1
	if header&0x40 != 0 {
		sign = -1
	}
	base := headerToBase(header)

	rest := v[1:]
	var expLen int
	switch header & 0x03 {
	case 0:
		expLen = 1
	case 1:
		expLen = 2
	case 2:
		expLen = 3
	default:
		if len(rest) < 1 {
			return Real{}, newValueError(ValueSize, "REAL: missing exponent-length octet")
		}
		expLen = int(rest[0])
		rest = rest[1:]
	}
	if len(rest) < expLen {
		return Real{}, newValueError(ValueSize, "REAL: insufficient data for exponent")
	}

	exp := decodeTwosComplement(rest[:expLen])
	mantissa := new(big.Int).SetBytes(rest[expLen:])
	mantissa.Mul(mantissa, big.NewInt(int64(sign)))

	return Real{Special: RealNormal, Mantissa: mantissa, Base: base, Exponent: exp}, nil
}

func encodeTwosComplement(v int) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	neg := v < 0
	n := v
	if neg {
		n = -n
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{byte(n & 0xFF)}, buf...)
		n >>= 8
	}
	if neg {
		carry := byte(1)
		for i := len(buf) - 1; i >= 0; i-- {
			buf[i] = ^buf[i] + carry
			if buf[i] != 0 {
				carry = 0
			}
		}
	}
	if (buf[0]&0x80 != 0) != neg {
		sign := byte(0x00)
		if neg {
			sign = 0xFF
		}
		buf = append([]byte{sign}, buf...)
	}
	return buf
}

func decodeTwosComplement(b []byte) int {
	n := 0
	for _, v := range b {
		n = (n << 8) | int(v)
	}
	if len(b) > 0 && b[0]&0x80 != 0 {
		n -= 1 << (8 * uint(len(b)))
	}
	return n
}

/*
realBinaryComponents decomposes f into mantissa × base^exponent. For
base 2 the mantissa is canonicalized to zero or odd, per spec.md §4.5.
*/
func realBinaryComponents(f float64, base int) (*big.Int, int, error) {
	if base != 2 && base != 8 && base != 16 {
		return nil, 0, newValueError(ValueInvalid, "REAL: unsupported base")
	}

	neg := math.Signbit(f)
	if neg {
		f = -f
	}

	frac, e2 := math.Frexp(f)
	const sigBits = 53
	m := big.NewInt(int64(frac * (1 << sigBits)))
	e2 -= sigBits

	var exp int
	switch base {
	case 2:
		exp = e2
		if tz := m.TrailingZeroBits(); tz > 0 {
			m.Rsh(m, tz)
			exp += int(tz)
		}
	case 8:
		q, r := e2/3, e2%3
		if r < 0 {
			q--
			r += 3
		}
		exp = q
		if r != 0 {
			m.Lsh(m, uint(r))
		}
		eight := big.NewInt(8)
		for new(big.Int).Mod(m, eight).Sign() == 0 && m.Sign() != 0 {
			m.Div(m, eight)
			exp++
		}
	case 16:
		exp16, rem := e2/4, e2%4
		if rem < 0 {
			rem += 4
			exp16--
		}
		if rem != 0 {
			m.Lsh(m, uint(rem))
		}
		exp = exp16
	}

	if neg {
		m.Neg(m)
	}
	return m, exp, nil
}

// --- decimal form (ISO 6093 NR1/NR2/NR3) ---

func decodeRealDecimal(v []byte) (Real, error) {
	nr := v[0] & 0x03
	s := strings.TrimSpace(string(v[1:]))

	switch nr {
	case 1, 2, 3:
		mant, exp, err := decimalStringComponents(s)
		if err != nil {
			return Real{}, err
		}
		return Real{Special: RealNormal, Mantissa: mant, Base: 10, Exponent: exp}, nil
	default:
		return Real{}, newValueError(ValueInvalid, "REAL: unrecognized decimal NR form")
	}
}

/*
decimalStringComponents parses an ISO 6093 NR1/NR2/NR3 numeral (an
optional sign, digits, an optional "." or "," decimal point, and an
optional "E"/"e" exponent) into mantissa × 10^exponent, without going
through a float64 intermediate.
*/
func decimalStringComponents(s string) (*big.Int, int, error) {
	s = strings.ReplaceAll(s, ",", ".")

	mantPart, expPart := s, ""
	if i := strings.IndexAny(s, "Ee"); i >= 0 {
		mantPart, expPart = s[:i], s[i+1:]
	}

	neg := false
	if len(mantPart) > 0 && (mantPart[0] == '+' || mantPart[0] == '-') {
		neg = mantPart[0] == '-'
		mantPart = mantPart[1:]
	}

	intPart, fracPart := mantPart, ""
	if i := strings.IndexByte(mantPart, '.'); i >= 0 {
		intPart, fracPart = mantPart[:i], mantPart[i+1:]
	}

	digits := intPart + fracPart
	if digits == "" {
		return nil, 0, newValueError(ValueCharacters, "REAL: malformed ISO 6093 numeral")
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, 0, newValueError(ValueCharacters, "REAL: malformed ISO 6093 numeral")
		}
	}

	mant, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, 0, newValueError(ValueCharacters, "REAL: malformed ISO 6093 numeral")
	}
	if neg {
		mant.Neg(mant)
	}

	exp := -len(fracPart)
	if expPart != "" {
		e, err := strconv.Atoi(expPart)
		if err != nil {
			return nil, 0, newValueError(ValueCharacters, "REAL: malformed ISO 6093 exponent")
		}
		exp += e
	}

	return mant, exp, nil
}

/*
encodeRealDecimal renders f as an ISO 6093 NR3 numeral (sign, integer
digit, fractional digits, signed exponent), the form spec.md §4.5
requires for the decimal character-string REAL encoding.
*/
func encodeRealDecimal(f float64) []byte {
	s := strconv.FormatFloat(f, 'E', -1, 64)
	content := make([]byte, 0, len(s)+1)
	content = append(content, 0x03) // top bits 00, NR3
	content = append(content, s...)
	return content
}
