package x690

/*
time.go implements UTCTime and GeneralizedTime (spec.md §4.3). Both
are ASCII strings parsed into time.Time; neither is subject to CER
chunking (they never approach 1000 octets).
*/

import (
	"strconv"
	"strings"
	"time"
)

func EncodeUTCTime(rule EncodingRule, t time.Time) Element {
	u := t.UTC()
	s := u.Format("0601021504")
	if u.Second() != 0 {
		s += u.Format("05")
	}
	s += "Z"
	return newUniversalPrimitive(rule, TagUTCTime, []byte(s))
}

/*
DecodeUTCTime parses e's content as spec.md §4.3 describes: a
two-digit year where <=7 maps to 20xx and >=8 maps to 19xx.
*/
func DecodeUTCTime(e Element) (time.Time, error) {
	s := string(e.Value())
	layouts := []string{"0601021504Z", "060102150405Z"}
	for _, layout := range layouts {
		if len(s) == len(layout) {
			t, err := time.Parse(layout, s)
			if err == nil {
				yy := t.Year() % 100
				century := 1900
				if yy <= 7 {
					century = 2000
				}
				return time.Date(century+yy, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
			}
		}
	}
	return time.Time{}, newValueError(ValueInvalid, "UTCTime: malformed content "+strconv.Quote(s))
}

func EncodeGeneralizedTime(rule EncodingRule, t time.Time) Element {
	u := t.UTC()
	s := u.Format("20060102150405")
	if ns := u.Nanosecond(); ns != 0 {
		full := strconv.Itoa(1_000_000_000 + ns)[1:] // zero-pad to 9 digits
		frac := strings.TrimRight(full, "0")
		s += "." + frac
	}
	s += "Z"
	return newUniversalPrimitive(rule, TagGeneralizedTime, []byte(s))
}

/*
DecodeGeneralizedTime parses e's content of form
YYYYMMDDhhmmss[.fff][Z|±hhmm].
*/
func DecodeGeneralizedTime(e Element) (time.Time, error) {
	s := string(e.Value())
	body := s
	var zone string
	switch {
	case strings.HasSuffix(s, "Z"):
		body, zone = s[:len(s)-1], "Z"
	case len(s) >= 5 && (s[len(s)-5] == '+' || s[len(s)-5] == '-'):
		body, zone = s[:len(s)-5], s[len(s)-5:]
	}

	var frac string
	if i := strings.IndexByte(body, '.'); i >= 0 {
		frac, body = body[i+1:], body[:i]
	}

	if len(body) != 14 {
		return time.Time{}, newValueError(ValueInvalid, "GeneralizedTime: malformed content "+strconv.Quote(s))
	}

	t, err := time.Parse("20060102150405", body)
	if err != nil {
		return time.Time{}, newValueError(ValueInvalid, "GeneralizedTime: "+err.Error())
	}

	var ns int
	if frac != "" {
		for len(frac) < 9 {
			frac += "0"
		}
		n, err := strconv.Atoi(frac[:9])
		if err != nil {
			return time.Time{}, newValueError(ValueInvalid, "GeneralizedTime: malformed fraction")
		}
		ns = n
	}

	loc := time.UTC
	switch zone {
	case "", "Z":
	default:
		sign := 1
		if zone[0] == '-' {
			sign = -1
		}
		hh, _ := strconv.Atoi(zone[1:3])
		mm, _ := strconv.Atoi(zone[3:5])
		loc = time.FixedZone("", sign*(hh*3600+mm*60))
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), ns, loc).UTC(), nil
}
