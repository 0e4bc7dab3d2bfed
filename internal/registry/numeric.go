package registry

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v the way the registry stores floats: fixed-point
// with six fractional digits, never scientific notation. Infinities and NaN
// are written as "inf", "-inf" and "nan".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// ParseInt32 parses the longest leading decimal integer in s.
//
// Leading whitespace and a single sign are accepted. Parsing stops at the
// first non-digit; if no digit was consumed the result is 0. Values outside
// the int32 range saturate at math.MinInt32 or math.MaxInt32.
func ParseInt32(s string) int32 {
	s = strings.TrimLeft(s, cSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for i := 0; i < len(s) && isDigit(s[i]); i++ {
		n = n*10 + int64(s[i]-'0')
		if n > math.MaxInt32+1 {
			n = math.MaxInt32 + 1
		}
	}
	if neg {
		n = -n
	}

	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int32(n)
}

// ParseFloat64 parses the longest leading decimal floating-point number in s.
//
// Leading whitespace, a sign, a fractional part and an exponent are
// accepted, as are hexadecimal floats ("0x1A", "0x1.8p3") and "inf",
// "infinity" and "nan" in any case. Trailing text is
// ignored and text with no numeric prefix yields 0. Out-of-range magnitudes
// become ±Inf or 0.
func ParseFloat64(s string) float64 {
	return parseFloat(s, 64)
}

// ParseFloat32 is ParseFloat64 rounded to float32 precision.
func ParseFloat32(s string) float32 {
	return float32(parseFloat(s, 32))
}

// cSpace is the set of characters C's isspace accepts.
const cSpace = " \t\n\v\f\r"

func parseFloat(s string, bitSize int) float64 {
	prefix := floatPrefix(strings.TrimLeft(s, cSpace))
	if prefix == "" {
		return 0
	}
	// ParseFloat returns ±Inf or 0 alongside a range error, which is the
	// saturating behaviour wanted here.
	v, _ := strconv.ParseFloat(prefix, bitSize)
	return v
}

// floatPrefix returns text strconv.ParseFloat accepts for the longest
// numeric prefix of s, or "" if there is none.
func floatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	rest := strings.ToLower(s[i:])
	for _, word := range []string{"infinity", "inf"} {
		if strings.HasPrefix(rest, word) {
			return s[:i+len(word)]
		}
	}
	if strings.HasPrefix(rest, "nan") {
		// strconv rejects a signed NaN.
		return s[i : i+3]
	}
	if strings.HasPrefix(rest, "0x") {
		if hex := hexFloatPrefix(s[i+2:]); hex != "" {
			return s[:i+2] + hex
		}
		// "0x" without hex digits reads as 0 below.
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	return s[:exponentEnd(s, i, 'e')]
}

// hexFloatPrefix scans a hex mantissa and optional binary exponent at the
// start of s. strconv requires the exponent, so "p0" is added when absent.
func hexFloatPrefix(s string) string {
	i, digits := 0, 0
	for i < len(s) && isHexDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isHexDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	if end := exponentEnd(s, i, 'p'); end > i {
		return s[:end]
	}
	return s[:i] + "p0"
}

// exponentEnd returns the index just past an exponent starting at s[i]
// with the given lower-case marker, or i if there is none. The exponent only
// counts if at least one digit follows the marker and optional sign.
func exponentEnd(s string, i int, marker byte) int {
	if i >= len(s) || s[i]|0x20 != marker {
		return i
	}
	j := i + 1
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	if j >= len(s) || !isDigit(s[j]) {
		return i
	}
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	return j
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'f')
}
