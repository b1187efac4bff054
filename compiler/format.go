package compiler

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// FormatFloat renders v rounded to precision decimals, with trailing zeros
// and a bare trailing dot removed, so the generated attributes stay short:
// 1.500 -> "1.5", 0.000 -> "0". Rounding happens on the shortest decimal
// representation of the float, not on the binary value, so 2.005 at
// precision 2 is "2.01" even though float32(2.005) sits just below the
// halfway point.
func FormatFloat(v float32, precision int) string {
	if precision < 0 {
		precision = 0
	}

	s := roundDecimalString(strconv.FormatFloat(float64(v), 'f', -1, 32), precision)

	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}

// FormatVec3 renders a vector as a bracketed literal: "[1, 2.5, 0]".
func FormatVec3(v mgl32.Vec3, precision int) string {
	return "[" +
		FormatFloat(v[0], precision) + ", " +
		FormatFloat(v[1], precision) + ", " +
		FormatFloat(v[2], precision) + "]"
}

// FormatInt renders an already-integral parameter (segment counts).
func FormatInt(v float32) string {
	return strconv.FormatInt(int64(v+0.5), 10)
}

// roundDecimalString rounds a plain decimal string ("-12.3456") to the
// given number of fractional digits, half away from zero.
func roundDecimalString(s string, precision int) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= precision {
		if neg {
			return "-" + s
		}
		return s
	}

	intPart := s[:dot]
	frac := s[dot+1:]

	keep := frac[:precision]
	roundUp := frac[precision] >= '5'

	digits := []byte(intPart + keep)
	if roundUp {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] < '9' {
				digits[i]++
				break
			}
			digits[i] = '0'
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}

	intLen := len(digits) - precision
	out := string(digits[:intLen])
	if precision > 0 {
		out += "." + string(digits[intLen:])
	}
	if neg {
		out = "-" + out
	}
	return out
}
