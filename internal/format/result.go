package format

import (
	"math"
	"strconv"
	"strings"
)

// Magnitude thresholds for switching a result to scientific notation.
const (
	sciUpper = 1e9
	sciLower = 1e-4
)

// Result formats an evaluated value as a canonical raw expression.
//
// Values with |d| >= 1e9, or non-zero values with |d| < 1e-4, use scientific
// notation with at most 5 fractional mantissa digits ("1.23457e+9"). Whole
// values print as integers. Everything else uses 9 significant digits.
func Result(d float64) string {
	abs := math.Abs(d)
	if abs >= sciUpper || (d != 0 && abs < sciLower) {
		return Scientific(d)
	}
	if d == 0 {
		return "0"
	}
	if math.Mod(d, 1) == 0 {
		return strconv.FormatFloat(d, 'f', 0, 64)
	}
	s := strconv.FormatFloat(d, 'g', 9, 64)
	if strings.ContainsRune(s, 'e') {
		// Rounding to 9 digits can carry into a new power of ten.
		return Scientific(d)
	}
	return s
}

// Magnitude thresholds outside which Number switches to an exponent.
const (
	numberUpper = 1e15
	numberLower = 1e-5
)

// Number renders d without rounding for use as a raw operand. Moderate
// magnitudes print as plain decimals, others in shortest exponent form
// ("1e-300"). Negative zero prints as "0".
func Number(d float64) string {
	if d == 0 {
		return "0"
	}
	abs := math.Abs(d)
	if abs >= numberUpper || abs < numberLower {
		return signedExponent(strconv.FormatFloat(d, 'e', -1, 64))
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// Scientific renders d as a normalized mantissa with up to 5 fractional
// digits, trailing zeros trimmed, and a signed exponent without padding.
func Scientific(d float64) string {
	s := strconv.FormatFloat(d, 'e', 5, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if strings.Contains(mant, ".") {
		mant = strings.TrimRight(mant, "0")
		mant = strings.TrimSuffix(mant, ".")
	}
	return signedExponent(mant + "e" + exp)
}

// signedExponent rewrites the exponent of s ("1.5e-07") without padding
// ("1.5e-7").
func signedExponent(s string) string {
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	sign := "+"
	if n < 0 {
		sign = "-"
		n = -n
	}
	return mant + "e" + sign + strconv.Itoa(n)
}
