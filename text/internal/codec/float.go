package codec

import (
	"fmt"
	"math"
	"strconv"
)

// EncodeFloat renders v in form 'f', 'g', 'e' (decimal) or 'a' (C99 hex
// float, via strconv's 'x'), special-casing NaN and the signed infinities
// the way the reference codec's printf-based encoder does.
func EncodeFloat(v float64, form byte) (string, error) {
	switch {
	case math.IsNaN(v):
		return "NaN", nil
	case math.IsInf(v, 1):
		return "+Infinity", nil
	case math.IsInf(v, -1):
		return "-Infinity", nil
	}
	switch form {
	case 'f', 'g', 'e':
		return strconv.FormatFloat(v, form, -1, 64), nil
	case 'a':
		return strconv.FormatFloat(v, 'x', -1, 64), nil
	default:
		return "", fmt.Errorf("codec: unsupported float form %q", form)
	}
}

// DecodeFloat inverts EncodeFloat, accepting any strconv.ParseFloat-legal
// form (decimal or hex-float) plus the NaN/Infinity spellings.
func DecodeFloat(s string) (float64, error) {
	switch s {
	case "NaN":
		return math.NaN(), nil
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}
