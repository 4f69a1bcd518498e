package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeUint renders v in base 2 (0b-prefixed), 10, or 16 (0x-prefixed,
// uppercase digits).
func EncodeUint(v uint64, base int) (string, error) {
	switch base {
	case 2:
		return "0b" + strconv.FormatUint(v, 2), nil
	case 10:
		return strconv.FormatUint(v, 10), nil
	case 16:
		return "0x" + strings.ToUpper(strconv.FormatUint(v, 16)), nil
	default:
		return "", fmt.Errorf("codec: unsupported integer base %d", base)
	}
}

// DecodeUint parses a 0b/0x-prefixed or bare-decimal unsigned integer,
// detecting the base from the prefix.
func DecodeUint(s string) (uint64, error) {
	switch {
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		return strconv.ParseUint(s[2:], 2, 64)
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		return strconv.ParseUint(s[2:], 16, 64)
	default:
		return strconv.ParseUint(s, 10, 64)
	}
}

// EncodeInt renders v the same way as EncodeUint, with a leading '-' for
// negative values.
func EncodeInt(v int64, base int) (string, error) {
	if v < 0 {
		s, err := EncodeUint(uint64(-v), base)
		if err != nil {
			return "", err
		}
		return "-" + s, nil
	}
	return EncodeUint(uint64(v), base)
}

// DecodeInt inverts EncodeInt.
func DecodeInt(s string) (int64, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	u, err := DecodeUint(s)
	if err != nil {
		return 0, err
	}
	if neg {
		return -int64(u), nil
	}
	return int64(u), nil
}
