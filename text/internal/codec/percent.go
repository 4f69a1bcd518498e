// Package codec implements the primitive text codecs that the ari/text
// encoder and decoder compose: percent-encoding, slash-escaping, integer
// and float rendering, byte-string encodings, and time/duration forms.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTruncatedEscape reports a percent- or slash-escape cut short at the
// end of input.
var ErrTruncatedEscape = errors.New("codec: truncated escape sequence")

// unreserved holds RFC 3986 §2.3's unreserved character set, always safe
// to emit bare.
const unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_.-~"

func isSafe(c byte, extraSafe string) bool {
	return strings.IndexByte(unreserved, c) >= 0 || strings.IndexByte(extraSafe, c) >= 0
}

// PercentEncode renders in with every byte outside the unreserved set (and
// outside the caller-supplied extraSafe set) escaped as %XX.
func PercentEncode(in string, extraSafe string) string {
	var b strings.Builder
	b.Grow(len(in))
	for i := 0; i < len(in); i++ {
		c := in[i]
		if isSafe(c, extraSafe) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// PercentDecode inverts PercentEncode, accepting upper- or lower-case hex
// digits after each '%'.
func PercentDecode(in string) (string, error) {
	var b strings.Builder
	b.Grow(len(in))
	for i := 0; i < len(in); {
		if in[i] != '%' {
			b.WriteByte(in[i])
			i++
			continue
		}
		if i+3 > len(in) {
			return "", ErrTruncatedEscape
		}
		v, err := strconv.ParseUint(in[i+1:i+3], 16, 8)
		if err != nil {
			return "", fmt.Errorf("codec: bad percent escape %q: %w", in[i:i+3], err)
		}
		b.WriteByte(byte(v))
		i += 3
	}
	return b.String(), nil
}
