package codec

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// EncodeBase16 renders b as uppercase hex pairs.
func EncodeBase16(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// DecodeBase16 accepts either-case hex pairs, rejecting odd-length input
// (hex.DecodeString already does, via hex.ErrLength).
func DecodeBase16(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// EncodeBase64 renders b with the standard or URL-safe alphabet, padded
// to a multiple of 4 with '='.
func EncodeBase64(b []byte, url bool) string {
	if url {
		return base64.URLEncoding.EncodeToString(b)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 inverts EncodeBase64. Trailing '=' is treated as a
// terminator: any amount (including none, or more than strictly needed)
// is accepted by stripping it before decoding with the unpadded variant.
func DecodeBase64(s string, url bool) ([]byte, error) {
	rawEnc := base64.RawStdEncoding
	if url {
		rawEnc = base64.RawURLEncoding
	}
	return rawEnc.DecodeString(strings.TrimRight(s, "="))
}
