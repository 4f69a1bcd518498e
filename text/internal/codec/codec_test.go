package codec

import (
	"math"
	"testing"
)

func TestPercentEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{"", "hello", "has space", "slash/and\\backslash", "emoji \U0001F600", "100%"}
	for _, s := range cases {
		enc := PercentEncode(s, "")
		got, err := PercentDecode(enc)
		if err != nil {
			t.Fatalf("PercentDecode(%q) after encode: %v", enc, err)
		}
		if got != s {
			t.Errorf("round trip %q -> %q -> %q", s, enc, got)
		}
	}
}

func FuzzPercentRoundTrip(f *testing.F) {
	f.Add("hello world")
	f.Add("100% safe/unsafe\\mixed")
	f.Fuzz(func(t *testing.T, s string) {
		enc := PercentEncode(s, `\`)
		got, err := PercentDecode(enc)
		if err != nil {
			t.Fatalf("PercentDecode(%q): %v", enc, err)
		}
		if got != s {
			t.Fatalf("round trip mismatch: %q -> %q -> %q", s, enc, got)
		}
	})
}

func TestSlashEscapeUnescapeRoundTrip(t *testing.T) {
	cases := []string{"", "plain", "with\ttab\nand\nnewline", "quote\"here", "emoji \U0001F600 and \U0001F601"}
	for _, s := range cases {
		enc := SlashEscape(s, '"')
		got, err := SlashUnescape(enc)
		if err != nil {
			t.Fatalf("SlashUnescape(%q): %v", enc, err)
		}
		if got != s {
			t.Errorf("round trip %q -> %q -> %q", s, enc, got)
		}
	}
}

func TestSlashUnescapeRejectsBadSurrogates(t *testing.T) {
	cases := []string{
		`\uDC00`,         // lone low surrogate
		`\uD800`,         // lone high surrogate, no continuation
		`\uD800A`,   // high surrogate followed by non-surrogate
		`\uD800\uD800`,   // high surrogate followed by another high surrogate
	}
	for _, s := range cases {
		if _, err := SlashUnescape(s); err == nil {
			t.Errorf("SlashUnescape(%q) should have failed", s)
		}
	}
}

func FuzzSlashRoundTrip(f *testing.F) {
	f.Add("plain text")
	f.Add("emoji \U0001F600 mix")
	f.Fuzz(func(t *testing.T, s string) {
		enc := SlashEscape(s, '"')
		got, err := SlashUnescape(enc)
		if err != nil {
			t.Fatalf("SlashUnescape(%q): %v", enc, err)
		}
		if got != s {
			t.Fatalf("round trip mismatch: %q -> %q -> %q", s, enc, got)
		}
	})
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, base := range []int{2, 10, 16} {
		for _, v := range []uint64{0, 1, 42, 1 << 40, math.MaxUint64} {
			s, err := EncodeUint(v, base)
			if err != nil {
				t.Fatalf("EncodeUint(%d, %d): %v", v, base, err)
			}
			got, err := DecodeUint(s)
			if err != nil {
				t.Fatalf("DecodeUint(%q): %v", s, err)
			}
			if got != v {
				t.Errorf("round trip base %d: %d -> %q -> %d", base, v, s, got)
			}
		}
	}
	for _, v := range []int64{0, -1, 42, -42, math.MinInt64, math.MaxInt64} {
		s, err := EncodeInt(v, 10)
		if err != nil {
			t.Fatalf("EncodeInt(%d): %v", v, err)
		}
		got, err := DecodeInt(s)
		if err != nil {
			t.Fatalf("DecodeInt(%q): %v", s, err)
		}
		if got != v {
			t.Errorf("round trip: %d -> %q -> %d", v, s, got)
		}
	}
}

func TestFloatSpecials(t *testing.T) {
	cases := []float64{math.Inf(1), math.Inf(-1), math.NaN()}
	for _, v := range cases {
		s, err := EncodeFloat(v, 'g')
		if err != nil {
			t.Fatalf("EncodeFloat(%v): %v", v, err)
		}
		got, err := DecodeFloat(s)
		if err != nil {
			t.Fatalf("DecodeFloat(%q): %v", s, err)
		}
		if math.IsNaN(v) {
			if !math.IsNaN(got) {
				t.Errorf("DecodeFloat(%q) = %v, want NaN", s, got)
			}
			continue
		}
		if got != v {
			t.Errorf("round trip %v -> %q -> %v", v, s, got)
		}
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, form := range []byte{'f', 'g', 'e'} {
		for _, v := range []float64{0, 1, -1, 3.14159, 1e300, -1e-300} {
			s, err := EncodeFloat(v, form)
			if err != nil {
				t.Fatalf("EncodeFloat(%v, %q): %v", v, form, err)
			}
			got, err := DecodeFloat(s)
			if err != nil {
				t.Fatalf("DecodeFloat(%q): %v", s, err)
			}
			if got != v {
				t.Errorf("form %q round trip %v -> %q -> %v", form, v, s, got)
			}
		}
	}
}

func TestBase16RoundTrip(t *testing.T) {
	cases := [][]byte{{}, {0x00}, {0xDE, 0xAD, 0xBE, 0xEF}, make([]byte, 64)}
	for _, b := range cases {
		s := EncodeBase16(b)
		got, err := DecodeBase16(s)
		if err != nil {
			t.Fatalf("DecodeBase16(%q): %v", s, err)
		}
		if string(got) != string(b) && !(len(got) == 0 && len(b) == 0) {
			t.Errorf("round trip %x -> %q -> %x", b, s, got)
		}
	}
}

func TestBase64RoundTrip(t *testing.T) {
	cases := [][]byte{{}, {0x00}, {0xDE, 0xAD, 0xBE, 0xEF}, []byte("hello world, this is a longer payload")}
	for _, url := range []bool{true, false} {
		for _, b := range cases {
			s := EncodeBase64(b, url)
			got, err := DecodeBase64(s, url)
			if err != nil {
				t.Fatalf("DecodeBase64(%q, %v): %v", s, url, err)
			}
			if string(got) != string(b) && !(len(got) == 0 && len(b) == 0) {
				t.Errorf("round trip %x -> %q -> %x", b, s, got)
			}
		}
	}
}

func TestBase64TolerantOfTrailingPadding(t *testing.T) {
	b := []byte("hi")
	s := EncodeBase64(b, false) + "==="
	got, err := DecodeBase64(s, false)
	if err != nil {
		t.Fatalf("DecodeBase64 with extra padding: %v", err)
	}
	if string(got) != string(b) {
		t.Errorf("got %q, want %q", got, b)
	}
}

func TestUTCTimeRoundTrip(t *testing.T) {
	cases := []struct {
		sec  int64
		nsec uint32
	}{
		{0, 0},
		{86400, 0},
		{1234567, 500000000},
		{-1000, 0},
	}
	for _, c := range cases {
		s := EncodeUTCTime(c.sec, c.nsec)
		sec, nsec, err := DecodeUTCTime(s)
		if err != nil {
			t.Fatalf("DecodeUTCTime(%q): %v", s, err)
		}
		if sec != c.sec || nsec != c.nsec {
			t.Errorf("round trip %+v -> %q -> (%d, %d)", c, s, sec, nsec)
		}
	}
}

func TestDecimalTimeRoundTrip(t *testing.T) {
	cases := []struct {
		sec  int64
		nsec uint32
	}{
		{0, 0},
		{12345, 678000000},
		{-9999, 1000},
	}
	for _, c := range cases {
		s := EncodeDecimalTime(c.sec, c.nsec)
		sec, nsec, err := DecodeDecimalTime(s)
		if err != nil {
			t.Fatalf("DecodeDecimalTime(%q): %v", s, err)
		}
		if sec != c.sec || nsec != c.nsec {
			t.Errorf("round trip %+v -> %q -> (%d, %d)", c, s, sec, nsec)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	cases := []struct {
		sec  int64
		nsec uint32
	}{
		{0, 0},
		{5, 0},
		{3661, 0},
		{90061, 250000000},
		{-90061, 250000000},
		{2 * secondsPerDay, 0},
	}
	for _, c := range cases {
		s := EncodeDuration(c.sec, c.nsec)
		sec, nsec, err := DecodeDuration(s)
		if err != nil {
			t.Fatalf("DecodeDuration(%q): %v", s, err)
		}
		if sec != c.sec || nsec != c.nsec {
			t.Errorf("round trip %+v -> %q -> (%d, %d)", c, s, sec, nsec)
		}
	}
}

func FuzzDurationRoundTrip(f *testing.F) {
	f.Add(int64(90061), uint32(250000000))
	f.Add(int64(-1), uint32(0))
	f.Fuzz(func(t *testing.T, sec int64, nsec uint32) {
		nsec %= 1000000000
		s := EncodeDuration(sec, nsec)
		gotSec, gotNsec, err := DecodeDuration(s)
		if err != nil {
			t.Fatalf("DecodeDuration(%q): %v", s, err)
		}
		if gotSec != sec || gotNsec != nsec {
			t.Fatalf("round trip (%d, %d) -> %q -> (%d, %d)", sec, nsec, s, gotSec, gotNsec)
		}
	})
}
