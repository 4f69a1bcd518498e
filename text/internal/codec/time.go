package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DTNEpochOffset is the number of POSIX seconds between the Unix epoch and
// the DTN epoch, 2000-01-01T00:00:00Z.
const DTNEpochOffset int64 = 946684800

// ErrDurationSyntax reports a structurally invalid ISO-8601-like duration,
// or a UTC timestamp missing its trailing Z.
var ErrDurationSyntax = errors.New("codec: invalid duration syntax")

func encodeSubsec(nsec uint32) string {
	if nsec == 0 {
		return ""
	}
	digits := 9
	v := nsec
	for v%10 == 0 {
		v /= 10
		digits--
	}
	return fmt.Sprintf(".%0*d", digits, v)
}

func decodeSubsec(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	if len(s) > 9 {
		return 0, fmt.Errorf("codec: subsecond field %q has more than 9 digits", s)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	for i := len(s); i < 9; i++ {
		v *= 10
	}
	return uint32(v), nil
}

// splitSubsec separates a digit run from an optional ".fraction" suffix.
func splitSubsec(s string) (whole, frac string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// EncodeUTCTime renders a DTN-epoch-relative (sec, nsec) pair as
// YYYY-MM-DDTHH:MM:SS[.fffffffff]Z.
func EncodeUTCTime(sec int64, nsec uint32) string {
	t := time.Unix(sec+DTNEpochOffset, 0).UTC()
	return t.Format("2006-01-02T15:04:05") + encodeSubsec(nsec) + "Z"
}

// DecodeUTCTime inverts EncodeUTCTime, also accepting the
// separator-stripped compact form YYYYMMDDTHHMMSS[.fffffffff]Z.
func DecodeUTCTime(s string) (sec int64, nsec uint32, err error) {
	if !strings.HasSuffix(s, "Z") {
		return 0, 0, fmt.Errorf("%w: missing trailing Z", ErrDurationSyntax)
	}
	s = s[:len(s)-1]
	stripped := strings.NewReplacer("-", "", ":", "").Replace(s)
	whole, frac := splitSubsec(stripped)

	t, err := time.Parse("20060102T150405", whole)
	if err != nil {
		return 0, 0, err
	}
	nsec, err = decodeSubsec(frac)
	if err != nil {
		return 0, 0, err
	}
	sec = t.Unix() - DTNEpochOffset
	return sec, nsec, nil
}

// EncodeDecimalTime renders a (sec, nsec) pair as a decimal fraction of
// seconds, the non-ISO alternative to EncodeUTCTime selected by the
// encoder's time_text option.
func EncodeDecimalTime(sec int64, nsec uint32) string {
	return strconv.FormatInt(sec, 10) + encodeSubsec(nsec)
}

// DecodeDecimalTime inverts EncodeDecimalTime.
func DecodeDecimalTime(s string) (sec int64, nsec uint32, err error) {
	whole, frac := splitSubsec(s)
	sec, err = strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	nsec, err = decodeSubsec(frac)
	if err != nil {
		return 0, 0, err
	}
	return sec, nsec, nil
}

const (
	secondsPerDay    = 24 * 3600
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// EncodeDuration renders a signed (sec, nsec) duration as
// [-]P[nD]T[nH][nM][n[.ffff]S], per the ISO-8601-like grammar.
func EncodeDuration(sec int64, nsec uint32) string {
	if sec == 0 && nsec == 0 {
		return "PT0S"
	}

	neg := sec < 0
	mag := sec
	if neg {
		mag = -mag
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('P')

	days := mag / secondsPerDay
	mag %= secondsPerDay
	if days > 0 {
		fmt.Fprintf(&b, "%dD", days)
	}

	b.WriteByte('T')

	hours := mag / secondsPerHour
	mag %= secondsPerHour
	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}

	mins := mag / secondsPerMinute
	mag %= secondsPerMinute
	if mins > 0 {
		fmt.Fprintf(&b, "%dM", mins)
	}

	if mag > 0 || nsec > 0 {
		b.WriteString(strconv.FormatInt(mag, 10))
		b.WriteString(encodeSubsec(nsec))
		b.WriteByte('S')
	}

	return b.String()
}

// DecodeDuration inverts EncodeDuration.
func DecodeDuration(s string) (sec int64, nsec uint32, err error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if !strings.HasPrefix(s, "P") {
		return 0, 0, fmt.Errorf("%w: missing leading P", ErrDurationSyntax)
	}
	s = s[1:]

	var days, hours, mins, secs int64
	if i := strings.IndexByte(s, 'D'); i >= 0 {
		days, err = strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrDurationSyntax, err)
		}
		s = s[i+1:]
	}

	if !strings.HasPrefix(s, "T") {
		return 0, 0, fmt.Errorf("%w: missing T", ErrDurationSyntax)
	}
	s = s[1:]

	if i := strings.IndexByte(s, 'H'); i >= 0 {
		hours, err = strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrDurationSyntax, err)
		}
		s = s[i+1:]
	}
	if i := strings.IndexByte(s, 'M'); i >= 0 {
		mins, err = strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrDurationSyntax, err)
		}
		s = s[i+1:]
	}
	if i := strings.IndexByte(s, 'S'); i >= 0 {
		whole, frac := splitSubsec(s[:i])
		secs, err = strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrDurationSyntax, err)
		}
		nsec, err = decodeSubsec(frac)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrDurationSyntax, err)
		}
		s = s[i+1:]
	}

	if s != "" {
		return 0, 0, fmt.Errorf("codec: trailing garbage %q in duration", s)
	}

	total := days*secondsPerDay + hours*secondsPerHour + mins*secondsPerMinute + secs
	if neg {
		total = -total
	}
	return total, nsec, nil
}
