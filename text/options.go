// Package text implements the URI-like text codec for ari.Ari values: a
// deterministic encoder and its symmetric decoder, both built from the
// primitive codecs in text/internal/codec and the ari package's value
// model and traversal.
package text

// SchemePrefix controls when the encoder emits the leading "ari:" scheme.
type SchemePrefix int

// The SchemePrefix alternatives.
const (
	// SchemeNone never emits a scheme prefix.
	SchemeNone SchemePrefix = iota
	// SchemeFirst emits the prefix once, at the outermost value only.
	SchemeFirst
	// SchemeAll emits the prefix at every "ari" production, including
	// nested container contents.
	SchemeAll
)

// AriTypeShow controls how a literal's type tag is rendered.
type AriTypeShow int

// The AriTypeShow alternatives.
const (
	// ShowOrig uses the original type_id segment the value was decoded
	// with, when present.
	ShowOrig AriTypeShow = iota
	// ShowText always emits the canonical uppercase name ("AC", "TBL", …).
	ShowText
	// ShowInt always emits the decimal enumeration value.
	ShowInt
)

// BstrForm controls how a byte-string literal's payload is rendered.
type BstrForm int

// The BstrForm alternatives.
const (
	// BstrRaw renders the payload as quoted text when its last byte is NUL
	// and the bytes before it are valid UTF-8 (the NUL is not written),
	// and as Base16 otherwise.
	BstrRaw BstrForm = iota
	// BstrBase16 always renders as h'...' hex.
	BstrBase16
	// BstrBase64URL always renders as b64'...' URL-safe base64.
	BstrBase64URL
)

// Options configures Encode; Decode takes no options. Zero value is not a
// usable configuration; start from Default and override individual fields.
type Options struct {
	SchemePrefix SchemePrefix
	ShowAriType  AriTypeShow
	// IntBase is 2, 10, or 16.
	IntBase int
	// FloatForm is one of 'f', 'g', 'e' (decimal) or 'a' (hex float).
	FloatForm byte
	// TextIdentity, when true, lets an identifier-shaped text string be
	// emitted bare instead of quoted.
	TextIdentity bool
	BstrForm     BstrForm
	// TimeText selects ISO-8601-like time rendering over decimal-fraction
	// seconds-since-epoch rendering.
	TimeText bool
}

// Default returns the reference configuration: scheme prefix at the
// outermost value only, type names shown as text, decimal integers,
// shortest-round-trip 'g' floats, bare identifiers where possible, Base16
// byte strings, and ISO-8601 time text.
func Default() Options {
	return Options{
		SchemePrefix: SchemeFirst,
		ShowAriType:  ShowText,
		IntBase:      10,
		FloatForm:    'g',
		TextIdentity: true,
		BstrForm:     BstrBase16,
		TimeText:     true,
	}
}
