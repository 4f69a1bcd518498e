package text

import (
	"errors"

	"github.com/dtnma-go/ari"
	"github.com/dtnma-go/ari/text/internal/codec"
)

// malformed builds an error matching ari.ErrMalformed under errors.Is.
func malformed(op string, cause error) error {
	return ari.NewError(ari.CodeMalformed, op, cause)
}

// invalidArg builds an error matching ari.ErrInvalidArgument under errors.Is.
func invalidArg(op string, cause error) error {
	return ari.NewError(ari.CodeInvalidArgument, op, cause)
}

// semanticViolation builds an error matching ari.ErrSemanticViolation
// under errors.Is, e.g. a table row whose width disagrees with its
// declared column count.
func semanticViolation(op string, cause error) error {
	return ari.NewError(ari.CodeSemanticViolation, op, cause)
}

// wrapCodecErr classifies an internal codec error into the Code the
// package's primitive-codec section of the spec assigns it, matching
// ari.ErrInvalidSurrogate or ari.ErrMalformed under errors.Is.
func wrapCodecErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, codec.ErrInvalidSurrogate) {
		return ari.NewError(ari.CodeInvalidSurrogate, op, err)
	}
	return malformed(op, err)
}
