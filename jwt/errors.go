package jwt

import (
	"github.com/cockroachdb/errors"
)

// Error kinds returned by the codec. Use errors.Is to classify.
var (
	// ErrArgument is returned when the input is empty or blank.
	ErrArgument = errors.New("invalid argument")

	// ErrFormat is returned when the input does not match the compact
	// serialization grammar, a segment fails to decode, or the header
	// carries an unsupported type parameter.
	ErrFormat = errors.New("invalid format")
)

// IsArgumentError returns true when the error reports empty or blank
// input.
func IsArgumentError(err error) bool {
	return errors.Is(err, ErrArgument)
}

// IsFormatError returns true when the error reports malformed input.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
}

func argErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrArgument)
}

func formatErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrFormat)
}

// formatError wraps a segment decoding failure, keeping the raw text
// for diagnostics.
func formatError(err error, format string, args ...any) error {
	return errors.Mark(errors.WithMessagef(err, format, args...), ErrFormat)
}
