package swedishid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the raw input or digit string was empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidCharacter indicates a non-digit reached the check-digit algorithm.
	ErrInvalidCharacter = errors.New("invalid character: only digits are allowed")
	// ErrFormat indicates the normalized number has the wrong length or an
	// invalid embedded date.
	ErrFormat = errors.New("invalid format")
	// ErrCheckDigit indicates the number is well formed but its check digit
	// does not match.
	ErrCheckDigit = errors.New("invalid check digit")
)

// ParseError reports which kind of number failed to parse and why.
// Err is always one of the package sentinels or an error returned by a
// custom CheckDigitValidator.
//
// The raw input is deliberately not retained.
type ParseError struct {
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("swedishid: parse %s: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(kind Kind, err error) error {
	return &ParseError{Kind: kind, Err: err}
}
