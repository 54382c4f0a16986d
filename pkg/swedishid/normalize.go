package swedishid

import "strings"

// legacyPrefix is dropped from the front of any input before separators are
// removed. See the package documentation.
const legacyPrefix = "16"

// Normalize reduces raw to its digits.
//
// A leading literal "16" is removed first, then every character that is not
// an ASCII digit. No length rule is applied here; an input made only of
// separators normalizes to "". The result may still be rejected by the
// shape rules of a specific kind.
//
// Errors: ErrEmptyInput when raw is empty.
func Normalize(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyInput
	}
	raw = strings.TrimPrefix(raw, legacyPrefix)
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw), nil
}
