package swedishid

// CheckDigitValidator verifies the trailing check digit of a digit string.
type CheckDigitValidator interface {
	Validate(digits string) (bool, error)
}

// Luhn is the check-digit algorithm used by all Swedish identity numbers.
// The zero value is ready to use.
type Luhn struct{}

var _ CheckDigitValidator = Luhn{}

// Validate reports whether digits carries a correct Luhn check digit.
//
// Errors: ErrEmptyInput for an empty string, ErrInvalidCharacter when any
// character is not an ASCII digit. Digit count is not checked; a single
// digit is a valid input.
func (Luhn) Validate(digits string) (bool, error) {
	if digits == "" {
		return false, ErrEmptyInput
	}
	sum := 0
	alternate := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false, ErrInvalidCharacter
		}
		n := int(c - '0')
		if alternate {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		alternate = !alternate
	}
	return sum%10 == 0, nil
}

// ValidLuhn is a boolean shorthand for Luhn{}.Validate. Any error counts
// as invalid.
func ValidLuhn(digits string) bool {
	ok, err := Luhn{}.Validate(digits)
	return err == nil && ok
}

// LuhnCheckDigit returns the digit that makes payload+digit pass Luhn.
func LuhnCheckDigit(payload string) (int, error) {
	if payload == "" {
		return 0, ErrEmptyInput
	}
	sum := 0
	// The check digit will sit at the rightmost position, so the payload's
	// last digit is the first one doubled.
	alternate := true
	for i := len(payload) - 1; i >= 0; i-- {
		c := payload[i]
		if c < '0' || c > '9' {
			return 0, ErrInvalidCharacter
		}
		n := int(c - '0')
		if alternate {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		alternate = !alternate
	}
	return (10 - sum%10) % 10, nil
}
