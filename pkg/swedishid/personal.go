package swedishid

import (
	"fmt"
	"strconv"
	"time"
)

// LegalSex is the legal sex encoded in a personal number.
type LegalSex string

const (
	LegalSexUnknown LegalSex = "unknown"
	LegalSexMale    LegalSex = "male"
	LegalSexFemale  LegalSex = "female"
)

func (s LegalSex) String() string {
	return string(s)
}

// coordinationDayOffset is added to the birth day in a samordningsnummer.
const coordinationDayOffset = 60

// PersonalNumber is a validated personnummer or samordningsnummer.
// The two share every rule except the day encoding; Kind tells them apart.
//
// Invariants:
//   - Number is exactly ten ASCII digits with a valid check digit
//   - The first six digits form a real calendar date once the day offset
//     for Kind is removed
//   - Immutable after parsing
type PersonalNumber struct {
	kind        Kind
	number      string
	dateOfBirth time.Time
	legalSex    LegalSex
}

// ParsePersonnummer validates raw as a personnummer.
//
// Accepted forms include "YYMMDD-NNNC", "YYMMDD+NNNC", "YYMMDDNNNC" and the
// twelve-digit "YYYYMMDD-NNNC".
//
// Errors: a *ParseError wrapping ErrEmptyInput, ErrFormat or ErrCheckDigit.
func ParsePersonnummer(raw string, opts ...Option) (PersonalNumber, error) {
	return parsePersonal(raw, KindPersonnummer, opts)
}

// TryParsePersonnummer is ParsePersonnummer without the error detail.
func TryParsePersonnummer(raw string, opts ...Option) (PersonalNumber, bool) {
	p, err := ParsePersonnummer(raw, opts...)
	return p, err == nil
}

// MustPersonnummer parses raw, panicking if invalid.
// Use only in tests or for numbers known to be valid.
func MustPersonnummer(raw string) PersonalNumber {
	p, err := ParsePersonnummer(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSamordningsnummer validates raw as a samordningsnummer, whose day
// field is the birth day plus 60.
//
// Errors: a *ParseError wrapping ErrEmptyInput, ErrFormat or ErrCheckDigit.
func ParseSamordningsnummer(raw string, opts ...Option) (PersonalNumber, error) {
	return parsePersonal(raw, KindSamordningsnummer, opts)
}

// TryParseSamordningsnummer is ParseSamordningsnummer without the error detail.
func TryParseSamordningsnummer(raw string, opts ...Option) (PersonalNumber, bool) {
	p, err := ParseSamordningsnummer(raw, opts...)
	return p, err == nil
}

// MustSamordningsnummer parses raw, panicking if invalid.
// Use only in tests or for numbers known to be valid.
func MustSamordningsnummer(raw string) PersonalNumber {
	p, err := ParseSamordningsnummer(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func parsePersonal(raw string, kind Kind, opts []Option) (PersonalNumber, error) {
	offset := 0
	if kind == KindSamordningsnummer {
		offset = coordinationDayOffset
	}

	var dob time.Time
	number, err := parseCanonical(raw, kind, func(digits string) (string, bool) {
		digits, century := splitCentury(digits)
		if len(digits) != canonicalLength {
			return digits, false
		}
		d, ok := birthDate(digits, century, offset)
		dob = d
		return digits, ok
	}, opts)
	if err != nil {
		return PersonalNumber{}, err
	}

	return PersonalNumber{
		kind:        kind,
		number:      number,
		dateOfBirth: dob,
		legalSex:    legalSexOf(number),
	}, nil
}

// splitCentury strips an explicit 18, 19 or 20 century from a twelve-digit
// number. century is 0 when none was present.
func splitCentury(digits string) (rest string, century int) {
	if len(digits) != canonicalLength+2 {
		return digits, 0
	}
	switch digits[:2] {
	case "18", "19", "20":
		c, _ := strconv.Atoi(digits[:2])
		return digits[2:], c
	}
	return digits, 0
}

// birthDate decodes YYMMDD from the first six digits of number after
// removing dayOffset from the day field.
func birthDate(number string, century, dayOffset int) (time.Time, bool) {
	day, err := strconv.Atoi(number[4:6])
	if err != nil {
		return time.Time{}, false
	}
	day -= dayOffset
	if day < 1 {
		return time.Time{}, false
	}

	var t time.Time
	if century == 0 {
		t, err = time.Parse("060102", fmt.Sprintf("%s%02d", number[:4], day))
	} else {
		t, err = time.Parse("20060102", fmt.Sprintf("%02d%s%02d", century, number[:4], day))
	}
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// legalSexOf reads the ninth digit: odd is male, even is female.
func legalSexOf(number string) LegalSex {
	if len(number) != canonicalLength {
		return LegalSexUnknown
	}
	if (number[8]-'0')%2 == 1 {
		return LegalSexMale
	}
	return LegalSexFemale
}

// Kind returns KindPersonnummer or KindSamordningsnummer.
func (p PersonalNumber) Kind() Kind {
	return p.kind
}

// Number returns the canonical ten-digit form.
func (p PersonalNumber) Number() string {
	return p.number
}

// DateOfBirth returns the decoded birth date at UTC midnight. For a
// samordningsnummer the day offset has already been removed.
func (p PersonalNumber) DateOfBirth() time.Time {
	return p.dateOfBirth
}

// LegalSex returns the legal sex encoded in the ninth digit.
func (p PersonalNumber) LegalSex() LegalSex {
	if p.IsZero() {
		return LegalSexUnknown
	}
	return p.legalSex
}

// IsCoordination reports whether p is a samordningsnummer.
func (p PersonalNumber) IsCoordination() bool {
	return p.kind == KindSamordningsnummer
}

// Format returns the display form YYMMDD-NNNC.
func (p PersonalNumber) Format() string {
	return formatted(p.number)
}

// Masked returns the number with the serial and check digit hidden.
func (p PersonalNumber) Masked() string {
	return masked(p.number)
}

// String returns the canonical number.
func (p PersonalNumber) String() string {
	return p.number
}

// MarshalText encodes the canonical number.
func (p PersonalNumber) MarshalText() ([]byte, error) {
	return []byte(p.number), nil
}

// IsZero returns true if this is the zero value (uninitialized).
func (p PersonalNumber) IsZero() bool {
	return p.number == ""
}
