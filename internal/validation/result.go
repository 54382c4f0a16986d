package validation

import (
	"errors"
	"time"

	"swedishid/pkg/swedishid"
)

// Outcome labels used for metrics, spans and batch items.
const (
	OutcomeValid             = "valid"
	OutcomeEmptyInput        = "empty_input"
	OutcomeInvalidFormat     = "invalid_format"
	OutcomeInvalidCheckDigit = "invalid_check_digit"
	OutcomeError             = "error"
)

// Result is the outcome of a successful validation. Fields that do not
// apply to the kind are left at their zero value.
type Result struct {
	Kind                swedishid.Kind
	Number              string
	Formatted           string
	Masked              string
	DateOfBirth         time.Time
	LegalSex            swedishid.LegalSex
	ProbableCompanyForm swedishid.CompanyForm
	CheckedAt           time.Time
}

// BatchItem is one entry of a batch validation, in input order.
// Exactly one of Result and Err is set.
type BatchItem struct {
	Index  int
	Result *Result
	Err    error
}

// Outcome returns the outcome label for the item.
func (b BatchItem) Outcome() string {
	if b.Err == nil {
		return OutcomeValid
	}
	return OutcomeOf(b.Err)
}

// OutcomeOf classifies a parse error into an outcome label.
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeValid
	case errors.Is(err, swedishid.ErrEmptyInput):
		return OutcomeEmptyInput
	case errors.Is(err, swedishid.ErrCheckDigit):
		return OutcomeInvalidCheckDigit
	case errors.Is(err, swedishid.ErrFormat), errors.Is(err, swedishid.ErrInvalidCharacter):
		return OutcomeInvalidFormat
	default:
		return OutcomeError
	}
}

func toResult(id swedishid.Identity, checkedAt time.Time) *Result {
	res := &Result{
		Kind:      id.Kind(),
		Number:    id.Number(),
		CheckedAt: checkedAt,
	}
	switch v := id.(type) {
	case swedishid.PersonalNumber:
		res.Formatted = v.Format()
		res.Masked = v.Masked()
		res.DateOfBirth = v.DateOfBirth()
		res.LegalSex = v.LegalSex()
	case swedishid.OrganisationNumber:
		res.Formatted = v.Format()
		res.Masked = v.Masked()
		res.ProbableCompanyForm = v.ProbableCompanyForm()
	}
	return res
}
