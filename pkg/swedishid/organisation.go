package swedishid

import "strings"

// CompanyForm is the legal form suggested by an organisation number prefix.
// It is a hint, never an authoritative registry fact.
type CompanyForm string

const (
	CompanyFormJointStockCompany  CompanyForm = "joint_stock_company"
	CompanyFormGeneralPartnership CompanyForm = "general_partnership"
	CompanyFormHousingCooperative CompanyForm = "housing_cooperative"
	CompanyFormReligiousCommunity CompanyForm = "religious_community"
	CompanyFormGovernmentAgency   CompanyForm = "government_agency"
	CompanyFormUnknown            CompanyForm = "unknown"
)

func (f CompanyForm) String() string {
	return string(f)
}

// OrganisationNumber is a validated organisationsnummer.
//
// Invariants:
//   - Number is exactly ten ASCII digits with a valid check digit
//   - Immutable after parsing
type OrganisationNumber struct {
	number string
	form   CompanyForm
}

// ParseOrganisationsnummer validates raw as an organisationsnummer. There is
// no date rule; any ten digits with a valid check digit are accepted.
//
// Errors: a *ParseError wrapping ErrEmptyInput, ErrFormat or ErrCheckDigit.
func ParseOrganisationsnummer(raw string, opts ...Option) (OrganisationNumber, error) {
	number, err := parseCanonical(raw, KindOrganisationsnummer, func(digits string) (string, bool) {
		return digits, len(digits) == canonicalLength
	}, opts)
	if err != nil {
		return OrganisationNumber{}, err
	}
	return OrganisationNumber{
		number: number,
		form:   probableCompanyForm(number),
	}, nil
}

// TryParseOrganisationsnummer is ParseOrganisationsnummer without the error detail.
func TryParseOrganisationsnummer(raw string, opts ...Option) (OrganisationNumber, bool) {
	o, err := ParseOrganisationsnummer(raw, opts...)
	return o, err == nil
}

// MustOrganisationsnummer parses raw, panicking if invalid.
// Use only in tests or for numbers known to be valid.
func MustOrganisationsnummer(raw string) OrganisationNumber {
	o, err := ParseOrganisationsnummer(raw)
	if err != nil {
		panic(err)
	}
	return o
}

// probableCompanyForm classifies by leading digits; first match wins.
func probableCompanyForm(number string) CompanyForm {
	if strings.HasPrefix(number, "20") {
		return CompanyFormGovernmentAgency
	}
	if number == "" {
		return CompanyFormUnknown
	}
	switch number[0] {
	case '5':
		return CompanyFormJointStockCompany
	case '9':
		return CompanyFormGeneralPartnership
	case '7', '8':
		return CompanyFormHousingCooperative
	case '2':
		return CompanyFormReligiousCommunity
	}
	return CompanyFormUnknown
}

// Kind returns KindOrganisationsnummer.
func (o OrganisationNumber) Kind() Kind {
	return KindOrganisationsnummer
}

// Number returns the canonical ten-digit form.
func (o OrganisationNumber) Number() string {
	return o.number
}

// ProbableCompanyForm returns the company form hinted at by the prefix.
// CompanyFormUnknown is a normal result, not an error.
func (o OrganisationNumber) ProbableCompanyForm() CompanyForm {
	if o.IsZero() {
		return CompanyFormUnknown
	}
	return o.form
}

// Format returns the display form NNNNNN-NNNC.
func (o OrganisationNumber) Format() string {
	return formatted(o.number)
}

// Masked returns the number with the last four digits hidden.
func (o OrganisationNumber) Masked() string {
	return masked(o.number)
}

func (o OrganisationNumber) String() string {
	return o.number
}

// MarshalText encodes the canonical number.
func (o OrganisationNumber) MarshalText() ([]byte, error) {
	return []byte(o.number), nil
}

// IsZero returns true if this is the zero value (uninitialized).
func (o OrganisationNumber) IsZero() bool {
	return o.number == ""
}
