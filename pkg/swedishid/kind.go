package swedishid

import (
	"fmt"
	"strings"
)

// Kind identifies which family of identity number a value belongs to.
type Kind string

const (
	KindPersonnummer        Kind = "personnummer"
	KindSamordningsnummer   Kind = "samordningsnummer"
	KindOrganisationsnummer Kind = "organisationsnummer"
)

// kindAliases maps every accepted spelling to its Kind.
var kindAliases = map[string]Kind{
	"personnummer":        KindPersonnummer,
	"person":              KindPersonnummer,
	"personal":            KindPersonnummer,
	"samordningsnummer":   KindSamordningsnummer,
	"coordination":        KindSamordningsnummer,
	"coord":               KindSamordningsnummer,
	"organisationsnummer": KindOrganisationsnummer,
	"organisation":        KindOrganisationsnummer,
	"organization":        KindOrganisationsnummer,
	"org":                 KindOrganisationsnummer,
}

// ParseKind resolves a kind name or alias, ignoring case and surrounding
// whitespace.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("swedishid: unknown kind %q", s)
	}
	return k, nil
}

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindPersonnummer, KindSamordningsnummer, KindOrganisationsnummer:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// Identity is the read-only view shared by every parsed number.
type Identity interface {
	Kind() Kind
	// Number returns the canonical ten-digit form.
	Number() string
	String() string
}

// Parse dispatches to the parse function for kind. The returned Identity is
// a PersonalNumber or an OrganisationNumber, and nil on error.
func Parse(kind Kind, raw string, opts ...Option) (Identity, error) {
	switch kind {
	case KindPersonnummer, KindSamordningsnummer:
		p, err := parsePersonal(raw, kind, opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindOrganisationsnummer:
		o, err := ParseOrganisationsnummer(raw, opts...)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
	return nil, fmt.Errorf("swedishid: unknown kind %q", string(kind))
}
