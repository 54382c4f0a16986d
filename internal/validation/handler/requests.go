package handler

import (
	"strings"

	dErrors "swedishid/pkg/domain-errors"
	"swedishid/pkg/swedishid"
)

// maxNumberLength rejects absurd inputs before they reach the parser. The
// longest legitimate form is "16YYYYMMDD-NNNC".
const maxNumberLength = 32

// ValidateRequest is the HTTP request body for POST /v1/validate.
type ValidateRequest struct {
	Kind   string `json:"kind"`
	Number string `json:"number"`

	// Parsed values (populated by Validate)
	parsedKind swedishid.Kind
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := checkNumberLength(r.Number); err != nil {
		return err
	}
	r.Number = strings.TrimSpace(r.Number)

	kind, err := parseKind(r.Kind)
	if err != nil {
		return err
	}
	r.parsedKind = kind
	return nil
}

// ParsedKind returns the validated kind.
func (r *ValidateRequest) ParsedKind() swedishid.Kind {
	return r.parsedKind
}

// BatchRequest is the HTTP request body for POST /v1/validate/batch.
type BatchRequest struct {
	Kind    string   `json:"kind"`
	Numbers []string `json:"numbers"`

	parsedKind swedishid.Kind
}

// Validate validates and parses the request. The batch size limit is
// enforced by the service.
func (r *BatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Numbers) == 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "numbers is required")
	}
	for i, n := range r.Numbers {
		if err := checkNumberLength(n); err != nil {
			return err
		}
		r.Numbers[i] = strings.TrimSpace(n)
	}

	kind, err := parseKind(r.Kind)
	if err != nil {
		return err
	}
	r.parsedKind = kind
	return nil
}

// ParsedKind returns the validated kind.
func (r *BatchRequest) ParsedKind() swedishid.Kind {
	return r.parsedKind
}

func checkNumberLength(n string) error {
	if len(n) > maxNumberLength {
		return dErrors.New(dErrors.CodeValidation, "number is too long")
	}
	return nil
}

func parseKind(s string) (swedishid.Kind, error) {
	if strings.TrimSpace(s) == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "kind is required")
	}
	kind, err := swedishid.ParseKind(s)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeBadRequest, "unsupported kind")
	}
	return kind, nil
}
