package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"swedishid/internal/validation"
	dErrors "swedishid/pkg/domain-errors"
)

type report struct {
	Input               string `json:"input"`
	Valid               bool   `json:"valid"`
	Outcome             string `json:"outcome"`
	Kind                string `json:"kind,omitempty"`
	Number              string `json:"number,omitempty"`
	Formatted           string `json:"formatted,omitempty"`
	DateOfBirth         string `json:"date_of_birth,omitempty"`
	LegalSex            string `json:"legal_sex,omitempty"`
	ProbableCompanyForm string `json:"probable_company_form,omitempty"`
	Error               string `json:"error,omitempty"`
}

func toReport(input string, item validation.BatchItem) report {
	r := report{
		Input:   input,
		Valid:   item.Err == nil,
		Outcome: item.Outcome(),
	}
	if item.Err != nil {
		r.Error = message(item.Err)
		return r
	}
	res := item.Result
	r.Kind = res.Kind.String()
	r.Number = res.Number
	r.Formatted = res.Formatted
	r.LegalSex = string(res.LegalSex)
	r.ProbableCompanyForm = string(res.ProbableCompanyForm)
	if !res.DateOfBirth.IsZero() {
		r.DateOfBirth = res.DateOfBirth.Format("2006-01-02")
	}
	return r
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// writeText writes one tab-separated line per number.
func writeText(w io.Writer, input string, item validation.BatchItem) error {
	r := toReport(input, item)
	if !r.Valid {
		_, err := fmt.Fprintf(w, "%s\tinvalid\t%s\n", r.Input, r.Error)
		return err
	}
	details := []string{r.Kind}
	for _, d := range []string{r.DateOfBirth, r.LegalSex, r.ProbableCompanyForm} {
		if d != "" {
			details = append(details, d)
		}
	}
	_, err := fmt.Fprintf(w, "%s\tvalid\t%s\n", r.Formatted, strings.Join(details, " "))
	return err
}

func message(err error) string {
	var de *dErrors.Error
	if dErrors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
