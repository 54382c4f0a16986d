package handler

import (
	"time"

	"swedishid/internal/validation"
	dErrors "swedishid/pkg/domain-errors"
)

// dateLayout formats birth dates without a time component.
const dateLayout = "2006-01-02"

// ValidationResponse is the HTTP response for a valid number.
type ValidationResponse struct {
	Valid               bool      `json:"valid"`
	Kind                string    `json:"kind"`
	Number              string    `json:"number"`
	Formatted           string    `json:"formatted"`
	DateOfBirth         string    `json:"date_of_birth,omitempty"`
	LegalSex            string    `json:"legal_sex,omitempty"`
	ProbableCompanyForm string    `json:"probable_company_form,omitempty"`
	CheckedAt           time.Time `json:"checked_at"`
}

// BatchItemResponse is one entry of a batch response.
type BatchItemResponse struct {
	Index   int                 `json:"index"`
	Valid   bool                `json:"valid"`
	Outcome string              `json:"outcome"`
	Error   string              `json:"error,omitempty"`
	Result  *ValidationResponse `json:"result,omitempty"`
}

// BatchResponse is the HTTP response for POST /v1/validate/batch.
type BatchResponse struct {
	Kind    string              `json:"kind"`
	Valid   int                 `json:"valid"`
	Invalid int                 `json:"invalid"`
	Results []BatchItemResponse `json:"results"`
}

// FromResult converts a validation Result to an HTTP response.
func FromResult(res *validation.Result) *ValidationResponse {
	resp := &ValidationResponse{
		Valid:               true,
		Kind:                res.Kind.String(),
		Number:              res.Number,
		Formatted:           res.Formatted,
		LegalSex:            string(res.LegalSex),
		ProbableCompanyForm: string(res.ProbableCompanyForm),
		CheckedAt:           res.CheckedAt,
	}
	if !res.DateOfBirth.IsZero() {
		resp.DateOfBirth = res.DateOfBirth.Format(dateLayout)
	}
	return resp
}

// FromBatch converts batch items to an HTTP response.
func FromBatch(kind string, items []validation.BatchItem) *BatchResponse {
	resp := &BatchResponse{
		Kind:    kind,
		Results: make([]BatchItemResponse, 0, len(items)),
	}
	for _, item := range items {
		entry := BatchItemResponse{
			Index:   item.Index,
			Valid:   item.Err == nil,
			Outcome: item.Outcome(),
		}
		if item.Err != nil {
			resp.Invalid++
			entry.Error = errorMessage(item.Err)
		} else {
			resp.Valid++
			entry.Result = FromResult(item.Result)
		}
		resp.Results = append(resp.Results, entry)
	}
	return resp
}

// errorMessage returns the client-safe message of a coded error.
func errorMessage(err error) string {
	var de *dErrors.Error
	if dErrors.As(err, &de) && de.Code != dErrors.CodeInternal {
		return de.Message
	}
	return "validation failed"
}
