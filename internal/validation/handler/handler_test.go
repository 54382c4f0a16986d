package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"swedishid/internal/validation"
	"swedishid/internal/validation/metrics"
	"swedishid/pkg/testutil"
)

// HandlerSuite drives the handler through a chi router backed by the real
// validation service.
type HandlerSuite struct {
	suite.Suite
	router chi.Router
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := validation.New(logger, metrics.NewWithRegisterer(prometheus.NewRegistry()),
		validation.Config{BatchLimit: 3, BatchWorkers: 2})
	s.Require().NoError(err)

	r := chi.NewRouter()
	r.Route("/v1", New(svc, logger).Register)
	s.router = r
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) TestLookup() {
	s.Run("valid personnummer", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/v1/personnummer/870506-5558", nil))
		s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

		resp := testutil.UnmarshalResponse[ValidationResponse](s.T(), rr)
		s.True(resp.Valid)
		s.Equal("personnummer", resp.Kind)
		s.Equal("8705065558", resp.Number)
		s.Equal("870506-5558", resp.Formatted)
		s.Equal("1987-05-06", resp.DateOfBirth)
		s.Equal("male", resp.LegalSex)
		s.Empty(resp.ProbableCompanyForm)
		s.False(resp.CheckedAt.IsZero())
	})

	s.Run("organisationsnummer via alias", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/v1/org/556011-7482", nil))
		s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

		resp := testutil.UnmarshalResponse[ValidationResponse](s.T(), rr)
		s.Equal("organisationsnummer", resp.Kind)
		s.Equal("joint_stock_company", resp.ProbableCompanyForm)
		s.Empty(resp.DateOfBirth)
		s.Empty(resp.LegalSex)
	})

	s.Run("bad check digit", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/v1/personnummer/870506-5550", nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, "validation_error")
	})

	s.Run("overlong number", func() {
		path := "/v1/personnummer/" + strings.Repeat("8", maxNumberLength+1)
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, path, nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, "validation_error")
		s.Equal("number is too long", testutil.UnmarshalErrorResponse(s.T(), rr)["error_description"])
	})

	s.Run("unsupported kind", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/v1/passport/870506-5558", nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *HandlerSuite) TestValidate() {
	s.Run("samordningsnummer", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate", map[string]string{
			"kind":   "samordningsnummer",
			"number": " 701063-2391 ",
		})
		rr := testutil.DoRequest(s.router, req)
		s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

		resp := testutil.UnmarshalResponse[ValidationResponse](s.T(), rr)
		s.Equal("samordningsnummer", resp.Kind)
		s.Equal("1970-10-03", resp.DateOfBirth)
	})

	s.Run("invalid date is rejected", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate", map[string]string{
			"kind":   "personnummer",
			"number": "871306-5558",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, "validation_error")
		s.Equal("invalid format", testutil.UnmarshalErrorResponse(s.T(), rr)["error_description"])
	})

	s.Run("empty number", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate", map[string]string{
			"kind": "person",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
	})

	s.Run("missing kind", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate", map[string]string{
			"number": "870506-5558",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("malformed JSON", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequestWithBody(s.T(), http.MethodPost, "/v1/validate", "{"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *HandlerSuite) TestValidateBatch() {
	s.Run("mixed results keep input order", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate/batch", map[string]any{
			"kind":    "personnummer",
			"numbers": []string{"870506-5558", "870506-5550", "19870506-5558"},
		})
		rr := testutil.DoRequest(s.router, req)
		s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

		resp := testutil.UnmarshalResponse[BatchResponse](s.T(), rr)
		s.Equal("personnummer", resp.Kind)
		s.Equal(2, resp.Valid)
		s.Equal(1, resp.Invalid)
		s.Require().Len(resp.Results, 3)

		s.Equal(0, resp.Results[0].Index)
		s.True(resp.Results[0].Valid)
		s.Require().NotNil(resp.Results[0].Result)
		s.Equal("8705065558", resp.Results[0].Result.Number)

		s.Equal(1, resp.Results[1].Index)
		s.False(resp.Results[1].Valid)
		s.Equal(validation.OutcomeInvalidCheckDigit, resp.Results[1].Outcome)
		s.Equal("invalid check digit", resp.Results[1].Error)
		s.Nil(resp.Results[1].Result)

		s.True(resp.Results[2].Valid)
		s.Equal("8705065558", resp.Results[2].Result.Number)
	})

	s.Run("over limit", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate/batch", map[string]any{
			"kind":    "personnummer",
			"numbers": []string{"1", "2", "3", "4"},
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("no numbers", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/validate/batch", map[string]any{
			"kind":    "personnummer",
			"numbers": []string{},
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
	})
}
