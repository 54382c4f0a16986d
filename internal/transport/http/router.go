// Package httptransport assembles the public HTTP surface.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"swedishid/internal/platform/middleware"
	"swedishid/internal/validation/handler"
	id "swedishid/pkg/domain"
	dErrors "swedishid/pkg/domain-errors"
	"swedishid/pkg/platform/httputil"
	"swedishid/pkg/platform/middleware/metadata"
	"swedishid/pkg/platform/middleware/requestid"
	"swedishid/pkg/platform/middleware/requesttime"
	"swedishid/pkg/platform/middleware/version"
)

// requestTimeout bounds a single request, batches included.
const requestTimeout = 30 * time.Second

// Deps are the collaborators the router mounts.
type Deps struct {
	Logger     *slog.Logger
	Validation *handler.Handler
	// Gatherer serves /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// NewRouter wires all public endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{
			Error:            string(dErrors.CodeBadRequest),
			ErrorDescription: "method not allowed",
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(version.ExtractVersion(id.APIVersionV1))
		v1.Use(middleware.Timeout(requestTimeout))
		v1.Use(middleware.ContentTypeJSON)
		deps.Validation.Register(v1)
	})
	return r
}
