// Package version provides middleware for API version extraction.
package version

import (
	"net/http"

	id "swedishid/pkg/domain"
	dErrors "swedishid/pkg/domain-errors"
	"swedishid/pkg/platform/httputil"
	"swedishid/pkg/requestcontext"
)

// HeaderAPIVersion echoes the route version on every response. Clients may
// also send it; a request for a different version is rejected.
const HeaderAPIVersion = "X-API-Version"

// ExtractVersion creates middleware that records the API version of a Chi subrouter.
// When using Chi's r.Route("/v1", ...), the version is already determined by the route match.
//
// Usage:
//
//	r.Route("/v1", func(v1 chi.Router) {
//	    v1.Use(version.ExtractVersion(id.APIVersionV1))
//	    // ... routes
//	})
func ExtractVersion(version id.APIVersion) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderAPIVersion, version.String())
			if requested := r.Header.Get(HeaderAPIVersion); requested != "" {
				v, err := id.ParseAPIVersion(requested)
				if err != nil {
					httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "unsupported API version"))
					return
				}
				if v != version {
					httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "API version does not match route"))
					return
				}
			}
			ctx := requestcontext.WithAPIVersion(r.Context(), version)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
