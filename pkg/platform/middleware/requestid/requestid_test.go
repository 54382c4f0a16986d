package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swedishid/pkg/requestcontext"
)

func serve(t *testing.T, header string) (seen string, rec *httptest.ResponseRecorder) {
	t.Helper()
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(Header, header)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Run("generates a uuid when absent", func(t *testing.T) {
		seen, rec := serve(t, "")
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(Header))
	})

	t.Run("reuses caller id", func(t *testing.T) {
		seen, rec := serve(t, "trace-abc")
		assert.Equal(t, "trace-abc", seen)
		assert.Equal(t, "trace-abc", rec.Header().Get(Header))
	})

	t.Run("replaces oversized caller id", func(t *testing.T) {
		seen, _ := serve(t, strings.Repeat("a", maxLength+1))
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
	})
}
