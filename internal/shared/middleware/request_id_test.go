package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	incoming := uuid.NewString()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"generated when absent", "", false},
		{"reuses well-formed id", incoming, true},
		{"replaces malformed id", "<script>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFrom(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/documents/format", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()

			RequestID(next).ServeHTTP(rr, req)

			_, err := uuid.Parse(seen)
			require.NoError(t, err, "request ID %q is not a UUID", seen)
			assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
			assert.Equal(t, tt.wantSame, seen == tt.header)
		})
	}
}

func TestRequestIDFrom_Empty(t *testing.T) {
	assert.Empty(t, RequestIDFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
