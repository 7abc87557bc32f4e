package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowJSON(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := AllowJSON(ok)

	tests := []struct {
		name        string
		body        string
		contentType string
		want        int
	}{
		{name: "NoBody", want: http.StatusNoContent},
		{name: "JSON", body: `{}`, contentType: "application/json", want: http.StatusNoContent},
		{name: "JSONWithCharset", body: `{}`, contentType: "application/json; charset=utf-8", want: http.StatusNoContent},
		{name: "PlainText", body: `{}`, contentType: "text/plain", want: http.StatusUnsupportedMediaType},
		{name: "MissingContentType", body: `{}`, want: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(tt.body))
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
