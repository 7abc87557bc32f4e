package middleware

import (
	"errors"
	"mime"
	"net/http"

	"github.com/mrops-br/storefront-api/internal/infrastructure/http/response"
)

var errUnsupportedMediaType = errors.New("request body must be application/json")

// AllowJSON rejects requests that carry a body in anything but JSON
func AllowJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			response.Error(w, r, http.StatusUnsupportedMediaType, errUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}
