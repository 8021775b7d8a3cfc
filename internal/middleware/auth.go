package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// NewBearerAuth returns a middleware that rejects requests not carrying
// "Authorization: Bearer <token>" with the configured API token.
//
// This is the upstream identity gate for the import endpoint: anonymous
// callers never reach the ingestion pipeline. Full session management is
// handled outside this service.
func NewBearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
