package middleware

import (
	"net/http"

	"github.com/wooteco-subway/favorite-api/internal/api/shared"
)

// TraceID assigns a fresh trace ID to every request so log lines and
// error responses for the same request can be correlated.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
