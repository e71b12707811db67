package middlewares

import (
	"net/http"
)

// RequestBodyLimit caps request bodies at the configured number of megabytes.
// Reads past the cap fail and close the connection.
func (m *Middlewares) RequestBodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * 1024 * 1024
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
