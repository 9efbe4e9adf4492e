package middleware

import (
	"net/http"

	"lupang-store/pkg/utils"
)

// CORS sets the permissive cross-origin header set on every response and
// short-circuits preflight requests with an empty 200 before routing.
func CORS() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				utils.ResponsePreflight(w)
				return
			}

			utils.SetCORSHeaders(w)
			next.ServeHTTP(w, r)
		})
	}
}
