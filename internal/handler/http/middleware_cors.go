package http

import (
	"net/http"
	"strings"
)

// withCORS answers browser cross-origin requests for the configured frontend
// origins. An origin ending in a "*" segment (e.g. "https://*.vercel.app")
// matches any single subdomain under that suffix.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && h.originAllowed(origin) {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
			header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			header.Set("Access-Control-Expose-Headers", "Content-Type, Authorization")
			header.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) originAllowed(origin string) bool {
	for _, allowed := range h.corsAllowedOrigins {
		if allowed == origin {
			return true
		}

		// wildcard entries like https://*.vercel.app
		if scheme, host, ok := strings.Cut(allowed, "://"); ok && strings.HasPrefix(host, "*.") {
			suffix := strings.TrimPrefix(host, "*")
			if originScheme, originHost, ok := strings.Cut(origin, "://"); ok &&
				originScheme == scheme &&
				strings.HasSuffix(originHost, suffix) &&
				originHost != strings.TrimPrefix(suffix, ".") {
				return true
			}
		}
	}
	return false
}
