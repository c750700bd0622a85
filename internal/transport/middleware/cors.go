package middleware

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/heartmarshall/editorial-backend/internal/config"
)

// CORS returns middleware that answers preflight requests and sets the
// allow-origin header for origins on the allow-list. A "*" entry allows any
// origin and disables credentials.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.OriginList()
	wildcard := slices.Contains(origins, "*")
	credentials := cfg.AllowCredentials()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				w.Header().Add("Vary", "Origin")
				switch {
				case wildcard:
					w.Header().Set("Access-Control-Allow-Origin", "*")
				case slices.Contains(origins, origin):
					w.Header().Set("Access-Control-Allow-Origin", origin)
					if credentials {
						w.Header().Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
