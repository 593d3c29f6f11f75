package cors

import "net/http"

// Config holds CORS configuration. An empty AllowedOrigins list allows any
// origin, matching the permissive setup the dashboard frontend expects.
type Config struct {
	AllowedOrigins []string
	AllowedMethods string
	AllowedHeaders string
}

// DefaultConfig returns the permissive defaults for the dashboard API.
func DefaultConfig() Config {
	return Config{
		AllowedMethods: "GET, POST, OPTIONS",
		AllowedHeaders: "Origin, Content-Type, Accept",
	}
}

// Middleware returns CORS middleware. Preflight requests are answered
// directly with 204.
func Middleware(config Config) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(config.AllowedOrigins))
	for _, o := range config.AllowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if len(allowed) == 0 {
					w.Header().Set("Access-Control-Allow-Origin", "*")
				} else if _, ok := allowed[origin]; ok {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Vary", "Origin")
				}
				w.Header().Set("Access-Control-Allow-Methods", config.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", config.AllowedHeaders)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
