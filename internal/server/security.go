package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening middleware applied to every
// endpoint.
type SecurityConfig struct {
	// EnableCORS toggles Access-Control-* response headers.
	EnableCORS bool
	// AllowedOrigins lists origins permitted by CORS; "*" matches any.
	AllowedOrigins []string
	// AllowedMethods lists HTTP methods advertised in CORS responses.
	AllowedMethods []string
	// MaxOperandDigits bounds operand sizes accepted from remote input.
	MaxOperandDigits int
}

// DefaultSecurityConfig returns the configuration used by the metrics
// server: permissive read-only CORS and a generous operand ceiling.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:       true,
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		MaxOperandDigits: 10_000_000,
	}
}

// SecurityMiddleware sets standard security headers, applies CORS policy,
// and short-circuits preflight requests.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := allowedOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// allowedOrigin returns the Access-Control-Allow-Origin value for the
// request origin, or "" when the origin is not permitted. A wildcard entry
// matches regardless of the request origin.
func allowedOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if origin != "" && a == origin {
			return origin
		}
	}
	return ""
}
