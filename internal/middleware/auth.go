package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/veggiemart/shop-api/internal/config"
)

// SeedGuard protects destructive admin routes.
// Disabled seeding answers 403. When admin keys are configured the
// "api_key" header must match one of them.
func SeedGuard(cfg config.SeedConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				http.Error(w, "Forbidden: seeding is disabled", http.StatusForbidden)
				return
			}

			if len(cfg.AdminAPIKeys) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("api_key")
			if apiKey == "" {
				http.Error(w, "Unauthorized: API key required", http.StatusUnauthorized)
				return
			}

			if !validKey(apiKey, cfg.AdminAPIKeys) {
				http.Error(w, "Forbidden: Invalid API key", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func validKey(key string, keys []string) bool {
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(k)) == 1 {
			return true
		}
	}
	return false
}
