package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/autonovo/autonovo-backend/pkg/config"
)

// CORS returns middleware that applies the configured origin policy.
// Preflight OPTIONS requests are answered here with 200 and never reach the
// route handlers.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	maxAge := cfg.MaxAgeSeconds
	if maxAge <= 0 {
		maxAge = 300
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         maxAge,
	}).Handler
}
