package middleware

import (
	"github.com/go-chi/cors"

	"github.com/heartmarshall/ustwo-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing for the
// read-only list views. Preflight requests are answered with 204.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
