package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware configured for a read-only API: the service
// exposes nothing but GET endpoints, so mutating methods are not advertised.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})
}
