package main

import (
	"net/http"

	"go.uber.org/zap"

	"freelancernow/internal/shared/config"
	"freelancernow/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", deps.HealthHandler.HandleHealth)

	// Document helpers used by the profile form while typing
	mux.HandleFunc("/api/documents/format", deps.DocumentHandler.HandleFormat)
	mux.HandleFunc("/api/documents/validate", deps.DocumentHandler.HandleValidate)

	// Public profile
	mux.HandleFunc("/api/users/{id}", deps.UserHandler.HandlePublicProfile)

	// Protected routes
	authMiddleware := middleware.Auth(deps.JWT)
	mux.Handle("/api/users/me", authMiddleware(http.HandlerFunc(deps.UserHandler.HandleMe)))

	var handler http.Handler = mux
	if cfg.TLS.Enabled {
		handler = middleware.SecureCookies(handler)
		log.Info("TLS security middleware enabled (HSTS + secure cookies)")
	}
	handler = middleware.SecureHeaders(cfg.TLS.Enabled)(handler)
	handler = middleware.CORS(cfg.Server.AllowedHosts)(handler)
	handler = middleware.Logging(log.Named("http"))(handler)
	handler = middleware.Tracing(handler)
	handler = middleware.RequestID(handler)

	return handler
}
