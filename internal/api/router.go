package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/taekwondodev/go-role-login/internal/auth/controller"
	"github.com/taekwondodev/go-role-login/internal/middleware"
	"github.com/taekwondodev/go-role-login/internal/routing"
)

const LoginPath = "/api/auth/login"

func SetupRoutes(authController *controller.AuthController, logger zerolog.Logger) *http.ServeMux {
	router := http.NewServeMux()
	apply := func(h middleware.HandlerFunc) http.HandlerFunc {
		return middleware.ErrorHandler(
			middleware.TrustProxyMiddleware(
				middleware.LoggingMiddleware(logger, h),
			),
		)
	}

	router.Handle("POST "+LoginPath, apply(authController.Login))
	router.Handle("GET /healthz", apply(authController.HealthCheck))

	for role, path := range routing.Dashboards() {
		router.Handle("GET "+path, apply(authController.Dashboard(role)))
	}

	return router
}
