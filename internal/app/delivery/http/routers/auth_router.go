package routers

import (
	"emoease-service/internal/app/delivery/http/middlewares"
	"emoease-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/google", authController.FederatedLogin)
	router.With(middlewares.Authenticate).Get("/session", authController.Rehydrate)
	router.With(middlewares.AuthenticateOptional).Post("/logout", authController.Logout)
	router.With(middlewares.AuthenticateOptional).Get("/dashboard", authController.Dashboard)
}
