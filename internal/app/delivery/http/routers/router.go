package routers

import (
	"fmt"
	"time"

	"emoease-service/internal/app/config"
	"emoease-service/internal/app/delivery/http/middlewares"
	"emoease-service/internal/app/services/archive"
	"emoease-service/internal/app/services/auth"
	"emoease-service/internal/app/services/chat"
	"emoease-service/internal/app/services/images"
	"emoease-service/internal/app/services/navigation"
	"emoease-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	chatController *chat.ChatController,
	patientController *patients.PatientController,
	imageController *images.ImageController,
	navigationController *navigation.NavigationController,
	archiveController *archive.ArchiveController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestBodyLimit)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/chat", func(r chi.Router) {
				attachChatRoutes(r, middlewares, chatController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, imageController)
			})

			r.Route("/navigation", func(r chi.Router) {
				attachNavigationRoutes(r, middlewares, navigationController)
			})

			r.Route("/archive", func(r chi.Router) {
				attachArchiveRoutes(r, middlewares, archiveController)
			})
		})
	})
}
