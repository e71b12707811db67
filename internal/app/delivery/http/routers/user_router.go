package routers

import (
	"emoease-service/internal/app/delivery/http/middlewares"
	"emoease-service/internal/app/services/images"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, imageController *images.ImageController) {
	router.Use(middlewares.Authenticate)
	router.Get("/avatar", imageController.GetAvatar)
	router.Post("/avatar", imageController.UploadAvatar)
}
