package routers

import (
	"emoease-service/internal/app/delivery/http/middlewares"
	"emoease-service/internal/app/services/navigation"

	"github.com/go-chi/chi/v5"
)

func attachNavigationRoutes(router chi.Router, middlewares *middlewares.Middlewares, navigationController *navigation.NavigationController) {
	router.With(middlewares.AuthenticateOptional).Get("/", navigationController.GetNavigation)
}
