package routers

import (
	"emoease-service/internal/app/delivery/http/middlewares"
	"emoease-service/internal/app/services/archive"
	"emoease-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachArchiveRoutes(router chi.Router, middlewares *middlewares.Middlewares, archiveController *archive.ArchiveController) {
	router.
		With(middlewares.Authenticate).
		With(middlewares.RequireRoles(constvars.RoleStaff, constvars.RoleManager)).
		Get("/messages", archiveController.ListMessages)
}
