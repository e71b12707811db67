package routers

import (
	"emoease-service/internal/app/delivery/http/middlewares"
	"emoease-service/internal/app/services/patients"
	"emoease-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.
		With(middlewares.Authenticate).
		With(middlewares.RequireRoles(constvars.RoleStaff, constvars.RoleManager)).
		Get("/{patient_id}", patientController.GetPatientProfile)
}
