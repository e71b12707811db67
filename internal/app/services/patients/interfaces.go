package patients

import (
	"context"

	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/dto/responses"
)

type (
	// ProfileClient fetches the patient projection from the profile service.
	ProfileClient interface {
		GetPatientProfile(ctx context.Context, patientID string) (*models.PatientProfile, error)
	}

	PatientUsecase interface {
		GetPatientProfile(ctx context.Context, patientID string) (*responses.PatientProfile, error)
	}
)
