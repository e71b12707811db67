package patients

import (
	"context"

	"emoease-service/internal/app/services/images"
	"emoease-service/internal/pkg/dto/responses"
)

type patientUsecase struct {
	ProfileClient ProfileClient
	ImageUsecase  images.ImageUsecase
}

func NewPatientUsecase(profileClient ProfileClient, imageUsecase images.ImageUsecase) PatientUsecase {
	return &patientUsecase{
		ProfileClient: profileClient,
		ImageUsecase:  imageUsecase,
	}
}

// GetPatientProfile always fetches fresh; the projection is never cached so
// staff see current data on every open.
func (uc *patientUsecase) GetPatientProfile(ctx context.Context, patientID string) (*responses.PatientProfile, error) {
	profile, err := uc.ProfileClient.GetPatientProfile(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &responses.PatientProfile{
		Profile:   profile,
		AvatarURL: uc.ImageUsecase.ResolveAvatarURL(ctx, profile.UserID),
	}, nil
}
