package responses

import "emoease-service/internal/app/models"

// PatientProfile wraps the upstream projection together with the resolved
// avatar URL.
type PatientProfile struct {
	Profile   *models.PatientProfile `json:"profile"`
	AvatarURL string                 `json:"avatar_url"`
}

// UpstreamPatientProfile mirrors the profile service's response envelope.
type UpstreamPatientProfile struct {
	PatientProfileDto *models.PatientProfile `json:"patientProfileDto"`
}
