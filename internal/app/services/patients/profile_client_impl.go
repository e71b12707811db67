package patients

import (
	"context"
	"fmt"
	"net/http"

	"emoease-service/internal/app/config"
	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/dto/responses"
	"emoease-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const profileServiceSource = "profile-service"

type profileClient struct {
	BaseURL string
}

func NewProfileClient(internalConfig *config.InternalConfig) ProfileClient {
	return &profileClient{
		BaseURL: internalConfig.ProfileService.BaseUrl,
	}
}

func (c *profileClient) GetPatientProfile(ctx context.Context, patientID string) (*models.PatientProfile, error) {
	requestURL := fmt.Sprintf("%s/patients/%s", c.BaseURL, patientID)
	httpRequest, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	httpResponse, err := http.DefaultClient.Do(httpRequest)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer httpResponse.Body.Close()

	switch {
	case httpResponse.StatusCode == constvars.StatusNotFound:
		return nil, exceptions.ErrPatientNotFound(nil)
	case httpResponse.StatusCode != constvars.StatusOK:
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("status %d", httpResponse.StatusCode), profileServiceSource)
	}

	envelope := new(responses.UpstreamPatientProfile)
	if err := json.NewDecoder(httpResponse.Body).Decode(envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, profileServiceSource)
	}
	if envelope.PatientProfileDto == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return envelope.PatientProfileDto, nil
}
