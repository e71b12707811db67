package auth

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"emoease-service/internal/app/config"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/dto/requests"
	"emoease-service/internal/pkg/dto/responses"
	"emoease-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const authGatewaySource = "auth-service"

type authGatewayClient struct {
	BaseURL string
}

func NewAuthGatewayClient(internalConfig *config.InternalConfig) AuthGatewayClient {
	return &authGatewayClient{
		BaseURL: internalConfig.AuthService.BaseUrl,
	}
}

func (c *authGatewayClient) Login(ctx context.Context, request *requests.UpstreamLogin) (*responses.UpstreamLogin, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/Auth/login", c.BaseURL)
	httpRequest, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	httpResponse, err := http.DefaultClient.Do(httpRequest)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer httpResponse.Body.Close()

	switch {
	case httpResponse.StatusCode == constvars.StatusUnauthorized,
		httpResponse.StatusCode == constvars.StatusBadRequest:
		return nil, exceptions.ErrInvalidCredentials(nil)
	case httpResponse.StatusCode >= constvars.StatusBadRequest:
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("status %d", httpResponse.StatusCode), authGatewaySource)
	}

	response := new(responses.UpstreamLogin)
	if err := json.NewDecoder(httpResponse.Body).Decode(response); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, authGatewaySource)
	}
	if response.Token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return response, nil
}
