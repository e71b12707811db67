package auth

import (
	"context"
	"net/http"

	"emoease-service/internal/app/config"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/exceptions"
)

type identityProviderClient struct {
	RevokeURL string
}

func NewIdentityProviderClient(internalConfig *config.InternalConfig) IdentityProviderClient {
	return &identityProviderClient{
		RevokeURL: internalConfig.IdentityProvider.RevokeUrl,
	}
}

func (c *identityProviderClient) SignOut(ctx context.Context) error {
	if c.RevokeURL == "" {
		return nil
	}

	httpRequest, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.RevokeURL, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	httpResponse, err := http.DefaultClient.Do(httpRequest)
	if err != nil {
		return exceptions.ErrProviderSignOut(err)
	}
	defer httpResponse.Body.Close()

	return nil
}
