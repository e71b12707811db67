package images

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"emoease-service/internal/app/config"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/dto/responses"
	"emoease-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const imageServiceSource = "image-service"

type imageClient struct {
	BaseURL string
}

func NewImageClient(internalConfig *config.InternalConfig) ImageClient {
	return &imageClient{
		BaseURL: internalConfig.ImageService.BaseUrl,
	}
}

func (c *imageClient) GetAvatarURL(ctx context.Context, ownerType, ownerID string) (string, error) {
	query := url.Values{}
	query.Set("ownerType", ownerType)
	query.Set("ownerId", ownerID)

	requestURL := fmt.Sprintf("%s/image/get?%s", c.BaseURL, query.Encode())
	httpRequest, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}

	httpResponse, err := http.DefaultClient.Do(httpRequest)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrUpstreamStatus(fmt.Errorf("status %d", httpResponse.StatusCode), imageServiceSource)
	}

	avatar := new(responses.Avatar)
	if err := json.NewDecoder(httpResponse.Body).Decode(avatar); err != nil {
		return "", exceptions.ErrDecodeResponse(err, imageServiceSource)
	}
	return avatar.URL, nil
}
