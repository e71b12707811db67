package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"emoease-service/internal/app/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const placeholderURL = "https://i.pravatar.cc/150?img=3"

func imageTestConfig(baseURL string) *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{AvatarMaxUploadSizeInMB: 5},
		ImageService: config.ImageService{
			BaseUrl:        baseURL,
			PlaceholderURL: placeholderURL,
		},
	}
}

func TestImageUsecase_ResolveAvatarURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/image/get", r.URL.Path)
		assert.Equal(t, "User", r.URL.Query().Get("ownerType"))
		assert.Equal(t, "user-1", r.URL.Query().Get("ownerId"))
		w.Write([]byte(`{"url": "https://cdn.example.com/u1.png"}`))
	}))
	defer server.Close()

	internalConfig := imageTestConfig(server.URL)
	uc := NewImageUsecase(NewImageClient(internalConfig), nil, internalConfig, zap.NewNop())

	assert.Equal(t, "https://cdn.example.com/u1.png", uc.ResolveAvatarURL(context.Background(), "user-1"))
}

func TestImageUsecase_ResolveAvatarURLFallsBackToPlaceholder(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "empty url",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"url": ""}`))
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			internalConfig := imageTestConfig(server.URL)
			uc := NewImageUsecase(NewImageClient(internalConfig), nil, internalConfig, zap.NewNop())

			assert.Equal(t, placeholderURL, uc.ResolveAvatarURL(context.Background(), "user-1"))
		})
	}
}

func TestImageUsecase_ResolveAvatarURLWithoutOwner(t *testing.T) {
	internalConfig := imageTestConfig("http://127.0.0.1:0")
	uc := NewImageUsecase(NewImageClient(internalConfig), nil, internalConfig, zap.NewNop())

	// No lookup is attempted when there is nobody to look up.
	assert.Equal(t, placeholderURL, uc.ResolveAvatarURL(context.Background(), ""))
}

func TestImageUsecase_UploadAvatarRejectsBadInput(t *testing.T) {
	internalConfig := imageTestConfig("http://127.0.0.1:0")
	uc := NewImageUsecase(NewImageClient(internalConfig), nil, internalConfig, zap.NewNop())

	_, err := uc.UploadAvatar(context.Background(), "user-1", "text/plain", nil, 100)
	assert.Error(t, err)

	_, err = uc.UploadAvatar(context.Background(), "user-1", "image/png", nil, 0)
	assert.Error(t, err)

	_, err = uc.UploadAvatar(context.Background(), "user-1", "image/png", nil, 6*1024*1024)
	assert.Error(t, err)
}
