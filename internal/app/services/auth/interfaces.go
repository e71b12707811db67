package auth

import (
	"context"

	"emoease-service/internal/pkg/dto/requests"
	"emoease-service/internal/pkg/dto/responses"
)

type (
	// AuthGatewayClient talks to the upstream auth service.
	AuthGatewayClient interface {
		Login(ctx context.Context, request *requests.UpstreamLogin) (*responses.UpstreamLogin, error)
	}

	// IdentityProviderClient revokes the provider session after a rejected
	// federated sign-in so the popup does not silently reuse it.
	IdentityProviderClient interface {
		SignOut(ctx context.Context) error
	}

	// AvatarResolver returns a usable avatar URL for the owner, falling back
	// to the configured placeholder. It never fails.
	AvatarResolver interface {
		ResolveAvatarURL(ctx context.Context, ownerID string) string
	}

	AuthUsecase interface {
		Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
		FederatedLogin(ctx context.Context, request *requests.FederatedLogin) (*responses.Login, error)
		Rehydrate(ctx context.Context, sessionID string) (*responses.SessionRestore, error)
		Logout(ctx context.Context, sessionID string) (*responses.Logout, error)
		Dashboard(ctx context.Context, sessionID string) (*responses.Dashboard, error)
	}
)
