package auth

import (
	"context"
	"strings"
	"time"

	"emoease-service/internal/app/config"
	"emoease-service/internal/app/models"
	"emoease-service/internal/app/services/core/session"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/dto/requests"
	"emoease-service/internal/pkg/dto/responses"
	"emoease-service/internal/pkg/exceptions"
	"emoease-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthGatewayClient      AuthGatewayClient
	IdentityProviderClient IdentityProviderClient
	SessionService         session.SessionService
	AvatarResolver         AvatarResolver
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewAuthUsecase(
	authGatewayClient AuthGatewayClient,
	identityProviderClient IdentityProviderClient,
	sessionService session.SessionService,
	avatarResolver AvatarResolver,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		AuthGatewayClient:      authGatewayClient,
		IdentityProviderClient: identityProviderClient,
		SessionService:         sessionService,
		AvatarResolver:         avatarResolver,
		InternalConfig:         internalConfig,
		Log:                    log,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	upstreamRequest := &requests.UpstreamLogin{Password: request.Password}
	switch {
	case utils.IsLoginEmail(request.LoginInput):
		upstreamRequest.Email = request.LoginInput
	case utils.IsLoginPhoneNumber(request.LoginInput):
		upstreamRequest.PhoneNumber = request.LoginInput
	default:
		// Rejected before any network call is made.
		return nil, exceptions.ErrInvalidLoginIdentifier(nil)
	}

	upstreamResponse, err := uc.AuthGatewayClient.Login(ctx, upstreamRequest)
	if err != nil {
		return nil, err
	}

	claims, err := utils.DecodeUpstreamToken(upstreamResponse.Token)
	if err != nil {
		return nil, err
	}
	if !claims.ExpiresAt.After(time.Now()) {
		return nil, exceptions.ErrTokenExpired(nil)
	}

	newSession := &models.Session{
		SessionID: utils.GenerateSessionID(),
		Token:     upstreamResponse.Token,
		Role:      claims.Role,
		ProfileID: claims.ProfileID,
		UserID:    claims.UserID,
		Username:  claims.Name,
		AvatarURL: uc.AvatarResolver.ResolveAvatarURL(ctx, claims.UserID),
		LoggedIn:  true,
		ExpiresAt: claims.ExpiresAt,
	}
	return uc.establishSession(ctx, newSession)
}

func (uc *authUsecase) FederatedLogin(ctx context.Context, request *requests.FederatedLogin) (*responses.Login, error) {
	utils.SanitizeFederatedLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(request.Email), uc.InternalConfig.IdentityProvider.AllowedEmailDomain) {
		// The provider session is revoked so the next popup asks again
		// instead of silently reusing the rejected account.
		if err := uc.IdentityProviderClient.SignOut(ctx); err != nil {
			uc.Log.Warn("provider sign-out after rejected domain failed", zap.Error(err))
		}
		return nil, exceptions.ErrEmailDomainNotAllowed(nil)
	}

	avatarURL := request.PhotoURL
	if avatarURL == "" {
		avatarURL = uc.InternalConfig.ImageService.PlaceholderURL
	}

	newSession := &models.Session{
		SessionID: utils.GenerateSessionID(),
		Role:      constvars.RoleUser,
		Username:  strings.SplitN(request.Email, "@", 2)[0],
		AvatarURL: avatarURL,
		LoggedIn:  true,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour),
	}
	return uc.establishSession(ctx, newSession)
}

func (uc *authUsecase) establishSession(ctx context.Context, newSession *models.Session) (*responses.Login, error) {
	if err := uc.SessionService.CreateSession(ctx, newSession); err != nil {
		return nil, err
	}

	sessionToken, err := utils.GenerateSessionJWT(newSession.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		SessionToken: sessionToken,
		Token:        newSession.Token,
		Role:         newSession.Role,
		ProfileID:    newSession.ProfileID,
		UserID:       newSession.UserID,
		Username:     newSession.Username,
		AvatarURL:    newSession.AvatarURL,
		RedirectTo:   redirectForRole(newSession.Role),
	}, nil
}

// Rehydrate restores a persisted session on application start. An expired
// upstream token tears the session down instead of restoring it.
func (uc *authUsecase) Rehydrate(ctx context.Context, sessionID string) (*responses.SessionRestore, error) {
	restored, err := uc.SessionService.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if restored.Expired() {
		if err := uc.SessionService.DeleteSession(ctx, sessionID); err != nil {
			uc.Log.Warn("failed to tear down expired session",
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
		}
		return nil, exceptions.ErrInvalidSession(nil)
	}

	if restored.AvatarURL == "" {
		restored.AvatarURL = uc.AvatarResolver.ResolveAvatarURL(ctx, restored.UserID)
		go func(refreshed models.Session) {
			updateCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := uc.SessionService.UpdateSession(updateCtx, &refreshed); err != nil {
				uc.Log.Warn("failed to persist refreshed avatar", zap.Error(err))
			}
		}(*restored)
	}

	return &responses.SessionRestore{
		Role:      restored.Role,
		ProfileID: restored.ProfileID,
		UserID:    restored.UserID,
		Username:  restored.Username,
		AvatarURL: restored.AvatarURL,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) (*responses.Logout, error) {
	if err := uc.IdentityProviderClient.SignOut(ctx); err != nil {
		// Best-effort; the gateway session is torn down either way.
		uc.Log.Warn("provider sign-out on logout failed", zap.Error(err))
	}

	if sessionID != "" {
		if err := uc.SessionService.DeleteSession(ctx, sessionID); err != nil {
			return nil, err
		}
	}
	return &responses.Logout{RedirectTo: constvars.RoutePublicLanding}, nil
}

// Dashboard resolves the role-based landing route. Missing or expired
// sessions open the login modal instead of navigating.
func (uc *authUsecase) Dashboard(ctx context.Context, sessionID string) (*responses.Dashboard, error) {
	if sessionID == "" {
		return &responses.Dashboard{OpenLoginModal: true}, nil
	}

	activeSession, err := uc.SessionService.GetSession(ctx, sessionID)
	if err != nil || activeSession.Expired() || !activeSession.LoggedIn {
		return &responses.Dashboard{OpenLoginModal: true}, nil
	}

	return &responses.Dashboard{RedirectTo: redirectForRole(activeSession.Role)}, nil
}

func redirectForRole(role string) string {
	switch role {
	case constvars.RoleDoctor:
		return constvars.RouteDoctorDashboard
	case constvars.RoleStaff:
		return constvars.RouteStaffArea
	case constvars.RoleManager:
		return constvars.RouteManagerArea
	default:
		return constvars.RoutePatientDashboard
	}
}
