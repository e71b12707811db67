package auth

import (
	"context"
	"testing"
	"time"

	"emoease-service/internal/app/config"
	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/dto/requests"
	"emoease-service/internal/pkg/dto/responses"
	"emoease-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAuthGatewayClient struct {
	mock.Mock
}

func (m *mockAuthGatewayClient) Login(ctx context.Context, request *requests.UpstreamLogin) (*responses.UpstreamLogin, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UpstreamLogin), args.Error(1)
}

type mockIdentityProviderClient struct {
	mock.Mock
}

func (m *mockIdentityProviderClient) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *mockSessionService) UpdateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type stubAvatarResolver struct {
	url string
}

func (s *stubAvatarResolver) ResolveAvatarURL(context.Context, string) string {
	return s.url
}

func authTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 5,
		},
		ImageService: config.ImageService{
			PlaceholderURL: "https://i.pravatar.cc/150?img=3",
		},
		IdentityProvider: config.IdentityProvider{
			AllowedEmailDomain: "@fpt.edu.vn",
		},
	}
}

func upstreamToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		constvars.ClaimRole:      role,
		constvars.ClaimName:      "Tester",
		constvars.ClaimProfileID: "profile-1",
		constvars.ClaimUserID:    "user-1",
		"exp":                    expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-key"))
	assert.NoError(t, err)
	return token
}

func newTestAuthUsecase(gateway *mockAuthGatewayClient, provider *mockIdentityProviderClient, sessions *mockSessionService) AuthUsecase {
	return NewAuthUsecase(
		gateway,
		provider,
		sessions,
		&stubAvatarResolver{url: "https://cdn.example.com/avatar.png"},
		authTestConfig(),
		zap.NewNop(),
	)
}

func TestAuthUsecase_LoginRejectsMalformedIdentifierBeforeUpstream(t *testing.T) {
	gateway := new(mockAuthGatewayClient)
	sessions := new(mockSessionService)
	uc := newTestAuthUsecase(gateway, new(mockIdentityProviderClient), sessions)

	testCases := []string{
		"not-an-email",
		"missing@domain",
		"123",
		"0123456789012345678",
	}
	for _, input := range testCases {
		_, err := uc.Login(context.Background(), &requests.Login{LoginInput: input, Password: "secret"})
		assert.Error(t, err, input)
	}

	gateway.AssertNotCalled(t, "Login")
	sessions.AssertNotCalled(t, "CreateSession")
}

func TestAuthUsecase_LoginClassifiesEmailAndPhone(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantEmail string
		wantPhone string
	}{
		{name: "email", input: "staff@example.com", wantEmail: "staff@example.com"},
		{name: "phone", input: "0912345678", wantPhone: "0912345678"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := new(mockAuthGatewayClient)
			sessions := new(mockSessionService)
			sessions.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

			token := upstreamToken(t, constvars.RoleStaff, time.Now().Add(time.Hour))
			gateway.On("Login", mock.Anything, &requests.UpstreamLogin{
				Email:       tc.wantEmail,
				PhoneNumber: tc.wantPhone,
				Password:    "secret",
			}).Return(&responses.UpstreamLogin{Token: token}, nil)

			response, err := uc(t, gateway, sessions).Login(context.Background(), &requests.Login{
				LoginInput: tc.input,
				Password:   "secret",
			})
			assert.NoError(t, err)
			assert.Equal(t, constvars.RoleStaff, response.Role)
			assert.Equal(t, constvars.RouteStaffArea, response.RedirectTo)
			assert.NotEmpty(t, response.SessionToken)
			gateway.AssertExpectations(t)
			sessions.AssertExpectations(t)
		})
	}
}

func uc(t *testing.T, gateway *mockAuthGatewayClient, sessions *mockSessionService) AuthUsecase {
	t.Helper()
	return newTestAuthUsecase(gateway, new(mockIdentityProviderClient), sessions)
}

func TestAuthUsecase_LoginRejectsExpiredUpstreamToken(t *testing.T) {
	gateway := new(mockAuthGatewayClient)
	sessions := new(mockSessionService)

	token := upstreamToken(t, constvars.RoleUser, time.Now().Add(-time.Minute))
	gateway.On("Login", mock.Anything, mock.Anything).Return(&responses.UpstreamLogin{Token: token}, nil)

	_, err := uc(t, gateway, sessions).Login(context.Background(), &requests.Login{
		LoginInput: "patient@example.com",
		Password:   "secret",
	})
	assert.Error(t, err)
	sessions.AssertNotCalled(t, "CreateSession")
}

func TestAuthUsecase_FederatedLoginRejectsForeignDomainAndRevokesProvider(t *testing.T) {
	provider := new(mockIdentityProviderClient)
	provider.On("SignOut", mock.Anything).Return(nil)
	sessions := new(mockSessionService)

	usecase := NewAuthUsecase(new(mockAuthGatewayClient), provider, sessions, &stubAvatarResolver{}, authTestConfig(), zap.NewNop())

	_, err := usecase.FederatedLogin(context.Background(), &requests.FederatedLogin{
		Email: "someone@gmail.com",
	})
	assert.Error(t, err)

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientEmailDomainNotAllowed, customErr.ClientMessage)

	provider.AssertCalled(t, "SignOut", mock.Anything)
	sessions.AssertNotCalled(t, "CreateSession")
}

func TestAuthUsecase_FederatedLoginAllowedDomain(t *testing.T) {
	provider := new(mockIdentityProviderClient)
	sessions := new(mockSessionService)
	sessions.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

	usecase := NewAuthUsecase(new(mockAuthGatewayClient), provider, sessions, &stubAvatarResolver{}, authTestConfig(), zap.NewNop())

	response, err := usecase.FederatedLogin(context.Background(), &requests.FederatedLogin{
		Email:    "Student@fpt.edu.vn",
		PhotoURL: "https://lh3.example.com/photo.jpg",
	})
	assert.NoError(t, err)
	assert.Equal(t, constvars.RoleUser, response.Role)
	assert.Equal(t, constvars.RoutePatientDashboard, response.RedirectTo)
	assert.Equal(t, "student", response.Username)
	assert.Equal(t, "https://lh3.example.com/photo.jpg", response.AvatarURL)
	provider.AssertNotCalled(t, "SignOut")
}

func TestAuthUsecase_FederatedLoginFallsBackToPlaceholderAvatar(t *testing.T) {
	sessions := new(mockSessionService)
	sessions.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

	usecase := NewAuthUsecase(new(mockAuthGatewayClient), new(mockIdentityProviderClient), sessions, &stubAvatarResolver{}, authTestConfig(), zap.NewNop())

	response, err := usecase.FederatedLogin(context.Background(), &requests.FederatedLogin{
		Email: "student@fpt.edu.vn",
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://i.pravatar.cc/150?img=3", response.AvatarURL)
}

func TestAuthUsecase_RehydrateTearsDownExpiredSession(t *testing.T) {
	sessions := new(mockSessionService)
	sessions.On("GetSession", mock.Anything, "session-1").Return(&models.Session{
		SessionID: "session-1",
		Role:      constvars.RoleUser,
		LoggedIn:  true,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	sessions.On("DeleteSession", mock.Anything, "session-1").Return(nil)

	usecase := NewAuthUsecase(new(mockAuthGatewayClient), new(mockIdentityProviderClient), sessions, &stubAvatarResolver{}, authTestConfig(), zap.NewNop())

	_, err := usecase.Rehydrate(context.Background(), "session-1")
	assert.Error(t, err)
	sessions.AssertCalled(t, "DeleteSession", mock.Anything, "session-1")
}

func TestAuthUsecase_RehydrateRestoresLiveSession(t *testing.T) {
	sessions := new(mockSessionService)
	sessions.On("GetSession", mock.Anything, "session-2").Return(&models.Session{
		SessionID: "session-2",
		Role:      constvars.RoleDoctor,
		Username:  "doc",
		AvatarURL: "https://cdn.example.com/doc.png",
		LoggedIn:  true,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	usecase := NewAuthUsecase(new(mockAuthGatewayClient), new(mockIdentityProviderClient), sessions, &stubAvatarResolver{}, authTestConfig(), zap.NewNop())

	response, err := usecase.Rehydrate(context.Background(), "session-2")
	assert.NoError(t, err)
	assert.Equal(t, constvars.RoleDoctor, response.Role)
	assert.Equal(t, "https://cdn.example.com/doc.png", response.AvatarURL)
	sessions.AssertNotCalled(t, "DeleteSession")
}

func TestAuthUsecase_LogoutRedirectsToPublicLanding(t *testing.T) {
	sessions := new(mockSessionService)
	sessions.On("DeleteSession", mock.Anything, "session-3").Return(nil)
	provider := new(mockIdentityProviderClient)
	provider.On("SignOut", mock.Anything).Return(nil)

	usecase := NewAuthUsecase(new(mockAuthGatewayClient), provider, sessions, &stubAvatarResolver{}, authTestConfig(), zap.NewNop())

	response, err := usecase.Logout(context.Background(), "session-3")
	assert.NoError(t, err)
	assert.Equal(t, constvars.RoutePublicLanding, response.RedirectTo)
	sessions.AssertCalled(t, "DeleteSession", mock.Anything, "session-3")
}

func TestAuthUsecase_DashboardDispatchesByRole(t *testing.T) {
	testCases := []struct {
		role string
		want string
	}{
		{role: constvars.RoleUser, want: constvars.RoutePatientDashboard},
		{role: constvars.RoleDoctor, want: constvars.RouteDoctorDashboard},
		{role: constvars.RoleStaff, want: constvars.RouteStaffArea},
		{role: constvars.RoleManager, want: constvars.RouteManagerArea},
	}

	for _, tc := range testCases {
		t.Run(tc.role, func(t *testing.T) {
			sessions := new(mockSessionService)
			sessions.On("GetSession", mock.Anything, "session-4").Return(&models.Session{
				SessionID: "session-4",
				Role:      tc.role,
				LoggedIn:  true,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil)

			usecase := NewAuthUsecase(new(mockAuthGatewayClient), new(mockIdentityProviderClient), sessions, &stubAvatarResolver{}, authTestConfig(), zap.NewNop())

			response, err := usecase.Dashboard(context.Background(), "session-4")
			assert.NoError(t, err)
			assert.Equal(t, tc.want, response.RedirectTo)
			assert.False(t, response.OpenLoginModal)
		})
	}
}

func TestAuthUsecase_DashboardOpensLoginModalWithoutSession(t *testing.T) {
	usecase := NewAuthUsecase(new(mockAuthGatewayClient), new(mockIdentityProviderClient), new(mockSessionService), &stubAvatarResolver{}, authTestConfig(), zap.NewNop())

	response, err := usecase.Dashboard(context.Background(), "")
	assert.NoError(t, err)
	assert.True(t, response.OpenLoginModal)
	assert.Empty(t, response.RedirectTo)
}
