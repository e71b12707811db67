package middlewares

import (
	"net/http"
	"strings"

	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/exceptions"
	"emoease-service/internal/pkg/utils"
)

// Authenticate requires a valid session token and attaches the session to
// the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		activeSession, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := utils.WithSession(r.Context(), activeSession)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticateOptional attaches the session when a valid token is present
// and lets the request through either way. Handlers behind it decide what an
// anonymous caller gets.
func (m *Middlewares) AuthenticateOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if activeSession, err := m.resolveSession(r); err == nil {
			r = r.WithContext(utils.WithSession(r.Context(), activeSession))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles gates a route on the session role. Authenticate must run
// before it.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			activeSession := utils.SessionFromContext(r.Context())
			if activeSession == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}
			for _, role := range roles {
				if activeSession.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
		})
	}
}

func (m *Middlewares) resolveSession(r *http.Request) (*models.Session, error) {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	tokenString := strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix)
	sessionID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	activeSession, err := m.SessionService.GetSession(r.Context(), sessionID)
	if err != nil {
		return nil, err
	}
	if activeSession.Expired() || !activeSession.LoggedIn {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return activeSession, nil
}
