package responses

// Login is returned after a successful password or federated sign-in.
type Login struct {
	SessionToken string `json:"session_token"`
	Token        string `json:"token,omitempty"`
	Role         string `json:"role"`
	ProfileID    string `json:"profile_id,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	Username     string `json:"username,omitempty"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	RedirectTo   string `json:"redirect_to,omitempty"`
}

// SessionRestore is returned by the rehydration endpoint.
type SessionRestore struct {
	Role      string `json:"role"`
	ProfileID string `json:"profile_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Username  string `json:"username,omitempty"`
	AvatarURL string `json:"avatar_url"`
}

// Logout points the client back at the public landing route.
type Logout struct {
	RedirectTo string `json:"redirect_to"`
}

// Dashboard is the role-based dispatch decision. When OpenLoginModal is set
// the caller is unauthenticated and no route is resolved.
type Dashboard struct {
	RedirectTo     string `json:"redirect_to,omitempty"`
	OpenLoginModal bool   `json:"open_login_modal,omitempty"`
}

// UpstreamLogin is the auth service's login response body.
type UpstreamLogin struct {
	Token string `json:"token"`
}
