package models

import "time"

// Session is the authenticated identity and role context persisted in Redis.
// All fields are cleared together on teardown.
type Session struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ProfileID string    `json:"profile_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	LoggedIn  bool      `json:"logged_in"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the upstream token expiry carried by the session
// is in the past.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.After(time.Now())
}
