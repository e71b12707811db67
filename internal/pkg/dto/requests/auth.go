package requests

// Login carries the password sign-in form. LoginInput holds either an email
// or a phone number; classification happens before any upstream call.
type Login struct {
	LoginInput string `json:"login_input" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// FederatedLogin carries the result of the provider popup flow.
type FederatedLogin struct {
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

// UpstreamLogin is the JSON body sent to the auth service. Exactly one of
// Email or PhoneNumber is set, matching the classified identifier.
type UpstreamLogin struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password"`
}
