package constvars

const (
	// RegexLoginEmail mirrors the sign-in form classifier: local@domain with
	// a dot somewhere in the domain part.
	RegexLoginEmail = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	// RegexLoginPhoneNumber accepts bare digit strings, 10 to 15 digits.
	RegexLoginPhoneNumber = `^[0-9]{10,15}$`

	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexNumeric                      = `^\d+$`
	RegexURL                          = `^(http|https):\/\/[^\s$.?#].[^\s]*$`
)
