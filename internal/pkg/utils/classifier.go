package utils

import (
	"regexp"

	"emoease-service/internal/pkg/constvars"
)

var (
	loginEmailRegex = regexp.MustCompile(constvars.RegexLoginEmail)
	loginPhoneRegex = regexp.MustCompile(constvars.RegexLoginPhoneNumber)
)

func IsLoginEmail(input string) bool {
	return loginEmailRegex.MatchString(input)
}

func IsLoginPhoneNumber(input string) bool {
	return loginPhoneRegex.MatchString(input)
}
