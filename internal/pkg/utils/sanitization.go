package utils

import (
	"strings"

	"emoease-service/internal/pkg/dto/requests"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.LoginInput = strings.TrimSpace(input.LoginInput)
}

func SanitizeFederatedLoginRequest(input *requests.FederatedLogin) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.PhotoURL = strings.TrimSpace(input.PhotoURL)
}

func SanitizeSendMessageRequest(input *requests.SendMessage) {
	input.Text = strings.TrimSpace(input.Text)
}
