package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateMessageKey produces the store-side child key for an appended chat
// message, mirroring push-style generated keys.
func GenerateMessageKey() string {
	return uuid.New().String()
}
