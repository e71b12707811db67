package responses

import "emoease-service/internal/app/models"

type ChatMessages struct {
	Messages []models.Message `json:"messages"`
}

type SendMessage struct {
	MessageID string `json:"message_id,omitempty"`
	Accepted  bool   `json:"accepted"`
}
