package responses

import "emoease-service/internal/app/models"

type ArchivedMessages struct {
	Messages []models.ArchivedMessage `json:"messages"`
}
