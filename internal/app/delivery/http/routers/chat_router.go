package routers

import (
	"emoease-service/internal/app/delivery/http/middlewares"
	"emoease-service/internal/app/services/chat"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatController *chat.ChatController) {
	router.Use(middlewares.AuthenticateOptional)
	router.Get("/messages", chatController.ListMessages)
	router.With(middlewares.ChatSendLimiter()).Post("/messages", chatController.SendMessage)
}
