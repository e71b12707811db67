package chat

import (
	"context"
	"net/http"
	"time"

	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/dto/requests"
	"emoease-service/internal/pkg/exceptions"
	"emoease-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ChatController struct {
	Log         *zap.Logger
	ChatUsecase ChatUsecase
}

func NewChatController(log *zap.Logger, chatUsecase ChatUsecase) *ChatController {
	return &ChatController{
		Log:         log,
		ChatUsecase: chatUsecase,
	}
}

func (ctrl *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SendMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ChatUsecase.Send(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if !response.Accepted {
		utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ChatMessageSent, response)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ChatMessageSent, response)
}

func (ctrl *ChatController) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ChatUsecase.Messages(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatMessagesListed, response)
}
