package images

import (
	"context"
	"net/http"
	"time"

	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ImageController struct {
	Log          *zap.Logger
	ImageUsecase ImageUsecase
}

func NewImageController(log *zap.Logger, imageUsecase ImageUsecase) *ImageController {
	return &ImageController{
		Log:          log,
		ImageUsecase: imageUsecase,
	}
}

func (ctrl *ImageController) GetAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		if session := utils.SessionFromContext(ctx); session != nil {
			ownerID = session.UserID
		}
	}

	response, err := ctrl.ImageUsecase.GetAvatar(ctx, ownerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvatarGetSuccess, response)
}

func (ctrl *ImageController) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	session := utils.SessionFromContext(ctx)
	ownerID := ""
	if session != nil {
		ownerID = session.UserID
	}

	response, err := ctrl.ImageUsecase.UploadAvatar(
		ctx,
		ownerID,
		r.Header.Get(constvars.HeaderContentType),
		r.Body,
		r.ContentLength,
	)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AvatarUploadSuccess, response)
}
