package archive

import (
	"context"
	"net/http"
	"time"

	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ArchiveController struct {
	Log            *zap.Logger
	ArchiveUsecase ArchiveUsecase
}

func NewArchiveController(log *zap.Logger, archiveUsecase ArchiveUsecase) *ArchiveController {
	return &ArchiveController{
		Log:            log,
		ArchiveUsecase: archiveUsecase,
	}
}

func (ctrl *ArchiveController) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ArchiveUsecase.ListMessages(ctx, r.URL.Query().Get("path"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ArchiveListSuccess, response)
}
