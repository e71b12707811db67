package navigation

import (
	"net/http"

	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type NavigationController struct {
	Log               *zap.Logger
	NavigationUsecase NavigationUsecase
}

func NewNavigationController(log *zap.Logger, navigationUsecase NavigationUsecase) *NavigationController {
	return &NavigationController{
		Log:               log,
		NavigationUsecase: navigationUsecase,
	}
}

func (ctrl *NavigationController) GetNavigation(w http.ResponseWriter, r *http.Request) {
	role := ""
	if session := utils.SessionFromContext(r.Context()); session != nil {
		role = session.Role
	}

	response, err := ctrl.NavigationUsecase.GetNavigation(r.Context(), role, r.URL.Query().Get("path"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NavigationGetSuccess, response)
}
