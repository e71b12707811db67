package navigation

import (
	"context"

	"emoease-service/internal/app/models"
)

type NavigationUsecase interface {
	GetNavigation(ctx context.Context, role, activePath string) (*models.NavigationShell, error)
}
