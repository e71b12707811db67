package navigation

import (
	"context"
	"strings"

	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/constvars"
)

type navigationUsecase struct{}

func NewNavigationUsecase() NavigationUsecase {
	return &navigationUsecase{}
}

// GetNavigation composes the shell for a role and route. The footer is
// hidden inside the staff and manager areas.
func (uc *navigationUsecase) GetNavigation(_ context.Context, role, activePath string) (*models.NavigationShell, error) {
	shell := &models.NavigationShell{
		Role:       role,
		ActivePath: activePath,
		ShowFooter: true,
	}

	switch role {
	case constvars.RoleManager:
		shell.Sidebar = managerSidebar()
		shell.ShowFooter = false
	case constvars.RoleStaff:
		shell.Header = staffHeader()
		shell.ShowFooter = false
	default:
		shell.Header = publicHeader()
	}

	if strings.HasPrefix(activePath, constvars.RouteStaffArea) || strings.HasPrefix(activePath, constvars.RouteManagerArea) {
		shell.ShowFooter = false
	}

	return shell, nil
}
