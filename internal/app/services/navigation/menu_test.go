package navigation

import (
	"context"
	"testing"

	"emoease-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestMenuState_ToggleIsMutuallyExclusive(t *testing.T) {
	state := NewMenuState(managerSidebar())
	assert.Equal(t, -1, state.OpenID)

	state.Toggle(3)
	assert.Equal(t, 3, state.OpenID)

	// Opening a sibling closes the previous one.
	state.Toggle(4)
	assert.Equal(t, 4, state.OpenID)

	// Toggling the open one closes it.
	state.Toggle(4)
	assert.Equal(t, -1, state.OpenID)
}

func TestMenuState_ToggleIgnoresItemsWithoutSubmenu(t *testing.T) {
	state := NewMenuState(managerSidebar())
	state.Toggle(3)

	state.Toggle(0)
	assert.Equal(t, -1, state.OpenID)
}

func TestMenuState_ActivateByPath(t *testing.T) {
	state := NewMenuState(managerSidebar())

	assert.Equal(t, 0, state.ActivateByPath("dashboard"))
	assert.Equal(t, 0, state.ActivateByPath("/Dashboard/"))
	assert.Equal(t, 3, state.ActivateByPath("viewdoctor"))
	assert.Equal(t, 4, state.ActivateByPath("addPackages"))
	assert.Equal(t, -1, state.ActivateByPath("nowhere"))
}

func TestNavigationUsecase_ComposesShellByRole(t *testing.T) {
	uc := NewNavigationUsecase()

	manager, err := uc.GetNavigation(context.Background(), constvars.RoleManager, "/manager/dashboard")
	assert.NoError(t, err)
	assert.NotEmpty(t, manager.Sidebar)
	assert.Empty(t, manager.Header)
	assert.False(t, manager.ShowFooter)

	staff, err := uc.GetNavigation(context.Background(), constvars.RoleStaff, "/staff/home")
	assert.NoError(t, err)
	assert.NotEmpty(t, staff.Header)
	assert.Empty(t, staff.Sidebar)
	assert.False(t, staff.ShowFooter)

	visitor, err := uc.GetNavigation(context.Background(), "", "/learnAboutEmo")
	assert.NoError(t, err)
	assert.NotEmpty(t, visitor.Header)
	assert.True(t, visitor.ShowFooter)

	patient, err := uc.GetNavigation(context.Background(), constvars.RoleUser, "/DashboardPartient")
	assert.NoError(t, err)
	assert.True(t, patient.ShowFooter)
}
