package navigation

import (
	"strings"

	"emoease-service/internal/app/models"
)

// managerSidebar is the left sidebar of the manager area. Paths are relative
// to the manager route prefix.
func managerSidebar() []models.MenuItem {
	return []models.MenuItem{
		{ID: 0, Text: "Dashboard", Path: "dashboard", Icon: "chart"},
		{ID: 1, Text: "Users", Path: "viewCustomer", Icon: "user-list"},
		{ID: 3, Text: "Doctor", Path: "doctor", Icon: "user-doctor", SubMenu: []models.SubMenuItem{
			{Text: "List doctor", Path: "viewDoctor"},
			{Text: "Add doctor", Path: "addDoctor"},
		}},
		{ID: 4, Text: "Service Packages", Path: "promotion", Icon: "gift", SubMenu: []models.SubMenuItem{
			{Text: "List Packages", Path: "managePackages"},
			{Text: "Add Packages", Path: "addPackages"},
		}},
		{ID: 5, Text: "Pending Replies", Path: "view-message", Icon: "feedback"},
	}
}

// staffHeader is the staff area top navigation.
func staffHeader() []models.MenuItem {
	return []models.MenuItem{
		{ID: 0, Text: "Home", Path: "home"},
		{ID: 1, Text: "Dashboard", Path: "dashboard"},
		{ID: 2, Text: "List Of Customer", Path: "customer"},
		{ID: 3, Text: "Message", Path: "message"},
		{ID: 4, Text: "List Of Doctor", Path: "doctor"},
		{ID: 5, Text: "Blog", Path: "blog"},
		{ID: 6, Text: "Regit", Path: "regit"},
	}
}

// publicHeader is shown to patients and unauthenticated visitors.
func publicHeader() []models.MenuItem {
	return []models.MenuItem{
		{ID: 0, Text: "Home", Path: "home"},
		{ID: 1, Text: "About EmoEase", Path: "learnAboutEmo"},
		{ID: 2, Text: "Test", Path: "test"},
		{ID: 3, Text: "Booking", Path: "booking"},
		{ID: 4, Text: "Blog", Path: "blog"},
	}
}

// MenuState tracks which submenu is expanded. Opening one closes its
// siblings; there is never more than one open.
type MenuState struct {
	Items  []models.MenuItem
	OpenID int
}

func NewMenuState(items []models.MenuItem) *MenuState {
	return &MenuState{Items: items, OpenID: -1}
}

// Toggle opens the submenu with the given id, closing whichever was open.
// Toggling the open one closes it.
func (s *MenuState) Toggle(id int) {
	if s.OpenID == id {
		s.OpenID = -1
		return
	}
	for _, item := range s.Items {
		if item.ID == id && len(item.SubMenu) > 0 {
			s.OpenID = id
			return
		}
	}
	s.OpenID = -1
}

// ActivateByPath returns the id of the item matching the current route, by
// its own path or one of its submenu paths. Matching is case-insensitive.
func (s *MenuState) ActivateByPath(path string) int {
	path = strings.ToLower(strings.Trim(path, "/"))
	for _, item := range s.Items {
		if strings.ToLower(item.Path) == path {
			return item.ID
		}
		for _, sub := range item.SubMenu {
			if strings.ToLower(sub.Path) == path {
				return item.ID
			}
		}
	}
	return -1
}
