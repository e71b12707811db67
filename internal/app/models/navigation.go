package models

// MenuItem is one entry of a role-keyed navigation menu. Items with a
// non-empty SubMenu expand in place; at most one submenu is open at a time.
type MenuItem struct {
	ID      int           `json:"id"`
	Text    string        `json:"text"`
	Path    string        `json:"path"`
	Icon    string        `json:"icon"`
	SubMenu []SubMenuItem `json:"sub_menu,omitempty"`
}

type SubMenuItem struct {
	Text string `json:"text"`
	Path string `json:"path"`
}

// NavigationShell is the composed header/sidebar/footer for a role and route.
type NavigationShell struct {
	Role       string     `json:"role"`
	ActivePath string     `json:"active_path"`
	Header     []MenuItem `json:"header"`
	Sidebar    []MenuItem `json:"sidebar"`
	ShowFooter bool       `json:"show_footer"`
}
