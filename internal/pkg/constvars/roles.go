package constvars

// Role names as carried by the upstream auth token's role claim.
const (
	RoleUser    = "User"
	RoleDoctor  = "Doctor"
	RoleStaff   = "Staff"
	RoleManager = "Manager"
)

// Client-side routes the gateway hands back for navigation decisions.
const (
	RoutePatientDashboard = "/DashboardPartient"
	RouteDoctorDashboard  = "/DashboardDoctor"
	RouteStaffArea        = "/staff"
	RouteManagerArea      = "/manager"
	RoutePublicLanding    = "/learnAboutEmo"
)
