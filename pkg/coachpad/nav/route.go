package nav

import "coachpad/pkg/coachpad/session"

// Route identifies which screen body to render. The set is closed; values
// outside it are tolerated and resolve to the registry's not-found screen.
type Route int

const (
	// RouteNone is the zero value: no route. It marks an absent previous
	// route and an Outcome with no explicit target.
	RouteNone Route = iota

	RouteWelcome
	RouteLogin
	RouteRegister
	RouteStudentDashboard
	RouteTeacherDashboard
	RouteParentDashboard
	RouteAdminDashboard
	RouteSettings
	RouteNotifications
	RouteProfile
	RouteClassroom
	RouteAttendance
	RouteAssignments
	RouteSchedule
	RouteMessages
	RouteProgress
	RouteUserManagement
	RouteReports
	RouteDesignGallery

	routeCount
)

// Known reports whether r is a member of the closed route set.
func (r Route) Known() bool {
	return r > RouteNone && r < routeCount
}

// String returns the route's kebab-case tag.
func (r Route) String() string {
	switch r {
	case RouteWelcome:
		return "welcome"
	case RouteLogin:
		return "login"
	case RouteRegister:
		return "register"
	case RouteStudentDashboard:
		return "student-dashboard"
	case RouteTeacherDashboard:
		return "teacher-dashboard"
	case RouteParentDashboard:
		return "parent-dashboard"
	case RouteAdminDashboard:
		return "admin-dashboard"
	case RouteSettings:
		return "settings"
	case RouteNotifications:
		return "notifications"
	case RouteProfile:
		return "profile"
	case RouteClassroom:
		return "classroom"
	case RouteAttendance:
		return "attendance"
	case RouteAssignments:
		return "assignments"
	case RouteSchedule:
		return "schedule"
	case RouteMessages:
		return "messages"
	case RouteProgress:
		return "progress"
	case RouteUserManagement:
		return "user-management"
	case RouteReports:
		return "reports"
	case RouteDesignGallery:
		return "design-gallery"
	case RouteNone:
		return "none"
	default:
		return "unknown"
	}
}

// DashboardFor returns the dashboard route for a role. Unknown roles land on
// the welcome screen rather than a dashboard they have no claim to.
func DashboardFor(role session.Role) Route {
	switch role {
	case session.RoleStudent:
		return RouteStudentDashboard
	case session.RoleTeacher:
		return RouteTeacherDashboard
	case session.RoleParent:
		return RouteParentDashboard
	case session.RoleAdmin:
		return RouteAdminDashboard
	default:
		return RouteWelcome
	}
}

// Params carries opaque values to the target screen. They are passed through
// unvalidated; the screen decides what to do with them.
type Params map[string]any

// merged returns a copy of p with overlay applied on top. Either side may be
// nil. The receiver is never mutated.
func (p Params) merged(overlay Params) Params {
	if len(p) == 0 && len(overlay) == 0 {
		return Params{}
	}
	out := make(Params, len(p)+len(overlay))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// clone returns a shallow copy so callers cannot mutate stored state.
func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
