package nav

import "coachpad/pkg/coachpad/session"

// Reserved action tags. These are consumed by the app loop itself (back
// interception, logout confirmation, quit) and never reach an action table.
const (
	ActionBack   = "back"
	ActionDrawer = "drawer"
	ActionLogout = "logout"
	ActionQuit   = "quit"
)

// Action tags shared by every role.
const (
	ActionOpenDashboard     = "open-dashboard"
	ActionOpenSettings      = "open-settings"
	ActionOpenNotifications = "open-notifications"
	ActionOpenProfile       = "open-profile"
)

// Role-specific action tags.
const (
	ActionStartClass     = "start-class"
	ActionTakeAttendance = "take-attendance"
	ActionViewSchedule   = "view-schedule"
	ActionMessageParents = "message-parents"

	ActionJoinClass       = "join-class"
	ActionViewAssignments = "view-assignments"
	ActionMessageTeacher  = "message-teacher"

	ActionViewProgress   = "view-progress"
	ActionViewAttendance = "view-attendance"

	ActionManageUsers   = "manage-users"
	ActionViewReports   = "view-reports"
	ActionDesignGallery = "design-gallery"
)

// Target is one edge in an action table: the route to transition to and any
// params to carry along.
type Target struct {
	Route  Route
	Params Params
}

// ActionTable is the closed mapping from a role's semantic action tags to
// route transitions. Unknown tags resolve to the role's own dashboard, a
// stay-put default rather than an error.
type ActionTable map[string]Target

// Resolve looks up tag, falling back to the stay-put target.
func (t ActionTable) Resolve(tag string, fallback Route) Target {
	if target, ok := t[tag]; ok {
		return target
	}
	return Target{Route: fallback}
}

// ActionsFor builds the action table for a role. The tables are finite by
// construction; adding an edge means adding an entry here, not another
// conditional somewhere in a screen body.
func ActionsFor(role session.Role) ActionTable {
	table := ActionTable{
		ActionOpenDashboard:     {Route: DashboardFor(role)},
		ActionOpenSettings:      {Route: RouteSettings},
		ActionOpenNotifications: {Route: RouteNotifications},
		ActionOpenProfile:       {Route: RouteProfile},
	}

	switch role {
	case session.RoleTeacher:
		table[ActionStartClass] = Target{Route: RouteClassroom}
		table[ActionTakeAttendance] = Target{Route: RouteAttendance}
		table[ActionViewSchedule] = Target{Route: RouteSchedule}
		table[ActionMessageParents] = Target{Route: RouteMessages}
	case session.RoleStudent:
		table[ActionJoinClass] = Target{Route: RouteClassroom}
		table[ActionViewAssignments] = Target{Route: RouteAssignments}
		table[ActionViewSchedule] = Target{Route: RouteSchedule}
		table[ActionMessageTeacher] = Target{Route: RouteMessages}
	case session.RoleParent:
		table[ActionViewProgress] = Target{Route: RouteProgress}
		table[ActionViewAttendance] = Target{Route: RouteAttendance}
		table[ActionMessageTeacher] = Target{Route: RouteMessages}
	case session.RoleAdmin:
		table[ActionManageUsers] = Target{Route: RouteUserManagement}
		table[ActionViewReports] = Target{Route: RouteReports}
		table[ActionDesignGallery] = Target{Route: RouteDesignGallery}
	}

	return table
}

// Dispatch applies a screen outcome to the controller. Precedence: a user
// swap wins (login), then an explicit route, then an action tag resolved
// through the current role's table. Reserved tags and empty outcomes are
// no-ops here; the app loop deals with those before calling Dispatch.
func Dispatch(c *Controller, out Outcome) {
	if out.User != nil {
		c.Login(out.User)
		return
	}

	if out.Route != RouteNone {
		c.Navigate(out.Route, out.Params)
		return
	}

	switch out.Action {
	case "", ActionBack, ActionDrawer, ActionLogout, ActionQuit:
		return
	}

	var role session.Role
	if u := c.Session().User; u != nil {
		role = u.Role
	}

	target := ActionsFor(role).Resolve(out.Action, DashboardFor(role))
	params := target.Params.merged(out.Params)
	c.Navigate(target.Route, params)
}
