package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachpad/pkg/coachpad/session"
)

func stubScreen(action string) ScreenFunc {
	return func(State) (Outcome, error) {
		return Outcome{Action: action}, nil
	}
}

func TestRegistryResolvesRegisteredScreen(t *testing.T) {
	reg := NewRegistry()
	reg.Register(RouteWelcome, stubScreen("w")).
		Register(RouteSettings, stubScreen("s"))

	out, err := reg.Screen(RouteSettings)(State{})
	require.NoError(t, err)
	assert.Equal(t, "s", out.Action)

	assert.True(t, reg.Registered(RouteWelcome))
	assert.False(t, reg.Registered(RouteProfile))
}

func TestRegistryUnknownRouteFallsThroughToNotFound(t *testing.T) {
	reg := NewRegistry()
	reg.Register(RouteWelcome, stubScreen("w"))
	reg.SetNotFound(stubScreen("not-found"))

	// A route value outside the closed set must not panic and must resolve
	// to the not-found screen.
	out, err := reg.Screen(Route(999))(State{})
	require.NoError(t, err)
	assert.Equal(t, "not-found", out.Action)

	// Same for a known route that simply has no screen registered.
	out, err = reg.Screen(RouteReports)(State{})
	require.NoError(t, err)
	assert.Equal(t, "not-found", out.Action)
}

func TestRegistryBuiltinFallbackReturnsToWelcome(t *testing.T) {
	reg := NewRegistry()

	out, err := reg.Screen(Route(999))(State{})
	require.NoError(t, err)
	assert.Equal(t, RouteWelcome, out.Route)
}

func TestActionTableResolveStayPutDefault(t *testing.T) {
	table := ActionsFor(session.RoleTeacher)

	assert.Equal(t, RouteClassroom, table.Resolve(ActionStartClass, RouteTeacherDashboard).Route)
	assert.Equal(t, RouteAttendance, table.Resolve(ActionTakeAttendance, RouteTeacherDashboard).Route)

	// Unrecognized tags stay on the role's own dashboard.
	assert.Equal(t, RouteTeacherDashboard, table.Resolve("no-such-action", RouteTeacherDashboard).Route)
}

func TestActionTablesAreRoleScoped(t *testing.T) {
	student := ActionsFor(session.RoleStudent)
	admin := ActionsFor(session.RoleAdmin)

	_, studentCanManage := student[ActionManageUsers]
	assert.False(t, studentCanManage)

	_, adminCanManage := admin[ActionManageUsers]
	assert.True(t, adminCanManage)

	// Common actions exist for everyone.
	for _, role := range session.Roles {
		table := ActionsFor(role)
		assert.Equal(t, RouteSettings, table.Resolve(ActionOpenSettings, DashboardFor(role)).Route)
		assert.Equal(t, DashboardFor(role), table.Resolve(ActionOpenDashboard, DashboardFor(role)).Route)
	}
}

func TestDispatchPrecedence(t *testing.T) {
	t.Run("user swap wins", func(t *testing.T) {
		c := NewController(nil, nil)
		Dispatch(c, Outcome{User: demoUser(session.RoleAdmin), Route: RouteSettings})

		st := c.State()
		assert.Equal(t, RouteAdminDashboard, st.CurrentRoute)
		assert.True(t, st.Authenticated)
	})

	t.Run("explicit route", func(t *testing.T) {
		c := NewController(nil, nil)
		Dispatch(c, Outcome{Route: RouteLogin, Params: Params{"selectedRole": session.RoleParent}})

		st := c.State()
		assert.Equal(t, RouteLogin, st.CurrentRoute)
		assert.Equal(t, session.RoleParent, st.Params["selectedRole"])
	})

	t.Run("action tag through role table", func(t *testing.T) {
		c := NewController(demoUser(session.RoleTeacher), nil)
		Dispatch(c, Outcome{Action: ActionTakeAttendance})

		assert.Equal(t, RouteAttendance, c.State().CurrentRoute)
	})

	t.Run("unknown tag stays on dashboard", func(t *testing.T) {
		c := NewController(demoUser(session.RoleStudent), nil)
		c.Navigate(RouteSettings, nil)

		Dispatch(c, Outcome{Action: "made-up-action"})

		assert.Equal(t, RouteStudentDashboard, c.State().CurrentRoute)
	})

	t.Run("reserved and empty tags are no-ops", func(t *testing.T) {
		c := NewController(demoUser(session.RoleStudent), nil)
		before := c.State().CurrentRoute

		Dispatch(c, Outcome{})
		Dispatch(c, Outcome{Action: ActionBack})
		Dispatch(c, Outcome{Action: ActionLogout})
		Dispatch(c, Outcome{Action: ActionQuit})

		assert.Equal(t, before, c.State().CurrentRoute)
	})
}
