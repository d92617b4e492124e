package nav

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachpad/pkg/coachpad/session"
)

func demoUser(role session.Role) *session.User {
	return &session.User{
		ID:        uuid.New(),
		FirstName: "Demo",
		LastName:  role.DisplayName(),
		Email:     "demo@example.com",
		Role:      role,
		Verified:  true,
	}
}

func TestNewControllerStartsAtWelcome(t *testing.T) {
	c := NewController(nil, nil)

	st := c.State()
	assert.Equal(t, RouteWelcome, st.CurrentRoute)
	assert.Equal(t, RouteNone, st.PreviousRoute)
	assert.False(t, st.Authenticated)
	assert.False(t, st.DrawerOpen)
	assert.Empty(t, st.Params)
}

func TestNewControllerRestoredSessionSkipsWelcome(t *testing.T) {
	c := NewController(demoUser(session.RoleParent), nil)

	st := c.State()
	assert.Equal(t, RouteParentDashboard, st.CurrentRoute)
	assert.True(t, st.Authenticated)
}

func TestNavigateRecordsPreviousRoute(t *testing.T) {
	c := NewController(nil, nil)

	// welcome -> login carrying a role selection.
	c.Navigate(RouteLogin, Params{"selectedRole": session.RoleTeacher})

	st := c.State()
	assert.Equal(t, RouteLogin, st.CurrentRoute)
	assert.Equal(t, RouteWelcome, st.PreviousRoute)
	assert.Equal(t, session.RoleTeacher, st.Params["selectedRole"])

	// History is depth one: a second hop forgets welcome.
	c.Navigate(RouteRegister, nil)
	st = c.State()
	assert.Equal(t, RouteRegister, st.CurrentRoute)
	assert.Equal(t, RouteLogin, st.PreviousRoute)
}

func TestNavigateMergesParams(t *testing.T) {
	c := NewController(nil, nil)

	c.Navigate(RouteLogin, Params{"selectedRole": session.RoleStudent, "hint": "a"})
	c.Navigate(RouteRegister, Params{"hint": "b"})

	st := c.State()
	assert.Equal(t, session.RoleStudent, st.Params["selectedRole"])
	assert.Equal(t, "b", st.Params["hint"])
}

func TestNavigateClosesDrawer(t *testing.T) {
	c := NewController(demoUser(session.RoleTeacher), nil)

	c.OpenDrawer()
	require.True(t, c.DrawerOpen())

	c.Navigate(RouteSettings, nil)
	assert.False(t, c.DrawerOpen())
}

func TestAuthenticatedAlwaysDerivedFromUser(t *testing.T) {
	c := NewController(nil, nil)

	check := func() {
		st := c.State()
		assert.Equal(t, st.User != nil, st.Authenticated)
	}

	check()
	c.Navigate(RouteLogin, nil)
	check()
	c.Login(demoUser(session.RoleStudent))
	check()
	c.Navigate(RouteSettings, nil)
	check()
	c.Logout()
	check()
}

func TestLoginLandsOnRoleDashboard(t *testing.T) {
	tests := []struct {
		role session.Role
		want Route
	}{
		{session.RoleStudent, RouteStudentDashboard},
		{session.RoleTeacher, RouteTeacherDashboard},
		{session.RoleParent, RouteParentDashboard},
		{session.RoleAdmin, RouteAdminDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			c := NewController(nil, nil)
			c.Login(demoUser(tt.role))

			st := c.State()
			assert.Equal(t, tt.want, st.CurrentRoute)
			assert.True(t, st.Authenticated)
		})
	}
}

func TestLogoutClearsSessionAndReturnsToWelcome(t *testing.T) {
	c := NewController(nil, nil)
	c.NavigateWithUser(RouteTeacherDashboard, nil, demoUser(session.RoleTeacher))
	c.OpenDrawer()

	c.Logout()

	st := c.State()
	assert.Nil(t, st.User)
	assert.False(t, st.Authenticated)
	assert.Equal(t, RouteWelcome, st.CurrentRoute)
	assert.False(t, st.DrawerOpen)
}

func TestCloseDrawerIdempotent(t *testing.T) {
	c := NewController(nil, nil)
	before := c.State()

	c.CloseDrawer()
	after := c.State()

	assert.Equal(t, before.CurrentRoute, after.CurrentRoute)
	assert.Equal(t, before.PreviousRoute, after.PreviousRoute)
	assert.Equal(t, before.DrawerOpen, after.DrawerOpen)
}

func TestStateParamsAreACopy(t *testing.T) {
	c := NewController(nil, nil)
	c.Navigate(RouteLogin, Params{"k": "v"})

	st := c.State()
	st.Params["k"] = "mutated"

	assert.Equal(t, "v", c.State().Params["k"])
}

func TestDashboardForUnknownRole(t *testing.T) {
	assert.Equal(t, RouteWelcome, DashboardFor(session.Role("")))
}

func TestRouteStrings(t *testing.T) {
	assert.Equal(t, "welcome", RouteWelcome.String())
	assert.Equal(t, "teacher-dashboard", RouteTeacherDashboard.String())
	assert.Equal(t, "none", RouteNone.String())
	assert.Equal(t, "unknown", Route(999).String())

	assert.True(t, RouteDesignGallery.Known())
	assert.False(t, RouteNone.Known())
	assert.False(t, Route(999).Known())
}
