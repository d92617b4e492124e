package coachpad

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachpad/pkg/coachpad/layout"
	"coachpad/pkg/coachpad/nav"
	"coachpad/pkg/coachpad/session"
)

func TestAppRunLoginThenQuit(t *testing.T) {
	ctrl := nav.NewController(nil, nil)
	registry := nav.NewRegistry()

	teacher := &session.User{ID: uuid.New(), FirstName: "Dana", Role: session.RoleTeacher}

	registry.Register(nav.RouteWelcome, func(st nav.State) (nav.Outcome, error) {
		return nav.Outcome{User: teacher}, nil
	})
	registry.Register(nav.RouteTeacherDashboard, func(st nav.State) (nav.Outcome, error) {
		assert.True(t, st.Authenticated)
		return nav.Outcome{Action: nav.ActionQuit}, nil
	})

	app := NewApp(ctrl, registry, layout.Breakpoints{}, nil)
	require.NoError(t, app.Run())

	assert.Equal(t, nav.RouteTeacherDashboard, ctrl.State().CurrentRoute)
}

func TestAppRunBackReturnsToPreviousRoute(t *testing.T) {
	teacher := &session.User{ID: uuid.New(), Role: session.RoleTeacher}
	ctrl := nav.NewController(teacher, nil)
	ctrl.Navigate(nav.RouteSettings, nil)

	registry := nav.NewRegistry()
	registry.Register(nav.RouteSettings, func(st nav.State) (nav.Outcome, error) {
		return nav.Outcome{Action: nav.ActionBack}, nil
	})
	registry.Register(nav.RouteTeacherDashboard, func(st nav.State) (nav.Outcome, error) {
		return nav.Outcome{Action: nav.ActionQuit}, nil
	})

	app := NewApp(ctrl, registry, layout.Breakpoints{}, nil)
	require.NoError(t, app.Run())

	assert.Equal(t, nav.RouteTeacherDashboard, ctrl.State().CurrentRoute)
}

func TestAppRunUnhandledBackExits(t *testing.T) {
	ctrl := nav.NewController(nil, nil)
	registry := nav.NewRegistry()

	calls := 0
	registry.Register(nav.RouteWelcome, func(st nav.State) (nav.Outcome, error) {
		calls++
		return nav.Outcome{}, ErrCancelled
	})

	app := NewApp(ctrl, registry, layout.Breakpoints{}, nil)
	require.NoError(t, app.Run())

	// The cancelled welcome screen becomes a back event with nothing to pop,
	// so the loop exits instead of re-running the screen.
	assert.Equal(t, 1, calls)
}

func TestAppRunScreenErrorAborts(t *testing.T) {
	ctrl := nav.NewController(nil, nil)
	registry := nav.NewRegistry()

	boom := errors.New("renderer lost")
	registry.Register(nav.RouteWelcome, func(st nav.State) (nav.Outcome, error) {
		return nav.Outcome{}, NewInfrastructureError("welcome", boom)
	})

	app := NewApp(ctrl, registry, layout.Breakpoints{}, nil)
	err := app.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestAppRunQuitErrorIsCleanExit(t *testing.T) {
	ctrl := nav.NewController(nil, nil)
	registry := nav.NewRegistry()

	registry.Register(nav.RouteWelcome, func(st nav.State) (nav.Outcome, error) {
		return nav.Outcome{}, ErrQuit
	})

	app := NewApp(ctrl, registry, layout.Breakpoints{}, nil)
	require.NoError(t, app.Run())
}

func TestAppRunDispatchesActionTags(t *testing.T) {
	teacher := &session.User{ID: uuid.New(), Role: session.RoleTeacher}
	ctrl := nav.NewController(teacher, nil)

	registry := nav.NewRegistry()
	registry.Register(nav.RouteTeacherDashboard, func(st nav.State) (nav.Outcome, error) {
		return nav.Outcome{Action: nav.ActionTakeAttendance}, nil
	})
	registry.Register(nav.RouteAttendance, func(st nav.State) (nav.Outcome, error) {
		return nav.Outcome{Action: nav.ActionQuit}, nil
	})

	app := NewApp(ctrl, registry, layout.Breakpoints{}, nil)
	require.NoError(t, app.Run())

	st := ctrl.State()
	assert.Equal(t, nav.RouteAttendance, st.CurrentRoute)
	assert.Equal(t, nav.RouteTeacherDashboard, st.PreviousRoute)
}
