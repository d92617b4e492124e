package nav_test

import (
	"fmt"

	"github.com/google/uuid"

	"coachpad/pkg/coachpad/nav"
	"coachpad/pkg/coachpad/session"
)

// Example demonstrates a full sign-in flow: role selection on the welcome
// screen, login, an action-table transition, and back navigation.
func Example() {
	ctrl := nav.NewController(nil, nil)

	reg := nav.NewRegistry()

	reg.Register(nav.RouteWelcome, func(st nav.State) (nav.Outcome, error) {
		fmt.Println("welcome: choosing teacher")
		return nav.Outcome{
			Route:  nav.RouteLogin,
			Params: nav.Params{"selectedRole": session.RoleTeacher},
		}, nil
	})

	reg.Register(nav.RouteLogin, func(st nav.State) (nav.Outcome, error) {
		role := st.Params["selectedRole"].(session.Role)
		fmt.Printf("login: signing in as %s\n", role)
		return nav.Outcome{User: &session.User{
			ID:        uuid.New(),
			FirstName: "Maria",
			LastName:  "Okafor",
			Role:      role,
		}}, nil
	})

	reg.Register(nav.RouteTeacherDashboard, func(st nav.State) (nav.Outcome, error) {
		fmt.Printf("dashboard: hello %s\n", st.User.FullName())
		return nav.Outcome{Action: nav.ActionTakeAttendance}, nil
	})

	// Drive three screens' worth of outcomes through the dispatcher.
	for i := 0; i < 3; i++ {
		st := ctrl.State()
		out, err := reg.Screen(st.CurrentRoute)(st)
		if err != nil {
			return
		}
		nav.Dispatch(ctrl, out)
	}

	fmt.Printf("now at: %s\n", ctrl.State().CurrentRoute)

	// Output:
	// welcome: choosing teacher
	// login: signing in as teacher
	// dashboard: hello Maria Okafor
	// now at: attendance
}

// Example_backNavigation demonstrates the interceptor's priority order:
// drawer first, then the recorded previous route, then unhandled.
func Example_backNavigation() {
	ctrl := nav.NewController(nil, nil)
	ctrl.NavigateWithUser(nav.RouteTeacherDashboard, nil, &session.User{
		ID:   uuid.New(),
		Role: session.RoleTeacher,
	})
	ctrl.OpenDrawer()

	back := nav.NewBackInterceptor(ctrl)

	fmt.Println("handled:", back.Handle(), "drawer:", ctrl.DrawerOpen(), "route:", ctrl.State().CurrentRoute)
	fmt.Println("handled:", back.Handle(), "route:", ctrl.State().CurrentRoute)
	fmt.Println("handled:", back.Handle(), "route:", ctrl.State().CurrentRoute)

	// Output:
	// handled: true drawer: false route: teacher-dashboard
	// handled: true route: welcome
	// handled: false route: welcome
}
