package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"coachpad/pkg/coachpad"
	"coachpad/pkg/coachpad/constants"
	"coachpad/pkg/coachpad/layout"
	"coachpad/pkg/coachpad/locale"
	"coachpad/pkg/coachpad/nav"
	"coachpad/pkg/coachpad/session"
)

// Action tags local to the welcome flow; resolved by the welcome screen
// itself, never through a role table.
const (
	actionSignIn   = "sign-in"
	actionRegister = "register"
)

// actionLabel maps role-table action tags to their catalog entries.
var actionLabel = map[string]string{
	nav.ActionStartClass:      "ActionStartClass",
	nav.ActionTakeAttendance:  "ActionTakeAttendance",
	nav.ActionViewSchedule:    "ActionViewSchedule",
	nav.ActionMessageParents:  "ActionMessageParents",
	nav.ActionJoinClass:       "ActionJoinClass",
	nav.ActionViewAssignments: "ActionViewAssignments",
	nav.ActionMessageTeacher:  "ActionMessageTeacher",
	nav.ActionViewProgress:    "ActionViewProgress",
	nav.ActionViewAttendance:  "ActionViewAttendance",
	nav.ActionManageUsers:     "ActionManageUsers",
	nav.ActionViewReports:     "ActionViewReports",
	nav.ActionDesignGallery:   "ActionDesignGallery",
}

type screens struct {
	app     *coachpad.App
	auth    session.Authenticator
	timeout time.Duration
	iconDir string
}

// register wires every route into the registry. Routes without a bespoke
// screen get a plain content panel so the map stays total by construction.
func (s *screens) register(reg *nav.Registry) {
	reg.Register(nav.RouteWelcome, s.welcome)
	reg.Register(nav.RouteLogin, s.login)
	reg.Register(nav.RouteRegister, s.registerAccount)

	reg.Register(nav.RouteStudentDashboard, s.dashboard)
	reg.Register(nav.RouteTeacherDashboard, s.dashboard)
	reg.Register(nav.RouteParentDashboard, s.dashboard)
	reg.Register(nav.RouteAdminDashboard, s.dashboard)

	reg.Register(nav.RouteSettings, s.settings)
	reg.Register(nav.RouteNotifications, s.notifications)
	reg.Register(nav.RouteProfile, s.profile)

	reg.Register(nav.RouteClassroom, s.content("Classroom", constants.IconSchool))
	reg.Register(nav.RouteAttendance, s.content("Attendance", constants.IconClipboard))
	reg.Register(nav.RouteAssignments, s.content("Assignments", constants.IconBookOpen))
	reg.Register(nav.RouteSchedule, s.content("Schedule", constants.IconCalendar))
	reg.Register(nav.RouteMessages, s.content("Messages", constants.IconMessage))
	reg.Register(nav.RouteProgress, s.content("Progress", constants.IconChart))
	reg.Register(nav.RouteUserManagement, s.content("User management", constants.IconAccountGroup))
	reg.Register(nav.RouteReports, s.content("Reports", constants.IconChart))
	reg.Register(nav.RouteDesignGallery, s.gallery)

	reg.SetNotFound(s.notFound)
}

func (s *screens) mode() layout.Mode { return s.app.Mode() }

func (s *screens) welcome(st nav.State) (nav.Outcome, error) {
	res, err := coachpad.Panel(st, coachpad.PanelSettings{
		Title: locale.T("WelcomeTitle"),
		Mode:  s.mode(),
		Sections: []coachpad.PanelSection{
			{Rows: []coachpad.PanelRow{{Icon: constants.IconSchool, Label: locale.T("WelcomeTagline")}}},
		},
		Actions: []coachpad.PanelAction{
			{Label: locale.T("LoginSubmit"), Action: actionSignIn},
			{Label: locale.T("RegisterTitle"), Action: actionRegister},
			{Label: locale.T("QuitLabel"), Action: nav.ActionQuit},
		},
	})
	if err != nil {
		return nav.Outcome{}, err
	}

	switch res.Action {
	case actionSignIn:
		return nav.Outcome{Route: nav.RouteLogin}, nil
	case actionRegister:
		return nav.Outcome{Route: nav.RouteRegister}, nil
	}
	return nav.Outcome{Action: res.Action}, nil
}

func (s *screens) login(st nav.State) (nav.Outcome, error) {
	email, err := coachpad.TextField(st, coachpad.TextFieldSettings{Title: locale.T("LoginEmail")})
	if err != nil {
		return nav.Outcome{}, err
	}

	password, err := coachpad.TextField(st, coachpad.TextFieldSettings{Title: locale.T("LoginPassword"), Masked: true})
	if err != nil {
		return nav.Outcome{}, err
	}

	role, err := pickRole()
	if err != nil {
		return nav.Outcome{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	user, loginErr := s.auth.Login(ctx, email, password, role)
	if loginErr != nil {
		if errors.Is(loginErr, session.ErrRejected) || errors.Is(loginErr, context.DeadlineExceeded) {
			if alertErr := coachpad.Alert(locale.T("LoginFailed")); alertErr != nil && coachpad.IsQuit(alertErr) {
				return nav.Outcome{Action: nav.ActionQuit}, nil
			}
			// Stay on the login screen for another attempt.
			return nav.Outcome{}, nil
		}
		return nav.Outcome{}, loginErr
	}

	return nav.Outcome{User: user}, nil
}

func (s *screens) registerAccount(st nav.State) (nav.Outcome, error) {
	first, err := coachpad.TextField(st, coachpad.TextFieldSettings{Title: locale.T("RegisterFirstName")})
	if err != nil {
		return nav.Outcome{}, err
	}
	last, err := coachpad.TextField(st, coachpad.TextFieldSettings{Title: locale.T("RegisterLastName")})
	if err != nil {
		return nav.Outcome{}, err
	}
	email, err := coachpad.TextField(st, coachpad.TextFieldSettings{Title: locale.T("LoginEmail")})
	if err != nil {
		return nav.Outcome{}, err
	}
	if _, err := coachpad.TextField(st, coachpad.TextFieldSettings{Title: locale.T("LoginPassword"), Masked: true}); err != nil {
		return nav.Outcome{}, err
	}

	role, err := pickRole()
	if err != nil {
		return nav.Outcome{}, err
	}

	// Accounts created on-device start unverified; the backend mails the
	// confirmation link out of band.
	return nav.Outcome{User: &session.User{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  last,
		Email:     email,
		Role:      role,
	}}, nil
}

func pickRole() (session.Role, error) {
	options := make([]coachpad.ConfirmOption, 0, len(session.Roles))
	for _, role := range session.Roles {
		options = append(options, coachpad.ConfirmOption{Label: role.DisplayName(), Value: role})
	}

	res, err := coachpad.Confirm(locale.T("RolePrompt"), options, coachpad.ConfirmSettings{})
	if err != nil {
		return "", err
	}
	return res.Value.(session.Role), nil
}

func (s *screens) dashboard(st nav.State) (nav.Outcome, error) {
	greeting := locale.T("AppName")
	var role session.Role
	if st.User != nil {
		greeting = locale.TData("DashboardGreeting", map[string]any{"Name": st.User.FirstName})
		role = st.User.Role
	}

	var actions []coachpad.PanelAction
	for _, tag := range dashboardActions(role) {
		actions = append(actions, coachpad.PanelAction{Label: locale.T(actionLabel[tag]), Action: tag})
	}

	res, err := coachpad.Panel(st, coachpad.PanelSettings{
		Title: greeting,
		Mode:  s.mode(),
		Sections: []coachpad.PanelSection{
			{
				Title: role.DisplayName(),
				Rows: []coachpad.PanelRow{
					{Icon: constants.IconCalendar, Label: locale.T("ActionViewSchedule"), Value: "3"},
					{Icon: constants.IconBell, Label: locale.T("DrawerNotifications"), Value: "2"},
				},
			},
		},
		Actions: actions,
	})
	if err != nil {
		return nav.Outcome{}, err
	}
	return nav.Outcome{Action: res.Action}, nil
}

// dashboardActions fixes the order of each role's quick actions; the role
// table itself is a map and carries no ordering.
func dashboardActions(role session.Role) []string {
	switch role {
	case session.RoleTeacher:
		return []string{nav.ActionStartClass, nav.ActionTakeAttendance, nav.ActionViewSchedule, nav.ActionMessageParents}
	case session.RoleStudent:
		return []string{nav.ActionJoinClass, nav.ActionViewAssignments, nav.ActionViewSchedule, nav.ActionMessageTeacher}
	case session.RoleParent:
		return []string{nav.ActionViewProgress, nav.ActionViewAttendance, nav.ActionMessageTeacher}
	case session.RoleAdmin:
		return []string{nav.ActionManageUsers, nav.ActionViewReports, nav.ActionDesignGallery}
	}
	return nil
}

func (s *screens) settings(st nav.State) (nav.Outcome, error) {
	return s.panelOutcome(st, coachpad.PanelSettings{
		Title: locale.T("DrawerSettings"),
		Mode:  s.mode(),
		Sections: []coachpad.PanelSection{
			{Rows: []coachpad.PanelRow{
				{Icon: constants.IconPalette, Label: locale.T("ActionDesignGallery")},
				{Icon: constants.IconCog, Label: locale.T("AppName"), Value: version},
			}},
		},
	})
}

func (s *screens) notifications(st nav.State) (nav.Outcome, error) {
	return s.panelOutcome(st, coachpad.PanelSettings{
		Title: locale.T("DrawerNotifications"),
		Mode:  s.mode(),
		Sections: []coachpad.PanelSection{
			{Rows: []coachpad.PanelRow{
				{Icon: constants.IconBell, Label: locale.T("ActionViewSchedule")},
				{Icon: constants.IconMessage, Label: locale.T("ActionMessageTeacher")},
			}},
		},
	})
}

func (s *screens) profile(st nav.State) (nav.Outcome, error) {
	rows := []coachpad.PanelRow{
		{Icon: constants.IconAccount, Label: locale.T("WelcomeTagline")},
	}
	title := locale.T("DrawerProfile")
	if u := st.User; u != nil {
		title = u.FullName()
		verified := ""
		if u.Verified {
			verified = constants.IconCheckDecagram
		}
		rows = []coachpad.PanelRow{
			{Icon: constants.IconAccount, Label: locale.T("LoginEmail"), Value: u.Email},
			{Icon: constants.IconSchool, Label: locale.T("RolePrompt"), Value: u.Role.DisplayName()},
			{Icon: verified, Label: "ID", Value: u.ID.String()},
		}
	}

	return s.panelOutcome(st, coachpad.PanelSettings{
		Title:    title,
		Mode:     s.mode(),
		Sections: []coachpad.PanelSection{{Rows: rows}},
	})
}

// content builds a plain read-only panel screen. The role content screens
// share this shape; real data wiring replaces the placeholder rows as the
// backend endpoints land.
func (s *screens) content(title, icon string) nav.ScreenFunc {
	return func(st nav.State) (nav.Outcome, error) {
		return s.panelOutcome(st, coachpad.PanelSettings{
			Title: title,
			Mode:  s.mode(),
			Sections: []coachpad.PanelSection{
				{Rows: []coachpad.PanelRow{{Icon: icon, Label: title}}},
			},
		})
	}
}

func (s *screens) gallery(st nav.State) (nav.Outcome, error) {
	action, err := coachpad.Gallery(coachpad.GallerySettings{
		Title:   locale.T("ActionDesignGallery"),
		IconDir: s.iconDir,
	})
	if err != nil {
		return nav.Outcome{}, err
	}
	return nav.Outcome{Action: action}, nil
}

func (s *screens) notFound(st nav.State) (nav.Outcome, error) {
	// ActionOpenDashboard resolves to the welcome route for a nil session,
	// so "home" is correct whether or not someone is signed in.
	return s.panelOutcome(st, coachpad.PanelSettings{
		Title: locale.T("NotFoundTitle"),
		Mode:  s.mode(),
		Sections: []coachpad.PanelSection{
			{Rows: []coachpad.PanelRow{{Icon: constants.IconAlert, Label: locale.T("NotFoundBody")}}},
		},
		Actions: []coachpad.PanelAction{
			{Label: locale.T("NotFoundHome"), Action: nav.ActionOpenDashboard},
		},
	})
}

// panelOutcome runs a panel and forwards its action tag unchanged.
func (s *screens) panelOutcome(st nav.State, settings coachpad.PanelSettings) (nav.Outcome, error) {
	res, err := coachpad.Panel(st, settings)
	if err != nil {
		return nav.Outcome{}, err
	}
	return nav.Outcome{Action: res.Action}, nil
}
