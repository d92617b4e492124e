package nav

import (
	"log/slog"

	"go.uber.org/atomic"

	"coachpad/pkg/coachpad/session"
)

// State is a snapshot of the navigation store. PreviousRoute is always the
// CurrentRoute value immediately prior to the last transition; history is
// one level deep, never a stack.
type State struct {
	CurrentRoute  Route
	PreviousRoute Route
	Params        Params
	User          *session.User
	Authenticated bool
	DrawerOpen    bool
}

// Controller owns the single mutable navigation state. All transitions run
// synchronously on the UI loop; the drawer flag is additionally published
// through an atomic so the back-event watcher goroutine can observe it
// without racing the loop.
type Controller struct {
	current    Route
	previous   Route
	params     Params
	user       *session.User
	drawerOpen *atomic.Bool
	log        *slog.Logger
}

// NewController creates a controller starting at the welcome route, or at the
// initial user's dashboard when one is supplied (a restored session skips the
// welcome flow). A nil logger discards log output.
func NewController(initial *session.User, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	c := &Controller{
		current:    RouteWelcome,
		previous:   RouteNone,
		params:     Params{},
		user:       initial,
		drawerOpen: atomic.NewBool(false),
		log:        log,
	}
	if initial != nil {
		c.current = DashboardFor(initial.Role)
	}
	return c
}

// State returns a snapshot. Params are copied so screens cannot mutate the
// stored map.
func (c *Controller) State() State {
	return State{
		CurrentRoute:  c.current,
		PreviousRoute: c.previous,
		Params:        c.params.clone(),
		User:          c.user,
		Authenticated: c.user != nil,
		DrawerOpen:    c.drawerOpen.Load(),
	}
}

// Session returns the current sign-in state.
func (c *Controller) Session() session.Session {
	return session.Session{User: c.user}
}

// Navigate transitions to route. The previous route is recorded, params are
// merged over the existing set, and an open drawer is forced closed. No
// reachability check is applied: any route is reachable from any route.
func (c *Controller) Navigate(route Route, params Params) {
	c.previous = c.current
	c.current = route
	c.params = c.params.merged(params)
	c.drawerOpen.Store(false)

	c.log.Debug("navigate", "from", c.previous.String(), "to", c.current.String())
}

// NavigateWithUser is Navigate with a user swap in the same transition, used
// by the login flow so the session and route change atomically.
func (c *Controller) NavigateWithUser(route Route, params Params, user *session.User) {
	c.user = user
	c.Navigate(route, params)
}

// Login installs the freshly authenticated user and lands on their role's
// dashboard.
func (c *Controller) Login(user *session.User) {
	c.log.Info("login", "role", user.Role.String(), "user", user.ID.String())
	c.NavigateWithUser(DashboardFor(user.Role), nil, user)
}

// Logout clears the session and returns to the welcome route. Callers front
// this with a confirmation prompt; a cancelled prompt simply never calls it.
func (c *Controller) Logout() {
	c.log.Info("logout")
	c.NavigateWithUser(RouteWelcome, nil, nil)
}

// OpenDrawer shows the drawer. Idempotent, independent of the current route.
func (c *Controller) OpenDrawer() {
	c.drawerOpen.Store(true)
}

// CloseDrawer hides the drawer. Idempotent.
func (c *Controller) CloseDrawer() {
	c.drawerOpen.Store(false)
}

// DrawerOpen reports whether the drawer is showing. Safe to call from the
// back-event watcher goroutine.
func (c *Controller) DrawerOpen() bool {
	return c.drawerOpen.Load()
}
