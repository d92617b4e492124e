package nav

import "coachpad/pkg/coachpad/session"

// Outcome is what a screen reports back to the loop when it yields control.
// At most one of the fields is usually set; Dispatch applies them in order:
// a User swap (login success), an explicit Route, then an Action tag resolved
// through the signed-in role's action table.
type Outcome struct {
	Action string        // semantic action tag, "" for none
	Route  Route         // explicit target, RouteNone for none
	Params Params        // merged into navigation params on transition
	User   *session.User // freshly authenticated user, nil otherwise
}

// ScreenFunc runs one screen body for the given snapshot and blocks until the
// user yields an outcome. Screens never mutate navigation state themselves.
type ScreenFunc func(st State) (Outcome, error)

// Registry is the total mapping from route to screen. Routes with no
// registered screen resolve to the not-found screen; resolution never fails
// and never panics.
type Registry struct {
	screens  map[Route]ScreenFunc
	notFound ScreenFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		screens: make(map[Route]ScreenFunc),
	}
}

// Register adds a screen for a route, replacing any previous registration.
// Returns the registry for chaining.
func (r *Registry) Register(route Route, fn ScreenFunc) *Registry {
	r.screens[route] = fn
	return r
}

// SetNotFound installs the screen used for unregistered routes.
func (r *Registry) SetNotFound(fn ScreenFunc) *Registry {
	r.notFound = fn
	return r
}

// Screen resolves a route to its screen. Unregistered or out-of-set routes
// get the not-found screen; if none was installed, a built-in fallback
// reports straight back to the welcome route.
func (r *Registry) Screen(route Route) ScreenFunc {
	if fn, ok := r.screens[route]; ok {
		return fn
	}
	if r.notFound != nil {
		return r.notFound
	}
	return func(State) (Outcome, error) {
		return Outcome{Route: RouteWelcome}, nil
	}
}

// Registered reports whether a route has an explicit screen.
func (r *Registry) Registered(route Route) bool {
	_, ok := r.screens[route]
	return ok
}
