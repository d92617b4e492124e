// Package nav implements the navigation core: a single state store, a total
// screen registry, per-role action tables, and the back-gesture interceptor.
//
// Unlike a guarded finite-state machine, the route graph here is
// permissive: any route is reachable from any route, and history is one level
// deep (PreviousRoute, not a stack). Screens never mutate state directly; they
// return an Outcome whose action tag is resolved through the signed-in role's
// ActionTable into a concrete transition on the Controller.
//
// # Basic Usage
//
//	ctrl := nav.NewController(nil, logger)
//
//	reg := nav.NewRegistry()
//	reg.Register(nav.RouteWelcome, welcomeScreen)
//	reg.Register(nav.RouteLogin, loginScreen)
//
//	for {
//	    st := ctrl.State()
//	    outcome, err := reg.Screen(st.CurrentRoute)(st)
//	    if err != nil {
//	        break
//	    }
//	    nav.Dispatch(ctrl, outcome)
//	}
//
// # Back Navigation
//
// The BackInterceptor layers a two-state machine (drawer open / closed) on
// top of the depth-1 history. A back event first closes an open drawer, then
// pops to PreviousRoute, and is otherwise reported unhandled so the caller
// can apply the platform default (normally exit). The interceptor owns its
// subscription to the event source: Attach acquires it, Detach releases it,
// and Detach is safe to call from a defer on every exit path.
package nav
