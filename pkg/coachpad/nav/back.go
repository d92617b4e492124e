package nav

// BackSource is the platform back-event capability: hardware back keys, the
// window manager, or a fake in tests. Subscribe registers a handler invoked
// once per back event and returns the subscription to release.
type BackSource interface {
	Subscribe(handler func()) (BackSubscription, error)
}

// BackSubscription is a held registration on a BackSource.
type BackSubscription interface {
	Remove()
}

// BackInterceptor decides what a back event means for the current state:
// close an open drawer, pop to the previous route, or report the event
// unhandled so the platform default (normally exit) applies.
type BackInterceptor struct {
	ctrl *Controller
	sub  BackSubscription
}

// NewBackInterceptor creates an interceptor over the controller.
func NewBackInterceptor(ctrl *Controller) *BackInterceptor {
	return &BackInterceptor{ctrl: ctrl}
}

// Handle applies one back event. Returns true when the event was consumed.
// Must run on the UI loop, like every other state transition.
func (b *BackInterceptor) Handle() bool {
	if b.ctrl.DrawerOpen() {
		b.ctrl.CloseDrawer()
		return true
	}

	st := b.ctrl.State()
	if st.CurrentRoute != RouteWelcome && st.PreviousRoute != RouteNone {
		b.ctrl.Navigate(st.PreviousRoute, nil)
		return true
	}

	return false
}

// Attach acquires a subscription on the source. The deliver callback is
// invoked on the source's goroutine for each event and is expected to
// marshal the event onto the UI loop; passing nil calls Handle directly,
// which is only safe when the source fires on the loop already (tests).
//
// Attach replaces any prior subscription.
func (b *BackInterceptor) Attach(src BackSource, deliver func()) error {
	if deliver == nil {
		deliver = func() { b.Handle() }
	}

	b.Detach()

	sub, err := src.Subscribe(deliver)
	if err != nil {
		return err
	}
	b.sub = sub
	return nil
}

// Detach releases the subscription. Idempotent; safe to defer on every exit
// path, including early returns after a failed startup.
func (b *BackInterceptor) Detach() {
	if b.sub != nil {
		b.sub.Remove()
		b.sub = nil
	}
}
