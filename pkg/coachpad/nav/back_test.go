package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachpad/pkg/coachpad/session"
)

// fakeBackSource records subscriptions and lets tests fire events.
type fakeBackSource struct {
	handler func()
	removed int
	err     error
}

type fakeSubscription struct {
	src *fakeBackSource
}

func (s *fakeSubscription) Remove() {
	s.src.removed++
	s.src.handler = nil
}

func (f *fakeBackSource) Subscribe(handler func()) (BackSubscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.handler = handler
	return &fakeSubscription{src: f}, nil
}

func (f *fakeBackSource) fire() {
	if f.handler != nil {
		f.handler()
	}
}

func TestBackClosesOpenDrawerFirst(t *testing.T) {
	c := NewController(demoUser(session.RoleTeacher), nil)
	c.Navigate(RouteSettings, nil)
	c.OpenDrawer()

	b := NewBackInterceptor(c)

	assert.True(t, b.Handle())
	st := c.State()
	assert.False(t, st.DrawerOpen)
	// Route untouched: the event only dismissed the drawer.
	assert.Equal(t, RouteSettings, st.CurrentRoute)
}

func TestBackPopsToPreviousRoute(t *testing.T) {
	c := NewController(nil, nil)
	c.NavigateWithUser(RouteTeacherDashboard, nil, demoUser(session.RoleTeacher))

	b := NewBackInterceptor(c)

	assert.True(t, b.Handle())
	assert.Equal(t, RouteWelcome, c.State().CurrentRoute)
}

func TestBackUnhandledAtWelcome(t *testing.T) {
	c := NewController(nil, nil)
	b := NewBackInterceptor(c)

	// Fresh start: no drawer, no history. Platform default applies.
	assert.False(t, b.Handle())
	assert.Equal(t, RouteWelcome, c.State().CurrentRoute)
}

func TestBackUnhandledWithoutHistory(t *testing.T) {
	// A restored session starts directly on a dashboard with no previous
	// route; back from there is the platform's to handle.
	c := NewController(demoUser(session.RoleParent), nil)
	b := NewBackInterceptor(c)

	assert.False(t, b.Handle())
	assert.Equal(t, RouteParentDashboard, c.State().CurrentRoute)
}

func TestBackInterceptorAttachDetach(t *testing.T) {
	c := NewController(nil, nil)
	c.Navigate(RouteLogin, nil)

	src := &fakeBackSource{}
	b := NewBackInterceptor(c)
	require.NoError(t, b.Attach(src, nil))
	require.NotNil(t, src.handler)

	src.fire()
	assert.Equal(t, RouteWelcome, c.State().CurrentRoute)

	b.Detach()
	assert.Equal(t, 1, src.removed)

	// Detach is idempotent and safe after release.
	b.Detach()
	assert.Equal(t, 1, src.removed)

	// Events after detach go nowhere.
	c.Navigate(RouteLogin, nil)
	src.fire()
	assert.Equal(t, RouteLogin, c.State().CurrentRoute)
}

func TestBackInterceptorAttachReplacesSubscription(t *testing.T) {
	c := NewController(nil, nil)
	b := NewBackInterceptor(c)

	first := &fakeBackSource{}
	second := &fakeBackSource{}

	require.NoError(t, b.Attach(first, nil))
	require.NoError(t, b.Attach(second, nil))

	assert.Equal(t, 1, first.removed)
	assert.Nil(t, first.handler)
	assert.NotNil(t, second.handler)
}

func TestBackInterceptorAttachError(t *testing.T) {
	c := NewController(nil, nil)
	b := NewBackInterceptor(c)

	src := &fakeBackSource{err: errors.New("device unavailable")}
	err := b.Attach(src, nil)
	require.Error(t, err)

	// Detach on the failure path must be a no-op, not a panic.
	b.Detach()
}

func TestBackDeliverCallbackIsUsed(t *testing.T) {
	c := NewController(nil, nil)
	b := NewBackInterceptor(c)

	src := &fakeBackSource{}
	delivered := 0
	require.NoError(t, b.Attach(src, func() { delivered++ }))

	src.fire()
	src.fire()
	assert.Equal(t, 2, delivered)
}
