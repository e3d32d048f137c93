package nav

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"webgro.in/website/internal/site"
)

type fakeRouter struct{ visits []site.Route }

func (r *fakeRouter) Navigate(path site.Route) { r.visits = append(r.visits, path) }

type fakeScroller struct {
	present map[site.SectionID]bool
	calls   []site.SectionID
}

func (s *fakeScroller) ScrollTo(id site.SectionID) bool {
	s.calls = append(s.calls, id)
	return s.present[id]
}

type pendingTimer struct {
	delay time.Duration
	fire  func()
}

type fakeClock struct{ pending []pendingTimer }

func (c *fakeClock) AfterFunc(d time.Duration, f func()) {
	c.pending = append(c.pending, pendingTimer{delay: d, fire: f})
}

func (c *fakeClock) fireAll() {
	pending := c.pending
	c.pending = nil
	for _, p := range pending {
		p.fire()
	}
}

func newNavigator(t *testing.T, route site.Route, present ...site.SectionID) (*Navigator, *fakeRouter, *fakeScroller, *fakeClock) {
	t.Helper()
	router := &fakeRouter{}
	scroller := &fakeScroller{present: map[site.SectionID]bool{}}
	for _, id := range present {
		scroller.present[id] = true
	}
	clock := &fakeClock{}
	return NewNavigator(newBar(t, route), router, scroller, clock.AfterFunc), router, scroller, clock
}

func TestFollowPlainLinkOnlyNavigates(t *testing.T) {
	t.Parallel()

	cfg := site.MustDefault()
	for _, l := range cfg.AllLinks() {
		if l.HasAnchor() {
			continue
		}
		n, router, scroller, clock := newNavigator(t, "/product", "features", "pricing")
		n.Follow(l)
		clock.fireAll()
		require.Equal(t, []site.Route{l.Path}, router.visits, l.Target())
		require.Empty(t, scroller.calls, l.Target())
	}
}

func TestFollowSamePageAnchorScrolls(t *testing.T) {
	t.Parallel()

	n, router, scroller, clock := newNavigator(t, "/product", "pricing")
	action := n.Follow(link("/product#pricing"))

	require.True(t, action.PreventDefault)
	require.Empty(t, router.visits)
	require.Equal(t, []site.SectionID{"pricing"}, scroller.calls)
	require.Empty(t, clock.pending)
}

func TestFollowMissingAnchorIsSilent(t *testing.T) {
	t.Parallel()

	n, _, scroller, clock := newNavigator(t, "/")
	require.NotPanics(t, func() {
		n.FollowTarget("Blog", "/about#blog")
		clock.fireAll()
	})
	require.Equal(t, []site.SectionID{"blog"}, scroller.calls)
}

func TestHomeToPricingNavigatesThenScrollsOnce(t *testing.T) {
	t.Parallel()

	n, router, scroller, clock := newNavigator(t, "/", "pricing")
	action := n.FollowTarget("Pricing", "/product#pricing")

	require.Equal(t, ActionNavigateThenScroll, action.Kind)
	require.Equal(t, []site.Route{"/product"}, router.visits)
	require.Empty(t, scroller.calls, "scroll waits for the delay")
	require.Len(t, clock.pending, 1)
	require.Equal(t, 100*time.Millisecond, clock.pending[0].delay)
	require.Equal(t, site.Route("/product"), n.Bar().Route())

	clock.fireAll()
	require.Equal(t, []site.SectionID{"pricing"}, scroller.calls)

	clock.fireAll()
	require.Len(t, scroller.calls, 1, "the scroll is attempted once")
}

func TestNewNavigatorDefaultsToRealTimer(t *testing.T) {
	t.Parallel()

	router := &fakeRouter{}
	done := make(chan site.SectionID, 1)
	scroller := scrollFunc(func(id site.SectionID) bool {
		done <- id
		return true
	})
	n := NewNavigator(NewBar(site.MustDefault(), NewResolver(time.Millisecond), "/"), router, scroller, nil)
	n.FollowTarget("Pricing", "/product#pricing")

	select {
	case id := <-done:
		require.Equal(t, site.SectionID("pricing"), id)
	case <-time.After(2 * time.Second):
		t.Fatal("delayed scroll never fired")
	}
}

type scrollFunc func(site.SectionID) bool

func (f scrollFunc) ScrollTo(id site.SectionID) bool { return f(id) }
