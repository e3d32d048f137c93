package nav

import (
	"time"

	"webgro.in/website/internal/site"
)

// Router performs route changes.
type Router interface {
	Navigate(path site.Route)
}

// Scroller smooth-scrolls the element bearing id to the top of the viewport. It reports
// false when no such element exists.
type Scroller interface {
	ScrollTo(id site.SectionID) bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it once adapted.
type AfterFunc func(d time.Duration, f func())

// Navigator executes link activations against a router and a scroller.
type Navigator struct {
	bar      *Bar
	router   Router
	scroller Scroller
	after    AfterFunc
}

// NewNavigator wires a bar to its router and scroller. A nil after uses time.AfterFunc.
func NewNavigator(bar *Bar, router Router, scroller Scroller, after AfterFunc) *Navigator {
	if after == nil {
		after = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return &Navigator{bar: bar, router: router, scroller: scroller, after: after}
}

// Bar returns the navigator's bar.
func (n *Navigator) Bar() *Bar { return n.bar }

// Follow activates link. Cross-page anchor scrolls are attempted once after the delay and
// are never cancelled; a missing element makes the attempt a no-op.
func (n *Navigator) Follow(link site.NavLink) Action {
	action := n.bar.Activate(link)
	switch action.Kind {
	case ActionNavigate:
		n.router.Navigate(action.Path)
	case ActionScroll:
		n.scroller.ScrollTo(action.Anchor)
	case ActionNavigateThenScroll:
		n.router.Navigate(action.Path)
		anchor := action.Anchor
		n.after(action.Delay, func() { n.scroller.ScrollTo(anchor) })
	}
	return action
}

// FollowTarget resolves a raw "path#anchor" target and follows it.
func (n *Navigator) FollowTarget(name, target string) Action {
	path, anchor := site.ParseTarget(target)
	return n.Follow(site.NavLink{DisplayName: name, Path: path, Anchor: anchor})
}
