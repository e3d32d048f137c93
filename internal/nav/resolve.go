// Package nav resolves navigation targets into actions and holds the navigation bar state.
package nav

import (
	"time"

	"webgro.in/website/internal/site"
)

// DefaultScrollDelay is how long a cross-page anchor link waits before scrolling.
const DefaultScrollDelay = 100 * time.Millisecond

// ActionKind enumerates what following a link does.
type ActionKind int

const (
	// ActionNavigate changes route and never scrolls.
	ActionNavigate ActionKind = iota
	// ActionScroll smooth-scrolls to an anchor on the current route.
	ActionScroll
	// ActionNavigateThenScroll changes route, then scrolls once after Delay.
	ActionNavigateThenScroll
)

func (k ActionKind) String() string {
	switch k {
	case ActionScroll:
		return "scroll"
	case ActionNavigateThenScroll:
		return "navigate+scroll"
	default:
		return "navigate"
	}
}

// Action is the resolved behaviour of a link from a given route.
type Action struct {
	Kind   ActionKind
	Path   site.Route
	Anchor site.SectionID
	Delay  time.Duration
	// PreventDefault is set when the browser's own link handling must be cancelled.
	PreventDefault bool
	// ClosesMenu is set for plain links, which close the mobile menu.
	ClosesMenu bool
}

// Resolver maps targets to actions.
type Resolver struct {
	delay time.Duration
}

// NewResolver returns a resolver using delay for cross-page anchor scrolls. A negative
// delay falls back to DefaultScrollDelay.
func NewResolver(delay time.Duration) Resolver {
	if delay < 0 {
		delay = DefaultScrollDelay
	}
	return Resolver{delay: delay}
}

// Delay returns the cross-page scroll delay.
func (r Resolver) Delay() time.Duration { return r.delay }

// Resolve maps a "path" or "path#anchor" target followed from current.
func (r Resolver) Resolve(current site.Route, target string) Action {
	path, anchor := site.ParseTarget(target)
	return r.resolve(current.Normalize(), path, anchor)
}

// ResolveLink is Resolve for a configured link.
func (r Resolver) ResolveLink(current site.Route, link site.NavLink) Action {
	return r.resolve(current.Normalize(), link.Path.Normalize(), link.Anchor)
}

func (r Resolver) resolve(current, path site.Route, anchor site.SectionID) Action {
	switch {
	case anchor == "":
		return Action{Kind: ActionNavigate, Path: path, ClosesMenu: true}
	case path == current:
		return Action{Kind: ActionScroll, Path: path, Anchor: anchor, PreventDefault: true}
	default:
		return Action{Kind: ActionNavigateThenScroll, Path: path, Anchor: anchor, Delay: r.delay, PreventDefault: true}
	}
}
