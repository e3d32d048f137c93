package nav

import (
	"webgro.in/website/internal/sections"
	"webgro.in/website/internal/site"
)

// Item is a navigation link prepared for rendering.
type Item struct {
	Link   site.NavLink
	Href   string
	Active bool
	Action Action
}

// Bar is the navigation bar state: the current route, the mobile menu and the active
// section of sections-bearing routes. A Bar belongs to one page view and is not safe for
// concurrent use.
type Bar struct {
	cfg      *site.Config
	resolver Resolver
	trackers map[site.Route]*sections.Tracker

	route    site.Route
	menuOpen bool
	watch    *sections.Watch
	tracker  *sections.Tracker
}

// BarOption customises a Bar.
type BarOption func(*barOptions)

type barOptions struct {
	policy sections.Policy
	band   sections.Band
}

// WithPolicy sets the tie-break policy used by the bar's section trackers.
func WithPolicy(p sections.Policy) BarOption {
	return func(o *barOptions) { o.policy = p }
}

// WithBand sets the in-view band used by the bar's section trackers.
func WithBand(b sections.Band) BarOption {
	return func(o *barOptions) { o.band = b }
}

// NewBar builds a closed bar on route.
func NewBar(cfg *site.Config, resolver Resolver, route site.Route, opts ...BarOption) *Bar {
	o := barOptions{policy: sections.LastWins, band: sections.DefaultBand}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Bar{
		cfg:      cfg,
		resolver: resolver,
		trackers: make(map[site.Route]*sections.Tracker),
	}
	for _, p := range cfg.Pages() {
		if len(p.Observed) == 0 {
			continue
		}
		b.trackers[p.Route] = sections.NewTracker(p.Route, p.Observed,
			sections.WithPolicy(o.policy), sections.WithBand(o.band))
	}
	b.SetRoute(route)
	return b
}

// Route returns the current route.
func (b *Bar) Route() site.Route { return b.route }

// MenuOpen reports whether the mobile menu is open.
func (b *Bar) MenuOpen() bool { return b.menuOpen }

// ActiveSection returns the highlighted section, "" when none.
func (b *Bar) ActiveSection() site.SectionID {
	if b.tracker == nil {
		return ""
	}
	return b.tracker.Active()
}

// Sections returns the identifiers observed on the current route.
func (b *Bar) Sections() []site.SectionID {
	if b.tracker == nil {
		return nil
	}
	return b.tracker.Sections()
}

// Toggle flips the mobile menu.
func (b *Bar) Toggle() { b.menuOpen = !b.menuOpen }

// SetMenu forces the mobile menu state.
func (b *Bar) SetMenu(open bool) { b.menuOpen = open }

// SetRoute moves the bar to route. Leaving a sections-bearing route releases its watch
// and clears the active section; the menu state is untouched.
func (b *Bar) SetRoute(route site.Route) {
	route = route.Normalize()
	if route == b.route && (b.watch != nil || b.trackers[route] == nil) {
		return
	}
	if b.watch != nil {
		b.watch.Release()
		b.watch, b.tracker = nil, nil
	}
	b.route = route
	if tracker, ok := b.trackers[route]; ok {
		if w, attached := tracker.Attach(route, nil); attached {
			b.watch, b.tracker = w, tracker
		}
	}
}

// Observe applies a visibility batch to the current route's sections.
func (b *Bar) Observe(batch []sections.Observation) site.SectionID {
	if b.watch == nil {
		return ""
	}
	return b.watch.Observe(batch)
}

// Activate resolves link from the current route and applies its effect on bar state.
func (b *Bar) Activate(link site.NavLink) Action {
	action := b.resolver.ResolveLink(b.route, link)
	if action.ClosesMenu {
		b.menuOpen = false
	}
	if action.Kind != ActionScroll {
		b.SetRoute(action.Path)
	}
	return action
}

// Close releases any open section watch.
func (b *Bar) Close() {
	if b.watch != nil {
		b.watch.Release()
		b.watch, b.tracker = nil, nil
	}
}

// Primary renders the top-level links. A link is active when its path equals the current
// route exactly; the root only matches the root.
func (b *Bar) Primary() []Item {
	return b.Items(b.cfg.PrimaryNav())
}

// SectionItems renders the in-page links of the current route. Each is active when it
// names the active section.
func (b *Bar) SectionItems() []Item {
	var links []site.NavLink
	for _, l := range b.cfg.SectionNav() {
		if l.Path == b.route {
			links = append(links, l)
		}
	}
	return b.Items(links)
}

// Items renders arbitrary links, such as footer groups, against the bar's state.
func (b *Bar) Items(links []site.NavLink) []Item {
	active := b.ActiveSection()
	out := make([]Item, 0, len(links))
	for _, l := range links {
		out = append(out, Item{
			Link:   l,
			Href:   l.Target(),
			Active: isActive(l, b.route, active),
			Action: b.resolver.ResolveLink(b.route, l),
		})
	}
	return out
}

func isActive(link site.NavLink, route site.Route, active site.SectionID) bool {
	if link.Path != route {
		return false
	}
	if link.Anchor == "" {
		return true
	}
	return link.Anchor == active
}
