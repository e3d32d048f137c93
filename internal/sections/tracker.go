// Package sections tracks which in-page section of a route is currently in view.
//
// A Tracker is bound to one route and its ordered section identifiers. Attach opens a
// Watch for the duration of a page view; observation batches fed to the tracker move the
// active section, and releasing the watch resets it.
package sections

import (
	"sync"

	"webgro.in/website/internal/site"
)

// Policy picks the winner when several sections enter the band in one batch.
type Policy int

const (
	// LastWins keeps the last intersecting entry of a batch.
	LastWins Policy = iota
	// TopmostWins keeps the intersecting entry declared earliest on the page.
	TopmostWins
)

// Observation is one visibility change reported for a section.
type Observation struct {
	ID           site.SectionID
	Intersecting bool
}

// Option customises a Tracker.
type Option func(*Tracker)

// WithPolicy overrides the tie-break policy.
func WithPolicy(p Policy) Option {
	return func(t *Tracker) { t.policy = p }
}

// WithBand overrides the in-view band used by polling watches. Invalid bands are ignored.
func WithBand(b Band) Option {
	return func(t *Tracker) {
		if b.Valid() {
			t.band = b
		}
	}
}

// Tracker holds the active section for one sections-bearing route.
type Tracker struct {
	route  site.Route
	ids    []site.SectionID
	index  map[site.SectionID]int
	band   Band
	policy Policy

	mu     sync.Mutex
	watch  *Watch
	active site.SectionID
}

// NewTracker binds a tracker to route and its ordered section identifiers.
func NewTracker(route site.Route, ids []site.SectionID, opts ...Option) *Tracker {
	t := &Tracker{
		route:  route.Normalize(),
		ids:    append([]site.SectionID(nil), ids...),
		index:  make(map[site.SectionID]int, len(ids)),
		band:   DefaultBand,
		policy: LastWins,
	}
	for i, id := range t.ids {
		t.index[id] = i
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Route returns the route the tracker is bound to.
func (t *Tracker) Route() site.Route { return t.route }

// Sections returns the tracked identifiers in page order.
func (t *Tracker) Sections() []site.SectionID {
	return append([]site.SectionID(nil), t.ids...)
}

// Band returns the in-view band.
func (t *Tracker) Band() Band { return t.band }

// Tracks reports whether id is one of the tracked sections.
func (t *Tracker) Tracks(id site.SectionID) bool {
	_, ok := t.index[id]
	return ok
}

// Active returns the active section, or "" when none is active or no watch is open.
func (t *Tracker) Active() site.SectionID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Attach opens a watch when route is the tracker's route. An already open watch is
// released first. locate, when non-nil, resolves each section to a region once; sections
// it cannot find are simply not registered.
func (t *Tracker) Attach(route site.Route, locate Locator) (*Watch, bool) {
	if route.Normalize() != t.route {
		return nil, false
	}

	w := &Watch{tracker: t, registry: newRegistry(t.ids, locate)}

	t.mu.Lock()
	prev := t.watch
	t.watch = w
	t.active = ""
	t.mu.Unlock()

	if prev != nil {
		prev.markReleased()
	}
	return w, true
}

// Observe applies a batch of visibility changes. Entries for unknown sections and entries
// leaving the band are ignored. It returns the resulting active section.
func (t *Tracker) Observe(batch []Observation) site.SectionID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.watch == nil {
		return t.active
	}
	t.observeLocked(batch)
	return t.active
}

func (t *Tracker) observeLocked(batch []Observation) {
	winner, best := site.SectionID(""), -1
	for _, obs := range batch {
		if !obs.Intersecting {
			continue
		}
		idx, ok := t.index[obs.ID]
		if !ok {
			continue
		}
		switch t.policy {
		case TopmostWins:
			if best == -1 || idx < best {
				winner, best = obs.ID, idx
			}
		default:
			winner, best = obs.ID, idx
		}
	}
	if best >= 0 {
		t.active = winner
	}
}

func (t *Tracker) release(w *Watch) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.watch != w {
		return
	}
	t.watch = nil
	t.active = ""
}
