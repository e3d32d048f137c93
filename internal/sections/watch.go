package sections

import (
	"sync"

	"webgro.in/website/internal/site"
)

// Region is an opaque handle to a section's on-screen area.
type Region interface {
	Bounds() Rect
}

// Locator resolves a section identifier to its region.
type Locator func(site.SectionID) (Region, bool)

type registry struct {
	order   []site.SectionID
	regions map[site.SectionID]Region
}

func newRegistry(ids []site.SectionID, locate Locator) registry {
	r := registry{regions: make(map[site.SectionID]Region, len(ids))}
	if locate == nil {
		return r
	}
	for _, id := range ids {
		if region, ok := locate(id); ok && region != nil {
			r.order = append(r.order, id)
			r.regions[id] = region
		}
	}
	return r
}

// Watch is an open observation scope on a Tracker. Release ends it.
type Watch struct {
	tracker  *Tracker
	registry registry

	mu       sync.Mutex
	released bool
	inBand   map[site.SectionID]bool
}

// Region returns the handle registered for id at attach time.
func (w *Watch) Region(id site.SectionID) (Region, bool) {
	region, ok := w.registry.regions[id]
	return region, ok
}

// Observe forwards a batch to the tracker unless the watch has been released.
func (w *Watch) Observe(batch []Observation) site.SectionID {
	if w.Released() {
		return w.tracker.Active()
	}
	return w.tracker.Observe(batch)
}

// Poll measures every registered region against the band of a viewport of the given
// height and observes the regions whose in-band state changed since the last poll.
func (w *Watch) Poll(viewport float64) site.SectionID {
	w.mu.Lock()
	if w.released {
		w.mu.Unlock()
		return w.tracker.Active()
	}
	if w.inBand == nil {
		w.inBand = make(map[site.SectionID]bool, len(w.registry.order))
	}
	band := w.tracker.band
	var batch []Observation
	for _, id := range w.registry.order {
		now := band.Intersects(w.registry.regions[id].Bounds(), viewport)
		if now != w.inBand[id] {
			batch = append(batch, Observation{ID: id, Intersecting: now})
			w.inBand[id] = now
		}
	}
	w.mu.Unlock()

	if len(batch) == 0 {
		return w.tracker.Active()
	}
	return w.Observe(batch)
}

// Released reports whether Release has been called.
func (w *Watch) Released() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.released
}

// Release tears the watch down and clears the active section. It is safe to call more
// than once.
func (w *Watch) Release() {
	if !w.markReleased() {
		return
	}
	w.tracker.release(w)
}

func (w *Watch) markReleased() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.released {
		return false
	}
	w.released = true
	return true
}
