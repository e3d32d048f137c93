package sections

import (
	"testing"

	"github.com/stretchr/testify/require"

	"webgro.in/website/internal/site"
)

var productSections = []site.SectionID{"features", "how-it-works", "integrations", "pricing"}

func in(id site.SectionID) Observation  { return Observation{ID: id, Intersecting: true} }
func out(id site.SectionID) Observation { return Observation{ID: id, Intersecting: false} }

func TestAttachOnlyOnBoundRoute(t *testing.T) {
	t.Parallel()

	tracker := NewTracker("/product", productSections)

	w, ok := tracker.Attach("/", nil)
	require.False(t, ok)
	require.Nil(t, w)

	w, ok = tracker.Attach("/product/", nil)
	require.True(t, ok)
	require.NotNil(t, w)
	require.Equal(t, site.SectionID(""), tracker.Active())
}

func TestObserveSetsActiveSection(t *testing.T) {
	t.Parallel()

	tracker := NewTracker("/product", productSections)
	w, _ := tracker.Attach("/product", nil)

	require.Equal(t, site.SectionID("features"), w.Observe([]Observation{in("features")}))
	require.Equal(t, site.SectionID("features"), w.Observe([]Observation{out("features")}), "leaving the band keeps the highlight")
	require.Equal(t, site.SectionID("pricing"), w.Observe([]Observation{in("pricing")}))
	require.Equal(t, site.SectionID("pricing"), w.Observe([]Observation{in("testimonials")}), "unknown ids are ignored")
}

func TestBatchTieBreak(t *testing.T) {
	t.Parallel()

	batch := []Observation{in("integrations"), in("features"), out("pricing")}

	last := NewTracker("/product", productSections)
	w, _ := last.Attach("/product", nil)
	require.Equal(t, site.SectionID("features"), w.Observe(batch))

	top := NewTracker("/product", productSections, WithPolicy(TopmostWins))
	w, _ = top.Attach("/product", nil)
	require.Equal(t, site.SectionID("features"), w.Observe(batch))
	require.Equal(t, site.SectionID("how-it-works"), w.Observe([]Observation{in("pricing"), in("how-it-works")}))
}

func TestActiveSectionStaysWithinDeclaredSet(t *testing.T) {
	t.Parallel()

	allowed := map[site.SectionID]bool{"": true}
	for _, id := range productSections {
		allowed[id] = true
	}

	tracker := NewTracker("/product", productSections)
	w, _ := tracker.Attach("/product", nil)
	inputs := []site.SectionID{"features", "bogus", "", "pricing", "careers", "how-it-works", "integrations"}
	for i, id := range inputs {
		got := w.Observe([]Observation{in(id), {ID: inputs[(i+1)%len(inputs)], Intersecting: i%2 == 0}})
		require.True(t, allowed[got], "unexpected active section %q", got)
	}
}

func TestReleaseResetsAndIgnoresLaterEvents(t *testing.T) {
	t.Parallel()

	tracker := NewTracker("/product", productSections)
	w, _ := tracker.Attach("/product", nil)
	w.Observe([]Observation{in("pricing")})
	require.Equal(t, site.SectionID("pricing"), tracker.Active())

	w.Release()
	require.True(t, w.Released())
	require.Equal(t, site.SectionID(""), tracker.Active())

	w.Observe([]Observation{in("features")})
	require.Equal(t, site.SectionID(""), tracker.Active())
	require.Equal(t, site.SectionID(""), tracker.Observe([]Observation{in("features")}))

	require.NotPanics(t, w.Release)
}

func TestReattachReleasesPreviousWatch(t *testing.T) {
	t.Parallel()

	tracker := NewTracker("/product", productSections)
	first, _ := tracker.Attach("/product", nil)
	first.Observe([]Observation{in("integrations")})

	second, ok := tracker.Attach("/product", nil)
	require.True(t, ok)
	require.True(t, first.Released())
	require.Equal(t, site.SectionID(""), tracker.Active())

	// Releasing the stale watch must not clear the new one.
	second.Observe([]Observation{in("pricing")})
	first.Release()
	require.Equal(t, site.SectionID("pricing"), tracker.Active())
}
