package sections

import (
	"fmt"
	"math"
)

// Band is the horizontal strip of the viewport in which a section counts as in view.
// Top and Bottom are the fractions of the viewport height excluded from each edge.
type Band struct {
	Top    float64
	Bottom float64
}

// DefaultBand treats a section as in view between 20% from the top and 60% from the bottom.
var DefaultBand = Band{Top: 0.2, Bottom: 0.6}

// Rect is a region's vertical extent in viewport coordinates (0 is the viewport top).
type Rect struct {
	Top    float64
	Bottom float64
}

// Valid reports whether the band leaves a non-empty strip of the viewport.
func (b Band) Valid() bool {
	return b.Top >= 0 && b.Bottom >= 0 && b.Top+b.Bottom < 1
}

// Bounds returns the band's edges for a viewport of the given height.
func (b Band) Bounds(viewport float64) (top, bottom float64) {
	return viewport * b.Top, viewport * (1 - b.Bottom)
}

// Intersects reports whether r overlaps the band of a viewport of the given height.
func (b Band) Intersects(r Rect, viewport float64) bool {
	if viewport <= 0 || !b.Valid() || r.Bottom <= r.Top {
		return false
	}
	top, bottom := b.Bounds(viewport)
	return r.Bottom > top && r.Top < bottom
}

// RootMargin renders the band as an IntersectionObserver rootMargin value.
func (b Band) RootMargin() string {
	return fmt.Sprintf("-%s%% 0px -%s%% 0px", percent(b.Top), percent(b.Bottom))
}

func percent(f float64) string {
	v := math.Round(f*1000) / 10
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}
