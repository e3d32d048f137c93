package nav

import (
	"webgro.in/website/internal/site"
)

// Crumb is a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Breadcrumbs builds Home followed by the current page, labelled with the first primary
// or footer link pointing at it and falling back to the page title.
func Breadcrumbs(cfg *site.Config, current site.Route) []Crumb {
	current = current.Normalize()
	crumbs := []Crumb{{Href: "/", Label: labelFor(cfg, "/"), Active: current == "/"}}
	if current == "/" {
		return crumbs
	}
	return append(crumbs, Crumb{Href: string(current), Label: labelFor(cfg, current), Active: true})
}

func labelFor(cfg *site.Config, route site.Route) string {
	for _, l := range cfg.AllLinks() {
		if l.Path == route && l.Anchor == "" {
			return l.DisplayName
		}
	}
	if p, ok := cfg.Page(route); ok && p.Title != "" {
		return p.Title
	}
	return string(route)
}
