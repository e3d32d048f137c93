// Package site holds the immutable description of the marketing site: its routes,
// the sections observed on each route, navigation and footer links, and contact details.
// A Config is built once at startup and handed to every component that needs it.
package site

import (
	"strings"
)

// Route is a logical page path such as "/" or "/product".
type Route string

// Normalize trims whitespace and trailing slashes; an empty route is the root.
func (r Route) Normalize() Route {
	p := strings.TrimSpace(string(r))
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return Route(p)
}

func (r Route) String() string { return string(r) }

// SectionID identifies an in-page section (the element id an anchor points at).
type SectionID string

func (s SectionID) String() string { return string(s) }

// NavLink is a navigation entry. Anchor is empty for plain page links.
type NavLink struct {
	DisplayName string
	Path        Route
	Anchor      SectionID
}

// HasAnchor reports whether the link targets an in-page section.
func (l NavLink) HasAnchor() bool { return l.Anchor != "" }

// Target renders the link as "path" or "path#anchor".
func (l NavLink) Target() string {
	if l.Anchor == "" {
		return string(l.Path)
	}
	return string(l.Path) + "#" + string(l.Anchor)
}

// ParseTarget splits "path#anchor" into its route and anchor parts.
func ParseTarget(target string) (Route, SectionID) {
	target = strings.TrimSpace(target)
	path, anchor, _ := strings.Cut(target, "#")
	return Route(path).Normalize(), SectionID(strings.TrimSpace(anchor))
}

// LinkGroup is a titled list of links, e.g. a footer column.
type LinkGroup struct {
	Key   string
	Title string
	Links []NavLink
}

// Page describes one routable page.
type Page struct {
	Route       Route
	Title       string
	Description string
	// Observed lists the sections whose visibility drives navigation highlighting.
	Observed []SectionID
	// Content names an embedded markdown document rendered as the page body.
	Content string
}

// SocialLink points at an external profile.
type SocialLink struct {
	Label string
	Href  string
	Icon  string
}

// Contact carries the public contact details shown in the footer and on the contact page.
type Contact struct {
	Email    string
	Phone    string
	WhatsApp string
	Address  []string
	Hours    string
}

// FAQ is a question and answer pair on the contact page.
type FAQ struct {
	Question string
	Answer   string
}

// Config is the immutable site description. Accessors return copies.
type Config struct {
	name     string
	tagline  string
	pages    []Page
	primary  []NavLink
	sections []NavLink
	footer   []LinkGroup
	contact  Contact
	social   []SocialLink
	faqs     []FAQ
}

// Name returns the brand name.
func (c *Config) Name() string { return c.name }

// Tagline returns the short brand description used in the footer.
func (c *Config) Tagline() string { return c.tagline }

// Pages returns every routable page in declaration order.
func (c *Config) Pages() []Page {
	out := make([]Page, len(c.pages))
	for i, p := range c.pages {
		p.Observed = append([]SectionID(nil), p.Observed...)
		out[i] = p
	}
	return out
}

// Page looks up the page registered for route.
func (c *Config) Page(route Route) (Page, bool) {
	route = route.Normalize()
	for _, p := range c.pages {
		if p.Route == route {
			p.Observed = append([]SectionID(nil), p.Observed...)
			return p, true
		}
	}
	return Page{}, false
}

// ObservedSections returns the sections watched on route, or nil when the route has none.
func (c *Config) ObservedSections(route Route) []SectionID {
	p, ok := c.Page(route)
	if !ok {
		return nil
	}
	return p.Observed
}

// PrimaryNav returns the top-level navigation links.
func (c *Config) PrimaryNav() []NavLink { return append([]NavLink(nil), c.primary...) }

// SectionNav returns the in-page section links shown beneath the navigation bar.
func (c *Config) SectionNav() []NavLink { return append([]NavLink(nil), c.sections...) }

// Footer returns the footer link groups.
func (c *Config) Footer() []LinkGroup {
	out := make([]LinkGroup, len(c.footer))
	for i, g := range c.footer {
		g.Links = append([]NavLink(nil), g.Links...)
		out[i] = g
	}
	return out
}

// AllLinks returns every navigation, section and footer link.
func (c *Config) AllLinks() []NavLink {
	out := append([]NavLink(nil), c.primary...)
	out = append(out, c.sections...)
	for _, g := range c.footer {
		out = append(out, g.Links...)
	}
	return out
}

// Contact returns the public contact details.
func (c *Config) Contact() Contact {
	ct := c.contact
	ct.Address = append([]string(nil), c.contact.Address...)
	return ct
}

// Social returns the social profile links.
func (c *Config) Social() []SocialLink { return append([]SocialLink(nil), c.social...) }

// FAQs returns the contact page questions.
func (c *Config) FAQs() []FAQ { return append([]FAQ(nil), c.faqs...) }
