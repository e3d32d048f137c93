// Package seo builds page metadata and schema.org JSON-LD payloads.
package seo

import (
	"strings"

	"webgro.in/website/internal/site"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
	// JSONLD holds serialised schema.org documents rendered as ld+json scripts.
	JSONLD []string
}

// Absolute joins baseURL and a site-relative path.
func Absolute(baseURL, path string) string {
	base := strings.TrimRight(baseURL, "/")
	if path == "" || path == "/" {
		return base + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// ForPage builds the metadata for page. The root page carries Organization and WebSite
// documents; other pages carry a breadcrumb trail.
func ForPage(cfg *site.Config, baseURL string, page site.Page) Meta {
	canonical := Absolute(baseURL, string(page.Route))
	image := Absolute(baseURL, "/assets/og-image.png")
	m := Meta{
		Title:       page.Title,
		Description: page.Description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       page.Title,
			Description: page.Description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    cfg.Name(),
		},
		Twitter: Twitter{Card: "summary_large_image", Site: "@webgro", Image: image},
	}

	if page.Route == "/" {
		m.JSONLD = append(m.JSONLD,
			JSON(Organization(cfg, baseURL)),
			JSON(WebSite(cfg.Name(), Absolute(baseURL, "/"), "")),
		)
		return m
	}
	m.JSONLD = append(m.JSONLD, JSON(BreadcrumbList([]BreadcrumbItem{
		{Name: cfg.Name(), Item: Absolute(baseURL, "/")},
		{Name: page.Title, Item: canonical},
	})))
	return m
}
