package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"webgro.in/website/internal/site"
)

func TestAbsolute(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://webgro.in/", Absolute("https://webgro.in/", "/"))
	require.Equal(t, "https://webgro.in/product", Absolute("https://webgro.in", "product"))
}

func TestForPageRoot(t *testing.T) {
	t.Parallel()

	cfg := site.MustDefault()
	page, _ := cfg.Page("/")
	m := ForPage(cfg, "https://webgro.in", page)

	require.Equal(t, "https://webgro.in/", m.Canonical)
	require.Equal(t, "WebGro", m.OG.SiteName)
	require.Len(t, m.JSONLD, 2)

	var org map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[0]), &org))
	require.Equal(t, "Organization", org["@type"])
	point := org["contactPoint"].(map[string]any)
	require.Equal(t, "contact@webgro.in", point["email"])
	require.Equal(t, "+919746008581", point["telephone"])
	require.Len(t, org["sameAs"], 4)
}

func TestForPageBreadcrumb(t *testing.T) {
	t.Parallel()

	cfg := site.MustDefault()
	page, _ := cfg.Page("/product")
	m := ForPage(cfg, "https://webgro.in", page)

	require.Equal(t, "https://webgro.in/product", m.Canonical)
	require.Len(t, m.JSONLD, 1)
	var crumbs map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[0]), &crumbs))
	require.Equal(t, "BreadcrumbList", crumbs["@type"])
	require.Len(t, crumbs["itemListElement"], 2)
}

func TestFAQPage(t *testing.T) {
	t.Parallel()

	out := FAQPage([]site.FAQ{{Question: "Q?", Answer: "A."}})
	entities := out["mainEntity"].([]map[string]any)
	require.Len(t, entities, 1)
	require.Equal(t, "Q?", entities[0]["name"])
}
