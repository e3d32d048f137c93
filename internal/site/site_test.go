package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDocumentIsValid(t *testing.T) {
	t.Parallel()

	cfg, err := Default()
	require.NoError(t, err)
	require.Equal(t, "WebGro", cfg.Name())

	require.Equal(t,
		[]SectionID{"features", "how-it-works", "integrations", "pricing"},
		cfg.ObservedSections("/product"),
	)
	require.Empty(t, cfg.ObservedSections("/"))
	require.Empty(t, cfg.ObservedSections("/about"))
	require.Nil(t, cfg.ObservedSections("/missing"))

	primary := cfg.PrimaryNav()
	require.Len(t, primary, 4)
	for _, link := range primary {
		require.False(t, link.HasAnchor(), "primary links are plain routes")
	}

	footer := cfg.Footer()
	require.Len(t, footer, 3)
	require.Equal(t, "/about#blog", footer[1].Links[2].Target())
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	cfg := MustDefault()
	sections := cfg.ObservedSections("/product")
	sections[0] = "tampered"
	require.Equal(t, SectionID("features"), cfg.ObservedSections("/product")[0])

	nav := cfg.PrimaryNav()
	nav[0].DisplayName = "tampered"
	require.Equal(t, "Home", cfg.PrimaryNav()[0].DisplayName)

	footer := cfg.Footer()
	footer[0].Links[0].Anchor = "tampered"
	require.Equal(t, SectionID("features"), cfg.Footer()[0].Links[0].Anchor)
}

func TestParseTarget(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		route  Route
		anchor SectionID
	}{
		{"/", "/", ""},
		{"", "/", ""},
		{"/product", "/product", ""},
		{"/product/", "/product", ""},
		{"/product#pricing", "/product", "pricing"},
		{"product#pricing", "/product", "pricing"},
		{"#pricing", "/", "pricing"},
	}
	for _, tc := range cases {
		route, anchor := ParseTarget(tc.in)
		require.Equal(t, tc.route, route, tc.in)
		require.Equal(t, tc.anchor, anchor, tc.in)
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing name": `
pages: [{route: /}]`,
		"missing root": `
name: X
pages: [{route: /about}]`,
		"unknown page": `
name: X
pages: [{route: /}]
nav:
  primary: [{name: Product, target: /product}]`,
		"duplicate target": `
name: X
pages: [{route: /}]
nav:
  primary: [{name: Home, target: /}, {name: Start, target: /}]`,
		"unknown observed section": `
name: X
pages: [{route: /}, {route: /product, observe: [pricing]}]
footer:
  - key: product
    links: [{name: Plans, target: "/product#plans"}]`,
		"duplicate section": `
name: X
pages: [{route: /, observe: [a, a]}]`,
	}
	for name, raw := range cases {
		_, err := Parse([]byte(raw))
		require.Error(t, err, name)
		require.True(t, errors.Is(err, ErrInvalidConfig), "%s: %v", name, err)
	}
}

func TestParseAllowsAnchorsOnUnobservedPages(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
name: X
pages: [{route: /}, {route: /about}]
footer:
  - key: company
    links: [{name: Blog, target: "/about#blog"}]`))
	require.NoError(t, err)
	require.Equal(t, SectionID("blog"), cfg.Footer()[0].Links[0].Anchor)
}
