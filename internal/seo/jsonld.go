package seo

import (
	"encoding/json"
	"strings"

	"webgro.in/website/internal/site"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns the Organization schema with contact point and social profiles.
func Organization(cfg *site.Config, baseURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     cfg.Name(),
		"url":      Absolute(baseURL, "/"),
		"logo":     Absolute(baseURL, "/assets/logo.svg"),
	}
	ct := cfg.Contact()
	if ct.Email != "" || ct.Phone != "" {
		point := map[string]any{"@type": "ContactPoint", "contactType": "sales"}
		if ct.Email != "" {
			point["email"] = ct.Email
		}
		if ct.Phone != "" {
			point["telephone"] = strings.ReplaceAll(ct.Phone, " ", "")
		}
		m["contactPoint"] = point
	}
	var sameAs []string
	for _, s := range cfg.Social() {
		if strings.HasPrefix(s.Href, "http") {
			sameAs = append(sameAs, s.Href)
		}
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return m
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(name, url, searchActionURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if searchActionURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      searchActionURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// FAQPage builds schema.org FAQPage from question/answer pairs.
func FAQPage(faqs []site.FAQ) map[string]any {
	entities := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}
