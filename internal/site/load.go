package site

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultDocument []byte

// ErrInvalidConfig is wrapped by every validation failure returned from Parse.
var ErrInvalidConfig = errors.New("site: invalid configuration")

type document struct {
	Name    string      `yaml:"name"`
	Tagline string      `yaml:"tagline"`
	Pages   []pageDoc   `yaml:"pages"`
	Nav     navDoc      `yaml:"nav"`
	Footer  []groupDoc  `yaml:"footer"`
	Contact contactDoc  `yaml:"contact"`
	Social  []socialDoc `yaml:"social"`
	FAQs    []faqDoc    `yaml:"faqs"`
}

type pageDoc struct {
	Route       string   `yaml:"route"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Observe     []string `yaml:"observe"`
	Content     string   `yaml:"content"`
}

type navDoc struct {
	Primary  []linkDoc `yaml:"primary"`
	Sections []linkDoc `yaml:"sections"`
}

type linkDoc struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
}

type groupDoc struct {
	Key   string    `yaml:"key"`
	Title string    `yaml:"title"`
	Links []linkDoc `yaml:"links"`
}

type contactDoc struct {
	Email    string   `yaml:"email"`
	Phone    string   `yaml:"phone"`
	WhatsApp string   `yaml:"whatsapp"`
	Address  []string `yaml:"address"`
	Hours    string   `yaml:"hours"`
}

type socialDoc struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	Icon  string `yaml:"icon"`
}

type faqDoc struct {
	Question string `yaml:"q"`
	Answer   string `yaml:"a"`
}

// Default parses the embedded site description.
func Default() (*Config, error) {
	return Parse(defaultDocument)
}

// MustDefault is Default for program start-up and tests; it panics on an invalid document.
func MustDefault() *Config {
	cfg, err := Default()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Parse decodes and validates a YAML site description.
func Parse(raw []byte) (*Config, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("site: decode: %w", err)
	}

	cfg := &Config{
		name:    strings.TrimSpace(doc.Name),
		tagline: strings.TrimSpace(doc.Tagline),
		contact: Contact{
			Email:    strings.TrimSpace(doc.Contact.Email),
			Phone:    strings.TrimSpace(doc.Contact.Phone),
			WhatsApp: strings.TrimSpace(doc.Contact.WhatsApp),
			Address:  append([]string(nil), doc.Contact.Address...),
			Hours:    strings.TrimSpace(doc.Contact.Hours),
		},
	}
	if cfg.name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}

	seenRoutes := make(map[Route]struct{}, len(doc.Pages))
	for _, pd := range doc.Pages {
		route := Route(pd.Route).Normalize()
		if _, dup := seenRoutes[route]; dup {
			return nil, fmt.Errorf("%w: duplicate page %s", ErrInvalidConfig, route)
		}
		seenRoutes[route] = struct{}{}

		page := Page{
			Route:       route,
			Title:       strings.TrimSpace(pd.Title),
			Description: strings.TrimSpace(pd.Description),
			Content:     strings.TrimSpace(pd.Content),
		}
		seenSections := make(map[SectionID]struct{}, len(pd.Observe))
		for _, raw := range pd.Observe {
			id := SectionID(strings.TrimSpace(raw))
			if id == "" {
				return nil, fmt.Errorf("%w: empty section on %s", ErrInvalidConfig, route)
			}
			if _, dup := seenSections[id]; dup {
				return nil, fmt.Errorf("%w: duplicate section %s on %s", ErrInvalidConfig, id, route)
			}
			seenSections[id] = struct{}{}
			page.Observed = append(page.Observed, id)
		}
		cfg.pages = append(cfg.pages, page)
	}
	if _, ok := seenRoutes["/"]; !ok {
		return nil, fmt.Errorf("%w: a root page is required", ErrInvalidConfig)
	}

	var err error
	if cfg.primary, err = cfg.buildLinks("nav.primary", doc.Nav.Primary); err != nil {
		return nil, err
	}
	if cfg.sections, err = cfg.buildLinks("nav.sections", doc.Nav.Sections); err != nil {
		return nil, err
	}
	for _, gd := range doc.Footer {
		key := strings.TrimSpace(gd.Key)
		links, err := cfg.buildLinks("footer."+key, gd.Links)
		if err != nil {
			return nil, err
		}
		cfg.footer = append(cfg.footer, LinkGroup{Key: key, Title: strings.TrimSpace(gd.Title), Links: links})
	}

	for _, sd := range doc.Social {
		cfg.social = append(cfg.social, SocialLink{
			Label: strings.TrimSpace(sd.Label),
			Href:  strings.TrimSpace(sd.Href),
			Icon:  strings.TrimSpace(sd.Icon),
		})
	}
	for _, fd := range doc.FAQs {
		cfg.faqs = append(cfg.faqs, FAQ{Question: strings.TrimSpace(fd.Question), Answer: strings.TrimSpace(fd.Answer)})
	}

	return cfg, nil
}

// buildLinks validates a link list: every target must point at a declared page, anchors on
// observed routes must name an observed section, and targets are unique within the list.
func (c *Config) buildLinks(group string, docs []linkDoc) ([]NavLink, error) {
	links := make([]NavLink, 0, len(docs))
	seen := make(map[string]struct{}, len(docs))
	for _, ld := range docs {
		name := strings.TrimSpace(ld.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: %s: link %q has no name", ErrInvalidConfig, group, ld.Target)
		}
		route, anchor := ParseTarget(ld.Target)
		page, ok := c.Page(route)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %q points at unknown page %s", ErrInvalidConfig, group, name, route)
		}
		if anchor != "" && len(page.Observed) > 0 && !containsSection(page.Observed, anchor) {
			return nil, fmt.Errorf("%w: %s: %q anchors unknown section %s on %s", ErrInvalidConfig, group, name, anchor, route)
		}
		link := NavLink{DisplayName: name, Path: route, Anchor: anchor}
		if _, dup := seen[link.Target()]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate target %s", ErrInvalidConfig, group, link.Target())
		}
		seen[link.Target()] = struct{}{}
		links = append(links, link)
	}
	return links, nil
}

func containsSection(ids []SectionID, id SectionID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
