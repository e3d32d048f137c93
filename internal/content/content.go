// Package content renders the embedded markdown documents (legal pages and About page
// blocks) into sanitised HTML.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

//go:embed docs/*.md
var embedded embed.FS

// ErrNotFound is returned for unknown document slugs.
var ErrNotFound = errors.New("content: document not found")

const frontMatterDelim = "---"

// Document is a rendered markdown document.
type Document struct {
	Slug    string
	Title   string
	Summary string
	Updated time.Time
	// HTML is sanitised and safe to embed verbatim.
	HTML string
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Updated string `yaml:"updated"`
}

// Library holds rendered documents by slug.
type Library struct {
	docs map[string]Document
}

var htmlPolicy = newHTMLPolicy()

func newHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "section")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// Default renders the documents embedded in the binary.
func Default() (*Library, error) {
	sub, err := fs.Sub(embedded, "docs")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// MustDefault is Default that panics on error.
func MustDefault() *Library {
	lib, err := Default()
	if err != nil {
		panic(err)
	}
	return lib
}

// Load renders every *.md file at the root of fsys. The slug is the file name without
// extension.
func Load(fsys fs.FS) (*Library, error) {
	matches, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, err
	}
	md := newMarkdown()
	lib := &Library{docs: make(map[string]Document, len(matches))}
	for _, name := range matches {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", name, err)
		}
		slug := strings.TrimSuffix(path.Base(name), path.Ext(name))
		doc, err := Render(md, slug, raw)
		if err != nil {
			return nil, err
		}
		lib.docs[slug] = doc
	}
	return lib, nil
}

// Render parses optional YAML front matter and converts the markdown body.
func Render(md goldmark.Markdown, slug string, raw []byte) (Document, error) {
	if md == nil {
		md = newMarkdown()
	}
	meta, body, err := splitFrontMatter(raw)
	if err != nil {
		return Document{}, fmt.Errorf("content: %s: %w", slug, err)
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Document{}, fmt.Errorf("content: %s: render: %w", slug, err)
	}

	doc := Document{
		Slug:    slug,
		Title:   strings.TrimSpace(meta.Title),
		Summary: strings.TrimSpace(meta.Summary),
		HTML:    strings.TrimSpace(htmlPolicy.Sanitize(buf.String())),
	}
	if meta.Updated != "" {
		updated, err := time.Parse(time.DateOnly, strings.TrimSpace(meta.Updated))
		if err != nil {
			return Document{}, fmt.Errorf("content: %s: updated: %w", slug, err)
		}
		doc.Updated = updated
	}
	return doc, nil
}

func splitFrontMatter(raw []byte) (frontMatter, []byte, error) {
	var meta frontMatter
	text := strings.TrimPrefix(string(raw), "\uFEFF")
	if !strings.HasPrefix(text, frontMatterDelim+"\n") {
		return meta, []byte(text), nil
	}
	rest := text[len(frontMatterDelim)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelim)
	if end < 0 {
		return meta, nil, errors.New("unterminated front matter")
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return meta, nil, fmt.Errorf("front matter: %w", err)
	}
	body := rest[end+len(frontMatterDelim)+1:]
	body = strings.TrimPrefix(body, "\n")
	return meta, []byte(body), nil
}

// Get returns the document with slug.
func (l *Library) Get(slug string) (Document, error) {
	doc, ok := l.docs[slug]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return doc, nil
}

// Slugs lists the available documents in sorted order.
func (l *Library) Slugs() []string {
	out := make([]string, 0, len(l.docs))
	for slug := range l.docs {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}
