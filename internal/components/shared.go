package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(name string) g.Node {
	return A(
		Href("/"),
		Class("brand"),
		Aria("label", name+" home"),
		Span(Class("brand-mark"), g.Text("W")),
		Span(Class("brand-name"), g.Text(name)),
	)
}

// Icon renders an iconify icon. Names use the "set:name" form, e.g. "lucide:mail".
func Icon(name, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class("iconify icon"),
			Data("icon", name),
			Role("img"),
			Aria("label", ariaLabel),
		)
	}
	return Span(Class("iconify icon"), Data("icon", name), Aria("hidden", "true"))
}

// Container wraps children in the page-width container.
func Container(children ...g.Node) g.Node {
	return Div(Class("container"), g.Group(children))
}

// SectionHeading renders the eyebrow, heading and lead paragraph used atop content blocks.
func SectionHeading(eyebrow, heading, lead string) g.Node {
	return Div(
		Class("section-heading"),
		g.If(eyebrow != "", Span(Class("eyebrow"), g.Text(eyebrow))),
		H2(g.Text(heading)),
		g.If(lead != "", P(Class("lead"), g.Text(lead))),
	)
}

// Card is a titled feature card with an icon.
func Card(icon, heading, body string) g.Node {
	return Div(
		Class("card"),
		Span(Class("card-icon"), Icon(icon, "")),
		H3(g.Text(heading)),
		P(g.Text(body)),
	)
}

// Stat renders a headline number with its caption.
func Stat(value, caption string) g.Node {
	return Div(
		Class("stat"),
		Strong(g.Text(value)),
		Span(g.Text(caption)),
	)
}

// ButtonLink renders a call-to-action link styled as a button.
func ButtonLink(href, text, variant string) g.Node {
	return A(Href(href), Class(classes("btn", "btn-"+variant)), g.Text(text))
}

func classes(names ...string) string {
	var out []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

func millis(ms int64) string {
	return fmt.Sprintf("%d", ms)
}
