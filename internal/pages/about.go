package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"webgro.in/website/internal/components"
	"webgro.in/website/internal/site"
)

const aboutRoute = "/about"

var aboutValues = []card{
	{"lucide:lightbulb", "Innovation First", "We constantly push boundaries to create technology that truly simplifies lives."},
	{"lucide:users", "Customer Obsession", "Every feature we build starts with understanding real user pain points."},
	{"lucide:shield", "Trust & Transparency", "We believe in honest communication with our partners and customers."},
	{"lucide:zap", "Speed of Execution", "We move fast, iterate quickly, and deliver value continuously."},
}

type difference struct {
	Traditional string
	WebGro      string
}

var aboutDifferences = []difference{
	{"Multiple apps for different restaurants", "One QR for all restaurants"},
	{"Manual order taking with errors", "Automated digital ordering"},
	{"Long queues at counters", "Order from your table"},
	{"No order tracking", "Real-time status updates"},
	{"Separate bills for each restaurant", "Unified cart and checkout"},
}

var aboutMilestones = []step{
	{"2023", "Founded", "Started with a vision to revolutionize food court dining"},
	{"2023", "First Pilot", "Launched in 5 food courts across Bangalore"},
	{"2024", "PetPooja Integration", "Partnered with India's leading restaurant POS"},
	{"2024", "50+ Food Courts", "Expanded across major cities in India"},
}

var aboutStory = []string{
	"It all started with a frustrating lunch break. Our founders were at a busy mall food court, hungry and in a hurry. They spent 20 minutes just figuring out which restaurant had what, standing in multiple queues, and waiting for orders they couldn't track.",
	"\"There has to be a better way,\" they thought. In an era where you can book flights, order groceries, and manage your entire life from your phone, why was ordering food in a food court still stuck in the Stone Age?",
	"That moment of frustration sparked WebGro. We set out to build the platform we wished existed: one where a single QR scan opens up the entire food court, where you can order from multiple restaurants in one cart, and where you know exactly when your food will be ready.",
}

// About renders the company page. Careers and press are addressable blocks; the blog
// teaser deliberately has no id, so links to /about#blog land at the top of the page.
func (e Env) About(v View) g.Node {
	return e.layout(v, e.meta(aboutRoute),
		hero("Making Food Courts", "Effortless",
			"WebGro was born from a simple frustration: why is ordering food in a food court so complicated?"),
		Section(
			Class("band"),
			components.Container(
				Div(Class("card-grid card-grid-2"),
					components.Card("lucide:target", "Our Mission", "To eliminate friction from food court ordering by providing a unified digital platform that connects customers with every restaurant through a single scan. We believe ordering food should be as easy as unlocking your phone."),
					components.Card("lucide:eye", "Our Vision", "A world where every food court, mall, and dining hub offers seamless digital ordering. We envision becoming the operating system for food courts globally, powering millions of orders while creating value for all stakeholders."),
				),
			),
		),
		Section(
			Class("band band-muted"),
			components.Container(
				components.SectionHeading("Our story", "How WebGro began", ""),
				g.Group(g.Map(aboutStory, func(p string) g.Node { return P(g.Text(p)) })),
			),
		),
		Section(
			Class("band"),
			components.Container(
				components.SectionHeading("Our difference", "Traditional vs WebGro",
					"We're not just another food ordering app. We're building infrastructure for the future of food courts."),
				Table(
					Class("compare"),
					THead(Tr(Th(g.Text("Traditional")), Th(g.Text("WebGro")))),
					TBody(g.Group(g.Map(aboutDifferences, func(d difference) g.Node {
						return Tr(Td(g.Text(d.Traditional)), Td(g.Text(d.WebGro)))
					}))),
				),
			),
		),
		Section(
			Class("band band-muted"),
			components.Container(
				components.SectionHeading("Our values", "What we stand for", "The principles that guide every decision we make."),
				cards(aboutValues),
			),
		),
		Section(
			Class("band"),
			components.Container(
				components.SectionHeading("Timeline", "Our journey so far", ""),
				steps(aboutMilestones),
			),
		),
		e.documentSection(aboutRoute, "careers"),
		Section(
			Class("band blog-teaser"),
			components.Container(
				components.SectionHeading("Blog", "Notes from the food court floor",
					"Stories from our partners and the team are on their way."),
			),
		),
		e.documentSection(aboutRoute, "press"),
		cta("Join Us in Shaping the Future",
			"Whether you're a food court operator, restaurant owner, or just someone who shares our vision, let's connect.",
			components.ButtonLink("/contact", "Get in Touch", "primary"),
		),
	)
}

// documentSection renders an embedded markdown document as an addressable block, or
// nothing when the document is missing.
func (e Env) documentSection(route site.Route, slug string) g.Node {
	if e.Content == nil {
		return nil
	}
	doc, err := e.Content.Get(slug)
	if err != nil {
		return nil
	}
	return e.observedSection(route, site.SectionID(slug), "band prose-block",
		components.Container(
			components.SectionHeading("", doc.Title, doc.Summary),
			Div(Class("prose"), g.Raw(doc.HTML)),
		),
	)
}
