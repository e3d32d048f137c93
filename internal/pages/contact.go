package pages

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"webgro.in/website/internal/components"
	"webgro.in/website/internal/seo"
	"webgro.in/website/internal/site"
)

const contactRoute = "/contact"

// Contact renders the contact page with the form in the given state.
func (e Env) Contact(v View, form components.ContactFormState) g.Node {
	if form.CSRFToken == "" {
		form.CSRFToken = v.CSRFToken
	}
	meta := e.meta(contactRoute)
	meta.JSONLD = append(meta.JSONLD, seo.JSON(seo.FAQPage(e.Site.FAQs())))
	ct := e.Site.Contact()

	return e.layout(v, meta,
		hero("Let's Start a", "Conversation",
			"Whether you're a food court operator looking to digitize, a restaurant wanting to join our network, or just curious about WebGro, we'd love to hear from you."),
		Section(
			Class("band"),
			components.Container(
				Div(
					Class("contact-grid"),
					Div(
						Class("contact-form-panel"),
						H2(g.Text("Send us a message")),
						P(Class("muted"), g.Text("Fill out the form and our team will get back to you within 24 hours.")),
						components.ContactForm(form),
					),
					Div(
						Class("contact-cards"),
						contactCards(ct),
						Div(
							Class("card demo-card"),
							Span(Class("card-icon"), components.Icon("lucide:calendar", "")),
							H3(g.Text("Schedule a Demo")),
							P(g.Text("See WebGro in action with a personalised walkthrough for your food court.")),
							A(Href("mailto:"+ct.Email+"?subject=Demo%20request"), Class("btn btn-outline"), g.Text("Book a Demo")),
						),
					),
				),
			),
		),
		Section(
			ID("help"),
			Class("band band-muted"),
			components.Container(
				components.SectionHeading("Help", "Frequently Asked Questions", ""),
				Div(Class("faq"), g.Group(g.Map(e.Site.FAQs(), func(f site.FAQ) g.Node {
					return g.El("details",
						Class("faq-item"),
						g.El("summary", g.Text(f.Question)),
						P(g.Text(f.Answer)),
					)
				}))),
			),
		),
	)
}

func contactCards(ct site.Contact) g.Node {
	var nodes []g.Node
	if ct.Email != "" {
		nodes = append(nodes, contactCard("lucide:mail", "Email Us", A(Href("mailto:"+ct.Email), g.Text(ct.Email)), "We reply within 24 hours"))
	}
	if ct.Phone != "" {
		nodes = append(nodes, contactCard("lucide:phone", "Call Us", A(Href("tel:"+strings.ReplaceAll(ct.Phone, " ", "")), g.Text(ct.Phone)), ct.Hours))
	}
	if ct.WhatsApp != "" {
		nodes = append(nodes, contactCard("lucide:message-circle", "WhatsApp",
			A(Href("https://wa.me/"+ct.WhatsApp), Target("_blank"), Rel("noopener noreferrer"), g.Text("Chat with us")),
			"Quick responses during business hours"))
	}
	if len(ct.Address) > 0 {
		nodes = append(nodes, contactCard("lucide:map-pin", "Visit Us", Span(g.Text(strings.Join(ct.Address, ", "))), ""))
	}
	return g.Group(nodes)
}

func contactCard(icon, heading string, primary g.Node, detail string) g.Node {
	return Div(
		Class("card contact-card"),
		Span(Class("card-icon"), components.Icon(icon, "")),
		H3(g.Text(heading)),
		P(primary),
		g.If(detail != "", P(Class("muted"), g.Text(detail))),
	)
}
