package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"webgro.in/website/internal/components"
)

var homeFeatures = []card{
	{"lucide:qr-code", "Unified QR for All", "One QR code grants access to every restaurant in the food court. No more hunting for different menus."},
	{"lucide:clock", "Real-Time Tracking", "Track your order from kitchen to table with live status updates on your phone."},
	{"lucide:store", "PetPooja Integration", "Seamlessly syncs with PetPooja POS for automated order management and inventory."},
	{"lucide:trending-up", "Platform Revenue", "Food courts earn a platform fee on every transaction, creating a sustainable revenue stream."},
}

var homeSteps = []step{
	{"01", "Scan", "Scan the QR code at your table"},
	{"02", "Order", "Browse all restaurants, add items to cart"},
	{"03", "Pay", "Pay securely via UPI, cards, or wallets"},
	{"04", "Track", "Get real-time updates until delivery"},
}

var homeBenefits = []string{
	"Zero app downloads required",
	"Works on any smartphone",
	"Multi-language support",
	"Real-time menu updates",
	"Split billing support",
	"Digital receipts",
}

type testimonial struct {
	Name  string
	Role  string
	Quote string
}

var homeTestimonials = []testimonial{
	{"Rajesh Kumar", "Food Court Manager, Phoenix Mall", "WebGro transformed our operations. Order wait times dropped by 40% and customer satisfaction soared."},
	{"Priya Sharma", "Restaurant Owner, Curry House", "The PetPooja integration is seamless. Orders flow directly to our kitchen display without any manual entry."},
	{"Amit Patel", "Operations Head, Select Citywalk", "The platform fee model creates real value for us. It's a win-win for the food court and restaurants."},
}

// Home renders the landing page.
func (e Env) Home(v View) g.Node {
	return e.layout(v, e.meta("/"),
		hero("One QR for the", "Entire Food Court",
			"Customers scan once, browse all restaurants, order, pay, and track in real time. No apps. No hassle.",
			components.ButtonLink("/contact", "Request Demo", "primary"),
			components.ButtonLink("/contact", "Contact Us", "outline"),
		),
		Section(
			Class("band"),
			components.Container(
				Div(Class("stats"),
					components.Stat("50+", "Food courts"),
					components.Stat("40%", "Shorter waits"),
					components.Stat("0", "App downloads"),
				),
			),
		),
		Section(
			Class("band"),
			components.Container(
				components.SectionHeading("How it works", "Four steps from table to tray",
					"From scanning to savoring, the entire journey takes just minutes."),
				steps(homeSteps),
			),
		),
		Section(
			Class("band band-muted"),
			components.Container(
				components.SectionHeading("Features", "Built for food courts",
					"Every feature is designed to enhance customer experience while maximizing operational efficiency for food court operators."),
				cards(homeFeatures),
			),
		),
		Section(
			Class("band"),
			components.Container(
				components.SectionHeading("", "Ordering without friction",
					"No app downloads, no registrations. Just scan and start ordering from any restaurant instantly."),
				checklist(homeBenefits),
				components.ButtonLink("/product", "Explore the product", "primary"),
			),
		),
		Section(
			Class("band band-muted"),
			components.Container(
				components.SectionHeading("Testimonials", "Trusted by Industry Leaders",
					"See what food court operators and restaurant owners say about WebGro."),
				Div(Class("card-grid"), g.Group(g.Map(homeTestimonials, func(t testimonial) g.Node {
					return g.El("figure",
						Class("card testimonial"),
						g.El("blockquote", P(g.Text(t.Quote))),
						g.El("figcaption", Strong(g.Text(t.Name)), Span(g.Text(t.Role))),
					)
				}))),
			),
		),
		cta("Ready to Transform Your Food Court?",
			"Join the digital revolution. Get started with WebGro today and see the difference.",
			components.ButtonLink("/contact", "Request Demo", "primary"),
			components.ButtonLink("/contact", "Contact Sales", "outline"),
		),
	)
}
