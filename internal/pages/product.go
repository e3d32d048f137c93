package pages

import (
	g "maragu.dev/gomponents"

	"webgro.in/website/internal/components"
)

const productRoute = "/product"

var customerSteps = []step{
	{"1", "Scan QR Code", "Customer scans the table QR code with their phone camera"},
	{"2", "Browse Restaurants", "View all restaurants in the food court with live menus"},
	{"3", "Add to Cart", "Select items from multiple restaurants into one cart"},
	{"4", "Pay Securely", "Complete payment via UPI, cards, or digital wallets"},
	{"5", "Track Order", "Receive real-time notifications on order status"},
}

var restaurantSteps = []step{
	{"1", "Order Received", "Order appears instantly on Kitchen Display System"},
	{"2", "Menu Sync", "PetPooja POS automatically syncs menu items and prices"},
	{"3", "Preparation", "Kitchen staff marks order progress in real-time"},
	{"4", "Ready Alert", "Customer gets notified when order is ready"},
}

var integrationFeatures = []card{
	{"lucide:refresh-cw", "Auto Menu Sync", "Menus sync automatically from PetPooja every 15 minutes"},
	{"lucide:settings", "Order Management", "Orders flow directly to KDS without manual entry"},
	{"lucide:layers", "Inventory Tracking", "Real-time stock updates prevent overselling"},
	{"lucide:shield", "Payment Reconciliation", "Automated daily settlement reports"},
}

var platformFeeDetails = []string{
	"Small percentage on each transaction",
	"No upfront costs for restaurants",
	"Transparent reporting dashboard",
	"Automated monthly settlements",
	"Revenue sharing flexibility",
}

// Product renders the product page. Its four sections carry the ids the section
// navigation scrolls to and observes.
func (e Env) Product(v View) g.Node {
	return e.layout(v, e.meta(productRoute),
		hero("The Future of", "Food Court Ordering",
			"A complete digital ecosystem that connects customers, restaurants, and food court operators through one seamless platform.",
			components.ButtonLink("/contact", "Get Started", "primary"),
		),
		e.observedSection(productRoute, "features", "band",
			components.Container(
				components.SectionHeading("Unified platform", "One platform for every restaurant",
					"Orders flow seamlessly from customer phones to kitchen displays without any manual intervention."),
				steps(restaurantSteps),
			),
		),
		e.observedSection(productRoute, "how-it-works", "band band-muted",
			components.Container(
				components.SectionHeading("How it works", "How the QR System Works",
					"From scanning to satisfied: the complete customer journey in five simple steps."),
				steps(customerSteps),
			),
		),
		e.observedSection(productRoute, "integrations", "band",
			components.Container(
				components.SectionHeading("Integrations", "Powered by PetPooja",
					"WebGro integrates directly with PetPooja, India's leading restaurant POS system, for automated operations."),
				cards(integrationFeatures),
			),
		),
		e.observedSection(productRoute, "pricing", "band band-muted",
			components.Container(
				components.SectionHeading("Pricing", "Platform Fee Model",
					"Food courts earn a sustainable revenue stream through our transparent platform fee structure. No upfront costs, just pure value creation."),
				checklist(platformFeeDetails),
				components.ButtonLink("/contact", "Discuss pricing", "primary"),
			),
		),
		cta("See WebGro in action",
			"Schedule a personalized demo and see how WebGro can transform your food court operations.",
			components.ButtonLink("/contact", "Request Demo", "primary"),
		),
	)
}
