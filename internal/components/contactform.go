package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"webgro.in/website/internal/contact"
)

const (
	// ContactFormID is the element id swapped by the contact form fragment.
	ContactFormID = "contact-form"
	// ContactFragmentPath accepts htmx form posts.
	ContactFragmentPath = "/partials/contact"
	// CSRFFieldName carries the CSRF token in form posts.
	CSRFFieldName = "csrf_token"
)

// ContactFormState is the form as it should be rendered: the draft to prefill, the fields
// to flag and the notice from the last submission.
type ContactFormState struct {
	Draft     contact.Draft
	Invalid   []string
	Notice    *contact.Notice
	CSRFToken string
}

func (s ContactFormState) invalid(field string) bool {
	for _, f := range s.Invalid {
		if f == field {
			return true
		}
	}
	return false
}

// ContactForm renders the contact form. Without JavaScript it posts to /contact; with
// htmx it swaps itself with the fragment response.
func ContactForm(state ContactFormState) g.Node {
	return Form(
		ID(ContactFormID),
		Class("contact-form"),
		Method("post"),
		Action("/contact"),
		g.Attr("hx-post", ContactFragmentPath),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "#contact-submit"),
		NoticeBanner(state.Notice),
		Input(Type("hidden"), Name(CSRFFieldName), Value(state.CSRFToken)),
		Div(
			Class("form-row"),
			field(state, "name", "Name *", "text", "Your name", state.Draft.Name, true),
			field(state, "email", "Email *", "email", "you@company.com", state.Draft.Email, true),
		),
		Div(
			Class("form-row"),
			field(state, "phone", "Phone", "tel", "+91 98765 43210", state.Draft.Phone, false),
			field(state, "company", "Company / Food Court", "text", "Your organisation", state.Draft.Company, false),
		),
		Div(
			Class(fieldClass(state.invalid("message"))),
			Label(For("contact-message"), g.Text("Message *")),
			Textarea(
				ID("contact-message"),
				Name("message"),
				Rows("5"),
				Placeholder("Tell us about your food court and what you're looking for..."),
				Required(),
				g.If(state.invalid("message"), Aria("invalid", "true")),
				g.Text(state.Draft.Message),
			),
		),
		Button(
			ID("contact-submit"),
			Type("submit"),
			Class("btn btn-primary btn-lg"),
			Span(Class("when-idle"), g.Text("Send Message")),
			Span(Class("htmx-indicator"), g.Text("Sending...")),
		),
	)
}

func field(state ContactFormState, name, label, typ, placeholder, value string, required bool) g.Node {
	id := "contact-" + name
	return Div(
		Class(fieldClass(state.invalid(name))),
		Label(For(id), g.Text(label)),
		Input(
			ID(id),
			Name(name),
			Type(typ),
			Placeholder(placeholder),
			Value(value),
			g.If(required, Required()),
			g.If(state.invalid(name), Aria("invalid", "true")),
		),
	)
}

func fieldClass(invalid bool) string {
	if invalid {
		return "field is-invalid"
	}
	return "field"
}

// NoticeBanner renders a submission notice, or nothing when n is nil.
func NoticeBanner(n *contact.Notice) g.Node {
	if n == nil {
		return nil
	}
	role := "status"
	if n.Kind == contact.NoticeError {
		role = "alert"
	}
	return Div(
		Class(classes("notice", "notice-"+string(n.Kind))),
		Role(role),
		Strong(g.Text(n.Title)),
		P(g.Text(n.Body)),
	)
}
