package httpserver

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"webgro.in/website/internal/components"
	"webgro.in/website/internal/contact"
	custommw "webgro.in/website/internal/httpserver/middleware"
	"webgro.in/website/internal/httpx"
	"webgro.in/website/internal/nav"
	"webgro.in/website/internal/observability"
	"webgro.in/website/internal/pages"
	"webgro.in/website/internal/sections"
	"webgro.in/website/internal/site"
)

const maxContactBody = 64 << 10

type handlers struct {
	cfg      Config
	env      pages.Env
	resolver nav.Resolver
}

func newHandlers(cfg Config) *handlers {
	return &handlers{
		cfg: cfg,
		env: pages.Env{
			Site:        cfg.Site,
			Content:     cfg.Content,
			BaseURL:     cfg.BaseURL,
			ScrollDelay: cfg.ScrollDelay,
			Band:        cfg.Band,
			Now:         cfg.Now,
		},
		resolver: nav.NewResolver(cfg.ScrollDelay),
	}
}

func (h *handlers) bar(route site.Route) *nav.Bar {
	return nav.NewBar(h.cfg.Site, h.resolver, route, nav.WithPolicy(h.cfg.Policy), nav.WithBand(h.cfg.Band))
}

func (h *handlers) view(r *http.Request, route site.Route) pages.View {
	return pages.View{Bar: h.bar(route), CSRFToken: custommw.CSRFTokenFromContext(r.Context())}
}

// pageHandler returns the renderer registered for page, or nil when the page has no body.
func (h *handlers) pageHandler(page site.Page) http.HandlerFunc {
	route := page.Route
	switch {
	case route == "/":
		return h.render(route, h.env.Home)
	case route == "/product":
		return h.render(route, h.env.Product)
	case route == "/about":
		return h.render(route, h.env.About)
	case route == "/contact":
		return h.render(route, func(v pages.View) g.Node {
			return h.env.Contact(v, components.ContactFormState{})
		})
	case page.Content != "":
		slug := page.Content
		return func(w http.ResponseWriter, r *http.Request) {
			doc, err := h.cfg.Content.Get(slug)
			if err != nil {
				observability.FromContext(r.Context()).Error("document missing", zap.String("slug", slug), zap.Error(err))
				h.notFound(w, r)
				return
			}
			writeHTML(w, r, http.StatusOK, h.env.Document(h.view(r, route), route, doc))
		}
	default:
		return nil
	}
}

func (h *handlers) render(route site.Route, page func(pages.View) g.Node) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHTML(w, r, http.StatusOK, page(h.view(r, route)))
	}
}

func (h *handlers) notFound(w http.ResponseWriter, r *http.Request) {
	if httpx.WantsJSON(r) {
		httpx.WriteError(r.Context(), w, httpx.NewError("not_found", "page not found", http.StatusNotFound))
		return
	}
	writeHTML(w, r, http.StatusNotFound, h.env.NotFound(h.view(r, site.Route(r.URL.Path))))
}

// navFragment re-renders the navigation bar from the state the browser reports: the
// current route and menu, the active section, an optional toggle and the latest
// visibility batch ("seen" entered the band in order, "left" exited it).
func (h *handlers) navFragment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bar := h.bar(site.Route(q.Get("route")))
	bar.SetMenu(q.Get("menu") == "open")
	if active := strings.TrimSpace(q.Get("active")); active != "" {
		bar.Observe([]sections.Observation{{ID: site.SectionID(active), Intersecting: true}})
	}
	if q.Get("toggle") != "" {
		bar.Toggle()
	}

	var batch []sections.Observation
	for _, id := range splitIDs(q["left"]) {
		batch = append(batch, sections.Observation{ID: id})
	}
	for _, id := range splitIDs(q["seen"]) {
		batch = append(batch, sections.Observation{ID: id, Intersecting: true})
	}
	if len(batch) > 0 {
		bar.Observe(batch)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeHTML(w, r, http.StatusOK, components.Navbar(h.cfg.Site, bar))
}

func splitIDs(values []string) []site.SectionID {
	var out []site.SectionID
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, site.SectionID(part))
			}
		}
	}
	return out
}

// contactPost handles the form without JavaScript and re-renders the whole contact page.
func (h *handlers) contactPost(w http.ResponseWriter, r *http.Request) {
	state, status := h.submitForm(r)
	writeHTML(w, r, status, h.env.Contact(h.view(r, "/contact"), state))
}

// contactFragment handles htmx form posts and returns only the form. htmx skips swaps
// for error statuses, so every outcome is answered with 200.
func (h *handlers) contactFragment(w http.ResponseWriter, r *http.Request) {
	state, _ := h.submitForm(r)
	w.Header().Set("Cache-Control", "no-store")
	writeHTML(w, r, http.StatusOK, components.ContactForm(state))
}

func (h *handlers) submitForm(r *http.Request) (components.ContactFormState, int) {
	token := custommw.CSRFTokenFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		notice := contact.ValidationNotice()
		return components.ContactFormState{Notice: &notice, CSRFToken: token}, bodyErrorStatus(err)
	}
	draft := contact.Draft{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Company: r.PostFormValue("company"),
		Message: r.PostFormValue("message"),
	}

	key := token
	if key == "" {
		key = custommw.ClientIP(r)
	}
	res, err := h.cfg.Submitter.Submit(r.Context(), key, draft)
	state := components.ContactFormState{Draft: res.Draft, Notice: &res.Notice, CSRFToken: token}

	var vErr *contact.ValidationError
	if errors.As(err, &vErr) {
		state.Invalid = vErr.Fields()
	}
	return state, statusFor(err)
}

type contactResponse struct {
	ID     string         `json:"id"`
	DryRun bool           `json:"dry_run,omitempty"`
	Notice contact.Notice `json:"notice"`
}

// apiContact accepts an application/json draft; other media types get 415 so browsers
// cannot send it as a simple cross-site post. The in-flight guard is keyed by client address.
func (h *handlers) apiContact(w http.ResponseWriter, r *http.Request) {
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		httpx.WriteError(r.Context(), w, httpx.NewError("unsupported_media_type", "request body must be application/json", http.StatusUnsupportedMediaType))
		return
	}

	var draft contact.Draft
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&draft); err != nil {
		status := bodyErrorStatus(err)
		code := "invalid_json"
		if status == http.StatusRequestEntityTooLarge {
			code = "body_too_large"
		}
		httpx.WriteError(r.Context(), w, httpx.NewError(code, "request body must be a JSON contact draft", status))
		return
	}

	res, err := h.cfg.Submitter.Submit(r.Context(), custommw.ClientIP(r), draft)
	if err != nil {
		details := map[string]any{"notice": res.Notice, "id": res.ID}
		var vErr *contact.ValidationError
		if errors.As(err, &vErr) {
			details["fields"] = vErr.Fields()
		}
		httpx.WriteError(r.Context(), w, httpx.NewError(codeFor(err), res.Notice.Title, statusFor(err)).WithDetails(details))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, contactResponse{ID: res.ID, DryRun: res.DryRun, Notice: res.Notice})
}

func bodyErrorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, contact.ErrMissingRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, contact.ErrSubmissionInProgress):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, contact.ErrMissingRequired):
		return "invalid_submission"
	case errors.Is(err, contact.ErrSubmissionInProgress):
		return "submission_in_progress"
	case errors.Is(err, contact.ErrRelayRejected):
		return "relay_rejected"
	default:
		return "relay_unavailable"
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeHTML(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
	}
}
