package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"webgro.in/website/internal/components"
	"webgro.in/website/internal/contact"
	"webgro.in/website/internal/content"
	custommw "webgro.in/website/internal/httpserver/middleware"
	"webgro.in/website/internal/observability"
	"webgro.in/website/internal/sections"
	"webgro.in/website/internal/site"
	"webgro.in/website/public"
)

// Config holds runtime options for the site's HTTP server.
type Config struct {
	Address string
	BaseURL string

	Site      *site.Config
	Content   *content.Library
	Submitter *contact.Submitter
	Logger    *zap.Logger
	// Gatherer is exposed on /metrics when set.
	Gatherer prometheus.Gatherer

	ScrollDelay time.Duration
	Band        sections.Band
	Policy      sections.Policy

	ContactPerMinute int
	ContactBurst     int

	CSRFCookieName   string
	CSRFCookieSecure bool
	CSRFHeaderName   string

	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration

	Now func() time.Time
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) *http.Server {
	cfg = withDefaults(cfg)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLoggerMiddleware(cfg.Logger))
	router.Use(observability.RequestLoggerMiddleware)
	router.Use(observability.RecoveryMiddleware(cfg.Logger))
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(cfg.RequestTimeout))

	staticContent, err := public.StaticFS()
	if err != nil {
		cfg.Logger.Fatal("embed static", zap.Error(err))
	}
	router.Handle("/assets/*", custommw.AssetsWithCache("/assets", staticContent))

	router.Get("/healthz", healthHandler)
	if cfg.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	h := newHandlers(cfg)
	limiter := custommw.NewKeyedLimiter(cfg.ContactPerMinute, cfg.ContactBurst)

	router.With(custommw.HTMX(), custommw.LimitBody(maxContactBody), custommw.RateLimit(limiter)).Post("/api/contact", h.apiContact)

	router.Group(func(r chi.Router) {
		r.Use(custommw.HTMX())
		r.Use(custommw.LimitBody(maxContactBody))
		r.Use(custommw.CSRF(custommw.CSRFConfig{
			CookieName: cfg.CSRFCookieName,
			HeaderName: cfg.CSRFHeaderName,
			FieldName:  components.CSRFFieldName,
			Secure:     cfg.CSRFCookieSecure,
		}))

		for _, page := range cfg.Site.Pages() {
			if handler := h.pageHandler(page); handler != nil {
				r.Get(page.Route.String(), handler)
			}
		}

		r.With(custommw.RateLimit(limiter)).Post("/contact", h.contactPost)
		RegisterFragment(r, components.NavFragmentPath, h.navFragment)
		r.With(custommw.RequireHTMX(), custommw.RateLimit(limiter)).Post(components.ContactFragmentPath, h.contactFragment)

		r.NotFound(h.notFound)
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func withDefaults(cfg Config) Config {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Site == nil {
		cfg.Site = site.MustDefault()
	}
	if cfg.Content == nil {
		cfg.Content = content.MustDefault()
	}
	if cfg.Submitter == nil {
		cfg.Submitter = contact.NewSubmitter(contact.Config{FallbackEmail: cfg.Site.Contact().Email}, nil)
	}
	if !cfg.Band.Valid() {
		cfg.Band = sections.DefaultBand
	}
	if cfg.ContactPerMinute <= 0 {
		cfg.ContactPerMinute = 6
	}
	if cfg.ContactBurst <= 0 {
		cfg.ContactBurst = 3
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 60 * time.Second
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return cfg
}

// RegisterFragment registers a GET handler intended for htmx fragment rendering.
func RegisterFragment(r chi.Router, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX()).Get(pattern, handler)
}
