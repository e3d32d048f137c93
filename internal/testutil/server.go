package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"webgro.in/website/internal/contact"
	"webgro.in/website/internal/content"
	"webgro.in/website/internal/httpserver"
	"webgro.in/website/internal/site"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithSubmitter wires a custom contact submitter.
func WithSubmitter(s *contact.Submitter) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Submitter = s
	}
}

// WithGatherer exposes reg on /metrics.
func WithGatherer(reg prometheus.Gatherer) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Gatherer = reg
	}
}

// WithContactRate overrides the per-client contact rate limit.
func WithContactRate(perMinute, burst int) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.ContactPerMinute = perMinute
		cfg.ContactBurst = burst
	}
}

// FixedNow is the clock used by test servers.
var FixedNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

// NewServer constructs an httptest server running the site's HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	siteCfg := site.MustDefault()
	cfg := httpserver.Config{
		Address:          ":0",
		BaseURL:          "https://webgro.in",
		Site:             siteCfg,
		Content:          content.MustDefault(),
		Submitter:        contact.NewSubmitter(contact.Config{FallbackEmail: siteCfg.Contact().Email}, nil),
		ScrollDelay:      100 * time.Millisecond,
		ContactPerMinute: 600,
		ContactBurst:     100,
		CSRFCookieName:   "webgro_csrf",
		CSRFHeaderName:   "X-CSRF-Token",
		Now:              func() time.Time { return FixedNow },
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	srv := httpserver.New(cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
