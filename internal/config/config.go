package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultEnvironment     = "local"
	defaultBaseURL         = "http://localhost:8080"
	defaultLogLevel        = "info"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultRelayURL        = "https://api.web3forms.com/submit"
	defaultRelayFromName   = "WebGro Website"
	defaultRelayTimeout    = 10 * time.Second
	defaultContactPerMin   = 6
	defaultContactBurst    = 3
	defaultScrollDelay     = 100 * time.Millisecond
	productionEnvironment  = "prod"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Log       LogConfig
	Relay     RelayConfig
	RateLimit RateLimitConfig
	Nav       NavConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Addr returns the listen address derived from Port.
func (s ServerConfig) Addr() string {
	if strings.HasPrefix(s.Port, ":") {
		return s.Port
	}
	return ":" + s.Port
}

// SiteConfig describes the deployment the site is served from.
type SiteConfig struct {
	Environment string
	BaseURL     string
}

// Production reports whether cookies and caching should assume a production deployment.
func (s SiteConfig) Production() bool {
	return s.Environment == productionEnvironment
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string
}

// RelayConfig points the contact form at the external form relay.
type RelayConfig struct {
	URL       string
	AccessKey string
	FromName  string
	Timeout   time.Duration
}

// DryRun reports whether submissions should be logged instead of relayed.
func (r RelayConfig) DryRun() bool {
	return strings.TrimSpace(r.AccessKey) == ""
}

// RateLimitConfig throttles contact submissions per client.
type RateLimitConfig struct {
	ContactPerMinute int
	ContactBurst     int
}

// NavConfig tunes client-side navigation behaviour.
type NavConfig struct {
	ScrollDelay time.Duration
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.LookupEnv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the site configuration by combining defaults, .env overrides,
// environment variables and explicit maps, in increasing order of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	port := stringWithDefault(lookup, "WEBGRO_PORT", "")
	if port == "" {
		// Cloud Run and most PaaS hosts inject PORT.
		port = stringWithDefault(lookup, "PORT", defaultPort)
	}

	cfg := Config{
		Server: ServerConfig{
			Port:            strings.TrimPrefix(strings.TrimSpace(port), ":"),
			ReadTimeout:     durationWithDefault(lookup, "WEBGRO_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    durationWithDefault(lookup, "WEBGRO_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     durationWithDefault(lookup, "WEBGRO_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
			RequestTimeout:  durationWithDefault(lookup, "WEBGRO_SERVER_REQUEST_TIMEOUT", defaultRequestTimeout),
			ShutdownTimeout: durationWithDefault(lookup, "WEBGRO_SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Site: SiteConfig{
			Environment: strings.ToLower(stringWithDefault(lookup, "WEBGRO_ENV", defaultEnvironment)),
			BaseURL:     strings.TrimRight(stringWithDefault(lookup, "WEBGRO_BASE_URL", defaultBaseURL), "/"),
		},
		Log: LogConfig{
			Level: strings.ToLower(stringWithDefault(lookup, "WEBGRO_LOG_LEVEL", defaultLogLevel)),
		},
		Relay: RelayConfig{
			URL:       stringWithDefault(lookup, "WEBGRO_RELAY_URL", defaultRelayURL),
			AccessKey: strings.TrimSpace(stringWithDefault(lookup, "WEBGRO_RELAY_ACCESS_KEY", "")),
			FromName:  stringWithDefault(lookup, "WEBGRO_RELAY_FROM_NAME", defaultRelayFromName),
			Timeout:   durationWithDefault(lookup, "WEBGRO_RELAY_TIMEOUT", defaultRelayTimeout),
		},
		RateLimit: RateLimitConfig{
			ContactPerMinute: intWithDefault(lookup, "WEBGRO_CONTACT_RATE_PER_MIN", defaultContactPerMin),
			ContactBurst:     intWithDefault(lookup, "WEBGRO_CONTACT_BURST", defaultContactBurst),
		},
		Nav: NavConfig{
			ScrollDelay: durationWithDefault(lookup, "WEBGRO_SCROLL_DELAY", defaultScrollDelay),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "Server.Port")
	} else if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		missing = append(missing, "Server.Port")
	}
	if cfg.Server.ReadTimeout <= 0 {
		missing = append(missing, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		missing = append(missing, "Server.WriteTimeout")
	}
	if !strings.HasPrefix(cfg.Site.BaseURL, "http://") && !strings.HasPrefix(cfg.Site.BaseURL, "https://") {
		missing = append(missing, "Site.BaseURL")
	}
	if !strings.HasPrefix(cfg.Relay.URL, "https://") && !strings.HasPrefix(cfg.Relay.URL, "http://") {
		missing = append(missing, "Relay.URL")
	}
	if cfg.Relay.Timeout <= 0 {
		missing = append(missing, "Relay.Timeout")
	}
	if strings.TrimSpace(cfg.Relay.FromName) == "" {
		missing = append(missing, "Relay.FromName")
	}
	if cfg.RateLimit.ContactPerMinute <= 0 {
		missing = append(missing, "RateLimit.ContactPerMinute")
	}
	if cfg.RateLimit.ContactBurst <= 0 {
		missing = append(missing, "RateLimit.ContactBurst")
	}
	if cfg.Nav.ScrollDelay < 0 {
		missing = append(missing, "Nav.ScrollDelay")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	values, err := godotenv.Read(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}
