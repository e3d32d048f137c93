package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const htmxContextKey contextKey = "htmx.info"

// HTMXInfo records whether a request came from htmx and whether it was a boosted page load.
type HTMXInfo struct {
	IsHTMX    bool
	IsBoosted bool
}

// HTMX annotates the request context with HTMXInfo read from the HX-* headers.
func HTMX() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := HTMXInfo{
				IsHTMX:    strings.EqualFold(r.Header.Get("HX-Request"), "true"),
				IsBoosted: strings.EqualFold(r.Header.Get("HX-Boosted"), "true"),
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), htmxContextKey, info)))
		})
	}
}

// HTMXInfoFromContext retrieves HTMX metadata; returns zero value if absent.
func HTMXInfoFromContext(ctx context.Context) HTMXInfo {
	val, ok := ctx.Value(htmxContextKey).(HTMXInfo)
	if !ok {
		return HTMXInfo{}
	}
	return val
}

// IsHTMXRequest returns true when the current request was initiated by htmx and is not a
// boosted full-page navigation.
func IsHTMXRequest(ctx context.Context) bool {
	info := HTMXInfoFromContext(ctx)
	return info.IsHTMX && !info.IsBoosted
}

// RequireHTMX answers 404 to anything but htmx requests, so fragment routes never render
// as standalone pages.
func RequireHTMX() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !HTMXInfoFromContext(r.Context()).IsHTMX {
				http.NotFound(w, r)
				return
			}
			w.Header().Add("Vary", "HX-Request")
			next.ServeHTTP(w, r)
		})
	}
}
