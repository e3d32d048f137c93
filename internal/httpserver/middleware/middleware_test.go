package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(CSRFTokenFromContext(r.Context())))
	})
}

func TestCSRFIssuesTokenOnSafeRequests(t *testing.T) {
	handler := CSRF(CSRFConfig{})(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "webgro_csrf", cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, cookies[0].Value, rr.Body.String())
}

func TestCSRFValidatesUnsafeRequests(t *testing.T) {
	handler := HTMX()(CSRF(CSRFConfig{})(okHandler()))
	cookie := &http.Cookie{Name: "webgro_csrf", Value: "token-1"}

	t.Run("missing token is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("header token accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.AddCookie(cookie)
		req.Header.Set("X-CSRF-Token", "token-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("form field accepted", func(t *testing.T) {
		form := url.Values{"csrf_token": {"token-1"}, "name": {"Jane"}}
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("htmx mismatch returns json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/partials/contact", nil)
		req.AddCookie(cookie)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("X-CSRF-Token", "other")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusForbidden, rr.Code)
		require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		require.Contains(t, rr.Body.String(), "csrf_invalid")
	})
}

func TestLimitBodyRejectsOversizedFormBeforeCSRFCheck(t *testing.T) {
	reached := false
	handler := HTMX()(LimitBody(1024)(CSRF(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))))

	form := url.Values{"csrf_token": {"token-1"}, "message": {strings.Repeat("x", 4096)}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "webgro_csrf", Value: "token-1"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	require.False(t, reached)

	small := url.Values{"csrf_token": {"token-1"}, "message": {"Hi"}}
	req = httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(small.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "webgro_csrf", Value: "token-1"})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, reached)
}

func TestRequireHTMX(t *testing.T) {
	handler := HTMX()(RequireHTMX()(okHandler()))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/partials/nav", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/partials/nav", nil)
	req.Header.Set("HX-Request", "true")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "HX-Request", rr.Header().Get("Vary"))
}

func TestHTMXInfo(t *testing.T) {
	var (
		info    HTMXInfo
		partial bool
	)
	handler := HTMX()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info = HTMXInfoFromContext(r.Context())
		partial = IsHTMXRequest(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Boosted", "true")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, info.IsHTMX)
	require.True(t, info.IsBoosted)
	require.False(t, partial, "boosted navigations render full pages")
}

func TestKeyedLimiterThrottlesPerKey(t *testing.T) {
	limiter := NewKeyedLimiter(6, 2)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.Allow("a"))
	require.True(t, limiter.Allow("a"))
	require.False(t, limiter.Allow("a"))
	require.True(t, limiter.Allow("b"))

	now = now.Add(10 * time.Second)
	require.True(t, limiter.Allow("a"))
	require.Equal(t, 10*time.Second, limiter.RetryAfter())
}

func TestKeyedLimiterForgetsIdleKeys(t *testing.T) {
	limiter := NewKeyedLimiter(60, 1)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("a")
	limiter.Allow("b")
	require.Equal(t, 2, limiter.Len())

	now = now.Add(limiterIdleTTL + time.Minute)
	limiter.Allow("c")
	require.Equal(t, 1, limiter.Len())
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimit(NewKeyedLimiter(1, 1))(okHandler())

	send := func(remote string, accept string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = remote
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, http.StatusOK, send("10.0.0.1:1234", "").Code)
	rr := send("10.0.0.1:5678", "application/json")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	require.Equal(t, "60", rr.Header().Get("Retry-After"))
	require.Contains(t, rr.Body.String(), "rate_limited")
	require.Equal(t, http.StatusOK, send("10.0.0.2:1234", "").Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:4444"
	require.Equal(t, "192.0.2.7", ClientIP(req))
	req.RemoteAddr = "192.0.2.8"
	require.Equal(t, "192.0.2.8", ClientIP(req))
}

func TestAssetsWithCache(t *testing.T) {
	fsys := fstest.MapFS{"styles.css": {Data: []byte("body{}")}}
	handler := AssetsWithCache("/assets", fsys)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/styles.css", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "body{}", rr.Body.String())
	etag := rr.Header().Get("ETag")
	require.True(t, strings.HasPrefix(etag, `W/"`))
	require.Contains(t, rr.Header().Get("Cache-Control"), "max-age=604800")

	req := httptest.NewRequest(http.MethodGet, "/assets/styles.css", nil)
	req.Header.Set("If-None-Match", etag)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotModified, rr.Code)
}
