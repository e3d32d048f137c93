package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method  string
	headers http.Header
	body    map[string]any
}

func newRelay(t *testing.T, status int, response string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		captured = append(captured, capturedRequest{method: r.Method, headers: r.Header.Clone(), body: body})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestRelaySendsJSONPayload(t *testing.T) {
	t.Parallel()

	srv, captured := newRelay(t, http.StatusOK, `{"success":true,"message":"Email sent"}`)
	client := NewRelayClient(srv.URL, time.Second)

	resp, err := client.Send(context.Background(), Payload{
		AccessKey: "key",
		Name:      "Jane",
		Email:     "jane@x.com",
		Message:   "Hi",
		Subject:   Subject("Jane"),
		FromName:  "WebGro Website",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "Email sent", resp.Message)

	require.Len(t, *captured, 1)
	got := (*captured)[0]
	require.Equal(t, http.MethodPost, got.method)
	require.Equal(t, "application/json", got.headers.Get("Content-Type"))
	require.Equal(t, "application/json", got.headers.Get("Accept"))
	require.Equal(t, map[string]any{
		"access_key": "key",
		"name":       "Jane",
		"email":      "jane@x.com",
		"phone":      "",
		"company":    "",
		"message":    "Hi",
		"subject":    "New Contact Form Submission from Jane",
		"from_name":  "WebGro Website",
	}, got.body)
}

func TestRelayFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"success false", http.StatusOK, `{"success":false,"message":"X"}`, ErrRelayRejected},
		{"server error", http.StatusInternalServerError, `{"success":true}`, ErrRelayRejected},
		{"missing flag", http.StatusOK, `{"message":"ok"}`, ErrMalformedResponse},
		{"not json", http.StatusOK, `<html>`, ErrMalformedResponse},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv, _ := newRelay(t, tc.status, tc.body)
			_, err := NewRelayClient(srv.URL, time.Second).Send(context.Background(), Payload{Name: "Jane"})
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestRelayTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewRelayClient(url, time.Second).Send(context.Background(), Payload{})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrRelayRejected))
	require.False(t, errors.Is(err, ErrMalformedResponse))
}
