package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultRelayTimeout = 10 * time.Second
	subjectPrefix       = "New Contact Form Submission from "
)

// Payload is the JSON document posted to the relay.
type Payload struct {
	AccessKey string `json:"access_key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Message   string `json:"message"`
	Subject   string `json:"subject"`
	FromName  string `json:"from_name"`
}

// Subject derives the mail subject from the sender's name.
func Subject(name string) string {
	return subjectPrefix + name
}

// Response is the relay's answer.
type Response struct {
	Success bool
	Message string
}

// Sender delivers a payload to the relay.
type Sender interface {
	Send(ctx context.Context, payload Payload) (Response, error)
}

// RelayClient posts submissions to an HTTP form relay.
type RelayClient struct {
	url    string
	http   *http.Client
	tracer trace.Tracer
}

// RelayOption customises a RelayClient.
type RelayOption func(*RelayClient)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) RelayOption {
	return func(r *RelayClient) {
		if c != nil {
			r.http = c
		}
	}
}

// WithTracer overrides the tracer used for relay spans.
func WithTracer(t trace.Tracer) RelayOption {
	return func(r *RelayClient) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewRelayClient constructs a client posting to url with the given timeout.
func NewRelayClient(url string, timeout time.Duration, opts ...RelayOption) *RelayClient {
	if timeout <= 0 {
		timeout = defaultRelayTimeout
	}
	c := &RelayClient{
		url:    strings.TrimSpace(url),
		http:   &http.Client{Timeout: timeout},
		tracer: otel.Tracer("webgro.in/website/internal/contact"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type relayPayload struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// Send performs one POST. Any transport error, non-2xx status, undecodable body, missing
// success flag or success=false is an error.
func (c *RelayClient) Send(ctx context.Context, payload Payload) (Response, error) {
	ctx, span := c.tracer.Start(ctx, "contact.relay",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.request.method", http.MethodPost)),
	)
	defer span.End()

	resp, err := c.send(ctx, payload, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return resp, err
	}
	span.SetStatus(codes.Ok, "")
	return resp, nil
}

func (c *RelayClient) send(ctx context.Context, payload Payload, span trace.Span) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("contact: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("contact: build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("contact: relay request: %w", err)
	}
	defer res.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return Response{}, fmt.Errorf("%w: status %d: %s", ErrRelayRejected, res.StatusCode, drainError(res.Body))
	}

	var decoded relayPayload
	if err := json.NewDecoder(io.LimitReader(res.Body, 64<<10)).Decode(&decoded); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if decoded.Success == nil {
		return Response{}, fmt.Errorf("%w: success flag missing", ErrMalformedResponse)
	}
	out := Response{Success: *decoded.Success, Message: strings.TrimSpace(decoded.Message)}
	if !out.Success {
		return out, fmt.Errorf("%w: %s", ErrRelayRejected, out.Message)
	}
	return out, nil
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
