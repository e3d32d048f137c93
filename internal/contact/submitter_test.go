package contact

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type senderFunc func(ctx context.Context, p Payload) (Response, error)

func (f senderFunc) Send(ctx context.Context, p Payload) (Response, error) { return f(ctx, p) }

func submissions(t *testing.T, reg *prometheus.Registry, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "webgro_contact_submissions_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == outcome {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

var janeDraft = Draft{Name: "Jane", Email: "jane@x.com", Phone: "+91 1", Company: "Acme", Message: "Hi"}

func liveConfig() Config {
	return Config{AccessKey: "key", FromName: "WebGro Website", FallbackEmail: "contact@webgro.in"}
}

func TestSubmitSuccessClearsDraft(t *testing.T) {
	t.Parallel()

	srv, captured := newRelay(t, http.StatusOK, `{"success":true}`)
	reg := prometheus.NewRegistry()
	s := NewSubmitter(liveConfig(), NewRelayClient(srv.URL, time.Second), WithMetrics(NewMetrics(reg)))
	require.False(t, s.DryRun())

	res, err := s.Submit(context.Background(), "client-1", janeDraft)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.False(t, res.DryRun)
	require.True(t, res.Draft.Empty())
	require.Equal(t, SuccessNotice(), res.Notice)
	require.Len(t, res.ID, 26)

	require.Equal(t, "New Contact Form Submission from Jane", (*captured)[0].body["subject"])
	require.Equal(t, "Acme", (*captured)[0].body["company"])
	require.Equal(t, float64(1), submissions(t, reg, outcomeSent))
	require.False(t, s.Busy("client-1"))
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	cases := map[string]Sender{
		"relay says no": senderFunc(func(context.Context, Payload) (Response, error) {
			return Response{Message: "X"}, errors.Join(ErrRelayRejected, errors.New("X"))
		}),
		"network throw": senderFunc(func(context.Context, Payload) (Response, error) {
			return Response{}, errors.New("dial tcp: connection refused")
		}),
	}
	for name, sender := range cases {
		s := NewSubmitter(liveConfig(), sender)
		res, err := s.Submit(context.Background(), "k", janeDraft)
		require.Error(t, err, name)
		require.False(t, res.Success, name)
		require.Equal(t, janeDraft, res.Draft, name)
		require.Equal(t, NoticeError, res.Notice.Kind, name)
		require.Contains(t, res.Notice.Body, "contact@webgro.in", name)
	}
}

func TestSubmitRelaysTextAsTypedAndReturnsItOnFailure(t *testing.T) {
	t.Parallel()

	var relayed Payload
	s := NewSubmitter(liveConfig(), senderFunc(func(_ context.Context, p Payload) (Response, error) {
		relayed = p
		return Response{}, errors.New("dial tcp: connection refused")
	}))

	typed := Draft{
		Name:    " Jane ",
		Email:   "jane@x.com",
		Company: "Tom &amp; Jerry",
		Message: "if a<b and c>d then",
	}
	res, err := s.Submit(context.Background(), "k", typed)
	require.Error(t, err)
	require.Equal(t, "if a<b and c>d then", relayed.Message)
	require.Equal(t, "Tom &amp; Jerry", relayed.Company)
	require.Equal(t, "Jane", relayed.Name)
	require.Equal(t, typed, res.Draft)
}

func TestSubmitRejectsOverlongMessage(t *testing.T) {
	t.Parallel()

	called := false
	s := NewSubmitter(liveConfig(), senderFunc(func(context.Context, Payload) (Response, error) {
		called = true
		return Response{Success: true}, nil
	}))

	typed := janeDraft
	typed.Message = strings.Repeat("x", maxMessageLength+1000)
	res, err := s.Submit(context.Background(), "k", typed)
	require.ErrorIs(t, err, ErrMissingRequired)
	require.False(t, called)
	require.Equal(t, typed, res.Draft)
}

func TestSubmitFalseResponseFromRelay(t *testing.T) {
	t.Parallel()

	srv, _ := newRelay(t, http.StatusOK, `{"success":false,"message":"X"}`)
	reg := prometheus.NewRegistry()
	s := NewSubmitter(liveConfig(), NewRelayClient(srv.URL, time.Second), WithMetrics(NewMetrics(reg)))

	res, err := s.Submit(context.Background(), "k", janeDraft)
	require.ErrorIs(t, err, ErrRelayRejected)
	require.Equal(t, janeDraft, res.Draft)
	require.Equal(t, float64(1), submissions(t, reg, outcomeRejected))
}

func TestSubmitValidationSkipsRelay(t *testing.T) {
	t.Parallel()

	called := false
	s := NewSubmitter(liveConfig(), senderFunc(func(context.Context, Payload) (Response, error) {
		called = true
		return Response{Success: true}, nil
	}))

	res, err := s.Submit(context.Background(), "k", Draft{Name: "Jane", Email: "nope"})
	require.ErrorIs(t, err, ErrMissingRequired)
	require.False(t, called)
	require.Equal(t, "Jane", res.Draft.Name)
	require.Equal(t, ValidationNotice(), res.Notice)
}

func TestSubmitRejectsConcurrentSubmissionForSameKey(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	unblock := make(chan struct{})
	var calls int
	var mu sync.Mutex
	s := NewSubmitter(liveConfig(), senderFunc(func(context.Context, Payload) (Response, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		close(entered)
		<-unblock
		return Response{Success: true}, nil
	}))

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), "same", janeDraft)
		done <- err
	}()
	<-entered
	require.True(t, s.Busy("same"))

	res, err := s.Submit(context.Background(), "same", janeDraft)
	require.ErrorIs(t, err, ErrSubmissionInProgress)
	require.Equal(t, BusyNotice(), res.Notice)
	require.Equal(t, janeDraft, res.Draft)

	close(unblock)
	require.NoError(t, <-done)
	require.False(t, s.Busy("same"))

	mu.Lock()
	require.Equal(t, 1, calls, "the second submission is not queued")
	mu.Unlock()
}

func TestSubmitDryRunWithoutAccessKey(t *testing.T) {
	t.Parallel()

	called := false
	s := NewSubmitter(Config{FromName: "WebGro Website"}, senderFunc(func(context.Context, Payload) (Response, error) {
		called = true
		return Response{Success: true}, nil
	}))
	require.True(t, s.DryRun())

	res, err := s.Submit(context.Background(), "k", janeDraft)
	require.NoError(t, err)
	require.False(t, called)
	require.True(t, res.Success)
	require.True(t, res.DryRun)
	require.True(t, res.Draft.Empty())
}

func TestSubmissionIDsUseClock(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewSubmitter(Config{}, nil, WithClock(func() time.Time { return fixed }))
	res, _ := s.Submit(context.Background(), "k", Draft{})
	require.Len(t, res.ID, 26)
	require.Equal(t, "01JGJ", res.ID[:5])
}
