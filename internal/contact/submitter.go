package contact

import (
	"context"
	"crypto/rand"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"webgro.in/website/internal/observability"
)

// Config configures a Submitter.
type Config struct {
	AccessKey string
	FromName  string
	// FallbackEmail is offered to the visitor when delivery fails.
	FallbackEmail string
}

// Result describes a finished submission.
type Result struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	DryRun  bool   `json:"dry_run,omitempty"`
	Notice  Notice `json:"notice"`
	// Draft is empty after success and the draft exactly as submitted after failure.
	Draft Draft `json:"draft"`
}

// Submitter validates drafts and sends them through a Sender, allowing one submission in
// flight per client key.
type Submitter struct {
	cfg     Config
	sender  Sender
	metrics *Metrics
	now     func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// SubmitterOption customises a Submitter.
type SubmitterOption func(*Submitter)

// WithMetrics records outcomes on m.
func WithMetrics(m *Metrics) SubmitterOption {
	return func(s *Submitter) { s.metrics = m }
}

// WithClock overrides the time source used for submission ids.
func WithClock(now func() time.Time) SubmitterOption {
	return func(s *Submitter) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSubmitter builds a submitter. When cfg.AccessKey is blank the sender is replaced by a
// dry-run sender that only logs.
func NewSubmitter(cfg Config, sender Sender, opts ...SubmitterOption) *Submitter {
	if cfg.AccessKey == "" || sender == nil {
		sender = DryRunSender{}
	}
	s := &Submitter{
		cfg:      cfg,
		sender:   sender,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DryRun reports whether submissions are logged instead of relayed.
func (s *Submitter) DryRun() bool {
	_, ok := s.sender.(DryRunSender)
	return ok
}

// Submit cleans, validates and relays draft once. The returned Result always carries the
// notice to show. Validation failures wrap ErrMissingRequired, a concurrent submission for
// the same key returns ErrSubmissionInProgress, and relay failures wrap the relay error.
func (s *Submitter) Submit(ctx context.Context, key string, draft Draft) (Result, error) {
	logger := observability.FromContext(ctx)
	cleaned := draft.Clean()
	res := Result{ID: s.newID(), Draft: draft}
	logger = logger.With(zap.String("submission_id", res.ID))

	if err := cleaned.Validate(); err != nil {
		s.metrics.record(outcomeInvalid)
		res.Notice = ValidationNotice()
		logger.Info("contact submission invalid", zap.Error(err))
		return res, err
	}

	if !s.acquire(key) {
		s.metrics.record(outcomeBusy)
		res.Notice = BusyNotice()
		logger.Warn("contact submission already in flight")
		return res, ErrSubmissionInProgress
	}
	defer s.release(key)

	payload := Payload{
		AccessKey: s.cfg.AccessKey,
		Name:      cleaned.Name,
		Email:     cleaned.Email,
		Phone:     cleaned.Phone,
		Company:   cleaned.Company,
		Message:   cleaned.Message,
		Subject:   Subject(cleaned.Name),
		FromName:  s.cfg.FromName,
	}

	start := time.Now()
	_, err := s.sender.Send(ctx, payload)
	if s.metrics != nil {
		s.metrics.RelayLatency.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		outcome := outcomeFailed
		if errors.Is(err, ErrRelayRejected) {
			outcome = outcomeRejected
		}
		s.metrics.record(outcome)
		res.Notice = FailureNotice(s.cfg.FallbackEmail)
		logger.Error("contact relay failed", zap.Error(err))
		return res, err
	}

	res.Success = true
	res.DryRun = s.DryRun()
	res.Draft = Draft{}
	res.Notice = SuccessNotice()
	if res.DryRun {
		s.metrics.record(outcomeDryRun)
	} else {
		s.metrics.record(outcomeSent)
	}
	logger.Info("contact submission sent", zap.Bool("dry_run", res.DryRun))
	return res, nil
}

// Busy reports whether key has a submission in flight.
func (s *Submitter) Busy(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[key]
	return ok
}

func (s *Submitter) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	if s.metrics != nil {
		s.metrics.InFlight.Inc()
	}
	return true
}

func (s *Submitter) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
	if s.metrics != nil {
		s.metrics.InFlight.Dec()
	}
}

func (s *Submitter) newID() string {
	return ulid.MustNew(ulid.Timestamp(s.now()), rand.Reader).String()
}

// DryRunSender logs payloads instead of sending them.
type DryRunSender struct{}

// Send logs the submission without the access key and reports success.
func (DryRunSender) Send(ctx context.Context, payload Payload) (Response, error) {
	observability.FromContext(ctx).Info("contact relay dry run",
		zap.String("subject", payload.Subject),
		zap.String("from_name", payload.FromName),
		zap.String("email", payload.Email),
		zap.Int("message_length", len(payload.Message)),
	)
	return Response{Success: true, Message: "dry run"}, nil
}
