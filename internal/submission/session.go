// Package submission drives a contact-form inquiry from raw input to a
// final status: validate, filter spam, send once, report.
package submission

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/floxenta/floxenta_backend/internal/inquiry"
	"github.com/floxenta/floxenta_backend/pkg/logs"
)

const DefaultTimeout = 15 * time.Second

// Session is one user's contact form. It allows a single attempt in flight
// at a time and keeps the form values until a send succeeds.
type Session struct {
	gate      *inquiry.Gate
	transport Transport
	timeout   time.Duration
	observer  func(Status)
	logger    *slog.Logger

	mu     sync.Mutex
	status Status
	form   inquiry.Form
}

type Option func(*Session)

// WithTimeout bounds each send attempt. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithObserver registers fn to receive every status transition. fn runs on
// the goroutine that caused the transition, outside the session lock.
func WithObserver(fn func(Status)) Option {
	return func(s *Session) { s.observer = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func NewSession(gate *inquiry.Gate, transport Transport, opts ...Option) *Session {
	s := &Session{
		gate:      gate,
		transport: transport,
		timeout:   DefaultTimeout,
		status:    Idle{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logs.Component(s.logger, "submission")
	return s
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Form returns the values currently held by the session: the last edit or
// submit, or an empty form after a successful send.
func (s *Session) Form() inquiry.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Edit records new form values. A finished attempt goes back to Idle.
func (s *Session) Edit(f inquiry.Form) error {
	s.mu.Lock()
	if _, busy := s.status.(Submitting); busy {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.form = f
	changed := s.setLocked(Idle{})
	s.mu.Unlock()

	if changed {
		s.notify(Idle{})
	}
	return nil
}

// Reset is "send another message": a finished attempt goes back to Idle
// and the form starts empty.
func (s *Session) Reset() error {
	s.mu.Lock()
	if _, busy := s.status.(Submitting); busy {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.form = inquiry.Form{}
	changed := s.setLocked(Idle{})
	s.mu.Unlock()

	if changed {
		s.notify(Idle{})
	}
	return nil
}

// Submit validates f and, if it passes, sends it. Invalid input returns
// inquiry.FieldErrors and leaves the status unchanged. Send failures are
// not returned as errors; they end in a Failed status with the form kept.
//
// Once sending has started the attempt is not cancelled by ctx; it ends on
// its own or when the session timeout expires.
func (s *Session) Submit(ctx context.Context, f inquiry.Form) (Status, error) {
	s.mu.Lock()
	switch s.status.(type) {
	case Submitting:
		s.mu.Unlock()
		return Submitting{}, ErrInFlight
	case Succeeded:
		s.mu.Unlock()
		return Succeeded{}, ErrAlreadySubmitted
	}

	s.form = f
	in, err := s.gate.Validate(f)
	if err != nil {
		st := s.status
		s.mu.Unlock()
		return st, err
	}
	s.setLocked(Submitting{})
	s.mu.Unlock()
	s.notify(Submitting{})

	if in.IsSpam() {
		s.logger.InfoContext(ctx, "honeypot filled, dropping inquiry")
		return s.finish(Succeeded{}), nil
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.transport.Send(sendCtx, in); err != nil {
		s.logger.WarnContext(ctx, "inquiry send failed",
			slog.String("service", in.Service),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
		return s.finish(Failed{Message: GenericFailureMessage, Cause: err}), nil
	}

	s.logger.InfoContext(ctx, "inquiry sent",
		slog.String("service", in.Service),
		slog.Duration("elapsed", time.Since(start)),
	)
	return s.finish(Succeeded{}), nil
}

func (s *Session) finish(st Status) Status {
	s.mu.Lock()
	if _, ok := st.(Succeeded); ok {
		s.form = inquiry.Form{}
	}
	s.setLocked(st)
	s.mu.Unlock()

	s.notify(st)
	return st
}

// setLocked reports whether the status actually changed.
func (s *Session) setLocked(st Status) bool {
	if s.status.String() == st.String() {
		return false
	}
	s.status = st
	return true
}

func (s *Session) notify(st Status) {
	if s.observer != nil {
		s.observer(st)
	}
}
