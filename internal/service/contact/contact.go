package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/floxenta/floxenta_backend/pkg/constants"
	"github.com/floxenta/floxenta_backend/pkg/email"
	"github.com/floxenta/floxenta_backend/pkg/events"
	"github.com/floxenta/floxenta_backend/pkg/logs"
	"github.com/floxenta/floxenta_backend/pkg/observability"
	"github.com/floxenta/floxenta_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Request struct {
	FullName     string
	Email        string
	BusinessName string
	Phone        string
	Service      string
	BudgetRange  string
	Message      string
	Honeypot     string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service accepts inquiries arriving at the public contact endpoint.
type Service interface {
	// Submit relays req to the studio inbox. A filled honeypot is accepted
	// and dropped without error.
	Submit(ctx context.Context, req Request) error
}

// Mailer is the part of *email.Client the service needs.
type Mailer interface {
	Recipient() string
	Send(ctx context.Context, m email.Message) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	mailer    Mailer
	publisher events.Publisher
	recorder  *observability.InquiryRecorder
	logger    *slog.Logger
	now       func() time.Time
}

func New(mailer Mailer, publisher events.Publisher, recorder *observability.InquiryRecorder, logger *slog.Logger) Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &contactService{
		mailer:    mailer,
		publisher: publisher,
		recorder:  recorder,
		logger:    logs.Component(logger, "contact"),
		now:       time.Now,
	}
}

func (s *contactService) Submit(ctx context.Context, req Request) error {
	log := s.logger.With(reqctx.LogAttrs(ctx)...)

	if req.Honeypot != "" {
		log.InfoContext(ctx, "honeypot filled, inquiry dropped")
		s.recorder.Record(ctx, observability.OutcomeSpam)
		return nil
	}

	req = trimmed(req)
	if req.FullName == "" || req.Email == "" || req.Message == "" {
		s.recorder.Record(ctx, observability.OutcomeRejected)
		return ErrMissingFields
	}

	log = log.With(slog.String("service", req.Service), slog.String("budget_range", req.BudgetRange))

	msg := email.BuildInquiryNotification(s.mailer.Recipient(), email.InquiryEmailData{
		FullName:     req.FullName,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Service:      req.Service,
		BudgetRange:  req.BudgetRange,
		Message:      req.Message,
		SubmittedAt:  s.now(),
		RequestID:    reqctx.RequestIDFromContext(ctx),
		AppName:      constants.AppName,
	})

	outcome := observability.OutcomeDelivered
	if err := s.mailer.Send(ctx, msg); err != nil {
		var disabled email.ErrDisabled
		if !errors.As(err, &disabled) {
			log.ErrorContext(ctx, "inquiry mail failed", slog.Any("error", err))
			s.recorder.Record(ctx, observability.OutcomeFailed)
			return fmt.Errorf("%w: %w", ErrDelivery, err)
		}
		// no relay configured; keep the inquiry in the logs instead
		outcome = observability.OutcomeLogged
		log.WarnContext(ctx, "email disabled, inquiry logged only",
			slog.String("subject", msg.Subject),
			slog.String("reply_to", req.Email),
		)
	} else {
		log.InfoContext(ctx, "inquiry delivered", slog.String("subject", msg.Subject))
	}
	s.recorder.Record(ctx, outcome)

	ev := events.NewInquiryReceived(reqctx.RequestIDFromContext(ctx), req.Service, req.BudgetRange, req.BusinessName != "")
	if err := s.publisher.PublishInquiry(ctx, ev); err != nil {
		log.WarnContext(ctx, "publish inquiry event failed", slog.Any("error", err))
	}
	return nil
}

func trimmed(r Request) Request {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.BusinessName = strings.TrimSpace(r.BusinessName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Service = strings.TrimSpace(r.Service)
	r.BudgetRange = strings.TrimSpace(r.BudgetRange)
	r.Message = strings.TrimSpace(r.Message)
	return r
}
