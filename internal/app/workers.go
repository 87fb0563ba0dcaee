package app

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/floxenta/floxenta_backend/pkg/events"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc  fx.Lifecycle
	NC  *nats.Conn
	Log *slog.Logger
}

func RegisterWorkers(p WorkerParams) {
	if p.NC == nil {
		p.Log.Info("nats not configured, inquiry workers disabled")
		return
	}

	var sub *nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			sub, err = startInquiryAuditWorker(p.NC, p.Log.With(slog.String("component", "inquiry_audit_worker")))
			return err
		},
		OnStop: func(ctx context.Context) error {
			// the connection drain in ProvideNatsClient flushes pending messages
			if sub == nil || !sub.IsValid() {
				return nil
			}
			return sub.Unsubscribe()
		},
	})
}

// ---------------------------------------------------------------------------
// inquiry_audit_worker
// ---------------------------------------------------------------------------

// startInquiryAuditWorker writes one structured audit line per received
// inquiry, so inquiry volume can be followed without reading the inbox.
func startInquiryAuditWorker(nc *nats.Conn, log *slog.Logger) (*nats.Subscription, error) {
	sub, err := events.SubscribeInquiries(nc, func(ev events.InquiryReceived) {
		log.Info("inquiry received",
			slog.String("event_id", ev.ID),
			slog.String("request_id", ev.RequestID),
			slog.String("service", ev.Service),
			slog.String("budget_range", ev.BudgetRange),
			slog.Bool("has_business", ev.HasBusiness),
			slog.Time("received_at", ev.ReceivedAt),
		)
	}, func(err error) {
		log.Warn("dropping malformed inquiry event", slog.Any("error", err))
	})
	if err != nil {
		return nil, err
	}
	log.Info("started")
	return sub, nil
}
