package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Inquiry outcomes recorded by the contact endpoint.
const (
	OutcomeDelivered = "delivered"
	OutcomeLogged    = "logged"
	OutcomeSpam      = "spam"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// InquiryRecorder counts contact-form inquiries by outcome.
type InquiryRecorder struct {
	counter metric.Int64Counter
}

func NewInquiryRecorder(meter metric.Meter) (*InquiryRecorder, error) {
	counter, err := meter.Int64Counter(
		"floxenta_inquiries",
		metric.WithDescription("Contact-form inquiries received, by outcome"),
		metric.WithUnit("{inquiry}"),
	)
	if err != nil {
		return nil, err
	}
	return &InquiryRecorder{counter: counter}, nil
}

// Inquiries returns a recorder exported through p's Prometheus registry.
func (p *Provider) Inquiries() (*InquiryRecorder, error) {
	return NewInquiryRecorder(p.Meter())
}

// Record adds one inquiry with the given outcome. A nil recorder is a no-op.
func (r *InquiryRecorder) Record(ctx context.Context, outcome string) {
	if r == nil {
		return
	}
	r.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
