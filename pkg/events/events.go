// Package events publishes contact-form lifecycle events over NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/floxenta/floxenta_backend/pkg/constants"
)

// InquiryReceived is emitted once an inquiry has been handed to the mail
// relay. It carries routing data only; the message body stays in the inbox.
type InquiryReceived struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id,omitempty"`
	Service     string    `json:"service"`
	BudgetRange string    `json:"budget_range"`
	HasBusiness bool      `json:"has_business"`
	ReceivedAt  time.Time `json:"received_at"`
}

// NewInquiryReceived stamps a fresh event ID and receive time.
func NewInquiryReceived(requestID, service, budgetRange string, hasBusiness bool) InquiryReceived {
	return InquiryReceived{
		ID:          uuid.NewString(),
		RequestID:   requestID,
		Service:     service,
		BudgetRange: budgetRange,
		HasBusiness: hasBusiness,
		ReceivedAt:  time.Now().UTC(),
	}
}

type Publisher interface {
	PublishInquiry(ctx context.Context, ev InquiryReceived) error
}

// Noop drops every event. Used when no NATS URL is configured.
type Noop struct{}

func (Noop) PublishInquiry(context.Context, InquiryReceived) error { return nil }

type NATSPublisher struct {
	nc      *nats.Conn
	subject string
}

func NewNATSPublisher(nc *nats.Conn) *NATSPublisher {
	return &NATSPublisher{nc: nc, subject: constants.InquirySubject}
}

func (p *NATSPublisher) PublishInquiry(ctx context.Context, ev InquiryReceived) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode inquiry event: %w", err)
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", p.subject, err)
	}
	return nil
}

// DecodeInquiry parses a message published by PublishInquiry.
func DecodeInquiry(data []byte) (InquiryReceived, error) {
	var ev InquiryReceived
	if err := json.Unmarshal(data, &ev); err != nil {
		return InquiryReceived{}, fmt.Errorf("decode inquiry event: %w", err)
	}
	if ev.ID == "" {
		return InquiryReceived{}, fmt.Errorf("decode inquiry event: missing id")
	}
	return ev, nil
}

// SubscribeInquiries calls fn for every well-formed inquiry event. Malformed
// payloads are passed to onErr and skipped.
func SubscribeInquiries(nc *nats.Conn, fn func(InquiryReceived), onErr func(error)) (*nats.Subscription, error) {
	return nc.Subscribe(constants.InquirySubject, func(msg *nats.Msg) {
		ev, err := DecodeInquiry(msg.Data)
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return
		}
		fn(ev)
	})
}
