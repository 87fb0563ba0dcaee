package submission

import (
	"context"

	"github.com/floxenta/floxenta_backend/internal/inquiry"
)

// Transport delivers a validated inquiry somewhere. A nil error means the
// receiver accepted it.
type Transport interface {
	Send(ctx context.Context, in inquiry.Inquiry) error
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, in inquiry.Inquiry) error

func (f TransportFunc) Send(ctx context.Context, in inquiry.Inquiry) error {
	return f(ctx, in)
}

// Payload is the JSON body the contact endpoint expects.
type Payload struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Service      string `json:"service,omitempty"`
	BudgetRange  string `json:"budgetRange,omitempty"`
	Message      string `json:"message"`
	Honeypot     string `json:"honeypot,omitempty"`
}

func NewPayload(in inquiry.Inquiry) Payload {
	return Payload{
		FullName:     in.FullName,
		Email:        in.Email,
		BusinessName: in.BusinessName,
		Phone:        in.Phone,
		Service:      in.Service,
		BudgetRange:  in.BudgetRange,
		Message:      in.Message,
		Honeypot:     in.Honeypot,
	}
}
