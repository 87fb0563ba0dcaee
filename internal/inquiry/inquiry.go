// Package inquiry defines a contact-form inquiry and the gate that admits
// or rejects it before anything is sent.
package inquiry

// Field names match the JSON keys of the contact form.
type Field string

const (
	FieldFullName     Field = "fullName"
	FieldEmail        Field = "email"
	FieldBusinessName Field = "businessName"
	FieldPhone        Field = "phone"
	FieldService      Field = "service"
	FieldBudgetRange  Field = "budgetRange"
	FieldMessage      Field = "message"
	FieldConsent      Field = "consent"
	FieldHoneypot     Field = "honeypot"
)

const (
	// OtherService is always selectable in addition to the catalog services.
	OtherService = "Other"

	MinMessageLength   = 20
	DefaultBudgetRange = "$5k - $10k"
)

// BudgetRanges is the fixed, ordered set of budget options.
var BudgetRanges = []string{
	"$1k - $5k",
	DefaultBudgetRange,
	"$10k - $25k",
	"$25k+",
}

// Form is raw, untrusted contact-form input.
type Form struct {
	FullName     string `json:"fullName" yaml:"fullName"`
	Email        string `json:"email" yaml:"email"`
	BusinessName string `json:"businessName,omitempty" yaml:"businessName"`
	Phone        string `json:"phone,omitempty" yaml:"phone"`
	Service      string `json:"service" yaml:"service"`
	BudgetRange  string `json:"budgetRange" yaml:"budgetRange"`
	Message      string `json:"message" yaml:"message"`
	Consent      bool   `json:"consent" yaml:"consent"`
	Honeypot     string `json:"honeypot,omitempty" yaml:"honeypot"`
}

// Inquiry is a Form that passed the gate, with its fields normalized.
// It is never stored; only the outcome of sending it outlives it.
type Inquiry struct {
	FullName     string
	Email        string
	BusinessName string
	Phone        string
	Service      string
	BudgetRange  string
	Message      string
	Honeypot     string
}

// IsSpam reports whether the hidden honeypot field was filled in.
func (i Inquiry) IsSpam() bool {
	return i.Honeypot != ""
}

// Form returns the inquiry as form values, e.g. to restore a form after a
// failed send.
func (i Inquiry) Form() Form {
	return Form{
		FullName:     i.FullName,
		Email:        i.Email,
		BusinessName: i.BusinessName,
		Phone:        i.Phone,
		Service:      i.Service,
		BudgetRange:  i.BudgetRange,
		Message:      i.Message,
		Consent:      true,
		Honeypot:     i.Honeypot,
	}
}
