package inquiry

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// Gate decides whether a form may be sent. It holds no per-form state, so
// one Gate can serve any number of concurrent callers.
type Gate struct {
	services    []string
	allowed     map[string]struct{}
	budgets     map[string]struct{}
	phoneRegion string
	validate    *validator.Validate
}

type GateOption func(*Gate)

// WithPhoneRegion sets the region used to read phone numbers that have no
// international prefix. Defaults to "US".
func WithPhoneRegion(region string) GateOption {
	return func(g *Gate) {
		if r := strings.ToUpper(strings.TrimSpace(region)); r != "" {
			g.phoneRegion = r
		}
	}
}

// NewGate builds a gate accepting the given service titles plus OtherService.
func NewGate(services []string, opts ...GateOption) *Gate {
	g := &Gate{
		allowed:     make(map[string]struct{}, len(services)+1),
		budgets:     make(map[string]struct{}, len(BudgetRanges)),
		phoneRegion: "US",
		validate:    validator.New(),
	}
	for _, s := range services {
		s = strings.TrimSpace(s)
		if _, dup := g.allowed[s]; s == "" || dup || s == OtherService {
			continue
		}
		g.allowed[s] = struct{}{}
		g.services = append(g.services, s)
	}
	g.allowed[OtherService] = struct{}{}
	g.services = append(g.services, OtherService)

	for _, b := range BudgetRanges {
		g.budgets[b] = struct{}{}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Services returns the selectable services in display order, OtherService last.
func (g *Gate) Services() []string {
	out := make([]string, len(g.services))
	copy(out, g.services)
	return out
}

// Validate checks every field of f and returns the normalized inquiry, or a
// FieldErrors holding one entry per failing field. The honeypot is never a
// validation failure; callers inspect Inquiry.IsSpam.
func (g *Gate) Validate(f Form) (Inquiry, error) {
	errs := FieldErrors{}

	in := Inquiry{
		FullName:     strings.TrimSpace(f.FullName),
		Email:        strings.TrimSpace(f.Email),
		BusinessName: strings.TrimSpace(f.BusinessName),
		Phone:        strings.TrimSpace(f.Phone),
		Service:      strings.TrimSpace(f.Service),
		BudgetRange:  strings.TrimSpace(f.BudgetRange),
		Message:      strings.TrimSpace(f.Message),
		Honeypot:     f.Honeypot,
	}

	if in.FullName == "" {
		errs[FieldFullName] = FieldError{Kind: RequiredError, Message: msgFullNameRequired}
	}

	switch {
	case in.Email == "":
		errs[FieldEmail] = FieldError{Kind: RequiredError, Message: msgEmailRequired}
	case !g.validEmail(in.Email):
		errs[FieldEmail] = FieldError{Kind: FormatError, Message: msgEmailFormat}
	}

	if _, ok := g.budgets[in.BudgetRange]; !ok {
		errs[FieldBudgetRange] = FieldError{Kind: RequiredError, Message: msgBudgetRequired}
	}

	if _, ok := g.allowed[in.Service]; !ok {
		errs[FieldService] = FieldError{Kind: RequiredError, Message: msgServiceRequired}
	}

	switch n := utf8.RuneCountInString(in.Message); {
	case n == 0:
		errs[FieldMessage] = FieldError{Kind: RequiredError, Message: msgMessageRequired}
	case n < MinMessageLength:
		errs[FieldMessage] = FieldError{Kind: TooShortError, Message: msgMessageTooShort}
	}

	if !f.Consent {
		errs[FieldConsent] = FieldError{Kind: RequiredError, Message: msgConsentRequired}
	}

	if len(errs) > 0 {
		return Inquiry{}, errs
	}

	in.Phone = g.normalizePhone(in.Phone)
	return in, nil
}

func (g *Gate) validEmail(s string) bool {
	// the "email" tag also accepts display-name forms we do not want
	if strings.ContainsAny(s, " <>") {
		return false
	}
	return g.validate.Var(s, "required,email") == nil
}

// normalizePhone returns the E.164 form of a number that parses for the
// gate's region. Anything else is kept as typed; phone is free text.
func (g *Gate) normalizePhone(s string) string {
	if s == "" {
		return ""
	}
	num, err := phonenumbers.Parse(s, g.phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return s
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
