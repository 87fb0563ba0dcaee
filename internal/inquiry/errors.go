package inquiry

import (
	"sort"
	"strings"
)

type ErrorKind int

const (
	RequiredError ErrorKind = iota + 1
	FormatError
	TooShortError
)

func (k ErrorKind) String() string {
	switch k {
	case RequiredError:
		return "required"
	case FormatError:
		return "format"
	case TooShortError:
		return "too_short"
	default:
		return "unknown"
	}
}

type FieldError struct {
	Kind    ErrorKind
	Message string
}

// FieldErrors holds every rule a form violated, keyed by field.
type FieldErrors map[Field]FieldError

func (fe FieldErrors) Error() string {
	fields := fe.Fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, string(f)+": "+fe[f].Message)
	}
	return "invalid inquiry: " + strings.Join(parts, "; ")
}

// Fields returns the failing fields in a stable order.
func (fe FieldErrors) Fields() []Field {
	out := make([]Field, 0, len(fe))
	for f := range fe {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Messages flattens the errors to field name → message, the shape the UI
// and the JSON API show.
func (fe FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(fe))
	for f, e := range fe {
		out[string(f)] = e.Message
	}
	return out
}

const (
	msgFullNameRequired = "Full Name is required"
	msgEmailRequired    = "Email is required"
	msgEmailFormat      = "Invalid email format"
	msgBudgetRequired   = "Please select a budget range"
	msgServiceRequired  = "Please select a service"
	msgMessageRequired  = "Please tell us about your project"
	msgMessageTooShort  = "Message is too short"
	msgConsentRequired  = "You must accept the terms"
)
