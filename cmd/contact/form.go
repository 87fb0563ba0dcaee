package contact

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/floxenta/floxenta_backend/internal/inquiry"
	"github.com/floxenta/floxenta_backend/internal/submission"
)

const (
	consentText    = "I agree to the processing of my personal data as described in the Privacy Policy."
	successTitle   = "Message Sent!"
	successMessage = "Thank you for reaching out. We will get back to you within 24 hours."
)

var errNotSent = errors.New("inquiry was not sent")

// fillForm prompts for every field, starting from prev and showing the
// matching entry of errs as help on each prompt.
func fillForm(ctx context.Context, p Prompter, services []string, prev inquiry.Form, errs inquiry.FieldErrors) (inquiry.Form, error) {
	f := prev
	var err error

	help := func(field inquiry.Field) string { return errs[field].Message }

	if f.FullName, err = p.Input(ctx, "Full Name *", f.FullName, help(inquiry.FieldFullName)); err != nil {
		return f, err
	}
	if f.Email, err = p.Input(ctx, "Email *", f.Email, help(inquiry.FieldEmail)); err != nil {
		return f, err
	}
	if f.BusinessName, err = p.Input(ctx, "Business Name (Optional)", f.BusinessName, ""); err != nil {
		return f, err
	}
	if f.Phone, err = p.Input(ctx, "Phone (Optional)", f.Phone, ""); err != nil {
		return f, err
	}
	if f.Service, err = p.Select(ctx, "Interested Service *", services, f.Service, help(inquiry.FieldService)); err != nil {
		return f, err
	}
	budget := f.BudgetRange
	if budget == "" {
		budget = inquiry.DefaultBudgetRange
	}
	if f.BudgetRange, err = p.Select(ctx, "Budget Range *", inquiry.BudgetRanges, budget, help(inquiry.FieldBudgetRange)); err != nil {
		return f, err
	}
	if f.Message, err = p.TextArea(ctx, "Project Details *", f.Message, help(inquiry.FieldMessage)); err != nil {
		return f, err
	}
	if f.Consent, err = p.Confirm(ctx, consentText, f.Consent, help(inquiry.FieldConsent)); err != nil {
		return f, err
	}
	return f, nil
}

// runInteractive drives a session until the user stops: invalid input is
// re-prompted, failures offer a retry and successes offer another message.
func runInteractive(ctx context.Context, s *submission.Session, p Prompter, services []string, out io.Writer) error {
	var fieldErrs inquiry.FieldErrors
	for {
		f, err := fillForm(ctx, p, services, s.Form(), fieldErrs)
		if err != nil {
			return err
		}
		if err := s.Edit(f); err != nil {
			return err
		}

		st, err := s.Submit(ctx, f)
		fieldErrs = nil
		if errors.As(err, &fieldErrs) {
			printFieldErrors(out, fieldErrs)
			continue
		}
		if err != nil {
			return err
		}

		switch st := st.(type) {
		case submission.Succeeded:
			fmt.Fprintf(out, "\n%s\n%s\n\n", successTitle, successMessage)
			again, err := p.Confirm(ctx, "Send another message?", false, "")
			if err != nil || !again {
				return err
			}
			if err := s.Reset(); err != nil {
				return err
			}
		case submission.Failed:
			fmt.Fprintf(out, "\n%s\n\n", st.Message)
			retry, err := p.Confirm(ctx, "Try again?", true, "")
			if err != nil {
				return err
			}
			if !retry {
				return errNotSent
			}
		}
	}
}

func printFieldErrors(out io.Writer, errs inquiry.FieldErrors) {
	fmt.Fprintln(out, "\nPlease fix the following:")
	for _, f := range errs.Fields() {
		fmt.Fprintf(out, "  - %s\n", errs[f].Message)
	}
	fmt.Fprintln(out)
}

// statusPrinter renders session transitions the way the web form labels
// its submit button.
func statusPrinter(out io.Writer) func(submission.Status) {
	return func(st submission.Status) {
		if _, ok := st.(submission.Submitting); ok {
			fmt.Fprintln(out, "Sending...")
		}
	}
}
