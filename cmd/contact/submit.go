package contact

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/floxenta/floxenta_backend/internal/inquiry"
	"github.com/floxenta/floxenta_backend/internal/submission"
)

// submitOnce sends f without prompting. Invalid input and send failures
// are returned as errors so scripts see a non-zero exit.
func submitOnce(ctx context.Context, s *submission.Session, f inquiry.Form, out io.Writer) error {
	st, err := s.Submit(ctx, f)

	var fieldErrs inquiry.FieldErrors
	if errors.As(err, &fieldErrs) {
		printFieldErrors(out, fieldErrs)
		return fieldErrs
	}
	if err != nil {
		return err
	}

	switch st := st.(type) {
	case submission.Succeeded:
		fmt.Fprintf(out, "%s\n%s\n", successTitle, successMessage)
		return nil
	case submission.Failed:
		fmt.Fprintln(out, st.Message)
		return fmt.Errorf("%w: %w", errNotSent, st.Cause)
	default:
		return fmt.Errorf("unexpected submission status %q", st)
	}
}
