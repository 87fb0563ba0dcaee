package submission

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3/client"

	"github.com/floxenta/floxenta_backend/internal/inquiry"
	"github.com/floxenta/floxenta_backend/pkg/reqctx"
)

// HTTPTransport posts inquiries to the contact endpoint as JSON.
type HTTPTransport struct {
	endpoint string
	client   *client.Client
}

type endpointResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewHTTPTransport(endpoint string, timeout time.Duration) *HTTPTransport {
	cc := client.New()
	if timeout > 0 {
		cc.SetTimeout(timeout)
	}
	return &HTTPTransport{endpoint: endpoint, client: cc}
}

func (t *HTTPTransport) Endpoint() string { return t.endpoint }

func (t *HTTPTransport) Send(ctx context.Context, in inquiry.Inquiry) error {
	req := t.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetJSON(NewPayload(in))
	if id := reqctx.RequestIDFromContext(ctx); id != "" {
		req.SetHeader("X-Request-Id", id)
	}

	resp, err := req.Post(t.endpoint)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(err, ctxErr)
		}
		return &TransportError{Endpoint: t.endpoint, Err: err}
	}
	defer resp.Close()

	var body endpointResponse
	decodeErr := json.Unmarshal(resp.Body(), &body)

	code := resp.StatusCode()
	if code < 200 || code > 299 {
		return &RejectedError{StatusCode: code, Reason: body.Error}
	}
	if decodeErr != nil {
		return &TransportError{Endpoint: t.endpoint, Err: decodeErr}
	}
	if !body.Success {
		return &TransportError{Endpoint: t.endpoint, Err: errors.New("endpoint did not acknowledge the inquiry")}
	}
	return nil
}
