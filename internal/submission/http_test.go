package submission

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floxenta/floxenta_backend/internal/inquiry"
	"github.com/floxenta/floxenta_backend/pkg/reqctx"
)

func testInquiry() inquiry.Inquiry {
	return inquiry.Inquiry{
		FullName:    "Jane Doe",
		Email:       "jane@co.com",
		Service:     "Web Development",
		BudgetRange: "$5k - $10k",
		Message:     "We need a new company website built.",
	}
}

func TestHTTPTransport_Accepted(t *testing.T) {
	type captured struct {
		payload   Payload
		method    string
		requestID string
	}
	seen := make(chan captured, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := captured{method: r.Method, requestID: r.Header.Get("X-Request-Id")}
		_ = json.NewDecoder(r.Body).Decode(&c.payload)
		seen <- c
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{RequestID: "req-1"})
	tr := NewHTTPTransport(srv.URL, time.Second)
	require.NoError(t, tr.Send(ctx, testInquiry()))

	got := <-seen
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "Jane Doe", got.payload.FullName)
	assert.Equal(t, "Web Development", got.payload.Service)
	assert.Empty(t, got.payload.Honeypot)
	assert.Equal(t, "req-1", got.requestID)
}

func TestHTTPTransport_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		reason string
	}{
		{"method", http.StatusMethodNotAllowed, `{"error":"Method Not Allowed"}`, "Method Not Allowed"},
		{"missing", http.StatusBadRequest, `{"error":"Missing required fields"}`, "Missing required fields"},
		{"relay", http.StatusInternalServerError, `{"error":"Failed to send message"}`, "Failed to send message"},
		{"html", http.StatusBadGateway, `<html>bad gateway</html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewHTTPTransport(srv.URL, time.Second).Send(context.Background(), testInquiry())

			var rej *RejectedError
			require.True(t, errors.As(err, &rej), "got %v", err)
			assert.Equal(t, tt.status, rej.StatusCode)
			assert.Equal(t, tt.reason, rej.Reason)
		})
	}
}

func TestHTTPTransport_MalformedAcknowledgement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	err := NewHTTPTransport(srv.URL, time.Second).Send(context.Background(), testInquiry())

	var te *TransportError
	require.True(t, errors.As(err, &te), "got %v", err)
	assert.Equal(t, srv.URL, te.Endpoint)
}

func TestHTTPTransport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewHTTPTransport(url, time.Second).Send(context.Background(), testInquiry())

	var te *TransportError
	assert.True(t, errors.As(err, &te), "got %v", err)
}

func TestRejectedError_FallsBackToStatusText(t *testing.T) {
	err := &RejectedError{StatusCode: http.StatusBadGateway}
	assert.Equal(t, "inquiry rejected (502): Bad Gateway", err.Error())
}
