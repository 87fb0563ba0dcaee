package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floxenta/floxenta_backend/internal/service/contact"
)

type stubContactService struct {
	got []contact.Request
	err error
}

func (s *stubContactService) Submit(_ context.Context, req contact.Request) error {
	s.got = append(s.got, req)
	return s.err
}

func newContactApp(svc contact.Service) *fiber.App {
	app := fiber.New()
	h := NewContactHandler(svc)
	app.Post("/api/v1/contact", h.Submit)
	app.All("/api/v1/contact", MethodNotAllowed)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

const validBody = `{"fullName":"Jane Doe","email":"jane@co.com","service":"Web Development","budgetRange":"$5k - $10k","message":"We need a new company website built."}`

func TestContactSubmit_Success(t *testing.T) {
	svc := &stubContactService{}
	status, body := doJSON(t, newContactApp(svc), http.MethodPost, validBody)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"success": true}, body)
	require.Len(t, svc.got, 1)
	assert.Equal(t, "Jane Doe", svc.got[0].FullName)
	assert.Equal(t, "$5k - $10k", svc.got[0].BudgetRange)
}

func TestContactSubmit_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"missing fields", contact.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
		{"relay down", fmt.Errorf("%w: dial tcp: refused", contact.ErrDelivery), http.StatusInternalServerError, "Failed to send message"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Failed to send message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, newContactApp(&stubContactService{err: tt.err}), http.MethodPost, validBody)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, body["error"])
		})
	}
}

func TestContactSubmit_MalformedBody(t *testing.T) {
	svc := &stubContactService{}
	status, body := doJSON(t, newContactApp(svc), http.MethodPost, `{"fullName":`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid request body", body["error"])
	assert.Empty(t, svc.got)
}

func TestContactSubmit_PassesHoneypot(t *testing.T) {
	svc := &stubContactService{}
	_, _ = doJSON(t, newContactApp(svc), http.MethodPost, `{"honeypot":"bot-filled"}`)

	require.Len(t, svc.got, 1)
	assert.Equal(t, "bot-filled", svc.got[0].Honeypot)
}

func TestContactSubmit_NonStringHoneypot(t *testing.T) {
	tests := map[string]string{
		`1`:            "1",
		`true`:         "true",
		`{"x":"y"}`:    `{"x":"y"}`,
		`["a"]`:        `["a"]`,
		`"bot-filled"`: "bot-filled",
		`0`:            "",
		`false`:        "",
		`null`:         "",
		`""`:           "",
	}
	for raw, want := range tests {
		svc := &stubContactService{}
		body := `{"fullName":"Jane Doe","email":"jane@co.com","message":"We need a new company website built.","honeypot":` + raw + `}`
		status, _ := doJSON(t, newContactApp(svc), http.MethodPost, body)

		assert.Equal(t, http.StatusOK, status, raw)
		require.Len(t, svc.got, 1, raw)
		assert.Equal(t, want, svc.got[0].Honeypot, raw)
	}
}

func TestContact_MethodNotAllowed(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		status, body := doJSON(t, newContactApp(&stubContactService{}), method, "")
		assert.Equal(t, http.StatusMethodNotAllowed, status, method)
		assert.Equal(t, "Method Not Allowed", body["error"], method)
	}
}
