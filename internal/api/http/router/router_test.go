package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floxenta/floxenta_backend/config"
	"github.com/floxenta/floxenta_backend/internal/catalog"
	"github.com/floxenta/floxenta_backend/internal/inquiry"
	"github.com/floxenta/floxenta_backend/internal/service/contact"
	"github.com/floxenta/floxenta_backend/pkg/observability"
)

type acceptAll struct{}

func (acceptAll) Submit(context.Context, contact.Request) error { return nil }

func newApp(t *testing.T, rateMax int) *fiber.App {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Contact.RateLimit = config.RateLimitConfig{Max: rateMax, ExpirationSeconds: 60}

	app := fiber.New()
	NewRouter(Params{
		Cfg:        cfg,
		ContactSvc: acceptAll{},
		Catalog:    cat,
		Gate:       inquiry.NewGate(cat.ServiceTitles()),
	}).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestRouter_Routes(t *testing.T) {
	app := newApp(t, 10)

	tests := []struct {
		method string
		target string
		status int
	}{
		{http.MethodGet, healthcheck.LivenessEndpoint, http.StatusOK},
		{http.MethodGet, healthcheck.ReadinessEndpoint, http.StatusOK},
		{http.MethodGet, "/api/v1/services", http.StatusOK},
		{http.MethodGet, "/api/v1/services/web-dev", http.StatusOK},
		{http.MethodGet, "/api/v1/projects?category=App", http.StatusOK},
		{http.MethodGet, "/api/v1/projects/eco-market", http.StatusOK},
		{http.MethodGet, "/api/v1/team", http.StatusOK},
		{http.MethodGet, "/api/v1/testimonials", http.StatusOK},
		{http.MethodGet, "/api/v1/posts", http.StatusOK},
		{http.MethodGet, "/api/v1/contact/options", http.StatusOK},
		{http.MethodGet, "/api/v1/contact", http.StatusMethodNotAllowed},
		{http.MethodPut, "/api/v1/contact", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		status, body := do(t, app, tt.method, tt.target, "")
		assert.Equal(t, tt.status, status, "%s %s: %s", tt.method, tt.target, body)
	}
}

func TestRouter_ContactRateLimited(t *testing.T) {
	app := newApp(t, 1)
	body := `{"fullName":"Jane","email":"jane@co.com","message":"We need a new company website built."}`

	status, resp := do(t, app, http.MethodPost, "/api/v1/contact", body)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"success":true}`, resp)

	status, _ = do(t, app, http.MethodPost, "/api/v1/contact", body)
	assert.Equal(t, http.StatusTooManyRequests, status)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	otel, err := observability.New(context.Background(), observability.Config{ServiceName: "floxenta_test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = otel.Shutdown(context.Background()) })

	rec, err := otel.Inquiries()
	require.NoError(t, err)
	rec.Record(context.Background(), observability.OutcomeSpam)

	cfg := &config.Config{}
	cfg.Observability.Metrics = config.MetricsConfig{Enabled: true}

	app := fiber.New()
	NewRouter(Params{
		Cfg:        cfg,
		ContactSvc: acceptAll{},
		Catalog:    cat,
		Gate:       inquiry.NewGate(cat.ServiceTitles()),
		OTel:       otel,
	}).Register(app)

	status, body := do(t, app, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `floxenta_inquiries_total{`)
	assert.Contains(t, body, `outcome="spam"`)
}
