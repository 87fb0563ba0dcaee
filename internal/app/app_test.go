package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/floxenta/floxenta_backend/config"
	"github.com/floxenta/floxenta_backend/internal/inquiry"
	"github.com/floxenta/floxenta_backend/internal/service/contact"
	"github.com/floxenta/floxenta_backend/pkg/events"
	"github.com/floxenta/floxenta_backend/pkg/observability"
)

func minimalConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.Server.Environment = "test"
	cfg.Contact.PhoneRegion = "US"
	cfg.Email.Recipient = "hello@floxenta.com"
	cfg.Logging.Level = "error"
	cfg.Observability.ServiceName = "floxenta_backend"
	return cfg
}

func TestModules_Validate(t *testing.T) {
	err := fx.ValidateApp(
		fx.Supply(minimalConfig()),
		InfraModule,
		ServiceModule,
		WorkerModule,
	)
	require.NoError(t, err)
}

func TestModules_StartWithoutOptionalInfra(t *testing.T) {
	var (
		gate      *inquiry.Gate
		svc       contact.Service
		publisher events.Publisher
	)
	app := fxtest.New(t,
		fx.Supply(minimalConfig()),
		InfraModule,
		ServiceModule,
		WorkerModule,
		fx.Populate(&gate, &svc, &publisher),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.IsType(t, events.Noop{}, publisher)
	assert.Contains(t, gate.Services(), "Web Development")

	// email is disabled, so the inquiry is only logged
	err := svc.Submit(context.Background(), contact.Request{
		FullName: "Jane Doe",
		Email:    "jane@co.com",
		Message:  "We need a new company website built.",
	})
	assert.NoError(t, err)
}

func TestModules_ObservabilityEnabled(t *testing.T) {
	cfg := minimalConfig()
	cfg.Observability.Enabled = true
	cfg.Observability.Metrics.Enabled = true

	var (
		otel     *observability.Provider
		recorder *observability.InquiryRecorder
	)
	app := fxtest.New(t,
		fx.Supply(cfg),
		InfraModule,
		fx.Populate(&otel, &recorder),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, otel)
	require.NotNil(t, recorder)
}
