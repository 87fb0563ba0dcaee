package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/floxenta/floxenta_backend/config"
	"github.com/floxenta/floxenta_backend/internal/catalog"
	"github.com/floxenta/floxenta_backend/internal/inquiry"
	"github.com/floxenta/floxenta_backend/internal/service/contact"
	"github.com/floxenta/floxenta_backend/pkg/email"
	"github.com/floxenta/floxenta_backend/pkg/events"
	"github.com/floxenta/floxenta_backend/pkg/observability"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideGate,
		ProvideContactService,
	),
)

func ProvideGate(cat *catalog.Catalog, cfg *config.Config) *inquiry.Gate {
	return inquiry.NewGate(cat.ServiceTitles(), inquiry.WithPhoneRegion(cfg.Contact.PhoneRegion))
}

func ProvideContactService(
	mailer *email.Client,
	publisher events.Publisher,
	recorder *observability.InquiryRecorder,
	log *slog.Logger,
) contact.Service {
	return contact.New(mailer, publisher, recorder, log)
}
