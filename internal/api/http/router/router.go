package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/floxenta/floxenta_backend/config"
	"github.com/floxenta/floxenta_backend/internal/api/http/handler"
	"github.com/floxenta/floxenta_backend/internal/api/http/middleware"
	"github.com/floxenta/floxenta_backend/internal/catalog"
	"github.com/floxenta/floxenta_backend/internal/inquiry"
	"github.com/floxenta/floxenta_backend/internal/service/contact"
	"github.com/floxenta/floxenta_backend/pkg/observability"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client `optional:"true"`
	ContactSvc contact.Service
	Catalog    *catalog.Catalog
	Gate       *inquiry.Gate
	OTel       *observability.Provider `optional:"true"`
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	contactLimit := middleware.NewContactLimiter(r.p.Cfg.Contact.RateLimit, r.p.Redis, handler.TooManyRequests)

	contactH := handler.NewContactHandler(r.p.ContactSvc)
	catalogH := handler.NewCatalogHandler(r.p.Catalog, r.p.Gate)

	api := app.Group("/api/v1")

	r.registerContactRoutes(api, contactH, catalogH, contactLimit)
	r.registerCatalogRoutes(api, catalogH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.redisReady(c.Context()) },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.OTel != nil && r.p.Cfg.Observability.Metrics.Enabled {
		app.Get(r.p.Cfg.Observability.Metrics.Endpoint(), adaptor.HTTPHandler(r.p.OTel.MetricsHandler()))
	}
}

// redisReady is true when Redis is not configured or answers a ping.
func (r *Router) redisReady(ctx context.Context) bool {
	if r.p.Redis == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.p.Redis.Ping(ctx).Err() == nil
}
