package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/floxenta/floxenta_backend/internal/api/http/handler"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler, cat *handler.CatalogHandler, limit fiber.Handler) {
	api.Post("/contact", limit, h.Submit)
	api.All("/contact", handler.MethodNotAllowed)
	api.Get("/contact/options", cat.ContactOptions)
}
