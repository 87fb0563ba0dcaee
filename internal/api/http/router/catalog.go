package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/floxenta/floxenta_backend/internal/api/http/handler"
)

func (r *Router) registerCatalogRoutes(api fiber.Router, h *handler.CatalogHandler) {
	api.Get("/services", h.ListServices)
	api.Get("/services/:id", h.GetService)
	api.Get("/projects", h.ListProjects)
	api.Get("/projects/:slug", h.GetProject)
	api.Get("/team", h.ListTeam)
	api.Get("/testimonials", h.ListTestimonials)
	api.Get("/posts", h.ListPosts)
}
