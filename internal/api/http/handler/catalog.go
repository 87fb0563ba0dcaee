package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/floxenta/floxenta_backend/internal/catalog"
	"github.com/floxenta/floxenta_backend/internal/inquiry"
)

type CatalogHandler struct {
	cat  *catalog.Catalog
	gate *inquiry.Gate
}

func NewCatalogHandler(cat *catalog.Catalog, gate *inquiry.Gate) *CatalogHandler {
	return &CatalogHandler{cat: cat, gate: gate}
}

func (h *CatalogHandler) ListServices(c fiber.Ctx) error {
	return ok(c, h.cat.Services())
}

func (h *CatalogHandler) GetService(c fiber.Ctx) error {
	s, err := h.cat.ServiceByID(c.Params("id"))
	if err != nil {
		return catalogError(c, err, "service not found")
	}
	return ok(c, s)
}

func (h *CatalogHandler) ListProjects(c fiber.Ctx) error {
	return ok(c, fiber.Map{
		"categories": catalog.Categories,
		"projects": h.cat.Projects(catalog.Filter{
			Category: catalog.Category(c.Query("category")),
			Search:   c.Query("q"),
		}),
	})
}

func (h *CatalogHandler) GetProject(c fiber.Ctx) error {
	p, err := h.cat.ProjectBySlug(c.Params("slug"))
	if err != nil {
		return catalogError(c, err, "project not found")
	}
	return ok(c, p)
}

func (h *CatalogHandler) ListTeam(c fiber.Ctx) error {
	return ok(c, h.cat.Team())
}

func (h *CatalogHandler) ListTestimonials(c fiber.Ctx) error {
	return ok(c, h.cat.Testimonials())
}

func (h *CatalogHandler) ListPosts(c fiber.Ctx) error {
	return ok(c, h.cat.Posts())
}

// ContactOptions returns what a client needs to build the contact form.
func (h *CatalogHandler) ContactOptions(c fiber.Ctx) error {
	return ok(c, fiber.Map{
		"services":           h.gate.Services(),
		"budgetRanges":       inquiry.BudgetRanges,
		"defaultBudgetRange": inquiry.DefaultBudgetRange,
		"minMessageLength":   inquiry.MinMessageLength,
	})
}

func catalogError(c fiber.Ctx, err error, msg string) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return notFound(c, msg)
	}
	return internalError(c)
}
