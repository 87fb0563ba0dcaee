package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/floxenta/floxenta_backend/internal/service/contact"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type submitContactRequest struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`
	Service      string `json:"service"`
	BudgetRange  string `json:"budgetRange"`
	Message      string `json:"message"`

	// any JSON type is accepted so a bot filling the trap with a number or
	// object still gets the silent acknowledgement
	Honeypot json.RawMessage `json:"honeypot"`
}

// honeypotValue renders a truthy trap value as text; null, false, 0 and ""
// count as empty.
func honeypotValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	}
	return string(raw)
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	err := h.svc.Submit(c.Context(), contact.Request{
		FullName:     req.FullName,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Service:      req.Service,
		BudgetRange:  req.BudgetRange,
		Message:      req.Message,
		Honeypot:     honeypotValue(req.Honeypot),
	})
	switch {
	case err == nil:
		return success(c)
	case errors.Is(err, contact.ErrMissingFields):
		return badRequest(c, "Missing required fields")
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}
}
