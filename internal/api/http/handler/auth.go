package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/internal/service/auth"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /jwt
func (h *AuthHandler) IssueToken(c fiber.Ctx) error {
	var payload map[string]any
	if err := bindJSON(c, &payload); err != nil {
		return err
	}

	tok, err := h.svc.IssueToken(c.Context(), payload)
	if err != nil {
		return err
	}

	return ok(c, fiber.Map{"token": tok})
}
