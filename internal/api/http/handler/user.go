package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/internal/service/user"
	"github.com/Alijeyrad/dochouse_backend/pkg/reqctx"
)

var userRules = map[string]any{"email": "required"}

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// POST /users
func (h *UserHandler) Create(c fiber.Ctx) error {
	body, err := bindDocument(c, userRules)
	if err != nil {
		return err
	}

	res, err := h.svc.Create(c.Context(), body)
	if err != nil {
		return err
	}
	return ok(c, res)
}

// GET /users?email=
func (h *UserHandler) ListByEmail(c fiber.Ctx) error {
	list, err := h.svc.ListByEmail(c.Context(), c.Query("email"))
	if err != nil {
		return err
	}
	return ok(c, list)
}

// GET /allUsers
func (h *UserHandler) ListAll(c fiber.Ctx) error {
	list, err := h.svc.ListAll(c.Context())
	if err != nil {
		return err
	}
	return ok(c, list)
}

// GET /users/admin/:email
//
// Callers may only ask about themselves. Asking about anyone else answers
// false without touching the store.
func (h *UserHandler) CheckAdmin(c fiber.Ctx) error {
	caller, valid := reqctx.EmailFromContext(c.Context())
	if !valid {
		return fiber.ErrUnauthorized
	}

	email := c.Params("email")
	if email != caller {
		return ok(c, fiber.Map{"admin": false})
	}

	isAdmin, err := h.svc.IsAdmin(c.Context(), email)
	if err != nil {
		return err
	}
	return ok(c, fiber.Map{"admin": isAdmin})
}
