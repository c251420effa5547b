package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/internal/service/appointment"
)

var appointmentRules = map[string]any{"email": "required"}

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	body, err := bindDocument(c, appointmentRules)
	if err != nil {
		return err
	}

	res, err := h.svc.Book(c.Context(), body)
	if err != nil {
		return err
	}
	return ok(c, res)
}

// GET /appointments?email=
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	list, err := h.svc.List(c.Context(), appointment.ListRequest{Email: c.Query("email")})
	if err != nil {
		return err
	}
	return ok(c, list)
}

// DELETE /appointments/:id
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	res, err := h.svc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, res)
}
