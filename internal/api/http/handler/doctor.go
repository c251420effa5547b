package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	list, err := h.svc.List(c.Context())
	if err != nil {
		return err
	}
	return ok(c, list)
}

// GET /doctors/:id
func (h *DoctorHandler) Get(c fiber.Ctx) error {
	list, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, list)
}
