package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(app fiber.Router, h *handler.AppointmentHandler, authRequired fiber.Handler) {
	app.Post("/appointments", h.Book)
	app.Get("/appointments", authRequired, h.List)
	app.Delete("/appointments/:id", h.Cancel)
}
