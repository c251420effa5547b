package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/internal/api/http/handler"
)

// Doctors and reviews are public, read-only reference data.
func (r *Router) registerCatalogRoutes(app fiber.Router, doctors *handler.DoctorHandler, reviews *handler.ReviewHandler) {
	app.Get("/doctors", doctors.List)
	app.Get("/doctors/:id", doctors.Get)
	app.Get("/reviews", reviews.List)
}
