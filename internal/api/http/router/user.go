package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(
	app fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	adminRequired fiber.Handler,
) {
	app.Post("/users", authRequired, h.Create)
	app.Get("/users", h.ListByEmail)
	app.Get("/users/admin/:email", authRequired, adminRequired, h.CheckAdmin)
	app.Get("/allUsers", authRequired, h.ListAll)
}
