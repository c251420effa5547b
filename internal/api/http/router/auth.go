package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(app fiber.Router, h *handler.AuthHandler) {
	app.Post("/jwt", h.IssueToken)
}
