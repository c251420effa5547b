package handler

import "github.com/gofiber/fiber/v3"

const Banner = "Doc House Server"

// GET /
func Root(c fiber.Ctx) error {
	return text(c, Banner)
}
