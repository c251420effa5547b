package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
)

// ErrInvalidBody is returned when a request body cannot be decoded.
var ErrInvalidBody = errors.New("invalid request body")

func ok(c fiber.Ctx, data any) error {
	return c.JSON(data)
}

func text(c fiber.Ctx, s string) error {
	return c.SendString(s)
}

// bindJSON decodes the body into out. Decode failures collapse to
// ErrInvalidBody; validation failures are returned as-is.
func bindJSON(c fiber.Ctx, out any) error {
	if err := c.Bind().JSON(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return err
		}
		return ErrInvalidBody
	}
	return nil
}

// documents share one validator; rule sets are per route.
var documentValidator = NewStructValidator()

// bindDocument decodes a free-form JSON object and checks rules against it.
// Fields the rules do not name are kept as sent.
func bindDocument(c fiber.Ctx, rules map[string]any) (repo.Document, error) {
	var doc repo.Document
	if err := bindJSON(c, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrInvalidBody
	}
	if err := documentValidator.ValidateMap(doc, rules); err != nil {
		return nil, err
	}
	return doc, nil
}

func errorBody(msg string) fiber.Map {
	return fiber.Map{"error": true, "message": msg}
}
