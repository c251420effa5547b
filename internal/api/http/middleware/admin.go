package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/pkg/reqctx"
)

// AdminChecker reports whether the stored user for email holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AdminRequired must run after AuthRequired. The role is read from the store
// on every request so a revocation applies to the next call.
func AdminRequired(users AdminChecker) fiber.Handler {
	return func(c fiber.Ctx) error {
		email, ok := reqctx.EmailFromContext(c.Context())
		if !ok {
			return fiber.ErrUnauthorized
		}

		isAdmin, err := users.IsAdmin(c.Context(), email)
		if err != nil {
			return err
		}
		if !isAdmin {
			return fiber.ErrForbidden
		}

		return c.Next()
	}
}
