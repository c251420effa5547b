package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	jwttoken "github.com/Alijeyrad/dochouse_backend/pkg/jwt"
	"github.com/Alijeyrad/dochouse_backend/pkg/reqctx"
)

// AuthRequired validates the bearer JWT. On success the claims are attached to
// the request context; read them with reqctx.ClaimsFromContext.
func AuthRequired(mgr *jwttoken.Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		tok, found := jwttoken.BearerToken(c.Get(fiber.HeaderAuthorization))
		if !found {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(tok)
		if err != nil {
			slog.DebugContext(c.Context(), "auth: token rejected",
				"request_id", reqctx.RequestIDFromContext(c.Context()),
				"err", err,
			)
			return fiber.ErrUnauthorized
		}

		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}
