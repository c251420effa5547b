package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
	"github.com/Alijeyrad/dochouse_backend/internal/service/appointment"
	"github.com/Alijeyrad/dochouse_backend/internal/service/auth"
	"github.com/Alijeyrad/dochouse_backend/internal/service/doctor"
	"github.com/Alijeyrad/dochouse_backend/internal/service/user"
	jwttoken "github.com/Alijeyrad/dochouse_backend/pkg/jwt"
	"github.com/Alijeyrad/dochouse_backend/pkg/reqctx"
)

const (
	msgUnauthorized = "unauthorized access"
	msgForbidden    = "forbidden access"
	msgInternal     = "internal server error"
)

// StatusFor maps an error returned anywhere in the pipeline to its HTTP status.
func StatusFor(err error) int {
	var (
		fe      *fiber.Error
		invalid jwttoken.ErrInvalidToken
		verrs   validator.ValidationErrors
	)

	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &invalid),
		errors.Is(err, auth.ErrUnknownUser),
		errors.Is(err, appointment.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, appointment.ErrEmailMismatch):
		return fiber.StatusForbidden
	case errors.As(err, &verrs),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, appointment.ErrInvalidID),
		errors.Is(err, appointment.ErrEmailRequired),
		errors.Is(err, doctor.ErrInvalidID),
		errors.Is(err, user.ErrEmailRequired),
		errors.Is(err, auth.ErrEmailRequired):
		return fiber.StatusBadRequest
	case errors.Is(err, user.ErrEmailAlreadyExists),
		repo.IsDuplicateKey(err):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the single place errors become responses. Every failure is
// rendered as {"error": true, "message": ...}; internals never leak.
func ErrorHandler(c fiber.Ctx, err error) error {
	status := StatusFor(err)

	var msg string
	switch status {
	case fiber.StatusUnauthorized:
		msg = msgUnauthorized
	case fiber.StatusForbidden:
		msg = msgForbidden
	case fiber.StatusInternalServerError:
		msg = msgInternal
		slog.ErrorContext(c.Context(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", reqctx.RequestIDFromContext(c.Context()),
			"err", err,
		)
	default:
		msg = messageFor(err)
	}

	return c.Status(status).JSON(errorBody(msg))
}

func messageFor(err error) string {
	var (
		fe    *fiber.Error
		verrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &verrs):
		parts := make([]string, 0, len(verrs))
		for _, f := range verrs {
			parts = append(parts, fmt.Sprintf("%s failed on %s", f.Field(), f.Tag()))
		}
		return strings.Join(parts, "; ")
	case errors.As(err, &fe):
		return fe.Message
	case errors.Is(err, user.ErrEmailAlreadyExists), repo.IsDuplicateKey(err):
		return user.ErrEmailAlreadyExists.Error()
	default:
		return err.Error()
	}
}
