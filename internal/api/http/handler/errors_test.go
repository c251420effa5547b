package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Alijeyrad/dochouse_backend/internal/service/appointment"
	"github.com/Alijeyrad/dochouse_backend/internal/service/auth"
	"github.com/Alijeyrad/dochouse_backend/internal/service/doctor"
	"github.com/Alijeyrad/dochouse_backend/internal/service/user"
	jwttoken "github.com/Alijeyrad/dochouse_backend/pkg/jwt"
)

func TestStatusFor(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"fiber unauthorized", fiber.ErrUnauthorized, fiber.StatusUnauthorized},
		{"fiber forbidden", fiber.ErrForbidden, fiber.StatusForbidden},
		{"fiber not found", fiber.ErrNotFound, fiber.StatusNotFound},
		{"invalid token", jwttoken.ErrInvalidToken{Err: errors.New("expired")}, fiber.StatusUnauthorized},
		{"unknown user", auth.ErrUnknownUser, fiber.StatusUnauthorized},
		{"email mismatch", appointment.ErrEmailMismatch, fiber.StatusForbidden},
		{"no caller", appointment.ErrUnauthenticated, fiber.StatusUnauthorized},
		{"bad appointment id", appointment.ErrInvalidID, fiber.StatusBadRequest},
		{"bad doctor id", doctor.ErrInvalidID, fiber.StatusBadRequest},
		{"missing user email", user.ErrEmailRequired, fiber.StatusBadRequest},
		{"missing token email", auth.ErrEmailRequired, fiber.StatusBadRequest},
		{"invalid body", ErrInvalidBody, fiber.StatusBadRequest},
		{"duplicate user", user.ErrEmailAlreadyExists, fiber.StatusConflict},
		{"raw duplicate key", dup, fiber.StatusConflict},
		{"wrapped", fmt.Errorf("list: %w", appointment.ErrEmailMismatch), fiber.StatusForbidden},
		{"store failure", errors.New("connection refused"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestErrorHandlerBody(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler:    ErrorHandler,
		StructValidator: NewStructValidator(),
	})
	app.Get("/unauthorized", func(c fiber.Ctx) error { return fiber.ErrUnauthorized })
	app.Get("/forbidden", func(c fiber.Ctx) error { return appointment.ErrEmailMismatch })
	app.Get("/boom", func(c fiber.Ctx) error { return errors.New("dial tcp 10.0.0.1:27017: i/o timeout") })
	app.Get("/bad", func(c fiber.Ctx) error { return user.ErrEmailRequired })

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/unauthorized", fiber.StatusUnauthorized, "unauthorized access"},
		{"/forbidden", fiber.StatusForbidden, "forbidden access"},
		{"/boom", fiber.StatusInternalServerError, "internal server error"},
		{"/bad", fiber.StatusBadRequest, user.ErrEmailRequired.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body struct {
				Error   bool   `json:"error"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.True(t, body.Error)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
