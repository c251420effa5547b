package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/fx"

	"github.com/Alijeyrad/dochouse_backend/config"
	"github.com/Alijeyrad/dochouse_backend/internal/api/http/handler"
	"github.com/Alijeyrad/dochouse_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/dochouse_backend/internal/api/http/router"
	"github.com/Alijeyrad/dochouse_backend/pkg/observability"
)

// Module provides the HTTP Server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

// NewApp builds the fiber app with the error boundary and body validator
// installed. It carries no routes or middleware.
func NewApp(cfg *config.Config) *fiber.App {
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	return fiber.New(fiber.Config{
		AppName:         "dochouse",
		ErrorHandler:    handler.ErrorHandler,
		StructValidator: handler.NewStructValidator(),
		// admin lookups carry the email in the path
		UnescapePath: true,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})
}

func NewServer(p Params) *fiber.App {
	app := NewApp(p.Cfg)

	configureGlobalMiddleware(app, p.Cfg, p.OTel != nil)

	p.Router.Register(app)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			slog.Info("HTTP server listening", "addr", addr, "env", p.Cfg.Server.Environment)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

// configureGlobalMiddleware installs the shared chain. instrumented is set
// when observability is enabled; spans are added only when tracing is too.
func configureGlobalMiddleware(app *fiber.App, cfg *config.Config, instrumented bool) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if instrumented {
		app.Use(observability.FiberMiddleware(
			cfg.Observability.ServiceName,
			cfg.Observability.Tracing.Enabled,
			handler.StatusFor,
		))
	}

	if cfg.Server.Environment == "production" {
		app.Use(helmet.New())
	}

	if c := cfg.Server.CORS; c.Enabled {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     c.AllowOrigins,
			AllowMethods:     c.AllowMethods,
			AllowHeaders:     c.AllowHeaders,
			AllowCredentials: c.AllowCredentials,
			MaxAge:           c.MaxAgeSeconds,
		}))
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:request_id}] ${method} ${path} ${status} ${latency}\n",
	}))
}
