package router

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/Alijeyrad/dochouse_backend/config"
	"github.com/Alijeyrad/dochouse_backend/internal/api/http/handler"
	"github.com/Alijeyrad/dochouse_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/dochouse_backend/internal/service/appointment"
	"github.com/Alijeyrad/dochouse_backend/internal/service/auth"
	"github.com/Alijeyrad/dochouse_backend/internal/service/doctor"
	"github.com/Alijeyrad/dochouse_backend/internal/service/review"
	"github.com/Alijeyrad/dochouse_backend/internal/service/user"
	jwttoken "github.com/Alijeyrad/dochouse_backend/pkg/jwt"
	"github.com/Alijeyrad/dochouse_backend/pkg/mongodb"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

const readinessTimeout = 2 * time.Second

type Params struct {
	fx.In

	Cfg            *config.Config
	Tokens         *jwttoken.Manager
	Mongo          *mongo.Client `optional:"true"`
	AuthSvc        auth.Service
	AppointmentSvc appointment.Service
	UserSvc        user.Service
	DoctorSvc      doctor.Service
	ReviewSvc      review.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Interceptors
	authRequired := middleware.AuthRequired(r.p.Tokens)
	adminRequired := middleware.AdminRequired(r.p.UserSvc)

	// 3. Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	reviewH := handler.NewReviewHandler(r.p.ReviewSvc)

	app.Get("/", handler.Root)

	r.registerAuthRoutes(app, authH)
	r.registerAppointmentRoutes(app, appointmentH, authRequired)
	r.registerUserRoutes(app, userH, authRequired, adminRequired)
	r.registerCatalogRoutes(app, doctorH, reviewH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: r.databaseReady,
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

func (r *Router) databaseReady(c fiber.Ctx) bool {
	if r.p.Mongo == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(c.Context(), readinessTimeout)
	defer cancel()
	if err := mongodb.Primary(ctx, r.p.Mongo); err != nil {
		slog.WarnContext(ctx, "readiness: mongo primary unreachable", "err", err)
		return false
	}
	return true
}
