package app

import (
	"go.uber.org/fx"

	"github.com/Alijeyrad/dochouse_backend/config"
	"github.com/Alijeyrad/dochouse_backend/internal/repo"
	"github.com/Alijeyrad/dochouse_backend/internal/service/appointment"
	"github.com/Alijeyrad/dochouse_backend/internal/service/auth"
	"github.com/Alijeyrad/dochouse_backend/internal/service/doctor"
	"github.com/Alijeyrad/dochouse_backend/internal/service/review"
	"github.com/Alijeyrad/dochouse_backend/internal/service/user"
	"github.com/Alijeyrad/dochouse_backend/pkg/events"
	jwttoken "github.com/Alijeyrad/dochouse_backend/pkg/jwt"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideAppointmentService,
		ProvideDoctorService,
		ProvideReviewService,
		ProvideJWTManager,
	),
)

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db.User)
}

func ProvideAuthService(tokens *jwttoken.Manager, users user.Service, cfg *config.Config) auth.Service {
	return auth.New(tokens, users, cfg)
}

func ProvideAppointmentService(db *repo.Client, users user.Service, pub events.Publisher) appointment.Service {
	return appointment.New(db.Appointment, users, pub)
}

func ProvideDoctorService(db *repo.Client) doctor.Service {
	return doctor.New(db.Doctor)
}

func ProvideReviewService(db *repo.Client) review.Service {
	return review.New(db.Review)
}

func ProvideJWTManager(cfg *config.Config) (*jwttoken.Manager, error) {
	return jwttoken.NewJWTManager(cfg)
}
