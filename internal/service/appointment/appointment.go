package appointment

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
	"github.com/Alijeyrad/dochouse_backend/pkg/events"
	"github.com/Alijeyrad/dochouse_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	// Email filters by patient email. Empty means the caller's own
	// appointments, or every appointment when the caller is an admin.
	Email string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Store is the persistence port, implemented by *repo.AppointmentRepo.
type Store interface {
	Insert(ctx context.Context, doc repo.Document) (*repo.InsertResult, error)
	Find(ctx context.Context, f repo.AppointmentFilter) ([]repo.Document, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*repo.DeleteResult, error)
}

// AdminChecker reports whether an email belongs to an admin.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type Service interface {
	// Book stores the booking as submitted. Only email is required.
	Book(ctx context.Context, doc repo.Document) (*repo.InsertResult, error)
	// List reads the caller from ctx (see reqctx.WithClaims).
	List(ctx context.Context, req ListRequest) ([]repo.Document, error)
	Cancel(ctx context.Context, id string) (*repo.DeleteResult, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	store  Store
	admins AdminChecker
	pub    events.Publisher
}

// New wires the service. A nil admins treats every caller as a patient.
func New(store Store, admins AdminChecker, pub events.Publisher) Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &appointmentService{store: store, admins: admins, pub: pub}
}

func (s *appointmentService) Book(ctx context.Context, doc repo.Document) (*repo.InsertResult, error) {
	email := stringField(doc, "email")
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}

	res, err := s.store.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.AppointmentBooked, events.AppointmentEvent{
		AppointmentID: res.InsertedID.Hex(),
		Email:         email,
		DoctorID:      stringField(doc, "doctorId"),
		Date:          stringField(doc, "date"),
		Slot:          stringField(doc, "slot"),
	})
	return res, nil
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) ([]repo.Document, error) {
	caller, ok := reqctx.EmailFromContext(ctx)
	if !ok || caller == "" {
		return nil, ErrUnauthenticated
	}

	email := req.Email
	if email != caller {
		admin, err := s.isAdmin(ctx, caller)
		if err != nil {
			return nil, err
		}
		if !admin {
			if email != "" {
				return nil, ErrEmailMismatch
			}
			email = caller
		}
	}
	return s.store.Find(ctx, repo.AppointmentFilter{Email: email})
}

// Cancel deletes by id. An unknown id is not an error: the result reports
// zero deleted documents.
func (s *appointmentService) Cancel(ctx context.Context, id string) (*repo.DeleteResult, error) {
	oid, err := repo.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	res, err := s.store.DeleteByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if res.DeletedCount > 0 {
		s.publish(ctx, events.AppointmentCancelled, events.AppointmentEvent{AppointmentID: id})
	}
	return res, nil
}

func (s *appointmentService) isAdmin(ctx context.Context, email string) (bool, error) {
	if s.admins == nil {
		return false, nil
	}
	return s.admins.IsAdmin(ctx, email)
}

// stringField returns doc[key] when it holds a string.
func stringField(doc repo.Document, key string) string {
	v, _ := doc[key].(string)
	return v
}

func (s *appointmentService) publish(ctx context.Context, name string, ev events.AppointmentEvent) {
	ev.RequestID = reqctx.RequestIDFromContext(ctx)
	ev.OccurredAt = time.Now().UTC()
	if err := s.pub.Publish(ctx, name, ev); err != nil {
		slog.WarnContext(ctx, "appointment: publish event failed",
			"event", name,
			"appointment_id", ev.AppointmentID,
			"request_id", ev.RequestID,
			"err", err,
		)
	}
}
