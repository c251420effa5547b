package doctor

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
)

type Store interface {
	FindAll(ctx context.Context) ([]repo.Document, error)
	FindByID(ctx context.Context, id primitive.ObjectID) ([]repo.Document, error)
}

type Service interface {
	List(ctx context.Context) ([]repo.Document, error)
	// GetByID returns the matching doctors, empty when none match.
	GetByID(ctx context.Context, id string) ([]repo.Document, error)
}

type doctorService struct {
	store Store
}

func New(store Store) Service {
	return &doctorService{store: store}
}

func (s *doctorService) List(ctx context.Context) ([]repo.Document, error) {
	return s.store.FindAll(ctx)
}

func (s *doctorService) GetByID(ctx context.Context, id string) ([]repo.Document, error) {
	oid, err := repo.ParseID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.FindByID(ctx, oid)
}
