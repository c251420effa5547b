package review

import (
	"context"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
)

type Store interface {
	FindAll(ctx context.Context) ([]repo.Document, error)
}

type Service interface {
	List(ctx context.Context) ([]repo.Document, error)
}

type reviewService struct {
	store Store
}

func New(store Store) Service {
	return &reviewService{store: store}
}

func (s *reviewService) List(ctx context.Context) ([]repo.Document, error) {
	return s.store.FindAll(ctx)
}
