package user

import (
	"context"
	"maps"
	"strings"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
)

// Store is the persistence port, implemented by *repo.UserRepo.
type Store interface {
	Insert(ctx context.Context, doc repo.Document) (*repo.InsertResult, error)
	Find(ctx context.Context, f repo.UserFilter) ([]repo.Document, error)
	FindOneByEmail(ctx context.Context, email string) (*repo.User, error)
}

type Service interface {
	Create(ctx context.Context, doc repo.Document) (*repo.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]repo.Document, error)
	ListAll(ctx context.Context) ([]repo.Document, error)
	// IsAdmin reads the stored role on every call; nothing is cached.
	IsAdmin(ctx context.Context, email string) (bool, error)
	Exists(ctx context.Context, email string) (bool, error)
}

type userService struct {
	store Store
}

func New(store Store) Service {
	return &userService{store: store}
}

// Create registers a user document as submitted, except that roles are never
// taken from the caller.
func (s *userService) Create(ctx context.Context, doc repo.Document) (*repo.InsertResult, error) {
	email, _ := doc["email"].(string)
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	doc = maps.Clone(doc)
	delete(doc, "role")

	res, err := s.store.Insert(ctx, doc)
	if err != nil {
		if repo.IsDuplicateKey(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return res, nil
}

func (s *userService) ListByEmail(ctx context.Context, email string) ([]repo.Document, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	return s.store.Find(ctx, repo.UserFilter{Email: email})
}

func (s *userService) ListAll(ctx context.Context) ([]repo.Document, error) {
	return s.store.Find(ctx, repo.UserFilter{})
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.store.FindOneByEmail(ctx, email)
	if err != nil {
		if repo.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return u.IsAdmin(), nil
}

func (s *userService) Exists(ctx context.Context, email string) (bool, error) {
	_, err := s.store.FindOneByEmail(ctx, email)
	if err != nil {
		if repo.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
