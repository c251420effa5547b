package user

import (
	"context"
	"errors"
	"testing"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
	"github.com/Alijeyrad/dochouse_backend/internal/repo/repotest"
)

func TestCreate(t *testing.T) {
	store := &repotest.Users{}
	svc := New(store)
	ctx := context.Background()

	res, err := svc.Create(ctx, repo.Document{"name": "Ada", "email": "a@x.com", "role": repo.RoleAdmin, "city": "Dhaka"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if res.InsertedID.IsZero() {
		t.Error("Create() returned zero id")
	}

	got, err := svc.ListByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("ListByEmail() error = %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "Ada" || got[0]["city"] != "Dhaka" {
		t.Fatalf("ListByEmail() = %+v", got)
	}
	if role, ok := got[0]["role"]; ok {
		t.Errorf("caller-supplied role persisted: %v", role)
	}
	if admin, _ := svc.IsAdmin(ctx, "a@x.com"); admin {
		t.Error("self-registration granted admin")
	}

	if _, err := svc.Create(ctx, repo.Document{"email": "a@x.com"}); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("duplicate Create() error = %v, want ErrEmailAlreadyExists", err)
	}
	if _, err := svc.Create(ctx, repo.Document{"name": "nobody"}); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("Create() without email error = %v, want ErrEmailRequired", err)
	}
}

func TestListByEmailRequiresEmail(t *testing.T) {
	store := &repotest.Users{}
	if _, err := New(store).ListByEmail(context.Background(), ""); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("ListByEmail(\"\") error = %v", err)
	}
	if store.Calls() != 0 {
		t.Errorf("store called %d times", store.Calls())
	}
}

func TestListAll(t *testing.T) {
	store := &repotest.Users{}
	store.Seed(repo.Document{"email": "a@x.com"}, repo.Document{"email": "b@x.com"})

	got, err := New(store).ListAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("ListAll() returned %d users, want 2", len(got))
	}
}

func TestIsAdmin(t *testing.T) {
	store := &repotest.Users{}
	store.Seed(
		repo.Document{"email": "admin@x.com", "role": repo.RoleAdmin},
		repo.Document{"email": "user@x.com"},
	)
	svc := New(store)
	ctx := context.Background()

	tests := []struct {
		email string
		want  bool
	}{
		{"admin@x.com", true},
		{"user@x.com", false},
		{"ghost@x.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got, err := svc.IsAdmin(ctx, tt.email)
			if err != nil {
				t.Fatalf("IsAdmin() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAdmin(%s) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}

	// revocation is visible on the very next lookup
	store.SetRole("admin@x.com", "")
	if got, _ := svc.IsAdmin(ctx, "admin@x.com"); got {
		t.Error("IsAdmin() still true after revocation")
	}
}

func TestIsAdminStoreFailure(t *testing.T) {
	boom := errors.New("server selection timeout")
	store := &repotest.Users{}
	store.Fail(boom)

	if _, err := New(store).IsAdmin(context.Background(), "a@x.com"); !errors.Is(err, boom) {
		t.Errorf("IsAdmin() error = %v, want %v", err, boom)
	}
}
