package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/Alijeyrad/dochouse_backend/config"
	"github.com/Alijeyrad/dochouse_backend/internal/repo"
	"github.com/Alijeyrad/dochouse_backend/internal/repo/repotest"
	"github.com/Alijeyrad/dochouse_backend/internal/service/user"
	jwttoken "github.com/Alijeyrad/dochouse_backend/pkg/jwt"
)

func newService(t *testing.T, requireRegistered bool) (Service, *jwttoken.Manager, *repotest.Users) {
	t.Helper()
	mgr, err := jwttoken.New(jwttoken.Config{Secret: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	cfg.Authentication.RequireRegisteredUser = requireRegistered

	users := &repotest.Users{}
	return New(mgr, user.New(users), cfg), mgr, users
}

func TestIssueToken(t *testing.T) {
	svc, mgr, users := newService(t, false)

	tok, err := svc.IssueToken(context.Background(), map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	claims, err := mgr.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if users.Calls() != 0 {
		t.Errorf("user store consulted %d times in open mode", users.Calls())
	}
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	svc, _, _ := newService(t, false)

	for _, payload := range []map[string]any{
		{},
		{"email": ""},
		{"email": 42},
		{"name": "Ada"},
	} {
		if _, err := svc.IssueToken(context.Background(), payload); !errors.Is(err, ErrEmailRequired) {
			t.Errorf("IssueToken(%v) error = %v, want ErrEmailRequired", payload, err)
		}
	}
}

func TestIssueTokenRegisteredOnly(t *testing.T) {
	svc, _, users := newService(t, true)
	users.Seed(repo.Document{"email": "a@x.com"})

	if _, err := svc.IssueToken(context.Background(), map[string]any{"email": "a@x.com"}); err != nil {
		t.Errorf("IssueToken(registered) error = %v", err)
	}
	if _, err := svc.IssueToken(context.Background(), map[string]any{"email": "ghost@x.com"}); !errors.Is(err, ErrUnknownUser) {
		t.Errorf("IssueToken(unregistered) error = %v, want ErrUnknownUser", err)
	}
}
