package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/Alijeyrad/dochouse_backend/config"
	"github.com/Alijeyrad/dochouse_backend/internal/service/user"
)

// TokenIssuer signs claims, implemented by *jwttoken.Manager.
type TokenIssuer interface {
	Issue(payload map[string]any) (string, error)
}

type Service interface {
	// IssueToken signs the caller payload. The payload must carry an email.
	IssueToken(ctx context.Context, payload map[string]any) (string, error)
}

type authService struct {
	tokens            TokenIssuer
	users             user.Service
	requireRegistered bool
}

func New(tokens TokenIssuer, users user.Service, cfg *config.Config) Service {
	return &authService{
		tokens:            tokens,
		users:             users,
		requireRegistered: cfg.Authentication.RequireRegisteredUser,
	}
}

func (s *authService) IssueToken(ctx context.Context, payload map[string]any) (string, error) {
	email, _ := payload["email"].(string)
	if strings.TrimSpace(email) == "" {
		return "", ErrEmailRequired
	}

	if s.requireRegistered {
		ok, err := s.users.Exists(ctx, email)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrUnknownUser
		}
	}

	tok, err := s.tokens.Issue(payload)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return tok, nil
}
