package jwttoken

import (
	"strings"

	"github.com/Alijeyrad/dochouse_backend/config"
)

// BearerToken pulls the token out of an Authorization header value.
// "Bearer <token>" in any case and a bare "<token>" are accepted; other
// schemes are not.
func BearerToken(header string) (string, bool) {
	h := strings.TrimSpace(header)
	if h == "" {
		return "", false
	}

	scheme, rest, found := strings.Cut(h, " ")
	if !found {
		if strings.EqualFold(h, "Bearer") {
			return "", false
		}
		return h, true
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	tok := strings.TrimSpace(rest)
	if tok == "" || strings.ContainsAny(tok, " \t") {
		return "", false
	}
	return tok, true
}

// NewJWTManager creates a token manager from config.
func NewJWTManager(cfg *config.Config) (*Manager, error) {
	a := cfg.Authentication
	return New(Config{
		Secret: a.TokenSecret,
		Issuer: a.Issuer,
		TTL:    a.TokenTTL(),
	})
}
