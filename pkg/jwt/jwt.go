package jwttoken

import (
	"fmt"
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultTTL = time.Hour

// registered claims the manager owns; caller values are dropped.
var reservedClaims = []string{"iat", "exp", "nbf", "iss", "jti"}

type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type Manager struct {
	cfg    Config
	secret []byte
	parser *jwt.Parser
}

func New(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrConfig{Msg: "Secret is required"}
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &Manager{
		cfg:    cfg,
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(opts...),
	}, nil
}

func (m *Manager) TTL() time.Duration {
	return m.cfg.TTL
}

// Issue signs a copy of payload with HS256, stamping iat, exp and jti.
func (m *Manager) Issue(payload map[string]any) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{}
	maps.Copy(claims, payload)
	for _, k := range reservedClaims {
		delete(claims, k)
	}

	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(m.cfg.TTL))
	claims["jti"] = uuid.NewString()
	if m.cfg.Issuer != "" {
		claims["iss"] = m.cfg.Issuer
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, expiry and issuer, and requires a
// non-empty email claim.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	mc := jwt.MapClaims{}
	_, err := m.parser.ParseWithClaims(tokenStr, mc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}

	return extractClaims(mc)
}

func extractClaims(mc jwt.MapClaims) (*Claims, error) {
	email, _ := mc["email"].(string)
	if email == "" {
		return nil, ErrInvalidToken{Err: ErrMissingEmail}
	}

	out := &Claims{
		Email:   email,
		Payload: map[string]any(mc),
	}
	out.TokenID, _ = mc["jti"].(string)
	out.Issuer, _ = mc.GetIssuer()

	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}
