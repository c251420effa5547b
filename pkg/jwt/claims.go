package jwttoken

import "time"

// Claims is the app-facing view of a verified token.
type Claims struct {
	Email string

	Issuer    string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time

	// Payload is the full verified payload, caller fields included.
	Payload map[string]any
}

// GetEmail implements reqctx.AuthClaims.
func (c *Claims) GetEmail() string {
	return c.Email
}

// IsExpired implements reqctx.AuthClaims.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
