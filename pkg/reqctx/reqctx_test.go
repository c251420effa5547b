package reqctx

import (
	"context"
	"testing"
	"time"
)

type fakeClaims struct {
	email   string
	expired bool
}

func (f fakeClaims) GetEmail() string { return f.email }
func (f fakeClaims) IsExpired() bool  { return f.expired }

func TestRequestMeta(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext() on empty ctx = %q", got)
	}

	ctx = WithRequestMeta(ctx, &RequestMeta{RequestID: "rid-1", RequestedAt: time.Now()})
	if got := RequestIDFromContext(ctx); got != "rid-1" {
		t.Errorf("RequestIDFromContext() = %q, want rid-1", got)
	}
}

func TestClaims(t *testing.T) {
	tests := []struct {
		name     string
		claims   AuthClaims
		wantAuth bool
		wantMail string
	}{
		{"none", nil, false, ""},
		{"valid", fakeClaims{email: "a@x.com"}, true, "a@x.com"},
		{"expired", fakeClaims{email: "a@x.com", expired: true}, false, "a@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.claims != nil {
				ctx = WithClaims(ctx, tt.claims)
			}
			if got := IsAuthenticated(ctx); got != tt.wantAuth {
				t.Errorf("IsAuthenticated() = %v, want %v", got, tt.wantAuth)
			}
			email, _ := EmailFromContext(ctx)
			if email != tt.wantMail {
				t.Errorf("EmailFromContext() = %q, want %q", email, tt.wantMail)
			}
		})
	}
}
