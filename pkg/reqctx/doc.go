// Package reqctx carries request-scoped values through context.Context.
//
// HTTP middleware sets them:
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{RequestID: rid})
//	ctx = reqctx.WithClaims(ctx, claims)
//
// and services read them:
//
//	rid := reqctx.RequestIDFromContext(ctx)
//	email, ok := reqctx.EmailFromContext(ctx)
//
// RequestMeta is set for every HTTP request. Claims are set only after the
// bearer token has been verified for the current request.
package reqctx
