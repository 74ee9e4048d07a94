package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyJWT CtxKey = iota
	CtxKeyOwner
)

func CtxWithJWT(ctx context.Context, jwt string) context.Context {
	return context.WithValue(ctx, CtxKeyJWT, jwt)
}

// JWTFromCtx returns JWT from context or empty string if JWT is not found.
func JWTFromCtx(ctx context.Context) string {
	jwt, ok := ctx.Value(CtxKeyJWT).(string)
	if !ok {
		return ""
	}

	return jwt
}

// CtxWithOwner stores the dashboard account the request acts for.
func CtxWithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, CtxKeyOwner, owner)
}

func OwnerFromCtx(ctx context.Context) (string, error) {
	owner, ok := ctx.Value(CtxKeyOwner).(string)
	if !ok || owner == "" {
		return "", ErrUnauthenticated
	}

	return owner, nil
}
