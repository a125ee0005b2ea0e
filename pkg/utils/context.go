package utils

import (
	"context"
)

type contextKey string

const (
	RoleKey  contextKey = "role"
	EmailKey contextKey = "email"
)

// SetIdentityContext stores the client-asserted role and email on the context.
// Both come straight from request headers and are not verified credentials.
func SetIdentityContext(ctx context.Context, role, email string) context.Context {
	ctx = context.WithValue(ctx, RoleKey, role)
	ctx = context.WithValue(ctx, EmailKey, email)
	return ctx
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func GetEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(EmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	return email, ok
}
