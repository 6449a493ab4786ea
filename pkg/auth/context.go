package auth

import (
	"context"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeyUserID is the context key for the authenticated user's id
	ContextKeyUserID contextKey = "user_id"
	// ContextKeyEmail is the context key for the authenticated user's email
	ContextKeyEmail contextKey = "email"
)

// WithUserID adds the user ID to the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// UserIDFromContext retrieves the user ID from the context
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(string)
	return id, ok && id != ""
}

// WithEmail adds the email to the context
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ContextKeyEmail, email)
}

// EmailFromContext retrieves the email from the context
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextKeyEmail).(string)
	return email, ok
}

// WithClaims adds all authentication info to the context
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = WithUserID(ctx, claims.UserID)
	ctx = WithEmail(ctx, claims.Email)
	return ctx
}
