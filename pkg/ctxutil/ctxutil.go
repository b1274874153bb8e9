// Package ctxutil carries per-request identity through context.Context: the
// authenticated operator set by the auth middleware and the request ID.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type key int

const (
	userIDKey key = iota
	userEmailKey
	requestIDKey
)

// WithUserID records the operator the access token belongs to.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx returns the operator's ID. ok is false when the request is
// unauthenticated, which includes a stored uuid.Nil.
func UserIDFromCtx(ctx context.Context) (id uuid.UUID, ok bool) {
	id, _ = ctx.Value(userIDKey).(uuid.UUID)
	return id, id != uuid.Nil
}

// WithUserEmail records the email claimed by the access token.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

func UserEmailFromCtx(ctx context.Context) string {
	email, _ := ctx.Value(userEmailKey).(string)
	return email
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
