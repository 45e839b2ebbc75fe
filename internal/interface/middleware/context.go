package middleware

import (
	"context"

	"github.com/oksasatya/inotebook/internal/domain/entity"
)

type contextKey string

const userIDKey contextKey = "user_id"

// WithUserID stores the authenticated identity in ctx.
func WithUserID(ctx context.Context, id entity.UserID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext returns the identity set by Auth, or false when the
// request did not pass through the gate.
func UserIDFromContext(ctx context.Context) (entity.UserID, bool) {
	id, ok := ctx.Value(userIDKey).(entity.UserID)
	return id, ok && id != ""
}
