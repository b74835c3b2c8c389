package ctxutil

import (
	"context"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

type ctxKey string

const (
	tenantIDKey  ctxKey = "tenant_id"
	requestIDKey ctxKey = "request_id"
)

// WithTenantID stores the guild that owns the request in the context.
func WithTenantID(ctx context.Context, id domain.TenantID) context.Context {
	return context.WithValue(ctx, tenantIDKey, id)
}

// TenantIDFromCtx extracts the guild id from the context.
// Returns 0 and false if the value is missing or has the wrong type.
func TenantIDFromCtx(ctx context.Context) (domain.TenantID, bool) {
	id, ok := ctx.Value(tenantIDKey).(domain.TenantID)
	if !ok {
		return 0, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
