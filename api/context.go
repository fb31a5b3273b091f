package api

import (
	"context"
)

type keyType string

const (
	adminEmailKey keyType = "adminEmail"
	requestIDKey  keyType = "requestID"
)

// ctxWithAdminEmail adds the authenticated admin's email to the context
func ctxWithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey, email)
}

// ctxWithRequestID adds a request ID to the context
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
