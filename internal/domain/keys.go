package domain

import "context"

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
	KeyClientIP  CtxKey = "ClientIP"
)

// RequestIDFrom returns the request id stored by the RequestID middleware.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)
	return id
}

// ClientIPFrom returns the caller address stored by the RequestID middleware.
func ClientIPFrom(ctx context.Context) string {
	ip, _ := ctx.Value(KeyClientIP).(string)
	return ip
}
