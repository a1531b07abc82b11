package placementclient

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	initiatorKey ctxKey = "initiator"
)

type CallData struct {
	RequestID string
	Initiator string
}

// WithRequestID marks outbound calls made with ctx; the id is sent as X-Request-ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithInitiator names the caller (gateway route, smoke check) for the audit trail.
func WithInitiator(ctx context.Context, initiator string) context.Context {
	return context.WithValue(ctx, initiatorKey, initiator)
}

func ExtractCallData(ctx context.Context) CallData {
	data := CallData{}
	if ctx == nil {
		return data
	}
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		data.RequestID = v
	}
	if v, ok := ctx.Value(initiatorKey).(string); ok {
		data.Initiator = v
	}
	return data
}
