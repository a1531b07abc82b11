package placementclient

import (
	"context"
	"time"
)

// Auditor receives one entry per exchange with the backend. Implementations must not
// block the caller for long and must not fail the call.
type Auditor interface {
	Record(ctx context.Context, entry AuditEntry)
}

type AuditEntry struct {
	Method       string
	Uri          string
	RequestBody  string
	StatusCode   int // 0 when the backend was not reached
	ResponseBody string
	Duration     time.Duration
	RequestID    string
	Initiator    string
	Error        string
}
