package auditstore

import (
	"context"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	placementclient "placement-gateway/lib/placement-client"
	dbmodels "placement-gateway/models/db"
)

// MaxBodyLen bounds the stored response body.
const MaxBodyLen = 4 * 1024

const writeTimeout = 5 * time.Second

// Recorder persists client exchanges. Store failures are logged and dropped.
type Recorder struct {
	store Provider
}

func NewRecorder(store Provider) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) Record(ctx context.Context, entry placementclient.AuditEntry) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()
	_, err := r.store.Create(writeCtx, toRecord(entry))
	if err != nil {
		log.WithError(err).
			WithField("external_request", entry.Uri).
			WithField("request_id", entry.RequestID).
			Warn("ошибка сохранения аудита запроса к placement backend")
	}
}

func toRecord(entry placementclient.AuditEntry) dbmodels.ExtApiAudit {
	return dbmodels.ExtApiAudit{
		Method:       entry.Method,
		Uri:          entry.Uri,
		RequestBody:  entry.RequestBody,
		StatusCode:   entry.StatusCode,
		ResponseBody: truncate(entry.ResponseBody, MaxBodyLen),
		DurationMs:   entry.Duration.Milliseconds(),
		RequestID:    entry.RequestID,
		Initiator:    entry.Initiator,
		Error:        entry.Error,
	}
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
