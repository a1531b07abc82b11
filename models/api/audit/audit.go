package auditapimodels

import (
	"time"

	dbmodels "placement-gateway/models/db"
)

type ExchangeView struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Method       string    `json:"method"`
	Uri          string    `json:"uri"`
	StatusCode   int       `json:"status_code"`
	DurationMs   int64     `json:"duration_ms"`
	Initiator    string    `json:"initiator"`
	RequestBody  string    `json:"request_body"`
	ResponseBody string    `json:"response_body"`
	Error        string    `json:"error,omitempty"`
}

func ExchangeConvert(rec dbmodels.ExtApiAudit) ExchangeView {
	return ExchangeView{
		ID:           rec.ID,
		CreatedAt:    rec.CreatedAt,
		Method:       rec.Method,
		Uri:          rec.Uri,
		StatusCode:   rec.StatusCode,
		DurationMs:   rec.DurationMs,
		Initiator:    rec.Initiator,
		RequestBody:  rec.RequestBody,
		ResponseBody: rec.ResponseBody,
		Error:        rec.Error,
	}
}

// RequestTrace lists the backend exchanges made while serving one gateway request.
type RequestTrace struct {
	RequestID string         `json:"request_id"`
	Exchanges []ExchangeView `json:"exchanges"`
}
