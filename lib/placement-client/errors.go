package placementclient

import (
	"bytes"
	"encoding/json"
	"errors"
)

// FallbackMessage is reported when the backend gives no usable "detail".
const FallbackMessage = "Request failed"

// RequestError is the only error kind returned by the client. Message carries the
// backend's "detail" or FallbackMessage; the HTTP status is deliberately not exposed.
type RequestError struct {
	Message string
	cause   error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.cause
}

func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// IsBackendRejection reports a RequestError built from a non-2xx backend response,
// as opposed to a transport, encoding or decoding failure.
func IsBackendRejection(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.cause == nil
}

func newRequestError(message string, cause error) *RequestError {
	if message == "" {
		message = FallbackMessage
	}
	return &RequestError{Message: message, cause: cause}
}

// detailMessage extracts the FastAPI "detail" field from an error body.
// Non-string details (validation error lists) are reported as compact JSON.
func detailMessage(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return FallbackMessage
	}
	detail := bytes.TrimSpace(payload.Detail)
	if len(detail) == 0 || bytes.Equal(detail, []byte("null")) {
		return FallbackMessage
	}
	var text string
	if err := json.Unmarshal(detail, &text); err == nil {
		if text == "" {
			return FallbackMessage
		}
		return text
	}
	compact := new(bytes.Buffer)
	if err := json.Compact(compact, detail); err != nil {
		return FallbackMessage
	}
	return compact.String()
}
