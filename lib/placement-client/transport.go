package placementclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	contentTypeJSON = "application/json"
	resumeTextField = "resume_text"
)

type transport struct {
	host      string
	userAgent string
	timeout   time.Duration
	http      *http.Client
	auditor   Auditor
}

type requestBody struct {
	data        []byte
	contentType string
	// auditBody is what the audit trail stores instead of raw multipart bytes
	auditBody string
}

func jsonBody(payload any) (*requestBody, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, newRequestError(FallbackMessage, errors.Wrap(err, "ошибка сериализации запроса"))
	}
	return &requestBody{
		data:        data,
		contentType: contentTypeJSON,
		auditBody:   string(data),
	}, nil
}

func multipartBody(field, value string) (*requestBody, error) {
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)
	if err := writer.WriteField(field, value); err != nil {
		return nil, newRequestError(FallbackMessage, errors.Wrap(err, "ошибка формирования multipart запроса"))
	}
	if err := writer.Close(); err != nil {
		return nil, newRequestError(FallbackMessage, errors.Wrap(err, "ошибка формирования multipart запроса"))
	}
	return &requestBody{
		data:        buf.Bytes(),
		contentType: writer.FormDataContentType(),
		auditBody:   "multipart/form-data; fields=" + field,
	}, nil
}

func (t *transport) buildUri(path string, query url.Values) string {
	uri := t.host + path
	if encoded := query.Encode(); encoded != "" {
		uri += "?" + encoded
	}
	return uri
}

func (t *transport) sendRequest(ctx context.Context, method, path string, query url.Values, body *requestBody) (json.RawMessage, error) {
	uri := t.buildUri(path, query)
	callData := ExtractCallData(ctx)
	logger := log.
		WithField("external_request", uri).
		WithField("method", method)
	if callData.RequestID != "" {
		logger = logger.WithField("request_id", callData.RequestID)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body.data)
	}
	r, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return nil, newRequestError(FallbackMessage, errors.Wrap(err, "ошибка формирования запроса"))
	}
	r.Header.Set("Accept", contentTypeJSON)
	r.Header.Set("User-Agent", t.userAgent)
	if body != nil {
		r.Header.Set("Content-Type", body.contentType)
	}
	if callData.RequestID != "" {
		r.Header.Set("X-Request-ID", callData.RequestID)
	}

	started := time.Now()
	response, err := t.http.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в placement backend")
		t.audit(ctx, callData, method, uri, body, 0, nil, started, err)
		return nil, newRequestError(FallbackMessage, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	t.audit(ctx, callData, method, uri, body, response.StatusCode, responseBody, started, err)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения ответа placement backend")
		return nil, newRequestError(FallbackMessage, err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		message := detailMessage(responseBody)
		logger.
			WithField("status", response.StatusCode).
			WithField("response_body", string(responseBody)).
			Error("placement backend вернул ошибку")
		return nil, newRequestError(message, nil)
	}

	if len(bytes.TrimSpace(responseBody)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(responseBody) {
		logger.
			WithField("response_body", string(responseBody)).
			Error("ответ placement backend не является JSON")
		return nil, newRequestError(FallbackMessage, errors.New("ответ не является JSON"))
	}
	logger.WithField("status", response.StatusCode).Debug("запрос в placement backend выполнен")
	return json.RawMessage(responseBody), nil
}

func (t *transport) audit(ctx context.Context, callData CallData, method, uri string, body *requestBody,
	status int, responseBody []byte, started time.Time, callErr error) {
	if t.auditor == nil {
		return
	}
	entry := AuditEntry{
		Method:       method,
		Uri:          uri,
		StatusCode:   status,
		ResponseBody: string(responseBody),
		Duration:     time.Since(started),
		RequestID:    callData.RequestID,
		Initiator:    callData.Initiator,
	}
	if body != nil {
		entry.RequestBody = body.auditBody
	}
	if callErr != nil {
		entry.Error = callErr.Error()
	}
	t.auditor.Record(ctx, entry)
}
