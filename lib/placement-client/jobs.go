package placementclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type JobsProvider interface {
	// GetAll lists jobs; activeOnly defaults to true when omitted.
	GetAll(ctx context.Context, activeOnly ...bool) (json.RawMessage, error)
	GetByID(ctx context.Context, id string) (json.RawMessage, error)
	Create(ctx context.Context, payload any) (json.RawMessage, error)
	Update(ctx context.Context, id string, payload any) (json.RawMessage, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
}

type jobsImpl struct {
	t *transport
}

func (i jobsImpl) GetAll(ctx context.Context, activeOnly ...bool) (json.RawMessage, error) {
	active := defaultActiveOnly
	if len(activeOnly) > 0 {
		active = activeOnly[0]
	}
	query := url.Values{}
	query.Set("active_only", strconv.FormatBool(active))
	return i.t.sendRequest(ctx, http.MethodGet, jobsPath, query, nil)
}

func (i jobsImpl) GetByID(ctx context.Context, id string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, fmt.Sprintf(jobPath, url.PathEscape(id)), nil, nil)
}

func (i jobsImpl) Create(ctx context.Context, payload any) (json.RawMessage, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return i.t.sendRequest(ctx, http.MethodPost, jobsPath, nil, body)
}

func (i jobsImpl) Update(ctx context.Context, id string, payload any) (json.RawMessage, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return i.t.sendRequest(ctx, http.MethodPut, fmt.Sprintf(jobPath, url.PathEscape(id)), nil, body)
}

func (i jobsImpl) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodDelete, fmt.Sprintf(jobPath, url.PathEscape(id)), nil, nil)
}
