package placementclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type ApplicationsProvider interface {
	Create(ctx context.Context, payload any) (json.RawMessage, error)
	GetByStudent(ctx context.Context, studentID string) (json.RawMessage, error)
	GetAll(ctx context.Context) (json.RawMessage, error)
	// UpdateStatus sends the status as a query parameter with an empty body.
	UpdateStatus(ctx context.Context, id, status string) (json.RawMessage, error)
}

type applicationsImpl struct {
	t *transport
}

func (i applicationsImpl) Create(ctx context.Context, payload any) (json.RawMessage, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return i.t.sendRequest(ctx, http.MethodPost, applicationsPath, nil, body)
}

func (i applicationsImpl) GetByStudent(ctx context.Context, studentID string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, fmt.Sprintf(studentApplicationsPath, url.PathEscape(studentID)), nil, nil)
}

func (i applicationsImpl) GetAll(ctx context.Context) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, applicationsPath, nil, nil)
}

func (i applicationsImpl) UpdateStatus(ctx context.Context, id, status string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("status", status)
	return i.t.sendRequest(ctx, http.MethodPut, fmt.Sprintf(applicationStatusPath, url.PathEscape(id)), query, nil)
}
