package placementclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type TestsProvider interface {
	GetAll(ctx context.Context) (json.RawMessage, error)
	GetByID(ctx context.Context, id string) (json.RawMessage, error)
	Create(ctx context.Context, payload any) (json.RawMessage, error)
	Submit(ctx context.Context, payload any) (json.RawMessage, error)
	GetResults(ctx context.Context, studentID string) (json.RawMessage, error)
}

type testsImpl struct {
	t *transport
}

func (i testsImpl) GetAll(ctx context.Context) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, testsPath, nil, nil)
}

func (i testsImpl) GetByID(ctx context.Context, id string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, fmt.Sprintf(testPath, url.PathEscape(id)), nil, nil)
}

func (i testsImpl) Create(ctx context.Context, payload any) (json.RawMessage, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return i.t.sendRequest(ctx, http.MethodPost, testsPath, nil, body)
}

func (i testsImpl) Submit(ctx context.Context, payload any) (json.RawMessage, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return i.t.sendRequest(ctx, http.MethodPost, testSubmitPath, nil, body)
}

func (i testsImpl) GetResults(ctx context.Context, studentID string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, fmt.Sprintf(studentTestResultsPath, url.PathEscape(studentID)), nil, nil)
}
