package placementclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type StudentsProvider interface {
	GetAll(ctx context.Context) (json.RawMessage, error)
	GetByID(ctx context.Context, id string) (json.RawMessage, error)
	Create(ctx context.Context, payload any) (json.RawMessage, error)
	Update(ctx context.Context, id string, payload any) (json.RawMessage, error)
	// UploadResume sends the resume as multipart form field "resume_text".
	UploadResume(ctx context.Context, id, resumeText string) (json.RawMessage, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
}

type studentsImpl struct {
	t *transport
}

func (i studentsImpl) GetAll(ctx context.Context) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, studentsPath, nil, nil)
}

func (i studentsImpl) GetByID(ctx context.Context, id string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, fmt.Sprintf(studentPath, url.PathEscape(id)), nil, nil)
}

func (i studentsImpl) Create(ctx context.Context, payload any) (json.RawMessage, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return i.t.sendRequest(ctx, http.MethodPost, studentsPath, nil, body)
}

func (i studentsImpl) Update(ctx context.Context, id string, payload any) (json.RawMessage, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return i.t.sendRequest(ctx, http.MethodPut, fmt.Sprintf(studentPath, url.PathEscape(id)), nil, body)
}

func (i studentsImpl) UploadResume(ctx context.Context, id, resumeText string) (json.RawMessage, error) {
	body, err := multipartBody(resumeTextField, resumeText)
	if err != nil {
		return nil, err
	}
	return i.t.sendRequest(ctx, http.MethodPost, fmt.Sprintf(studentResumePath, url.PathEscape(id)), nil, body)
}

func (i studentsImpl) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodDelete, fmt.Sprintf(studentPath, url.PathEscape(id)), nil, nil)
}
