package placementclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type AnalyticsProvider interface {
	GetStudent(ctx context.Context, studentID string) (json.RawMessage, error)
	GetOverview(ctx context.Context) (json.RawMessage, error)
}

type analyticsImpl struct {
	t *transport
}

func (i analyticsImpl) GetStudent(ctx context.Context, studentID string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, fmt.Sprintf(analyticsStudentPath, url.PathEscape(studentID)), nil, nil)
}

func (i analyticsImpl) GetOverview(ctx context.Context) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, analyticsOverviewPath, nil, nil)
}
