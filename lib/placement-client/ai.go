package placementclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AIProvider triggers and reads the backend's AI analyses. Generation calls can take
// several seconds; bound them with ctx if needed.
type AIProvider interface {
	GenerateJobMatches(ctx context.Context, studentID string) (json.RawMessage, error)
	GetJobMatches(ctx context.Context, studentID string) (json.RawMessage, error)
	AnalyzeSkillGap(ctx context.Context, studentID string) (json.RawMessage, error)
	GetSkillGap(ctx context.Context, studentID string) (json.RawMessage, error)
	// GetRecommendations returns the top matches enriched with jobs; limit defaults to 5.
	GetRecommendations(ctx context.Context, studentID string, limit ...int) (json.RawMessage, error)
}

type aiImpl struct {
	t *transport
}

func (i aiImpl) GenerateJobMatches(ctx context.Context, studentID string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodPost, fmt.Sprintf(aiJobMatchPath, url.PathEscape(studentID)), nil, nil)
}

func (i aiImpl) GetJobMatches(ctx context.Context, studentID string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, fmt.Sprintf(aiJobMatchPath, url.PathEscape(studentID)), nil, nil)
}

func (i aiImpl) AnalyzeSkillGap(ctx context.Context, studentID string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodPost, fmt.Sprintf(aiSkillGapPath, url.PathEscape(studentID)), nil, nil)
}

func (i aiImpl) GetSkillGap(ctx context.Context, studentID string) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, fmt.Sprintf(aiSkillGapPath, url.PathEscape(studentID)), nil, nil)
}

func (i aiImpl) GetRecommendations(ctx context.Context, studentID string, limit ...int) (json.RawMessage, error) {
	n := defaultRecommendationLimit
	if len(limit) > 0 {
		n = limit[0]
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(n))
	return i.t.sendRequest(ctx, http.MethodPost, fmt.Sprintf(aiRecommendationsPath, url.PathEscape(studentID)), query, nil)
}
