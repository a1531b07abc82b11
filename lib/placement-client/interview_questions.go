package placementclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// QuestionFilter narrows the interview question list; empty fields are not sent.
type QuestionFilter struct {
	Category   string
	Difficulty string
}

func (f QuestionFilter) query() url.Values {
	query := url.Values{}
	if f.Category != "" {
		query.Set("category", f.Category)
	}
	if f.Difficulty != "" {
		query.Set("difficulty", f.Difficulty)
	}
	return query
}

type InterviewQuestionsProvider interface {
	Seed(ctx context.Context) (json.RawMessage, error)
	Create(ctx context.Context, payload any) (json.RawMessage, error)
	GetAll(ctx context.Context, filter QuestionFilter) (json.RawMessage, error)
}

type interviewQuestionsImpl struct {
	t *transport
}

func (i interviewQuestionsImpl) Seed(ctx context.Context) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodPost, interviewQuestionsSeedPath, nil, nil)
}

func (i interviewQuestionsImpl) Create(ctx context.Context, payload any) (json.RawMessage, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return i.t.sendRequest(ctx, http.MethodPost, interviewQuestionsPath, nil, body)
}

func (i interviewQuestionsImpl) GetAll(ctx context.Context, filter QuestionFilter) (json.RawMessage, error) {
	return i.t.sendRequest(ctx, http.MethodGet, interviewQuestionsPath, filter.query(), nil)
}
