package placementclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultUserAgent = "PlacementGateway/1.0"

// Client groups the backend endpoints by resource namespace. It keeps no state between
// calls and is safe for concurrent use.
type Client struct {
	Students           StudentsProvider
	Jobs               JobsProvider
	Applications       ApplicationsProvider
	Tests              TestsProvider
	InterviewQuestions InterviewQuestionsProvider
	AI                 AIProvider
	Analytics          AnalyticsProvider

	t *transport
}

// Instance is the process-wide client built from configuration at start-up.
var Instance *Client

type Option func(*transport)

func WithHTTPClient(c *http.Client) Option {
	return func(t *transport) {
		if c != nil {
			t.http = c
		}
	}
}

// WithTimeout bounds every exchange; zero keeps the transport defaults.
func WithTimeout(timeout time.Duration) Option {
	return func(t *transport) {
		t.timeout = timeout
	}
}

func WithUserAgent(userAgent string) Option {
	return func(t *transport) {
		if userAgent != "" {
			t.userAgent = userAgent
		}
	}
}

func WithAuditor(auditor Auditor) Option {
	return func(t *transport) {
		t.auditor = auditor
	}
}

func New(host string, opts ...Option) (*Client, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, errors.New("не задан адрес placement backend")
	}
	t := &transport{
		host:      strings.TrimRight(host, "/"),
		userAgent: defaultUserAgent,
		http:      &http.Client{},
	}
	for _, o := range opts {
		o(t)
	}
	if t.timeout > 0 {
		httpClient := *t.http
		httpClient.Timeout = t.timeout
		t.http = &httpClient
	}
	return &Client{
		Students:           studentsImpl{t: t},
		Jobs:               jobsImpl{t: t},
		Applications:       applicationsImpl{t: t},
		Tests:              testsImpl{t: t},
		InterviewQuestions: interviewQuestionsImpl{t: t},
		AI:                 aiImpl{t: t},
		Analytics:          analyticsImpl{t: t},
		t:                  t,
	}, nil
}

func NewProvider(host string, opts ...Option) {
	c, err := New(host, opts...)
	if err != nil {
		log.WithError(err).Fatal("ошибка инициализации клиента placement backend")
	}
	Instance = c
	log.WithField("host", c.Host()).Info("клиент placement backend инициализирован")
}

// Host returns the base address every path is appended to.
func (c *Client) Host() string {
	return c.t.host
}

// Info returns the backend root document (name, version, endpoint map).
func (c *Client) Info(ctx context.Context) (json.RawMessage, error) {
	return c.t.sendRequest(ctx, http.MethodGet, rootPath, nil, nil)
}

// Decode gives a typed view over a raw backend response. It passes err through so it
// can wrap a client call directly.
func Decode[T any](raw json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, errors.Wrap(err, "ошибка разбора ответа placement backend")
	}
	return out, nil
}
