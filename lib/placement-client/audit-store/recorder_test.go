package auditstore

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/lib/placement-client/placementtest"
	dbmodels "placement-gateway/models/db"
)

type memoryStore struct {
	mu      sync.Mutex
	records []dbmodels.ExtApiAudit
	fail    bool
}

func (m *memoryStore) Create(_ context.Context, rec dbmodels.ExtApiAudit) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	if m.fail {
		return "", errors.New("БД недоступна")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return "id", nil
}

func (m *memoryStore) ListByRequestID(_ context.Context, requestID string) ([]dbmodels.ExtApiAudit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []dbmodels.ExtApiAudit
	for _, rec := range m.records {
		if rec.RequestID == requestID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestRecorder(t *testing.T) {
	t.Run(`entry mapping check`, func(t *testing.T) {
		store := &memoryStore{}
		NewRecorder(store).Record(context.Background(), placementclient.AuditEntry{
			Method:       http.MethodPost,
			Uri:          "http://backend/api/students",
			RequestBody:  `{"name":"Priya"}`,
			StatusCode:   http.StatusOK,
			ResponseBody: strings.Repeat("x", MaxBodyLen+100),
			Duration:     1500 * time.Millisecond,
			RequestID:    "req-1",
			Initiator:    "POST /students",
		})
		require.Len(t, store.records, 1)
		rec := store.records[0]
		require.Equal(t, http.MethodPost, rec.Method)
		require.Len(t, rec.ResponseBody, MaxBodyLen)
		require.Equal(t, int64(1500), rec.DurationMs)
		require.Equal(t, "POST /students", rec.Initiator)
	})

	t.Run(`store failure check`, func(t *testing.T) {
		require.NotPanics(t, func() {
			NewRecorder(&memoryStore{fail: true}).Record(context.Background(), placementclient.AuditEntry{
				Method: http.MethodGet,
				Uri:    "http://backend/api/jobs",
			})
		})
	})

	t.Run(`cancelled context check`, func(t *testing.T) {
		store := &memoryStore{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		NewRecorder(store).Record(ctx, placementclient.AuditEntry{Method: http.MethodGet, Uri: "http://backend/api/jobs"})
		require.Len(t, store.records, 1)
	})
}

func TestRecorderWithClient(t *testing.T) {
	backend := placementtest.NewServer(t)
	backend.
		Handle(http.MethodGet, "/students/s1", http.StatusNotFound, `{"detail":"Student not found"}`).
		Handle(http.MethodGet, "/jobs", http.StatusOK, `[]`)

	store := &memoryStore{}
	client, err := placementclient.New(backend.Host(), placementclient.WithAuditor(NewRecorder(store)))
	require.Nil(t, err)

	ctx := placementclient.WithRequestID(context.Background(), "req-42")
	_, err = client.Students.GetByID(ctx, "s1")
	require.Error(t, err)
	_, err = client.Jobs.GetAll(ctx)
	require.Nil(t, err)

	records, err := store.ListByRequestID(context.Background(), "req-42")
	require.Nil(t, err)
	require.Len(t, records, 2)
	require.Equal(t, http.StatusNotFound, records[0].StatusCode)
	require.Equal(t, `{"detail":"Student not found"}`, records[0].ResponseBody)
	require.True(t, strings.HasSuffix(records[1].Uri, "/api/jobs?active_only=true"))
	require.Equal(t, "", records[1].RequestBody)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", truncate("abc", 5))
	require.Equal(t, "ab", truncate("abcdef", 2))
	// "é" is two bytes; a cut in the middle drops the whole rune
	require.Equal(t, "a", truncate("aé", 2))
}
