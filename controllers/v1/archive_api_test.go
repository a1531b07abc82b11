package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	filestorage "placement-gateway/lib/file-storage"
	placementclient "placement-gateway/lib/placement-client"
	auditstore "placement-gateway/lib/placement-client/audit-store"
	"placement-gateway/middleware"
	auditapimodels "placement-gateway/models/api/audit"
	dbmodels "placement-gateway/models/db"
)

type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memoryStorage) PutReport(_ context.Context, kind, fileName string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name := "reports/" + kind + "/20250301T080000Z-" + fileName
	m.objects[name] = data
	return name, nil
}

func (m *memoryStorage) GetReport(_ context.Context, objectName string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[objectName]
	if !ok {
		return nil, filestorage.ErrReportNotFound
	}
	return data, nil
}

func (m *memoryStorage) MakeBucket(context.Context) error {
	return nil
}

type memoryAudit struct {
	mu      sync.Mutex
	records []dbmodels.ExtApiAudit
}

func (m *memoryAudit) Create(_ context.Context, rec dbmodels.ExtApiAudit) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.CreatedAt = time.Now()
	m.records = append(m.records, rec)
	return rec.ID, nil
}

func (m *memoryAudit) ListByRequestID(_ context.Context, requestID string) ([]dbmodels.ExtApiAudit, error) {
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

func TestReportsRoutes(t *testing.T) {
	t.Run(`not registered without storage check`, func(t *testing.T) {
		filestorage.Instance = nil
		app, _ := newTestApp(t)
		resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/reports/students/x.xlsx", nil))
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	storage := &memoryStorage{objects: make(map[string][]byte)}
	filestorage.Instance = storage
	t.Cleanup(func() { filestorage.Instance = nil })
	app, backend := newTestApp(t)
	backend.
		Handle(http.MethodGet, "/students/s1", http.StatusOK, `{"id":"s1","name":"Priya Sharma"}`).
		Handle(http.MethodGet, "/analytics/student/s1", http.StatusOK, `{"student_id":"s1","total_applications":0}`)

	t.Run(`archived report download check`, func(t *testing.T) {
		resp, report := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/student/s1/report", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		objectName := resp.Header.Get(HeaderReportObject)
		require.True(t, strings.HasPrefix(objectName, "reports/student-report/"))

		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/"+objectName, nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, mimePdf, resp.Header.Get(fiber.HeaderContentType))
		require.True(t, bytes.Equal(report, body))
	})

	t.Run(`unknown report check`, func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/reports/students/missing.xlsx", nil))
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		require.Equal(t, "fail", decodeEnvelope(t, body).Status)
	})

	t.Run(`traversal check`, func(t *testing.T) {
		_, ok := archivedObjectName("students/../../secret")
		require.False(t, ok)
		name, ok := archivedObjectName("/students/a.xlsx/")
		require.True(t, ok)
		require.Equal(t, "reports/students/a.xlsx", name)
	})

	t.Run(`content type check`, func(t *testing.T) {
		require.Equal(t, mimeXlsx, reportContentType("a.XLSX"))
		require.Equal(t, fiber.MIMEOctetStream, reportContentType("a.csv"))
	})
}

func TestAuditRoutes(t *testing.T) {
	t.Run(`not registered without audit check`, func(t *testing.T) {
		auditstore.Instance = nil
		app, _ := newTestApp(t)
		resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/audit/req-1", nil))
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	store := &memoryAudit{}
	auditstore.Instance = store
	t.Cleanup(func() { auditstore.Instance = nil })
	app, backend := newTestApp(t)
	backend.Handle(http.MethodGet, "/students/s1", http.StatusOK, `{"id":"s1"}`)
	client, err := placementclient.New(backend.Host(), placementclient.WithAuditor(auditstore.NewRecorder(store)))
	require.Nil(t, err)
	placementclient.Instance = client

	t.Run(`trace check`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/students/s1", nil)
		req.Header.Set(middleware.HeaderRequestID, "req-trace")
		resp, _ := doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/audit/req-trace", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var trace auditapimodels.RequestTrace
		require.Nil(t, json.Unmarshal(decodeEnvelope(t, body).Data, &trace))
		require.Equal(t, "req-trace", trace.RequestID)
		require.Len(t, trace.Exchanges, 1)
		require.Equal(t, http.MethodGet, trace.Exchanges[0].Method)
		require.Equal(t, http.StatusOK, trace.Exchanges[0].StatusCode)
		require.True(t, strings.HasSuffix(trace.Exchanges[0].Uri, "/api/students/s1"))
		require.Contains(t, trace.Exchanges[0].Initiator, "students/:id")
	})

	t.Run(`unknown request check`, func(t *testing.T) {
		resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/audit/nothing", nil))
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
