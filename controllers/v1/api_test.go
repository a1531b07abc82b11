package apiv1

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"placement-gateway/lib/dashboard"
	xlsexport "placement-gateway/lib/export/xls"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/lib/placement-client/placementtest"
	"placement-gateway/middleware"
)

type envelope struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	RowCount *int64          `json:"row_count"`
}

func newTestApp(t *testing.T) (*fiber.App, *placementtest.Server) {
	backend := placementtest.NewServer(t)
	client, err := placementclient.New(backend.Host())
	require.Nil(t, err)
	placementclient.Instance = client
	dashboard.NewHandler(client)
	xlsexport.NewHandler()

	app := fiber.New()
	apiV1 := fiber.New()
	apiV1.Use(middleware.RequestID())
	apiV1.Use(middleware.WithBodyLimit(1024))
	app.Mount("/api/v1", apiV1)
	InitApiRouters(apiV1)
	return app, backend
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	resp, err := app.Test(req, -1)
	require.Nil(t, err)
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	return resp, body
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	var out envelope
	require.Nil(t, json.Unmarshal(body, &out))
	return out
}

func TestProxyRoutes(t *testing.T) {
	app, backend := newTestApp(t)
	backend.
		Handle(http.MethodGet, "/students", http.StatusOK, `[{"id":"s1","name":"Priya"}]`).
		Handle(http.MethodPost, "/students", http.StatusOK, `{"id":"s2","name":"Arjun"}`).
		Handle(http.MethodGet, "/students/missing", http.StatusNotFound, `{"detail":"Student not found"}`).
		Handle(http.MethodDelete, "/students/s1", http.StatusOK, `{"message":"Student deleted successfully"}`).
		Handle(http.MethodGet, "/jobs", http.StatusOK, `[]`).
		Handle(http.MethodPut, "/applications/a1/status", http.StatusOK, `{"message":"Status updated","status":"accepted"}`).
		Handle(http.MethodGet, "/test-results/student/s1", http.StatusOK, `[]`).
		Handle(http.MethodGet, "/interview-questions", http.StatusOK, `[]`).
		Handle(http.MethodPost, "/ai/job-recommendations/s1", http.StatusOK, `{"recommendations":[]}`).
		Handle(http.MethodGet, "/analytics/overview", http.StatusOK, `{"total_students":1}`)

	t.Run(`list students check`, func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/students", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		out := decodeEnvelope(t, body)
		require.Equal(t, "success", out.Status)
		require.JSONEq(t, `[{"id":"s1","name":"Priya"}]`, string(out.Data))
		require.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
	})

	t.Run(`create student forwards body check`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(`{"name":"Arjun","email":"arjun@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderRequestID, "req-7")
		resp, _ := doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "req-7", resp.Header.Get(middleware.HeaderRequestID))

		requests := backend.Requests()
		last := requests[len(requests)-1]
		require.JSONEq(t, `{"name":"Arjun","email":"arjun@example.com"}`, string(last.Body))
		require.Equal(t, "req-7", last.Header.Get("X-Request-ID"))
	})

	t.Run(`invalid json body check`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(`{"name":`))
		resp, body := doRequest(t, app, req)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "fail", decodeEnvelope(t, body).Status)
	})

	t.Run(`backend error becomes bad gateway check`, func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/students/missing", nil))
		require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
		out := decodeEnvelope(t, body)
		require.Equal(t, "fail", out.Status)
		require.Equal(t, "Student not found", out.Message)
	})

	t.Run(`delete student check`, func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodDelete, "/api/v1/students/s1", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.JSONEq(t, `{"message":"Student deleted successfully"}`, string(decodeEnvelope(t, body).Data))
	})

	t.Run(`jobs active only check`, func(t *testing.T) {
		resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		requests := backend.Requests()
		require.Equal(t, "active_only=true", requests[len(requests)-1].RawQuery)

		resp, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/jobs?active_only=false", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		requests = backend.Requests()
		require.Equal(t, "active_only=false", requests[len(requests)-1].RawQuery)

		resp, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/jobs?active_only=maybe", nil))
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`application status check`, func(t *testing.T) {
		resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodPut, "/api/v1/applications/a1/status?status=accepted", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		requests := backend.Requests()
		last := requests[len(requests)-1]
		require.Equal(t, "status=accepted", last.RawQuery)
		require.Empty(t, last.Body)

		resp, _ = doRequest(t, app, httptest.NewRequest(http.MethodPut, "/api/v1/applications/a1/status", nil))
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`test results path check`, func(t *testing.T) {
		resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/tests/results/s1", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		requests := backend.Requests()
		require.Equal(t, "/api/test-results/student/s1", requests[len(requests)-1].Path)
	})

	t.Run(`interview questions filter check`, func(t *testing.T) {
		resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/interview-questions?category=technical", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		requests := backend.Requests()
		require.Equal(t, "category=technical", requests[len(requests)-1].RawQuery)
	})

	t.Run(`recommendations limit check`, func(t *testing.T) {
		resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodPost, "/api/v1/ai/job-recommendations/s1", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		requests := backend.Requests()
		require.Equal(t, "limit=5", requests[len(requests)-1].RawQuery)

		resp, _ = doRequest(t, app, httptest.NewRequest(http.MethodPost, "/api/v1/ai/job-recommendations/s1?limit=3", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		requests = backend.Requests()
		require.Equal(t, "limit=3", requests[len(requests)-1].RawQuery)

		resp, _ = doRequest(t, app, httptest.NewRequest(http.MethodPost, "/api/v1/ai/job-recommendations/s1?limit=0", nil))
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`body limit check`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(strings.Repeat("x", 2048)))
		resp, _ := doRequest(t, app, req)
		require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})
}

func TestUploadResume(t *testing.T) {
	app, backend := newTestApp(t)
	backend.Handle(http.MethodPost, "/students/s1/resume", http.StatusOK, `{"message":"Resume uploaded successfully","student_id":"s1"}`)

	t.Run(`json body check`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/students/s1/resume", strings.NewReader(`{"resume_text":"Go developer"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		requests := backend.Requests()
		last := requests[len(requests)-1]
		require.True(t, strings.HasPrefix(last.Header.Get("Content-Type"), "multipart/form-data"))
		require.Contains(t, string(last.Body), `name="resume_text"`)
		require.Contains(t, string(last.Body), "Go developer")
	})

	t.Run(`multipart body check`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		writer := multipart.NewWriter(buf)
		require.Nil(t, writer.WriteField("resume_text", "SQL analyst"))
		require.Nil(t, writer.Close())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/students/s1/resume", buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		requests := backend.Requests()
		require.Contains(t, string(requests[len(requests)-1].Body), "SQL analyst")
	})

	t.Run(`missing text check`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/students/s1/resume", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := doRequest(t, app, req)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestPagesRoutes(t *testing.T) {
	app, backend := newTestApp(t)
	backend.
		Handle(http.MethodGet, "/students", http.StatusOK, `[
			{"id":"s1","name":"Priya Sharma","email":"priya@example.com","skills":["Go"]},
			{"id":"s2","name":"Arjun Rao","email":"arjun@example.com","skills":[{"name":"Python"}]}
		]`).
		Handle(http.MethodGet, "/analytics/overview", http.StatusOK, `{"total_students":2}`).
		Handle(http.MethodGet, "/jobs", http.StatusOK, `[]`).
		Handle(http.MethodGet, "/applications", http.StatusOK, `[]`)

	t.Run(`student cards check`, func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/pages/students?search=python", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		out := decodeEnvelope(t, body)
		require.NotNil(t, out.RowCount)
		require.Equal(t, int64(1), *out.RowCount)
		require.Contains(t, string(out.Data), `"Arjun Rao"`)
	})

	t.Run(`dashboard check`, func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/pages/dashboard", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var page struct {
			ActiveJobCount       int            `json:"active_job_count"`
			ApplicationsByStatus map[string]int `json:"applications_by_status"`
		}
		require.Nil(t, json.Unmarshal(decodeEnvelope(t, body).Data, &page))
		require.Equal(t, 0, page.ActiveJobCount)
		require.Len(t, page.ApplicationsByStatus, 5)
	})

	t.Run(`students export check`, func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/pages/students/export", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "students-")
		f, err := excelize.OpenReader(bytes.NewReader(body))
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows("Students")
		require.Nil(t, err)
		require.Len(t, rows, 3)
	})

	t.Run(`landing failure check`, func(t *testing.T) {
		// backend root is not registered, so the fake answers 404 Not Found
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/pages/landing", nil))
		require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
		require.Equal(t, "Not Found", decodeEnvelope(t, body).Message)
	})
}

func TestStudentReport(t *testing.T) {
	app, backend := newTestApp(t)
	backend.
		Handle(http.MethodGet, "/students/s1", http.StatusOK, `{"id":"s1","name":"Priya Sharma"}`).
		Handle(http.MethodGet, "/analytics/student/s1", http.StatusOK, `{"student_id":"s1","total_applications":2,"application_status_breakdown":{"submitted":2}}`)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/student/s1/report", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	require.True(t, bytes.HasPrefix(body, []byte("%PDF-")))

	resp, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/student/s9/report", nil))
	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
