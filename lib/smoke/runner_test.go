package smoke

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/lib/placement-client/placementtest"
)

func newBackend(t *testing.T) *placementtest.Server {
	var applied, deleted atomic.Bool
	backend := placementtest.NewServer(t)
	backend.
		Handle(http.MethodGet, "/", http.StatusOK, `{"message":"Placement API","version":"1.0.0","endpoints":{"students":"/api/students"}}`).
		Handle(http.MethodPost, "/students", http.StatusOK, `{"id":"s1","name":"Sarah Johnson"}`).
		Handle(http.MethodGet, "/students", http.StatusOK, `[{"id":"s1","name":"Sarah Johnson"}]`).
		Handle(http.MethodPut, "/students/s1", http.StatusOK, `{"id":"s1","name":"Sarah Johnson Updated"}`).
		Handle(http.MethodPost, "/students/s1/resume", http.StatusOK, `{"message":"Resume uploaded successfully","student_id":"s1"}`).
		HandleFunc(http.MethodGet, "/students/s1", func(w http.ResponseWriter, _ *http.Request) {
			if deleted.Load() {
				w.WriteHeader(http.StatusNotFound)
				_, _ = io.WriteString(w, `{"detail":"Student not found"}`)
				return
			}
			_, _ = io.WriteString(w, `{"id":"s1","name":"Sarah Johnson"}`)
		}).
		Handle(http.MethodPost, "/jobs", http.StatusOK, `{"id":"j1","title":"Senior Software Engineer","is_active":true}`).
		Handle(http.MethodGet, "/jobs/j1", http.StatusOK, `{"id":"j1","title":"Senior Software Engineer"}`).
		Handle(http.MethodPut, "/jobs/j1", http.StatusOK, `{"id":"j1","title":"Senior Software Engineer - Updated","location":"Remote"}`).
		Handle(http.MethodDelete, "/jobs/j1", http.StatusOK, `{"message":"Job deleted successfully"}`).
		Handle(http.MethodGet, "/jobs", http.StatusOK, `[{"id":"j0"},{"id":"j1"}]`).
		HandleFunc(http.MethodPost, "/applications", func(w http.ResponseWriter, _ *http.Request) {
			if applied.Swap(true) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"detail":"Already applied to this job"}`)
				return
			}
			_, _ = io.WriteString(w, `{"id":"a1","student_id":"s1","job_id":"j1","status":"submitted"}`)
		}).
		Handle(http.MethodGet, "/applications", http.StatusOK, `[{"id":"a1"}]`).
		Handle(http.MethodGet, "/applications/student/s1", http.StatusOK, `[{"id":"a1"}]`).
		HandleFunc(http.MethodPut, "/applications/a1/status", func(w http.ResponseWriter, r *http.Request) {
			status := r.URL.Query().Get("status")
			if status != "under_review" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"detail":"Invalid status"}`)
				return
			}
			_, _ = io.WriteString(w, `{"message":"Application status updated","status":"under_review"}`)
		}).
		Handle(http.MethodPost, "/tests", http.StatusOK, `{"id":"t1","title":"Python Programming Assessment"}`).
		Handle(http.MethodGet, "/tests", http.StatusOK, `[{"id":"t1"}]`).
		Handle(http.MethodGet, "/tests/t1", http.StatusOK, `{"id":"t1","title":"Python Programming Assessment"}`).
		Handle(http.MethodPost, "/tests/submit", http.StatusOK, `{"id":"r1","score":66.7,"correct_answers":2,"total_questions":3}`).
		Handle(http.MethodGet, "/test-results/student/s1", http.StatusOK, `[{"id":"r1"}]`).
		Handle(http.MethodPost, "/interview-questions/seed", http.StatusOK, `{"message":"Sample questions seeded successfully"}`).
		HandleFunc(http.MethodGet, "/interview-questions", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("category") != "" {
				_, _ = io.WriteString(w, `[{"id":"q1","category":"Programming","difficulty":"medium"}]`)
				return
			}
			_, _ = io.WriteString(w, `[{"id":"q1","category":"Programming","difficulty":"medium"},{"id":"q2","category":"Behavioral","difficulty":"easy"}]`)
		}).
		Handle(http.MethodPost, "/interview-questions", http.StatusOK, `{"id":"q3"}`).
		Handle(http.MethodPost, "/ai/job-match/s1", http.StatusOK, `{"message":"Generated 1 job matches","matches":[{"id":"m1","job_id":"j1","match_score":80}]}`).
		Handle(http.MethodGet, "/ai/job-match/s1", http.StatusOK, `[{"id":"m1","job_id":"j1","match_score":80}]`).
		Handle(http.MethodPost, "/ai/skill-gap/s1", http.StatusOK, `{"id":"g1","student_id":"s1","missing_skills":["Go"]}`).
		Handle(http.MethodGet, "/ai/skill-gap/s1", http.StatusOK, `{"id":"g1","student_id":"s1","missing_skills":["Go"]}`).
		Handle(http.MethodPost, "/ai/job-recommendations/s1", http.StatusOK, `{"student_id":"s1","recommendations":[{"match_score":80}]}`).
		Handle(http.MethodGet, "/analytics/student/s1", http.StatusOK, `{"student_id":"s1","total_applications":1,"application_success_rate":0}`).
		Handle(http.MethodGet, "/analytics/overview", http.StatusOK, `{"total_students":1,"total_active_jobs":1}`).
		HandleFunc(http.MethodDelete, "/students/s1", func(w http.ResponseWriter, _ *http.Request) {
			deleted.Store(true)
			_, _ = io.WriteString(w, `{"message":"Student deleted successfully"}`)
		})
	return backend
}

func newClient(t *testing.T, backend *placementtest.Server) *placementclient.Client {
	client, err := placementclient.New(backend.Host())
	require.Nil(t, err)
	return client
}

func TestRunner(t *testing.T) {
	t.Run(`full scenario check`, func(t *testing.T) {
		backend := newBackend(t)
		report := NewRunner(newClient(t, backend), Options{}).Run(context.Background())
		require.Empty(t, report.FailedChecks())
		require.True(t, report.OK())
		require.Equal(t, 36, report.Total)
		require.Equal(t, float64(100), report.SuccessRate())

		last := report.Checks[len(report.Checks)-1]
		require.Equal(t, "Deleted Student Not Found", last.Name)
		require.Contains(t, last.Message, "Student not found")

		requests := backend.Requests()
		require.Len(t, requests, 36)
		for _, req := range requests {
			require.Equal(t, "application/json", req.Header.Get("Accept"))
			if req.Path == "/api/ai/job-recommendations/s1" {
				require.Equal(t, "limit=3", req.RawQuery)
			}
			if req.Path == "/api/interview-questions" && req.RawQuery != "" {
				require.Equal(t, "category=Programming&difficulty=medium", req.RawQuery)
			}
		}
	})

	t.Run(`skip ai and keep data check`, func(t *testing.T) {
		backend := newBackend(t)
		report := NewRunner(newClient(t, backend), Options{SkipAI: true, KeepData: true}).Run(context.Background())
		require.True(t, report.OK())
		require.Equal(t, 28, report.Total)
		for _, req := range backend.Requests() {
			require.False(t, strings.HasPrefix(req.Path, "/api/ai/"))
			require.NotEqual(t, http.MethodDelete, req.Method)
		}
	})

	t.Run(`unreachable resources check`, func(t *testing.T) {
		backend := placementtest.NewServer(t)
		report := NewRunner(newClient(t, backend), Options{}).Run(context.Background())
		require.False(t, report.OK())
		// every stage degrades to a single failed check when nothing can be created
		names := make([]string, 0, len(report.Checks))
		for _, check := range report.Checks {
			require.False(t, check.Passed, check.Name)
			names = append(names, check.Name)
		}
		require.Equal(t, []string{
			"Root Endpoint",
			"Create Student",
			"Create Job",
			"Applications",
			"Create Test",
			"Seed Interview Questions",
			"Get Interview Questions",
			"Get Filtered Interview Questions",
			"Create Interview Question",
			"AI Features",
			"Get Platform Overview",
		}, names)
	})

	t.Run(`cancelled context check`, func(t *testing.T) {
		backend := newBackend(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		report := NewRunner(newClient(t, backend), Options{}).Run(ctx)
		require.Zero(t, report.Total)
		require.Empty(t, backend.Requests())
	})
}

func TestReportPrint(t *testing.T) {
	var report Report
	report.add(Check{Name: "Root Endpoint", Passed: true, Message: "ok"})
	report.add(Check{Name: "Create Student", Message: "Request failed"})

	buf := new(bytes.Buffer)
	report.Print(buf)
	out := buf.String()
	require.Contains(t, out, "[PASS] Root Endpoint: ok")
	require.Contains(t, out, "[FAIL] Create Student: Request failed")
	require.Contains(t, out, "success rate: 50.0%")
	require.Contains(t, out, "Failed checks:")
	require.Len(t, report.FailedChecks(), 1)
}
