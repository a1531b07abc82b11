package dashboard

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/lib/placement-client/placementtest"
	placementapimodels "placement-gateway/models/api/placement"
)

const overviewBody = `{"total_students":3,"total_active_jobs":6,"total_applications":4,"total_tests_available":1,
	"application_status_breakdown":{"submitted":2,"accepted":1,"rejected":1}}`

const jobsBody = `[
	{"id":"j1","title":"Go Developer","posted_date":"2025-01-01T10:00:00","is_active":true},
	{"id":"j2","title":"QA","posted_date":"2025-03-01T10:00:00","is_active":true},
	{"id":"j3","title":"SRE","posted_date":"2025-02-01T10:00:00","is_active":true},
	{"id":"j4","title":"PM","posted_date":"2025-06-01T10:00:00","is_active":true},
	{"id":"j5","title":"Analyst","posted_date":"2025-05-01T10:00:00","is_active":true},
	{"id":"j6","title":"Designer","posted_date":"2025-04-01T10:00:00","is_active":true}
]`

const applicationsBody = `[
	{"id":"a1","student_id":"s1","job_id":"j1","status":"submitted"},
	{"id":"a2","student_id":"s1","job_id":"j2","status":"under_review"},
	{"id":"a3","student_id":"s2","job_id":"j1","status":"accepted"},
	{"id":"a4","student_id":"s3","job_id":"j3","status":"submitted"}
]`

const studentsBody = `[
	{"id":"s1","name":"Priya Sharma","email":"priya@example.com","skills":["Go","SQL"],
	 "education":[{"degree":"B.Tech","university":"IIT","year":2024}],"resume_url":"Go developer"},
	{"id":"s2","name":"Arjun Rao","email":"arjun@example.com","skills":[{"name":"Python","proficiency":"expert"}],
	 "education":["Diploma"]},
	{"id":"s3","name":"Meera","email":"meera@college.edu","skills":[]}
]`

func newTestProvider(t *testing.T) (Provider, *placementtest.Server) {
	backend := placementtest.NewServer(t)
	client, err := placementclient.New(backend.Host())
	require.Nil(t, err)
	return New(client), backend
}

func TestLanding(t *testing.T) {
	provider, backend := newTestProvider(t)
	backend.
		Handle(http.MethodGet, "/", http.StatusOK, `{"message":"Placement API","version":"1.0.0","endpoints":{"students":"/api/students"}}`).
		Handle(http.MethodGet, "/analytics/overview", http.StatusOK, overviewBody)

	page, err := provider.Landing(context.Background())
	require.Nil(t, err)
	require.Equal(t, "1.0.0", page.Backend.Version)
	require.Equal(t, 3, page.Overview.TotalStudents)
}

func TestDashboard(t *testing.T) {
	t.Run(`aggregation check`, func(t *testing.T) {
		provider, backend := newTestProvider(t)
		backend.
			Handle(http.MethodGet, "/analytics/overview", http.StatusOK, overviewBody).
			Handle(http.MethodGet, "/jobs", http.StatusOK, jobsBody).
			Handle(http.MethodGet, "/applications", http.StatusOK, applicationsBody)

		page, err := provider.Dashboard(context.Background())
		require.Nil(t, err)
		require.Equal(t, 6, page.ActiveJobCount)
		require.Len(t, page.RecentJobs, 5)
		ids := make([]string, 0, len(page.RecentJobs))
		for _, job := range page.RecentJobs {
			ids = append(ids, job.ID)
		}
		require.Equal(t, []string{"j4", "j5", "j6", "j2", "j3"}, ids)
		require.Equal(t, 2, page.ApplicationsByStatus[placementapimodels.ApplicationStatusSubmitted])
		require.Equal(t, 0, page.ApplicationsByStatus[placementapimodels.ApplicationStatusShortlisted])
		require.Equal(t, 3, page.AwaitingReview)

		for _, r := range backend.Requests() {
			if r.Path == "/api/jobs" {
				require.Equal(t, "active_only=true", r.RawQuery)
			}
		}
	})

	t.Run(`backend failure check`, func(t *testing.T) {
		provider, backend := newTestProvider(t)
		backend.
			Handle(http.MethodGet, "/analytics/overview", http.StatusOK, overviewBody).
			Handle(http.MethodGet, "/jobs", http.StatusInternalServerError, `{"detail":"database unavailable"}`).
			Handle(http.MethodGet, "/applications", http.StatusOK, applicationsBody)

		_, err := provider.Dashboard(context.Background())
		require.Error(t, err)
		require.True(t, placementclient.IsRequestError(err))
		require.Contains(t, err.Error(), "database unavailable")
	})
}

func TestStudentCards(t *testing.T) {
	provider, backend := newTestProvider(t)
	backend.Handle(http.MethodGet, "/students", http.StatusOK, studentsBody)

	t.Run(`normalisation check`, func(t *testing.T) {
		cards, err := provider.StudentCards(context.Background(), "")
		require.Nil(t, err)
		require.Len(t, cards, 3)
		require.Equal(t, []string{"Go", "SQL"}, cards[0].Skills)
		require.Equal(t, []string{"B.Tech, IIT (2024)"}, cards[0].Education)
		require.True(t, cards[0].HasResume)
		require.Equal(t, []string{"Python"}, cards[1].Skills)
		require.Equal(t, []string{"Diploma"}, cards[1].Education)
		require.False(t, cards[1].HasResume)
		require.Empty(t, cards[2].Skills)
	})

	t.Run(`search check`, func(t *testing.T) {
		cards, err := provider.StudentCards(context.Background(), "  PYTHON ")
		require.Nil(t, err)
		require.Len(t, cards, 1)
		require.Equal(t, "s2", cards[0].ID)

		cards, err = provider.StudentCards(context.Background(), "college.edu")
		require.Nil(t, err)
		require.Len(t, cards, 1)
		require.Equal(t, "s3", cards[0].ID)

		cards, err = provider.StudentCards(context.Background(), "nobody")
		require.Nil(t, err)
		require.Empty(t, cards)
	})
}

func TestStudentDetail(t *testing.T) {
	t.Run(`aggregation check`, func(t *testing.T) {
		provider, backend := newTestProvider(t)
		backend.
			Handle(http.MethodGet, "/students/s1", http.StatusOK, `{"id":"s1","name":"Priya Sharma","skills":["Go"]}`).
			Handle(http.MethodGet, "/applications/student/s1", http.StatusOK, `[{"id":"a1","student_id":"s1","job_id":"j1","status":"submitted"}]`).
			Handle(http.MethodGet, "/test-results/student/s1", http.StatusOK, `[{"id":"r1","student_id":"s1","test_id":"t1","score":50,"total_questions":2,"correct_answers":1}]`).
			Handle(http.MethodGet, "/analytics/student/s1", http.StatusOK, `{"student_id":"s1","total_applications":1,"application_success_rate":0}`)

		page, err := provider.StudentDetail(context.Background(), "s1")
		require.Nil(t, err)
		require.Equal(t, "Priya Sharma", page.Student.Name)
		require.Len(t, page.Applications, 1)
		require.Len(t, page.TestResults, 1)
		require.Equal(t, float64(50), page.TestResults[0].Score)
		require.Equal(t, 1, page.Analytics.TotalApplications)
	})

	t.Run(`missing student check`, func(t *testing.T) {
		provider, backend := newTestProvider(t)
		backend.
			Handle(http.MethodGet, "/students/s9", http.StatusNotFound, `{"detail":"Student not found"}`).
			Handle(http.MethodGet, "/applications/student/s9", http.StatusOK, `[]`).
			Handle(http.MethodGet, "/test-results/student/s9", http.StatusOK, `[]`).
			Handle(http.MethodGet, "/analytics/student/s9", http.StatusNotFound, `{"detail":"Student not found"}`)

		_, err := provider.StudentDetail(context.Background(), "s9")
		require.Error(t, err)
		var reqErr *placementclient.RequestError
		require.ErrorAs(t, err, &reqErr)
		require.Equal(t, "Student not found", reqErr.Message)
	})

	t.Run(`failure cancels siblings check`, func(t *testing.T) {
		provider, backend := newTestProvider(t)
		cancelled := make(chan struct{})
		slow := func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
				close(cancelled)
			case <-time.After(5 * time.Second):
				_, _ = io.WriteString(w, `{}`)
			}
		}
		backend.
			Handle(http.MethodGet, "/students/s9", http.StatusNotFound, `{"detail":"Student not found"}`).
			Handle(http.MethodGet, "/applications/student/s9", http.StatusOK, `[]`).
			Handle(http.MethodGet, "/test-results/student/s9", http.StatusOK, `[]`).
			HandleFunc(http.MethodGet, "/analytics/student/s9", slow)

		started := time.Now()
		_, err := provider.StudentDetail(context.Background(), "s9")
		require.Error(t, err)
		require.Less(t, time.Since(started), 5*time.Second)
		select {
		case <-cancelled:
		case <-time.After(3 * time.Second):
			t.Fatal("slow sibling request was not cancelled")
		}
	})
}

func TestApplicationRows(t *testing.T) {
	provider, backend := newTestProvider(t)
	backend.
		Handle(http.MethodGet, "/applications", http.StatusOK, `[
			{"id":"a1","student_id":"s1","job_id":"j1","status":"accepted","notes":"strong fit","applied_date":"2025-02-03T09:00:00"},
			{"id":"a2","student_id":"gone","job_id":"j9","status":"submitted"}
		]`).
		Handle(http.MethodGet, "/students", http.StatusOK, studentsBody).
		Handle(http.MethodGet, "/jobs", http.StatusOK, `[{"id":"j1","title":"Go Developer","company":"Acme","is_active":false}]`)

	rows, err := provider.ApplicationRows(context.Background())
	require.Nil(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Priya Sharma", rows[0].StudentName)
	require.Equal(t, "Go Developer", rows[0].JobTitle)
	require.Equal(t, "Acme", rows[0].Company)
	require.Equal(t, "strong fit", rows[0].Notes)
	require.Equal(t, "", rows[1].StudentName)
	require.Equal(t, "j9", rows[1].JobID)

	for _, r := range backend.Requests() {
		if r.Path == "/api/jobs" {
			require.Equal(t, "active_only=false", r.RawQuery)
		}
	}
}
