package pagesapimodels

import (
	placementapimodels "placement-gateway/models/api/placement"
)

// RecentJobsLimit is how many of the newest jobs the dashboard shows.
const RecentJobsLimit = 5

type LandingPage struct {
	Backend  placementapimodels.BackendInfo      `json:"backend"`
	Overview placementapimodels.PlatformOverview `json:"overview"`
}

type DashboardPage struct {
	Overview             placementapimodels.PlatformOverview `json:"overview"`
	ActiveJobCount       int                                 `json:"active_job_count"`
	RecentJobs           []placementapimodels.Job            `json:"recent_jobs"`
	ApplicationsByStatus map[string]int                      `json:"applications_by_status"`
	AwaitingReview       int                                 `json:"awaiting_review"`
}

type StudentCard struct {
	ID        string                         `json:"id"`
	Name      string                         `json:"name"`
	Email     string                         `json:"email"`
	Phone     string                         `json:"phone"`
	Skills    []string                       `json:"skills"`
	Education []string                       `json:"education"`
	HasResume bool                           `json:"has_resume"`
	CreatedAt placementapimodels.BackendTime `json:"created_at"`
}

type StudentDetailPage struct {
	Student      placementapimodels.StudentProfile   `json:"student"`
	Applications []placementapimodels.Application    `json:"applications"`
	TestResults  []placementapimodels.TestResult     `json:"test_results"`
	Analytics    placementapimodels.StudentAnalytics `json:"analytics"`
}

// StudentFilter is the query of the student listing page.
type StudentFilter struct {
	Search string `query:"search" validate:"max=200"`
}

// ApplicationRow is an application joined with its student and job for exports.
type ApplicationRow struct {
	ID          string                         `json:"id"`
	StudentID   string                         `json:"student_id"`
	StudentName string                         `json:"student_name"`
	JobID       string                         `json:"job_id"`
	JobTitle    string                         `json:"job_title"`
	Company     string                         `json:"company"`
	Status      string                         `json:"status"`
	AppliedDate placementapimodels.BackendTime `json:"applied_date"`
	Notes       string                         `json:"notes"`
}
