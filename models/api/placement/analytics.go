package placementapimodels

type TopJobMatch struct {
	JobTitle   string  `json:"job_title"`
	Company    string  `json:"company"`
	MatchScore float64 `json:"match_score"`
}

type SkillGapSummary struct {
	MissingSkills      []string `json:"missing_skills"`
	RecommendedCourses []string `json:"recommended_courses"`
}

type StudentAnalytics struct {
	StudentID                  string           `json:"student_id"`
	TotalApplications          int              `json:"total_applications"`
	ApplicationStatusBreakdown map[string]int   `json:"application_status_breakdown"`
	TotalTestsTaken            int              `json:"total_tests_taken"`
	AverageTestScore           float64          `json:"average_test_score"`
	TopJobMatches              []TopJobMatch    `json:"top_job_matches"`
	SkillGapSummary            *SkillGapSummary `json:"skill_gap_summary"`
	ApplicationSuccessRate     float64          `json:"application_success_rate"`
}

type PlatformOverview struct {
	TotalStudents              int            `json:"total_students"`
	TotalActiveJobs            int            `json:"total_active_jobs"`
	TotalApplications          int            `json:"total_applications"`
	TotalTestsAvailable        int            `json:"total_tests_available"`
	ApplicationStatusBreakdown map[string]int `json:"application_status_breakdown"`
}

type BackendInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
