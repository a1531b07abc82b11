package placementapimodels

type SkillGap struct {
	ID                 string      `json:"id"`
	StudentID          string      `json:"student_id"`
	MissingSkills      []string    `json:"missing_skills"`
	RecommendedCourses []string    `json:"recommended_courses"`
	AiAnalysis         string      `json:"ai_analysis"`
	CreatedAt          BackendTime `json:"created_at"`
}

type JobMatch struct {
	ID          string      `json:"id"`
	StudentID   string      `json:"student_id"`
	JobID       string      `json:"job_id"`
	MatchScore  float64     `json:"match_score"`
	AiReasoning string      `json:"ai_reasoning"`
	CreatedAt   BackendTime `json:"created_at"`
}

// JobMatchesResponse: matches is absent when no active jobs exist.
type JobMatchesResponse struct {
	Message string     `json:"message"`
	Matches []JobMatch `json:"matches,omitempty"`
}

type JobRecommendation struct {
	Job         Job     `json:"job"`
	MatchScore  float64 `json:"match_score"`
	AiReasoning string  `json:"ai_reasoning"`
}

type JobRecommendations struct {
	StudentID       string              `json:"student_id"`
	Recommendations []JobRecommendation `json:"recommendations"`
}
