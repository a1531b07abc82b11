package placementapimodels

// JobType: full-time, part-time, internship, contract
type Job struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Company      string      `json:"company"`
	Description  string      `json:"description"`
	Requirements []string    `json:"requirements"`
	Location     string      `json:"location"`
	SalaryRange  *string     `json:"salary_range,omitempty"`
	JobType      string      `json:"job_type"`
	PostedDate   BackendTime `json:"posted_date"`
	IsActive     bool        `json:"is_active"`
}

type JobCreate struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`
	SalaryRange  *string  `json:"salary_range,omitempty"`
	JobType      string   `json:"job_type"`
}
