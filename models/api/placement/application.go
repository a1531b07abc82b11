package placementapimodels

const (
	ApplicationStatusSubmitted   = "submitted"
	ApplicationStatusUnderReview = "under_review"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusAccepted    = "accepted"
)

var ApplicationStatuses = []string{
	ApplicationStatusSubmitted,
	ApplicationStatusUnderReview,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusAccepted,
}

type Application struct {
	ID          string      `json:"id"`
	StudentID   string      `json:"student_id"`
	JobID       string      `json:"job_id"`
	Status      string      `json:"status"`
	AppliedDate BackendTime `json:"applied_date"`
	Notes       *string     `json:"notes,omitempty"`
}

type ApplicationCreate struct {
	StudentID string  `json:"student_id"`
	JobID     string  `json:"job_id"`
	Notes     *string `json:"notes,omitempty"`
}

type ApplicationStatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// AwaitingReview reports statuses nobody has acted on yet.
func AwaitingReview(status string) bool {
	return status == ApplicationStatusSubmitted || status == ApplicationStatusUnderReview
}
