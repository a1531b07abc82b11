package placementapimodels

// Difficulty: easy, medium, hard
type InterviewQuestion struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Skills     []string `json:"skills"`
}

type InterviewQuestionCreate struct {
	Question   string   `json:"question"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Skills     []string `json:"skills"`
}

type SeedResponse struct {
	Message string `json:"message"`
}
