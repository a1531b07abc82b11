package placementapimodels

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"` // индекс верного варианта
}

type Test struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Category        string      `json:"category"`
	DurationMinutes int         `json:"duration_minutes"`
	Questions       []Question  `json:"questions"`
	CreatedAt       BackendTime `json:"created_at"`
}

type TestCreate struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	DurationMinutes int        `json:"duration_minutes"`
	Questions       []Question `json:"questions"`
}

type TestAnswer struct {
	QuestionIndex  int `json:"question_index"`
	SelectedAnswer int `json:"selected_answer"`
}

type TestSubmission struct {
	StudentID string       `json:"student_id"`
	TestID    string       `json:"test_id"`
	Answers   []TestAnswer `json:"answers"`
}

type TestResult struct {
	ID             string       `json:"id"`
	StudentID      string       `json:"student_id"`
	TestID         string       `json:"test_id"`
	Score          float64      `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	CorrectAnswers int          `json:"correct_answers"`
	Answers        []TestAnswer `json:"answers"`
	CompletedAt    BackendTime  `json:"completed_at"`
}
