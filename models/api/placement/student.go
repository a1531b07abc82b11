package placementapimodels

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type StudentProfile struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Education  []Education  `json:"education"`
	Skills     []Skill      `json:"skills"`
	Experience []Experience `json:"experience"`
	ResumeUrl  *string      `json:"resume_url,omitempty"` // бэкенд хранит здесь текст резюме
	CreatedAt  BackendTime  `json:"created_at"`
	UpdatedAt  BackendTime  `json:"updated_at"`
}

type StudentProfileCreate struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Education  []Education  `json:"education"`
	Skills     []Skill      `json:"skills"`
	Experience []Experience `json:"experience"`
}

type StudentProfileUpdate struct {
	Name       *string      `json:"name,omitempty"`
	Phone      *string      `json:"phone,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Skills     []Skill      `json:"skills,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
}

type Education struct {
	Degree     string   `json:"degree"`
	University string   `json:"university"`
	Year       int      `json:"year"`
	Gpa        *float64 `json:"gpa,omitempty"`
}

// UnmarshalJSON accepts legacy records where education is stored as plain text.
func (e *Education) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*e = Education{Degree: text}
		return nil
	}
	type plain Education
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*e = Education(out)
	return nil
}

func (e Education) String() string {
	parts := make([]string, 0, 2)
	if e.Degree != "" {
		parts = append(parts, e.Degree)
	}
	if e.University != "" {
		parts = append(parts, e.University)
	}
	s := strings.Join(parts, ", ")
	if e.Year > 0 {
		s = fmt.Sprintf("%v (%v)", s, e.Year)
	}
	return s
}

type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Skill proficiency: beginner, intermediate, advanced, expert
type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// UnmarshalJSON accepts both "Go" and {"name":"Go","proficiency":"expert"}.
func (s *Skill) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = Skill{Name: name}
		return nil
	}
	type plain Skill
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*s = Skill(out)
	return nil
}

func SkillNames(skills []Skill) []string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill.Name != "" {
			names = append(names, skill.Name)
		}
	}
	return names
}

type ResumeUploadResponse struct {
	Message   string `json:"message"`
	StudentID string `json:"student_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// BackendTime parses FastAPI datetimes, which are serialised without a zone (UTC).
type BackendTime struct {
	time.Time
}

var backendTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func (t *BackendTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range backendTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("неизвестный формат даты: %v", s)
}

func (t BackendTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(t.Time.Format("2006-01-02T15:04:05.999999"))
}

// ResumeUploadRequest is accepted by the gateway as form data or JSON.
type ResumeUploadRequest struct {
	ResumeText string `json:"resume_text" form:"resume_text" validate:"required"`
}
