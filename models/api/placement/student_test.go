package placementapimodels

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStudentDecode(t *testing.T) {
	t.Run(`mixed skills check`, func(t *testing.T) {
		raw := `{
			"id": "s-1",
			"name": "Priya",
			"skills": ["Go", {"name": "SQL", "proficiency": "expert"}, ""],
			"education": [{"degree": "B.Tech", "university": "IIT", "year": 2024, "gpa": 8.7}, "Diploma"],
			"created_at": "2025-01-15T10:20:30.123456"
		}`
		var student StudentProfile
		require.Nil(t, json.Unmarshal([]byte(raw), &student))
		require.Len(t, student.Skills, 3)
		require.Equal(t, Skill{Name: "Go"}, student.Skills[0])
		require.Equal(t, "expert", student.Skills[1].Proficiency)
		require.Equal(t, []string{"Go", "SQL"}, SkillNames(student.Skills))

		require.Len(t, student.Education, 2)
		require.Equal(t, "B.Tech, IIT (2024)", student.Education[0].String())
		require.NotNil(t, student.Education[0].Gpa)
		require.Equal(t, "Diploma", student.Education[1].String())

		require.Equal(t, time.Date(2025, 1, 15, 10, 20, 30, 123456000, time.UTC), student.CreatedAt.Time)
		require.True(t, student.UpdatedAt.IsZero())
	})

	t.Run(`bad skill check`, func(t *testing.T) {
		var skill Skill
		require.Error(t, json.Unmarshal([]byte(`42`), &skill))
	})
}

func TestBackendTime(t *testing.T) {
	var ts BackendTime
	require.Nil(t, json.Unmarshal([]byte(`"2025-03-01T08:00:00Z"`), &ts))
	require.Equal(t, 2025, ts.Year())

	require.Nil(t, json.Unmarshal([]byte(`"2025-03-01T08:00:00"`), &ts))
	require.Equal(t, 8, ts.Hour())

	require.Error(t, json.Unmarshal([]byte(`"01.03.2025"`), &ts))

	out, err := json.Marshal(BackendTime{})
	require.Nil(t, err)
	require.Equal(t, `null`, string(out))
}

func TestAwaitingReview(t *testing.T) {
	require.True(t, AwaitingReview(ApplicationStatusSubmitted))
	require.True(t, AwaitingReview(ApplicationStatusUnderReview))
	require.False(t, AwaitingReview(ApplicationStatusAccepted))
}
