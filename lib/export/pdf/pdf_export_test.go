package pdfexport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
	placementapimodels "placement-gateway/models/api/placement"
)

func TestGenerateStudentReport(t *testing.T) {
	student := placementapimodels.StudentProfile{
		ID:     "s1",
		Name:   "Priya Sharma",
		Email:  "priya@example.com",
		Skills: []placementapimodels.Skill{{Name: "Go"}, {Name: "SQL"}},
	}
	generatedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run(`full report check`, func(t *testing.T) {
		analytics := placementapimodels.StudentAnalytics{
			StudentID:                  "s1",
			TotalApplications:          3,
			ApplicationStatusBreakdown: map[string]int{"accepted": 1, "submitted": 2},
			TotalTestsTaken:            2,
			AverageTestScore:           75,
			TopJobMatches:              []placementapimodels.TopJobMatch{{JobTitle: "Go Developer", Company: "Acme", MatchScore: 88}},
			SkillGapSummary:            &placementapimodels.SkillGapSummary{MissingSkills: []string{"Kubernetes"}},
			ApplicationSuccessRate:     33.3,
		}
		data, err := GenerateStudentReport(student, analytics, generatedAt)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})

	t.Run(`empty analytics check`, func(t *testing.T) {
		data, err := GenerateStudentReport(student, placementapimodels.StudentAnalytics{StudentID: "s1"}, generatedAt)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})

	t.Run(`non latin name check`, func(t *testing.T) {
		named := student
		named.Name = "Prïya Šharma"
		_, err := GenerateStudentReport(named, placementapimodels.StudentAnalytics{}, generatedAt)
		require.Nil(t, err)

		// outside cp1252 the core font degrades characters but still renders
		named.Name = "प्रिया शर्मा"
		data, err := GenerateStudentReport(named, placementapimodels.StudentAnalytics{}, generatedAt)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})
}

func TestReportWriterFallback(t *testing.T) {
	t.Run(`core font translation check`, func(t *testing.T) {
		w := newReportWriter(fpdf.New("P", "mm", "A4", ""))
		require.Equal(t, coreFontFamily, w.family)
		require.Equal(t, "Pr\xefya", w.tr("Prïya"))
		require.Equal(t, "??? Go", w.tr("प्र Go"))
	})
}

func TestSetUnicodeFont(t *testing.T) {
	t.Cleanup(func() { unicodeFont = nil })
	student := placementapimodels.StudentProfile{ID: "s1", Name: "प्रिया शर्मा"}

	t.Run(`missing file check`, func(t *testing.T) {
		err := SetUnicodeFont(filepath.Join(t.TempDir(), "missing.ttf"), "")
		require.Error(t, err)
		require.Nil(t, unicodeFont)
	})

	t.Run(`configured font is used check`, func(t *testing.T) {
		fontPath := filepath.Join(t.TempDir(), "broken.ttf")
		require.Nil(t, os.WriteFile(fontPath, []byte("not a font"), 0o600))
		require.Nil(t, SetUnicodeFont(fontPath, ""))
		require.Equal(t, fontPath, unicodeFont.bold)

		// an unreadable font fails the report instead of silently falling back
		_, err := GenerateStudentReport(student, placementapimodels.StudentAnalytics{}, time.Now())
		require.Error(t, err)
	})
}
