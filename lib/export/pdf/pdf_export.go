package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	placementapimodels "placement-gateway/models/api/placement"
)

const (
	coreFontFamily    = "Helvetica"
	unicodeFontFamily = "Unicode"
	lineHeight        = 7.0
)

type fontFiles struct {
	regular string
	bold    string
}

// unicodeFont is set once at start-up. Without it the report uses the core Helvetica
// font, which only covers cp1252: other characters are printed as "?".
var unicodeFont *fontFiles

// SetUnicodeFont switches reports to the given TrueType files. Italic text reuses the
// regular file; an empty bold path does the same for bold.
func SetUnicodeFont(regular, bold string) error {
	if bold == "" {
		bold = regular
	}
	for _, file := range []string{regular, bold} {
		if _, err := os.Stat(file); err != nil {
			return errors.Wrapf(err, "шрифт %v недоступен", file)
		}
	}
	unicodeFont = &fontFiles{regular: regular, bold: bold}
	return nil
}

type reportWriter struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func newReportWriter(pdf *fpdf.Fpdf) reportWriter {
	if font := unicodeFont; font != nil {
		pdf.AddUTF8Font(unicodeFontFamily, "", font.regular)
		pdf.AddUTF8Font(unicodeFontFamily, "B", font.bold)
		pdf.AddUTF8Font(unicodeFontFamily, "I", font.regular)
		return reportWriter{pdf: pdf, family: unicodeFontFamily, tr: func(s string) string { return s }}
	}
	return reportWriter{pdf: pdf, family: coreFontFamily, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// GenerateStudentReport renders the analytics of one student as a single A4 report.
func GenerateStudentReport(student placementapimodels.StudentProfile, analytics placementapimodels.StudentAnalytics, generatedAt time.Time) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateStudentReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Student report", true)
	pdf.SetAuthor("Placement Gateway", true)
	w := newReportWriter(pdf)
	tr := w.tr
	pdf.AddPage()

	// заголовок
	pdf.SetFont(w.family, "B", 18)
	pdf.CellFormat(0, 10, tr(student.Name), "", 1, "L", false, 0, "")
	pdf.SetFont(w.family, "", 11)
	contacts := make([]string, 0, 2)
	for _, value := range []string{student.Email, student.Phone} {
		if value != "" {
			contacts = append(contacts, value)
		}
	}
	pdf.CellFormat(0, lineHeight, tr(strings.Join(contacts, " | ")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, "Generated "+generatedAt.UTC().Format("02.01.2006 15:04")+" UTC", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	w.section("Summary")
	w.keyValue("Applications", fmt.Sprintf("%d", analytics.TotalApplications))
	w.keyValue("Success rate", fmt.Sprintf("%.1f%%", analytics.ApplicationSuccessRate))
	w.keyValue("Tests taken", fmt.Sprintf("%d", analytics.TotalTestsTaken))
	w.keyValue("Average test score", fmt.Sprintf("%.1f", analytics.AverageTestScore))
	if skills := placementapimodels.SkillNames(student.Skills); len(skills) != 0 {
		w.keyValue("Skills", strings.Join(skills, ", "))
	}

	w.section("Applications by status")
	if len(analytics.ApplicationStatusBreakdown) == 0 {
		w.plain("No applications yet.")
	}
	statuses := make([]string, 0, len(analytics.ApplicationStatusBreakdown))
	for status := range analytics.ApplicationStatusBreakdown {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		w.keyValue(status, fmt.Sprintf("%d", analytics.ApplicationStatusBreakdown[status]))
	}

	w.section("Top job matches")
	if len(analytics.TopJobMatches) == 0 {
		w.plain("No job matches generated.")
	}
	for _, match := range analytics.TopJobMatches {
		w.keyValue(fmt.Sprintf("%s, %s", match.JobTitle, match.Company), fmt.Sprintf("%.0f", match.MatchScore))
	}

	w.section("Skill gap")
	if analytics.SkillGapSummary == nil {
		w.plain("No skill gap analysis available.")
	} else {
		w.keyValue("Missing skills", listOrDash(analytics.SkillGapSummary.MissingSkills))
		w.keyValue("Recommended courses", listOrDash(analytics.SkillGapSummary.RecommendedCourses))
	}

	if pdf.Error() != nil {
		return nil, errors.Wrap(pdf.Error(), "ошибка формирования pdf")
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}

func (w reportWriter) section(title string) {
	w.pdf.Ln(3)
	w.pdf.SetFont(w.family, "B", 13)
	w.pdf.CellFormat(0, 9, w.tr(title), "B", 1, "L", false, 0, "")
	w.pdf.SetFont(w.family, "", 11)
}

func (w reportWriter) keyValue(key, value string) {
	w.pdf.SetFont(w.family, "B", 11)
	w.pdf.CellFormat(60, lineHeight, w.tr(key), "", 0, "L", false, 0, "")
	w.pdf.SetFont(w.family, "", 11)
	w.pdf.MultiCell(0, lineHeight, w.tr(value), "", "L", false)
}

func (w reportWriter) plain(text string) {
	w.pdf.SetFont(w.family, "I", 11)
	w.pdf.CellFormat(0, lineHeight, w.tr(text), "", 1, "L", false, 0, "")
	w.pdf.SetFont(w.family, "", 11)
}

func listOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
