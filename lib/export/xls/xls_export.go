package xlsexport

import (
	"bytes"

	"github.com/xuri/excelize/v2"
	pagesapimodels "placement-gateway/models/api/pages"
)

type Provider interface {
	ExportStudentList(list []pagesapimodels.StudentCard) (*bytes.Buffer, error)
	ExportApplicationList(list []pagesapimodels.ApplicationRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var studentHeaders = []string{"Name", "Email", "Phone", "Skills", "Education", "Resume", "Registered"}

var applicationHeaders = []string{"Application", "Student", "Job", "Company", "Status", "Applied", "Notes"}

func (i impl) ExportStudentList(list []pagesapimodels.StudentCard) (*bytes.Buffer, error) {
	return buildSheet("Students", studentHeaders, len(list), func(f *excelize.File, sheet string, row int) (int, error) {
		for _, item := range list {
			row++
			resume := "no"
			if item.HasResume {
				resume = "yes"
			}
			registered := ""
			if !item.CreatedAt.IsZero() {
				registered = item.CreatedAt.Format(dateLayout)
			}
			if err := writeRow(f, sheet, row,
				item.Name,
				item.Email,
				item.Phone,
				joinList(item.Skills),
				joinList(item.Education),
				resume,
				registered,
			); err != nil {
				return row, err
			}
		}
		return row, nil
	})
}

func (i impl) ExportApplicationList(list []pagesapimodels.ApplicationRow) (*bytes.Buffer, error) {
	return buildSheet("Applications", applicationHeaders, len(list), func(f *excelize.File, sheet string, row int) (int, error) {
		for _, item := range list {
			row++
			student := item.StudentName
			if student == "" {
				student = item.StudentID
			}
			job := item.JobTitle
			if job == "" {
				job = item.JobID
			}
			applied := ""
			if !item.AppliedDate.IsZero() {
				applied = item.AppliedDate.Format(dateLayout)
			}
			if err := writeRow(f, sheet, row,
				item.ID,
				student,
				job,
				item.Company,
				item.Status,
				applied,
				item.Notes,
			); err != nil {
				return row, err
			}
		}
		return row, nil
	})
}
