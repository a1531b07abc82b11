package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	pagesapimodels "placement-gateway/models/api/pages"
	placementapimodels "placement-gateway/models/api/placement"
)

func TestExportStudentList(t *testing.T) {
	t.Run(`rows check`, func(t *testing.T) {
		list := []pagesapimodels.StudentCard{
			{
				Name:      "Priya Sharma",
				Email:     "priya@example.com",
				Phone:     "+91 90000 00000",
				Skills:    []string{"Go", "SQL"},
				Education: []string{"B.Tech, IIT (2024)"},
				HasResume: true,
				CreatedAt: placementapimodels.BackendTime{Time: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
			},
			{Name: "Arjun Rao", Email: "arjun@example.com"},
		}
		buf, err := impl{}.ExportStudentList(list)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows("Students")
		require.Nil(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, studentHeaders, rows[0])
		require.Equal(t, []string{"Priya Sharma", "priya@example.com", "+91 90000 00000", "Go, SQL", "B.Tech, IIT (2024)", "yes", "15.01.2025"}, rows[1])
		require.Equal(t, "no", rows[2][5])
	})

	t.Run(`empty list check`, func(t *testing.T) {
		buf, err := impl{}.ExportStudentList(nil)
		require.Nil(t, err)
		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows("Students")
		require.Nil(t, err)
		require.Len(t, rows, 1)
	})
}

func TestExportApplicationList(t *testing.T) {
	list := []pagesapimodels.ApplicationRow{
		{ID: "a1", StudentID: "s1", StudentName: "Priya Sharma", JobID: "j1", JobTitle: "Go Developer", Company: "Acme", Status: "accepted", Notes: "strong fit"},
		{ID: "a2", StudentID: "s2", JobID: "j2", Status: "submitted"},
	}
	buf, err := impl{}.ExportApplicationList(list)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()
	rows, err := f.GetRows("Applications")
	require.Nil(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, applicationHeaders, rows[0])
	require.Equal(t, []string{"a1", "Priya Sharma", "Go Developer", "Acme", "accepted", "", "strong fit"}, rows[1])
	require.Equal(t, "s2", rows[2][1])
	require.Equal(t, "j2", rows[2][2])
}
