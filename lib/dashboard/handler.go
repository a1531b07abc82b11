package dashboard

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	placementclient "placement-gateway/lib/placement-client"
	initchecker "placement-gateway/lib/utils/init-checker"
	pagesapimodels "placement-gateway/models/api/pages"
	placementapimodels "placement-gateway/models/api/placement"
)

type Provider interface {
	Landing(ctx context.Context) (pagesapimodels.LandingPage, error)
	Dashboard(ctx context.Context) (pagesapimodels.DashboardPage, error)
	StudentCards(ctx context.Context, search string) ([]pagesapimodels.StudentCard, error)
	StudentDetail(ctx context.Context, studentID string) (pagesapimodels.StudentDetailPage, error)
	ApplicationRows(ctx context.Context) ([]pagesapimodels.ApplicationRow, error)
}

var Instance Provider

func NewHandler(client *placementclient.Client) {
	Instance = New(client)
}

func New(client *placementclient.Client) Provider {
	initchecker.CheckInit(
		"placement client", client,
	)
	return impl{client: client}
}

type impl struct {
	client *placementclient.Client
}

func (i impl) Landing(ctx context.Context) (page pagesapimodels.LandingPage, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Backend, err = placementclient.Decode[placementapimodels.BackendInfo](i.client.Info(gctx))
		return err
	})
	g.Go(func() (err error) {
		page.Overview, err = placementclient.Decode[placementapimodels.PlatformOverview](i.client.Analytics.GetOverview(gctx))
		return err
	})
	if err = g.Wait(); err != nil {
		return pagesapimodels.LandingPage{}, errors.Wrap(err, "ошибка получения данных главной страницы")
	}
	return page, nil
}

func (i impl) Dashboard(ctx context.Context) (page pagesapimodels.DashboardPage, err error) {
	var jobs []placementapimodels.Job
	var applications []placementapimodels.Application
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Overview, err = placementclient.Decode[placementapimodels.PlatformOverview](i.client.Analytics.GetOverview(gctx))
		return err
	})
	g.Go(func() (err error) {
		jobs, err = placementclient.Decode[[]placementapimodels.Job](i.client.Jobs.GetAll(gctx))
		return err
	})
	g.Go(func() (err error) {
		applications, err = placementclient.Decode[[]placementapimodels.Application](i.client.Applications.GetAll(gctx))
		return err
	})
	if err = g.Wait(); err != nil {
		return pagesapimodels.DashboardPage{}, errors.Wrap(err, "ошибка получения данных дашборда")
	}

	page.ActiveJobCount = len(jobs)
	page.RecentJobs = recentJobs(jobs, pagesapimodels.RecentJobsLimit)
	page.ApplicationsByStatus = make(map[string]int, len(placementapimodels.ApplicationStatuses))
	for _, status := range placementapimodels.ApplicationStatuses {
		page.ApplicationsByStatus[status] = 0
	}
	for _, application := range applications {
		page.ApplicationsByStatus[application.Status]++
		if placementapimodels.AwaitingReview(application.Status) {
			page.AwaitingReview++
		}
	}
	return page, nil
}

func (i impl) StudentCards(ctx context.Context, search string) ([]pagesapimodels.StudentCard, error) {
	students, err := placementclient.Decode[[]placementapimodels.StudentProfile](i.client.Students.GetAll(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка студентов")
	}
	search = strings.ToLower(strings.TrimSpace(search))
	cards := make([]pagesapimodels.StudentCard, 0, len(students))
	for _, student := range students {
		card := NewStudentCard(student)
		if search != "" && !matchCard(card, search) {
			continue
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (i impl) StudentDetail(ctx context.Context, studentID string) (page pagesapimodels.StudentDetailPage, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Student, err = placementclient.Decode[placementapimodels.StudentProfile](i.client.Students.GetByID(gctx, studentID))
		return err
	})
	g.Go(func() (err error) {
		page.Applications, err = placementclient.Decode[[]placementapimodels.Application](i.client.Applications.GetByStudent(gctx, studentID))
		return err
	})
	g.Go(func() (err error) {
		page.TestResults, err = placementclient.Decode[[]placementapimodels.TestResult](i.client.Tests.GetResults(gctx, studentID))
		return err
	})
	g.Go(func() (err error) {
		page.Analytics, err = placementclient.Decode[placementapimodels.StudentAnalytics](i.client.Analytics.GetStudent(gctx, studentID))
		return err
	})
	if err = g.Wait(); err != nil {
		return pagesapimodels.StudentDetailPage{}, errors.Wrapf(err, "ошибка получения карточки студента %v", studentID)
	}
	return page, nil
}

// ApplicationRows joins every application with its student and job, inactive jobs included.
// Rows whose student or job no longer exists keep the bare id.
func (i impl) ApplicationRows(ctx context.Context) ([]pagesapimodels.ApplicationRow, error) {
	var applications []placementapimodels.Application
	var students []placementapimodels.StudentProfile
	var jobs []placementapimodels.Job
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		applications, err = placementclient.Decode[[]placementapimodels.Application](i.client.Applications.GetAll(gctx))
		return err
	})
	g.Go(func() (err error) {
		students, err = placementclient.Decode[[]placementapimodels.StudentProfile](i.client.Students.GetAll(gctx))
		return err
	})
	g.Go(func() (err error) {
		jobs, err = placementclient.Decode[[]placementapimodels.Job](i.client.Jobs.GetAll(gctx, false))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка откликов")
	}

	studentNames := make(map[string]string, len(students))
	for _, student := range students {
		studentNames[student.ID] = student.Name
	}
	jobsByID := make(map[string]placementapimodels.Job, len(jobs))
	for _, job := range jobs {
		jobsByID[job.ID] = job
	}
	rows := make([]pagesapimodels.ApplicationRow, 0, len(applications))
	for _, application := range applications {
		row := pagesapimodels.ApplicationRow{
			ID:          application.ID,
			StudentID:   application.StudentID,
			StudentName: studentNames[application.StudentID],
			JobID:       application.JobID,
			Status:      application.Status,
			AppliedDate: application.AppliedDate,
		}
		if job, ok := jobsByID[application.JobID]; ok {
			row.JobTitle = job.Title
			row.Company = job.Company
		}
		if application.Notes != nil {
			row.Notes = *application.Notes
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func NewStudentCard(student placementapimodels.StudentProfile) pagesapimodels.StudentCard {
	card := pagesapimodels.StudentCard{
		ID:        student.ID,
		Name:      student.Name,
		Email:     student.Email,
		Phone:     student.Phone,
		Skills:    placementapimodels.SkillNames(student.Skills),
		Education: make([]string, 0, len(student.Education)),
		HasResume: student.ResumeUrl != nil && *student.ResumeUrl != "",
		CreatedAt: student.CreatedAt,
	}
	for _, education := range student.Education {
		if text := education.String(); text != "" {
			card.Education = append(card.Education, text)
		}
	}
	return card
}

func matchCard(card pagesapimodels.StudentCard, search string) bool {
	if strings.Contains(strings.ToLower(card.Name), search) ||
		strings.Contains(strings.ToLower(card.Email), search) {
		return true
	}
	for _, skill := range card.Skills {
		if strings.Contains(strings.ToLower(skill), search) {
			return true
		}
	}
	return false
}

// recentJobs returns up to limit jobs, newest posting first.
func recentJobs(jobs []placementapimodels.Job, limit int) []placementapimodels.Job {
	sorted := make([]placementapimodels.Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].PostedDate.After(sorted[b].PostedDate.Time)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
