package smoke

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/lib/utils/helpers"
	placementapimodels "placement-gateway/models/api/placement"
)

type Options struct {
	// SkipAI leaves out the LLM-backed checks, which are slow and cost money.
	SkipAI bool
	// KeepData leaves the created student and job in the backend.
	KeepData bool
}

// Runner walks one end-to-end scenario against a live backend. A Runner is single use.
type Runner struct {
	client *placementclient.Client
	opts   Options
	report Report

	studentID     string
	jobID         string
	applicationID string
	testID        string
}

func NewRunner(client *placementclient.Client, opts Options) *Runner {
	return &Runner{client: client, opts: opts}
}

func (r *Runner) GetLogger() *log.Entry {
	return log.WithField("worker_name", "placement-smoke")
}

// Run executes every stage in order and returns the report. Cancelling ctx stops it
// between checks; checks that did not run are not reported.
func (r *Runner) Run(ctx context.Context) Report {
	stages := []func(ctx context.Context){
		r.checkInfo,
		r.checkStudents,
		r.checkJobs,
		r.checkApplications,
		r.checkTests,
		r.checkInterviewQuestions,
	}
	if !r.opts.SkipAI {
		stages = append(stages, r.checkAI)
	}
	stages = append(stages, r.checkAnalytics)
	if !r.opts.KeepData {
		stages = append(stages, r.cleanup)
	}
	for _, stage := range stages {
		if helpers.IsContextDone(ctx) {
			r.GetLogger().Warn("проверка прервана")
			break
		}
		stage(ctx)
	}
	logger := r.GetLogger().
		WithField("total", r.report.Total).
		WithField("passed", r.report.Passed).
		WithField("failed", r.report.Failed)
	if r.report.OK() {
		logger.Info("проверка placement backend завершена")
	} else {
		logger.Warn("проверка placement backend завершена с ошибками")
	}
	return r.report
}

// check runs one named check and records its outcome; a panic counts as a failure.
func (r *Runner) check(ctx context.Context, name string, fn func(ctx context.Context) (string, error)) bool {
	if helpers.IsContextDone(ctx) {
		return false
	}
	started := time.Now()
	message, err := func() (message string, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				r.GetLogger().
					WithField("panic_stack", string(debug.Stack())).
					Errorf("panic: (%v)", rec)
				err = errors.Errorf("panic: %v", rec)
			}
		}()
		return fn(placementclient.WithInitiator(ctx, "smoke: "+name))
	}()
	result := Check{Name: name, Passed: err == nil, Message: message, Duration: time.Since(started)}
	if err != nil {
		result.Message = err.Error()
		r.GetLogger().WithField("check", name).WithError(err).Warn("проверка не пройдена")
	} else {
		r.GetLogger().WithField("check", name).Debug(message)
	}
	r.report.add(result)
	return result.Passed
}

// skip records a check that could not run because an earlier one failed.
func (r *Runner) skip(name, missing string) {
	r.report.add(Check{Name: name, Passed: false, Message: "нет " + missing + " для проверки"})
}

// expectFailure succeeds when the backend rejected the call.
func expectFailure(err error, what string) (string, error) {
	if err == nil {
		return "", errors.Errorf("%v: ожидалась ошибка бэкенда", what)
	}
	var reqErr *placementclient.RequestError
	if !errors.As(err, &reqErr) {
		return "", errors.Wrapf(err, "%v: неожиданный тип ошибки", what)
	}
	return fmt.Sprintf("rejected: %s", reqErr.Message), nil
}

func (r *Runner) checkInfo(ctx context.Context) {
	r.check(ctx, "Root Endpoint", func(ctx context.Context) (string, error) {
		info, err := placementclient.Decode[placementapimodels.BackendInfo](r.client.Info(ctx))
		if err != nil {
			return "", err
		}
		if info.Message == "" || len(info.Endpoints) == 0 {
			return "", errors.New("в ответе нет message или endpoints")
		}
		return fmt.Sprintf("%s %s", info.Message, info.Version), nil
	})
}

func (r *Runner) checkStudents(ctx context.Context) {
	if !r.check(ctx, "Create Student", func(ctx context.Context) (string, error) {
		student, err := placementclient.Decode[placementapimodels.StudentProfile](r.client.Students.Create(ctx, sampleStudent))
		if err != nil {
			return "", err
		}
		if student.ID == "" {
			return "", errors.New("в ответе нет id студента")
		}
		r.studentID = student.ID
		return "student " + student.ID, nil
	}) {
		return
	}

	r.check(ctx, "Get Student by ID", func(ctx context.Context) (string, error) {
		student, err := placementclient.Decode[placementapimodels.StudentProfile](r.client.Students.GetByID(ctx, r.studentID))
		if err != nil {
			return "", err
		}
		if student.Name != sampleStudent.Name {
			return "", errors.Errorf("имя студента %q не совпадает", student.Name)
		}
		return "student retrieved", nil
	})

	r.check(ctx, "Get All Students", func(ctx context.Context) (string, error) {
		students, err := placementclient.Decode[[]placementapimodels.StudentProfile](r.client.Students.GetAll(ctx))
		if err != nil {
			return "", err
		}
		if len(students) == 0 {
			return "", errors.New("список студентов пуст")
		}
		return fmt.Sprintf("%d students", len(students)), nil
	})

	r.check(ctx, "Update Student", func(ctx context.Context) (string, error) {
		student, err := placementclient.Decode[placementapimodels.StudentProfile](r.client.Students.Update(ctx, r.studentID, sampleStudentUpdate))
		if err != nil {
			return "", err
		}
		if student.Name != *sampleStudentUpdate.Name {
			return "", errors.New("обновление не применилось")
		}
		return "student updated", nil
	})

	r.check(ctx, "Upload Resume", func(ctx context.Context) (string, error) {
		resp, err := placementclient.Decode[placementapimodels.ResumeUploadResponse](r.client.Students.UploadResume(ctx, r.studentID, sampleResume))
		if err != nil {
			return "", err
		}
		if resp.StudentID != r.studentID {
			return "", errors.Errorf("резюме загружено для другого студента %q", resp.StudentID)
		}
		return resp.Message, nil
	})
}

func (r *Runner) checkJobs(ctx context.Context) {
	if !r.check(ctx, "Create Job", func(ctx context.Context) (string, error) {
		job, err := placementclient.Decode[placementapimodels.Job](r.client.Jobs.Create(ctx, sampleJob))
		if err != nil {
			return "", err
		}
		if job.ID == "" {
			return "", errors.New("в ответе нет id вакансии")
		}
		r.jobID = job.ID
		return "job " + job.ID, nil
	}) {
		return
	}

	r.check(ctx, "Get Job by ID", func(ctx context.Context) (string, error) {
		job, err := placementclient.Decode[placementapimodels.Job](r.client.Jobs.GetByID(ctx, r.jobID))
		if err != nil {
			return "", err
		}
		if job.Title != sampleJob.Title {
			return "", errors.Errorf("название вакансии %q не совпадает", job.Title)
		}
		return "job retrieved", nil
	})

	r.check(ctx, "Get All Jobs", func(ctx context.Context) (string, error) {
		jobs, err := placementclient.Decode[[]placementapimodels.Job](r.client.Jobs.GetAll(ctx))
		if err != nil {
			return "", err
		}
		if len(jobs) == 0 {
			return "", errors.New("список активных вакансий пуст")
		}
		return fmt.Sprintf("%d active jobs", len(jobs)), nil
	})

	r.check(ctx, "Update Job", func(ctx context.Context) (string, error) {
		update := sampleJob
		update.Title = sampleJob.Title + " - Updated"
		update.Location = updatedJobLocation
		job, err := placementclient.Decode[placementapimodels.Job](r.client.Jobs.Update(ctx, r.jobID, update))
		if err != nil {
			return "", err
		}
		if job.Location != updatedJobLocation {
			return "", errors.New("обновление не применилось")
		}
		return "job updated", nil
	})

	r.check(ctx, "Get All Jobs Including Inactive", func(ctx context.Context) (string, error) {
		jobs, err := placementclient.Decode[[]placementapimodels.Job](r.client.Jobs.GetAll(ctx, false))
		if err != nil {
			return "", err
		}
		for _, job := range jobs {
			if job.ID == r.jobID {
				return fmt.Sprintf("%d jobs", len(jobs)), nil
			}
		}
		return "", errors.New("созданная вакансия не найдена в полном списке")
	})
}

func (r *Runner) checkApplications(ctx context.Context) {
	if r.studentID == "" || r.jobID == "" {
		r.skip("Applications", "студента или вакансии")
		return
	}
	if !r.check(ctx, "Submit Application", func(ctx context.Context) (string, error) {
		application, err := placementclient.Decode[placementapimodels.Application](r.client.Applications.Create(ctx,
			placementapimodels.ApplicationCreate{
				StudentID: r.studentID,
				JobID:     r.jobID,
				Notes:     strPtr("I am very interested in this position."),
			}))
		if err != nil {
			return "", err
		}
		if application.Status != placementapimodels.ApplicationStatusSubmitted {
			return "", errors.Errorf("начальный статус %q вместо submitted", application.Status)
		}
		r.applicationID = application.ID
		return "application " + application.ID, nil
	}) {
		return
	}

	r.check(ctx, "Duplicate Application Rejected", func(ctx context.Context) (string, error) {
		_, err := r.client.Applications.Create(ctx, placementapimodels.ApplicationCreate{StudentID: r.studentID, JobID: r.jobID})
		return expectFailure(err, "повторный отклик")
	})

	r.check(ctx, "Get Student Applications", func(ctx context.Context) (string, error) {
		applications, err := placementclient.Decode[[]placementapimodels.Application](r.client.Applications.GetByStudent(ctx, r.studentID))
		if err != nil {
			return "", err
		}
		if len(applications) == 0 {
			return "", errors.New("у студента нет откликов")
		}
		return fmt.Sprintf("%d applications", len(applications)), nil
	})

	r.check(ctx, "Get All Applications", func(ctx context.Context) (string, error) {
		applications, err := placementclient.Decode[[]placementapimodels.Application](r.client.Applications.GetAll(ctx))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d applications", len(applications)), nil
	})

	r.check(ctx, "Update Application Status", func(ctx context.Context) (string, error) {
		resp, err := placementclient.Decode[placementapimodels.ApplicationStatusResponse](
			r.client.Applications.UpdateStatus(ctx, r.applicationID, placementapimodels.ApplicationStatusUnderReview))
		if err != nil {
			return "", err
		}
		if resp.Status != placementapimodels.ApplicationStatusUnderReview {
			return "", errors.Errorf("статус %q вместо under_review", resp.Status)
		}
		return resp.Message, nil
	})

	r.check(ctx, "Invalid Application Status Rejected", func(ctx context.Context) (string, error) {
		_, err := r.client.Applications.UpdateStatus(ctx, r.applicationID, "hired")
		return expectFailure(err, "недопустимый статус")
	})
}

func (r *Runner) checkTests(ctx context.Context) {
	if !r.check(ctx, "Create Test", func(ctx context.Context) (string, error) {
		test, err := placementclient.Decode[placementapimodels.Test](r.client.Tests.Create(ctx, sampleTest))
		if err != nil {
			return "", err
		}
		r.testID = test.ID
		return "test " + test.ID, nil
	}) {
		return
	}

	r.check(ctx, "Get All Tests", func(ctx context.Context) (string, error) {
		tests, err := placementclient.Decode[[]placementapimodels.Test](r.client.Tests.GetAll(ctx))
		if err != nil {
			return "", err
		}
		if len(tests) == 0 {
			return "", errors.New("список тестов пуст")
		}
		return fmt.Sprintf("%d tests", len(tests)), nil
	})

	r.check(ctx, "Get Test by ID", func(ctx context.Context) (string, error) {
		test, err := placementclient.Decode[placementapimodels.Test](r.client.Tests.GetByID(ctx, r.testID))
		if err != nil {
			return "", err
		}
		if test.Title != sampleTest.Title {
			return "", errors.Errorf("название теста %q не совпадает", test.Title)
		}
		return "test retrieved", nil
	})

	if r.studentID == "" {
		r.skip("Submit Test", "студента")
		return
	}
	r.check(ctx, "Submit Test", func(ctx context.Context) (string, error) {
		result, err := placementclient.Decode[placementapimodels.TestResult](r.client.Tests.Submit(ctx, placementapimodels.TestSubmission{
			StudentID: r.studentID,
			TestID:    r.testID,
			Answers:   sampleAnswers,
		}))
		if err != nil {
			return "", err
		}
		if result.CorrectAnswers != sampleCorrectAnswers {
			return "", errors.Errorf("верных ответов %d вместо %d", result.CorrectAnswers, sampleCorrectAnswers)
		}
		return fmt.Sprintf("score %.1f%%", result.Score), nil
	})

	r.check(ctx, "Get Student Test Results", func(ctx context.Context) (string, error) {
		results, err := placementclient.Decode[[]placementapimodels.TestResult](r.client.Tests.GetResults(ctx, r.studentID))
		if err != nil {
			return "", err
		}
		if len(results) == 0 {
			return "", errors.New("у студента нет результатов тестов")
		}
		return fmt.Sprintf("%d results", len(results)), nil
	})
}

func (r *Runner) checkInterviewQuestions(ctx context.Context) {
	r.check(ctx, "Seed Interview Questions", func(ctx context.Context) (string, error) {
		resp, err := placementclient.Decode[placementapimodels.SeedResponse](r.client.InterviewQuestions.Seed(ctx))
		if err != nil {
			return "", err
		}
		return resp.Message, nil
	})

	r.check(ctx, "Get Interview Questions", func(ctx context.Context) (string, error) {
		questions, err := placementclient.Decode[[]placementapimodels.InterviewQuestion](
			r.client.InterviewQuestions.GetAll(ctx, placementclient.QuestionFilter{}))
		if err != nil {
			return "", err
		}
		if len(questions) == 0 {
			return "", errors.New("список вопросов пуст")
		}
		return fmt.Sprintf("%d questions", len(questions)), nil
	})

	r.check(ctx, "Get Filtered Interview Questions", func(ctx context.Context) (string, error) {
		filter := placementclient.QuestionFilter{Category: sampleQuestion.Category, Difficulty: sampleQuestion.Difficulty}
		questions, err := placementclient.Decode[[]placementapimodels.InterviewQuestion](r.client.InterviewQuestions.GetAll(ctx, filter))
		if err != nil {
			return "", err
		}
		for _, question := range questions {
			if question.Category != filter.Category || question.Difficulty != filter.Difficulty {
				return "", errors.Errorf("вопрос %v не соответствует фильтру", question.ID)
			}
		}
		return fmt.Sprintf("%d filtered questions", len(questions)), nil
	})

	r.check(ctx, "Create Interview Question", func(ctx context.Context) (string, error) {
		question, err := placementclient.Decode[placementapimodels.InterviewQuestion](r.client.InterviewQuestions.Create(ctx, sampleQuestion))
		if err != nil {
			return "", err
		}
		return "question " + question.ID, nil
	})
}

func (r *Runner) checkAI(ctx context.Context) {
	if r.studentID == "" {
		r.skip("AI Features", "студента")
		return
	}
	r.check(ctx, "Generate Job Matches", func(ctx context.Context) (string, error) {
		resp, err := placementclient.Decode[placementapimodels.JobMatchesResponse](r.client.AI.GenerateJobMatches(ctx, r.studentID))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d matches", len(resp.Matches)), nil
	})

	r.check(ctx, "Get Job Matches", func(ctx context.Context) (string, error) {
		matches, err := placementclient.Decode[[]placementapimodels.JobMatch](r.client.AI.GetJobMatches(ctx, r.studentID))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d matches", len(matches)), nil
	})

	r.check(ctx, "Analyze Skill Gap", func(ctx context.Context) (string, error) {
		gap, err := placementclient.Decode[placementapimodels.SkillGap](r.client.AI.AnalyzeSkillGap(ctx, r.studentID))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d missing skills", len(gap.MissingSkills)), nil
	})

	r.check(ctx, "Get Skill Gap Analysis", func(ctx context.Context) (string, error) {
		gap, err := placementclient.Decode[placementapimodels.SkillGap](r.client.AI.GetSkillGap(ctx, r.studentID))
		if err != nil {
			return "", err
		}
		if gap.StudentID != r.studentID {
			return "", errors.New("анализ навыков получен для другого студента")
		}
		return "skill gap retrieved", nil
	})

	r.check(ctx, "Get Job Recommendations", func(ctx context.Context) (string, error) {
		resp, err := placementclient.Decode[placementapimodels.JobRecommendations](
			r.client.AI.GetRecommendations(ctx, r.studentID, sampleRecommendationLimit))
		if err != nil {
			return "", err
		}
		if len(resp.Recommendations) > sampleRecommendationLimit {
			return "", errors.Errorf("рекомендаций %d, больше лимита %d", len(resp.Recommendations), sampleRecommendationLimit)
		}
		return fmt.Sprintf("%d recommendations", len(resp.Recommendations)), nil
	})
}

func (r *Runner) checkAnalytics(ctx context.Context) {
	if r.studentID != "" {
		r.check(ctx, "Get Student Analytics", func(ctx context.Context) (string, error) {
			analytics, err := placementclient.Decode[placementapimodels.StudentAnalytics](r.client.Analytics.GetStudent(ctx, r.studentID))
			if err != nil {
				return "", err
			}
			if r.applicationID != "" && analytics.TotalApplications == 0 {
				return "", errors.New("аналитика не учитывает отклик студента")
			}
			return fmt.Sprintf("%d applications, success rate %.1f%%", analytics.TotalApplications, analytics.ApplicationSuccessRate), nil
		})
	}

	r.check(ctx, "Get Platform Overview", func(ctx context.Context) (string, error) {
		overview, err := placementclient.Decode[placementapimodels.PlatformOverview](r.client.Analytics.GetOverview(ctx))
		if err != nil {
			return "", err
		}
		if r.studentID != "" && overview.TotalStudents == 0 {
			return "", errors.New("в сводке нет студентов")
		}
		return fmt.Sprintf("%d students, %d active jobs", overview.TotalStudents, overview.TotalActiveJobs), nil
	})
}

func (r *Runner) cleanup(ctx context.Context) {
	if r.jobID != "" {
		r.check(ctx, "Delete Test Job", func(ctx context.Context) (string, error) {
			resp, err := placementclient.Decode[placementapimodels.MessageResponse](r.client.Jobs.Delete(ctx, r.jobID))
			if err != nil {
				return "", err
			}
			return resp.Message, nil
		})
	}
	if r.studentID != "" {
		r.check(ctx, "Delete Test Student", func(ctx context.Context) (string, error) {
			resp, err := placementclient.Decode[placementapimodels.MessageResponse](r.client.Students.Delete(ctx, r.studentID))
			if err != nil {
				return "", err
			}
			return resp.Message, nil
		})
		r.check(ctx, "Deleted Student Not Found", func(ctx context.Context) (string, error) {
			_, err := r.client.Students.GetByID(ctx, r.studentID)
			return expectFailure(err, "удаленный студент")
		})
	}
}
