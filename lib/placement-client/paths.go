package placementclient

const (
	rootPath string = "/"

	studentsPath      string = "/students"
	studentPath       string = "/students/%v"
	studentResumePath string = "/students/%v/resume"

	jobsPath string = "/jobs"
	jobPath  string = "/jobs/%v"

	applicationsPath        string = "/applications"
	studentApplicationsPath string = "/applications/student/%v"
	applicationStatusPath   string = "/applications/%v/status"

	testsPath              string = "/tests"
	testPath               string = "/tests/%v"
	testSubmitPath         string = "/tests/submit"
	studentTestResultsPath string = "/test-results/student/%v"

	interviewQuestionsPath     string = "/interview-questions"
	interviewQuestionsSeedPath string = "/interview-questions/seed"

	aiJobMatchPath        string = "/ai/job-match/%v"
	aiSkillGapPath        string = "/ai/skill-gap/%v"
	aiRecommendationsPath string = "/ai/job-recommendations/%v"

	analyticsStudentPath  string = "/analytics/student/%v"
	analyticsOverviewPath string = "/analytics/overview"
)

const (
	defaultActiveOnly          = true
	defaultRecommendationLimit = 5
)
