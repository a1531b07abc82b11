package apiv1

import "github.com/gofiber/fiber/v2"

// InitApiRouters registers every gateway route on the /api/v1 application.
func InitApiRouters(app *fiber.App) {
	InitStudentsApiRouters(app)
	InitJobsApiRouters(app)
	InitApplicationsApiRouters(app)
	InitTestsApiRouters(app)
	InitInterviewQuestionsApiRouters(app)
	InitAiApiRouters(app)
	InitAnalyticsApiRouters(app)
	InitPagesApiRouters(app)
	InitReportsApiRouters(app)
	InitAuditApiRouters(app)
}
