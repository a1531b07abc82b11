package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"placement-gateway/controllers"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/middleware"
)

type interviewQuestionsApiController struct {
	controllers.BaseAPIController
}

func InitInterviewQuestionsApiRouters(app *fiber.App) {
	controller := interviewQuestionsApiController{}
	app.Route("interview-questions", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Post("seed", controller.seed)
	})
}

// @Summary Вопросы для собеседования
// @Tags Вопросы для собеседования
// @Description Список вопросов с фильтром по категории и сложности
// @Param   category    query     string   false  "категория"
// @Param   difficulty  query     string   false  "сложность"
// @Success 200 {object} apimodels.Response{data=[]placementapimodels.InterviewQuestion}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/interview-questions [get]
func (c *interviewQuestionsApiController) list(ctx *fiber.Ctx) error {
	filter := placementclient.QuestionFilter{
		Category:   ctx.Query("category"),
		Difficulty: ctx.Query("difficulty"),
	}
	data, err := placementclient.Instance.InterviewQuestions.GetAll(middleware.CallContext(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вопросов для собеседования")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Создание вопроса
// @Tags Вопросы для собеседования
// @Description Создание вопроса для собеседования
// @Param	body body	 placementapimodels.InterviewQuestionCreate	true	"request body"
// @Success 200 {object} apimodels.Response{data=placementapimodels.InterviewQuestion}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/interview-questions [post]
func (c *interviewQuestionsApiController) create(ctx *fiber.Ctx) error {
	payload, err := c.JSONBody(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := placementclient.Instance.InterviewQuestions.Create(middleware.CallContext(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вопроса для собеседования")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Наполнение вопросов
// @Tags Вопросы для собеседования
// @Description Заполнение базы стандартным набором вопросов
// @Success 200 {object} apimodels.Response{data=placementapimodels.SeedResponse}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/interview-questions/seed [post]
func (c *interviewQuestionsApiController) seed(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.InterviewQuestions.Seed(middleware.CallContext(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка наполнения вопросов для собеседования")
	}
	return c.SendRaw(ctx, data)
}
