package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"placement-gateway/controllers"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/middleware"
)

type testsApiController struct {
	controllers.BaseAPIController
}

func InitTestsApiRouters(app *fiber.App) {
	controller := testsApiController{}
	app.Route("tests", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Post("submit", controller.submit)
		router.Get("results/:studentID", controller.results)
		router.Get(":id", controller.get)
	})
}

// @Summary Список тестов
// @Tags Тесты
// @Description Список тестов
// @Success 200 {object} apimodels.Response{data=[]placementapimodels.Test}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/tests [get]
func (c *testsApiController) list(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Tests.GetAll(middleware.CallContext(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка тестов")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Создание теста
// @Tags Тесты
// @Description Создание теста
// @Param	body body	 placementapimodels.TestCreate	true	"request body"
// @Success 200 {object} apimodels.Response{data=placementapimodels.Test}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/tests [post]
func (c *testsApiController) create(ctx *fiber.Ctx) error {
	payload, err := c.JSONBody(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := placementclient.Instance.Tests.Create(middleware.CallContext(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания теста")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Тест
// @Tags Тесты
// @Description Тест по идентификатору
// @Param   id          	path    string  				    true         "test ID"
// @Success 200 {object} apimodels.Response{data=placementapimodels.Test}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/tests/{id} [get]
func (c *testsApiController) get(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Tests.GetByID(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения теста")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Отправка ответов
// @Tags Тесты
// @Description Отправка ответов студента, возвращает результат с оценкой
// @Param	body body	 placementapimodels.TestSubmission	true	"request body"
// @Success 200 {object} apimodels.Response{data=placementapimodels.TestResult}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/tests/submit [post]
func (c *testsApiController) submit(ctx *fiber.Ctx) error {
	payload, err := c.JSONBody(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := placementclient.Instance.Tests.Submit(middleware.CallContext(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки ответов теста")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Результаты тестов студента
// @Tags Тесты
// @Description Результаты тестов студента
// @Param   studentID          	path    string  				    true         "student ID"
// @Success 200 {object} apimodels.Response{data=[]placementapimodels.TestResult}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/tests/results/{studentID} [get]
func (c *testsApiController) results(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Tests.GetResults(middleware.CallContext(ctx), ctx.Params("studentID"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения результатов тестов")
	}
	return c.SendRaw(ctx, data)
}
