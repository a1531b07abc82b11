package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"placement-gateway/controllers"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/middleware"
)

type applicationsApiController struct {
	controllers.BaseAPIController
}

func InitApplicationsApiRouters(app *fiber.App) {
	controller := applicationsApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("student/:id", controller.byStudent)
		router.Put(":id/status", controller.updateStatus)
	})
}

// @Summary Список откликов
// @Tags Отклики
// @Description Все отклики студентов
// @Success 200 {object} apimodels.Response{data=[]placementapimodels.Application}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/applications [get]
func (c *applicationsApiController) list(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Applications.GetAll(middleware.CallContext(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Отклик на вакансию
// @Tags Отклики
// @Description Создание отклика студента на вакансию
// @Param	body body	 placementapimodels.ApplicationCreate	true	"request body"
// @Success 200 {object} apimodels.Response{data=placementapimodels.Application}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/applications [post]
func (c *applicationsApiController) create(ctx *fiber.Ctx) error {
	payload, err := c.JSONBody(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := placementclient.Instance.Applications.Create(middleware.CallContext(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания отклика")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Отклики студента
// @Tags Отклики
// @Description Отклики одного студента
// @Param   id          	path    string  				    true         "student ID"
// @Success 200 {object} apimodels.Response{data=[]placementapimodels.Application}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/applications/student/{id} [get]
func (c *applicationsApiController) byStudent(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Applications.GetByStudent(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов студента")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Смена статуса отклика
// @Tags Отклики
// @Description Смена статуса отклика (submitted, under_review, shortlisted, rejected, accepted)
// @Param   id          	path    string  				    true         "application ID"
// @Param   status          query   string  				    true         "новый статус"
// @Success 200 {object} apimodels.Response{data=placementapimodels.ApplicationStatusResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/applications/{id}/status [put]
func (c *applicationsApiController) updateStatus(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	if status == "" {
		return c.SendBadRequest(ctx, errors.New("не указан статус"))
	}
	data, err := placementclient.Instance.Applications.UpdateStatus(middleware.CallContext(ctx), ctx.Params("id"), status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса отклика")
	}
	return c.SendRaw(ctx, data)
}
