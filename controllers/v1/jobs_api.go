package apiv1

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"placement-gateway/controllers"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/middleware"
)

type jobsApiController struct {
	controllers.BaseAPIController
}

func InitJobsApiRouters(app *fiber.App) {
	controller := jobsApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Список вакансий
// @Tags Вакансии
// @Description Список вакансий, по умолчанию только активные
// @Param   active_only    query     bool   false  "только активные (по умолчанию true)"
// @Success 200 {object} apimodels.Response{data=[]placementapimodels.Job}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/jobs [get]
func (c *jobsApiController) list(ctx *fiber.Ctx) error {
	activeOnly, present, err := queryBool(ctx, "active_only")
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var data json.RawMessage
	if present {
		data, err = placementclient.Instance.Jobs.GetAll(middleware.CallContext(ctx), activeOnly)
	} else {
		data, err = placementclient.Instance.Jobs.GetAll(middleware.CallContext(ctx))
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Создание вакансии
// @Tags Вакансии
// @Description Создание вакансии
// @Param	body body	 placementapimodels.JobCreate	true	"request body"
// @Success 200 {object} apimodels.Response{data=placementapimodels.Job}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/jobs [post]
func (c *jobsApiController) create(ctx *fiber.Ctx) error {
	payload, err := c.JSONBody(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := placementclient.Instance.Jobs.Create(middleware.CallContext(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Вакансия
// @Tags Вакансии
// @Description Вакансия по идентификатору
// @Param   id          	path    string  				    true         "job ID"
// @Success 200 {object} apimodels.Response{data=placementapimodels.Job}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/jobs/{id} [get]
func (c *jobsApiController) get(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Jobs.GetByID(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Обновление вакансии
// @Tags Вакансии
// @Description Обновление вакансии
// @Param   id          	path    string  				    true         "job ID"
// @Param	body body	 placementapimodels.JobCreate	true	"request body"
// @Success 200 {object} apimodels.Response{data=placementapimodels.Job}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/jobs/{id} [put]
func (c *jobsApiController) update(ctx *fiber.Ctx) error {
	payload, err := c.JSONBody(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := placementclient.Instance.Jobs.Update(middleware.CallContext(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления вакансии")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Удаление вакансии
// @Tags Вакансии
// @Description Удаление вакансии
// @Param   id          	path    string  				    true         "job ID"
// @Success 200 {object} apimodels.Response{data=placementapimodels.MessageResponse}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/jobs/{id} [delete]
func (c *jobsApiController) delete(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Jobs.Delete(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вакансии")
	}
	return c.SendRaw(ctx, data)
}
