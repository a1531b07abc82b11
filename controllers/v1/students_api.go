package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"placement-gateway/controllers"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/middleware"
	placementapimodels "placement-gateway/models/api/placement"
)

type studentsApiController struct {
	controllers.BaseAPIController
}

func InitStudentsApiRouters(app *fiber.App) {
	controller := studentsApiController{}
	app.Route("students", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
		router.Post(":id/resume", controller.uploadResume)
	})
}

// @Summary Список студентов
// @Tags Студенты
// @Description Список профилей студентов
// @Success 200 {object} apimodels.Response{data=[]placementapimodels.StudentProfile}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/students [get]
func (c *studentsApiController) list(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Students.GetAll(middleware.CallContext(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка студентов")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Создание студента
// @Tags Студенты
// @Description Создание профиля студента
// @Param	body body	 placementapimodels.StudentProfileCreate	true	"request body"
// @Success 200 {object} apimodels.Response{data=placementapimodels.StudentProfile}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/students [post]
func (c *studentsApiController) create(ctx *fiber.Ctx) error {
	payload, err := c.JSONBody(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := placementclient.Instance.Students.Create(middleware.CallContext(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания студента")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Студент
// @Tags Студенты
// @Description Профиль студента
// @Param   id          	path    string  				    true         "student ID"
// @Success 200 {object} apimodels.Response{data=placementapimodels.StudentProfile}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/students/{id} [get]
func (c *studentsApiController) get(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Students.GetByID(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения студента")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Обновление студента
// @Tags Студенты
// @Description Частичное обновление профиля студента
// @Param   id          	path    string  				    true         "student ID"
// @Param	body body	 placementapimodels.StudentProfileUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=placementapimodels.StudentProfile}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/students/{id} [put]
func (c *studentsApiController) update(ctx *fiber.Ctx) error {
	payload, err := c.JSONBody(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := placementclient.Instance.Students.Update(middleware.CallContext(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления студента")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Удаление студента
// @Tags Студенты
// @Description Удаление профиля студента
// @Param   id          	path    string  				    true         "student ID"
// @Success 200 {object} apimodels.Response{data=placementapimodels.MessageResponse}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/students/{id} [delete]
func (c *studentsApiController) delete(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Students.Delete(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления студента")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Загрузка резюме
// @Tags Студенты
// @Description Загрузка текста резюме (form-data или JSON)
// @Param   id          	path    string  				    true         "student ID"
// @Param	body body	 placementapimodels.ResumeUploadRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=placementapimodels.ResumeUploadResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/students/{id}/resume [post]
func (c *studentsApiController) uploadResume(ctx *fiber.Ctx) error {
	var payload placementapimodels.ResumeUploadRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := c.Validate(payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := placementclient.Instance.Students.UploadResume(middleware.CallContext(ctx), ctx.Params("id"), payload.ResumeText)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки резюме")
	}
	return c.SendRaw(ctx, data)
}
