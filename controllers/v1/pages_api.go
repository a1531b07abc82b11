package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"placement-gateway/controllers"
	"placement-gateway/lib/dashboard"
	xlsexport "placement-gateway/lib/export/xls"
	"placement-gateway/middleware"
	apimodels "placement-gateway/models/api"
	pagesapimodels "placement-gateway/models/api/pages"
)

type pagesApiController struct {
	controllers.BaseAPIController
}

func InitPagesApiRouters(app *fiber.App) {
	controller := pagesApiController{}
	app.Route("pages", func(router fiber.Router) {
		router.Get("landing", controller.landing)
		router.Get("dashboard", controller.dashboard)
		router.Get("students", controller.students)
		router.Get("students/export", controller.studentsExport)
		router.Get("students/:id", controller.studentDetail)
	})
}

// @Summary Главная страница
// @Tags Страницы
// @Description Информация о сервисе и сводка по платформе
// @Success 200 {object} apimodels.Response{data=pagesapimodels.LandingPage}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/pages/landing [get]
func (c *pagesApiController) landing(ctx *fiber.Ctx) error {
	page, err := dashboard.Instance.Landing(middleware.CallContext(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных главной страницы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(page))
}

// @Summary Дашборд
// @Tags Страницы
// @Description Сводка, последние вакансии и отклики по статусам
// @Success 200 {object} apimodels.Response{data=pagesapimodels.DashboardPage}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/pages/dashboard [get]
func (c *pagesApiController) dashboard(ctx *fiber.Ctx) error {
	page, err := dashboard.Instance.Dashboard(middleware.CallContext(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных дашборда")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(page))
}

// @Summary Карточки студентов
// @Tags Страницы
// @Description Список студентов с поиском по имени, email и навыкам
// @Param   search    query     string   false  "строка поиска"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]pagesapimodels.StudentCard}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/pages/students [get]
func (c *pagesApiController) students(ctx *fiber.Ctx) error {
	filter, err := c.studentFilter(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	cards, err := dashboard.Instance.StudentCards(middleware.CallContext(ctx), filter.Search)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка студентов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(cards, int64(len(cards))))
}

// @Summary Карточки студентов. Выгрузить в Excel
// @Tags Страницы
// @Description Список студентов (с учетом поиска) в Excel
// @Param   search    query     string   false  "строка поиска"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/pages/students/export [get]
func (c *pagesApiController) studentsExport(ctx *fiber.Ctx) error {
	filter, err := c.studentFilter(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	callCtx := middleware.CallContext(ctx)
	cards, err := dashboard.Instance.StudentCards(callCtx, filter.Search)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка студентов для выгрузки в Excel")
	}
	buf, err := xlsexport.Instance.ExportStudentList(cards)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования выгрузки студентов в Excel")
	}
	fileName := fmt.Sprintf("students-%v.xlsx", time.Now().Format("20060102-150405"))
	return sendXlsx(ctx, callCtx, "students", fileName, buf)
}

// @Summary Карточка студента
// @Tags Страницы
// @Description Профиль, отклики, результаты тестов и аналитика студента
// @Param   id          	path    string  				    true         "student ID"
// @Success 200 {object} apimodels.Response{data=pagesapimodels.StudentDetailPage}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/pages/students/{id} [get]
func (c *pagesApiController) studentDetail(ctx *fiber.Ctx) error {
	page, err := dashboard.Instance.StudentDetail(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения карточки студента")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(page))
}

func (c *pagesApiController) studentFilter(ctx *fiber.Ctx) (pagesapimodels.StudentFilter, error) {
	var filter pagesapimodels.StudentFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return filter, err
	}
	if err := c.Validate(filter); err != nil {
		return filter, err
	}
	return filter, nil
}
