package apiv1

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"placement-gateway/controllers"
	"placement-gateway/lib/dashboard"
	pdfexport "placement-gateway/lib/export/pdf"
	xlsexport "placement-gateway/lib/export/xls"
	filestorage "placement-gateway/lib/file-storage"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/middleware"
	placementapimodels "placement-gateway/models/api/placement"
)

const (
	mimeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePdf  = "application/pdf"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Get("overview", controller.overview)
		router.Get("overview/export", controller.overviewExport)
		router.Get("student/:id", controller.student)
		router.Get("student/:id/report", controller.studentReport)
	})
}

// @Summary Аналитика студента
// @Tags Аналитика
// @Description Сводка по откликам, тестам и подбору вакансий студента
// @Param   id          	path    string  				    true         "student ID"
// @Success 200 {object} apimodels.Response{data=placementapimodels.StudentAnalytics}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/analytics/student/{id} [get]
func (c *analyticsApiController) student(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Analytics.GetStudent(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения аналитики студента")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Общая аналитика
// @Tags Аналитика
// @Description Сводка по платформе
// @Success 200 {object} apimodels.Response{data=placementapimodels.PlatformOverview}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/analytics/overview [get]
func (c *analyticsApiController) overview(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.Analytics.GetOverview(middleware.CallContext(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения общей аналитики")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Отчет по студенту
// @Tags Аналитика
// @Description Отчет по студенту в PDF
// @Param   id          	path    string  				    true         "student ID"
// @Success 200
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/analytics/student/{id}/report [get]
func (c *analyticsApiController) studentReport(ctx *fiber.Ctx) error {
	callCtx := middleware.CallContext(ctx)
	studentID := ctx.Params("id")
	var student placementapimodels.StudentProfile
	var analytics placementapimodels.StudentAnalytics
	g, gctx := errgroup.WithContext(callCtx)
	g.Go(func() (err error) {
		student, err = placementclient.Decode[placementapimodels.StudentProfile](placementclient.Instance.Students.GetByID(gctx, studentID))
		return err
	})
	g.Go(func() (err error) {
		analytics, err = placementclient.Decode[placementapimodels.StudentAnalytics](placementclient.Instance.Analytics.GetStudent(gctx, studentID))
		return err
	})
	if err := g.Wait(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных для отчета по студенту")
	}

	data, err := pdfexport.GenerateStudentReport(student, analytics, time.Now())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчета по студенту")
	}
	fileName := fmt.Sprintf("student-%v-%v.pdf", student.ID, time.Now().Format("20060102-150405"))
	if objectName := filestorage.Archive(callCtx, "student-report", fileName, data, mimePdf); objectName != "" {
		ctx.Set(HeaderReportObject, objectName)
	}
	ctx.Set(fiber.HeaderContentType, mimePdf)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}

// @Summary Отклики. Выгрузить в Excel
// @Tags Аналитика
// @Description Все отклики со студентами и вакансиями в Excel
// @Success 200
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/analytics/overview/export [get]
func (c *analyticsApiController) overviewExport(ctx *fiber.Ctx) error {
	callCtx := middleware.CallContext(ctx)
	rows, err := dashboard.Instance.ApplicationRows(callCtx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов для выгрузки в Excel")
	}
	buf, err := xlsexport.Instance.ExportApplicationList(rows)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования выгрузки откликов в Excel")
	}
	fileName := fmt.Sprintf("applications-%v.xlsx", time.Now().Format("20060102-150405"))
	return sendXlsx(ctx, callCtx, "applications", fileName, buf)
}

// sendXlsx archives the spreadsheet and streams it as an attachment.
func sendXlsx(ctx *fiber.Ctx, callCtx context.Context, kind, fileName string, buf *bytes.Buffer) error {
	data := buf.Bytes()
	if objectName := filestorage.Archive(callCtx, kind, fileName, data, mimeXlsx); objectName != "" {
		ctx.Set(HeaderReportObject, objectName)
	}
	ctx.Set(fiber.HeaderContentType, mimeXlsx)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}
