package apiv1

import (
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"placement-gateway/controllers"
	filestorage "placement-gateway/lib/file-storage"
	apimodels "placement-gateway/models/api"
)

// HeaderReportObject names the archived copy of a generated export.
const HeaderReportObject = "X-Report-Object"

type reportsApiController struct {
	controllers.BaseAPIController
	storage filestorage.Provider
}

// InitReportsApiRouters registers the archive download only when S3 is configured.
func InitReportsApiRouters(app *fiber.App) {
	if filestorage.Instance == nil {
		return
	}
	controller := reportsApiController{storage: filestorage.Instance}
	app.Route("reports", func(router fiber.Router) {
		router.Get("*", controller.download)
	})
}

// @Summary Архивный отчет
// @Tags Отчеты
// @Description Повторная выгрузка отчета из архива по имени объекта из заголовка X-Report-Object
// @Param   object          	path    string  				    true         "object name without the reports/ prefix"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/{object} [get]
func (c *reportsApiController) download(ctx *fiber.Ctx) error {
	objectName, ok := archivedObjectName(ctx.Params("*"))
	if !ok {
		return c.SendBadRequest(ctx, errors.New("некорректное имя отчета"))
	}
	data, err := c.storage.GetReport(ctx.UserContext(), objectName)
	if err != nil {
		if errors.Is(err, filestorage.ErrReportNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения отчета из архива")
	}
	fileName := path.Base(objectName)
	ctx.Set(fiber.HeaderContentType, reportContentType(fileName))
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}

// archivedObjectName maps the route wildcard to a key under reports/, refusing traversal.
func archivedObjectName(param string) (string, bool) {
	param = strings.Trim(param, "/")
	if param == "" || strings.Contains(param, "..") || strings.Contains(param, "\\") {
		return "", false
	}
	return "reports/" + param, true
}

func reportContentType(fileName string) string {
	switch strings.ToLower(path.Ext(fileName)) {
	case ".pdf":
		return mimePdf
	case ".xlsx":
		return mimeXlsx
	}
	return fiber.MIMEOctetStream
}
