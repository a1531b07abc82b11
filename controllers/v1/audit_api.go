package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"placement-gateway/controllers"
	auditstore "placement-gateway/lib/placement-client/audit-store"
	apimodels "placement-gateway/models/api"
	auditapimodels "placement-gateway/models/api/audit"
)

type auditApiController struct {
	controllers.BaseAPIController
	store auditstore.Provider
}

// InitAuditApiRouters registers the trace route only when auditing is enabled.
func InitAuditApiRouters(app *fiber.App) {
	if auditstore.Instance == nil {
		return
	}
	controller := auditApiController{store: auditstore.Instance}
	app.Route("audit", func(router fiber.Router) {
		router.Get(":requestID", controller.trace)
	})
}

// @Summary Трассировка запроса
// @Tags Аудит
// @Description Запросы к placement backend, выполненные при обработке запроса с указанным X-Request-ID
// @Param   requestID          	path    string  				    true         "request ID"
// @Success 200 {object} apimodels.Response{data=auditapimodels.RequestTrace}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit/{requestID} [get]
func (c *auditApiController) trace(ctx *fiber.Ctx) error {
	requestID := ctx.Params("requestID")
	list, err := c.store.ListByRequestID(ctx.UserContext(), requestID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения аудита запроса")
	}
	if len(list) == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("Запросы с таким идентификатором не найдены"))
	}
	trace := auditapimodels.RequestTrace{
		RequestID: requestID,
		Exchanges: make([]auditapimodels.ExchangeView, 0, len(list)),
	}
	for _, rec := range list {
		trace.Exchanges = append(trace.Exchanges, auditapimodels.ExchangeConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(trace))
}
