package apiv1

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"placement-gateway/controllers"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/middleware"
)

type aiApiController struct {
	controllers.BaseAPIController
}

func InitAiApiRouters(app *fiber.App) {
	controller := aiApiController{}
	app.Route("ai", func(router fiber.Router) {
		router.Post("job-match/:id", controller.generateJobMatches)
		router.Get("job-match/:id", controller.jobMatches)
		router.Post("skill-gap/:id", controller.analyzeSkillGap)
		router.Get("skill-gap/:id", controller.skillGap)
		router.Post("job-recommendations/:id", controller.recommendations)
	})
}

// @Summary Подбор вакансий
// @Tags ИИ
// @Description Запуск подбора вакансий для студента
// @Param   id          	path    string  				    true         "student ID"
// @Success 200 {object} apimodels.Response{data=placementapimodels.JobMatchesResponse}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/ai/job-match/{id} [post]
func (c *aiApiController) generateJobMatches(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.AI.GenerateJobMatches(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подбора вакансий")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Подобранные вакансии
// @Tags ИИ
// @Description Сохраненные результаты подбора вакансий
// @Param   id          	path    string  				    true         "student ID"
// @Success 200 {object} apimodels.Response{data=[]placementapimodels.JobMatch}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/ai/job-match/{id} [get]
func (c *aiApiController) jobMatches(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.AI.GetJobMatches(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения подобранных вакансий")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Анализ навыков
// @Tags ИИ
// @Description Запуск анализа недостающих навыков студента
// @Param   id          	path    string  				    true         "student ID"
// @Success 200 {object} apimodels.Response{data=placementapimodels.SkillGap}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/ai/skill-gap/{id} [post]
func (c *aiApiController) analyzeSkillGap(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.AI.AnalyzeSkillGap(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка анализа навыков")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Результат анализа навыков
// @Tags ИИ
// @Description Последний анализ недостающих навыков студента
// @Param   id          	path    string  				    true         "student ID"
// @Success 200 {object} apimodels.Response{data=placementapimodels.SkillGap}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/ai/skill-gap/{id} [get]
func (c *aiApiController) skillGap(ctx *fiber.Ctx) error {
	data, err := placementclient.Instance.AI.GetSkillGap(middleware.CallContext(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения анализа навыков")
	}
	return c.SendRaw(ctx, data)
}

// @Summary Рекомендации вакансий
// @Tags ИИ
// @Description Лучшие совпадения с данными вакансий
// @Param   id          	path    string  				    true         "student ID"
// @Param   limit       query   int     false  "количество (по умолчанию 5)"
// @Success 200 {object} apimodels.Response{data=placementapimodels.JobRecommendations}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/ai/job-recommendations/{id} [post]
func (c *aiApiController) recommendations(ctx *fiber.Ctx) error {
	limit, present, err := queryPositiveInt(ctx, "limit")
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var data json.RawMessage
	if present {
		data, err = placementclient.Instance.AI.GetRecommendations(middleware.CallContext(ctx), ctx.Params("id"), limit)
	} else {
		data, err = placementclient.Instance.AI.GetRecommendations(middleware.CallContext(ctx), ctx.Params("id"))
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения рекомендаций")
	}
	return c.SendRaw(ctx, data)
}
