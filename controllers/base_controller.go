package controllers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/middleware"
	apimodels "placement-gateway/models/api"
)

type BaseAPIController struct{}

var validate = validator.New()

// Validate checks validate: tags of a request payload or query.
func (c *BaseAPIController) Validate(payload interface{}) error {
	return validate.Struct(payload)
}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return pkgerrors.New("не удалось получить данные из запроса")
	}
	return nil
}

// JSONBody returns a copy of the request body for verbatim forwarding to the backend.
func (c *BaseAPIController) JSONBody(ctx *fiber.Ctx) (json.RawMessage, error) {
	body := bytes.TrimSpace(ctx.Body())
	if len(body) == 0 || !json.Valid(body) {
		return nil, pkgerrors.New("тело запроса должно быть JSON документом")
	}
	return append(json.RawMessage(nil), body...), nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path()).WithField("method", ctx.Method())
	if requestID := middleware.GetRequestID(ctx); requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// SendError maps a handler error to the response envelope: backend failures become 502 with
// the backend's message, validation failures 400, anything else 500 with msg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	var reqErr *placementclient.RequestError
	if errors.As(err, &reqErr) {
		logger.WithError(err).Warn(msg)
		if placementclient.IsBackendRejection(err) {
			middleware.MarkBackendRejected(ctx)
		}
		return ctx.Status(fiber.StatusBadGateway).JSON(apimodels.NewError(reqErr.Message))
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

// SendRaw wraps a verbatim backend document into the success envelope.
func (c *BaseAPIController) SendRaw(ctx *fiber.Ctx, data []byte) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rawJSON(data)))
}

func (c *BaseAPIController) SendBadRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
}

// rawJSON keeps "null" backend bodies out of the omitempty data field.
func rawJSON(data []byte) interface{} {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.RawMessage(data)
}
