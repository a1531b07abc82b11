package apiv1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// queryBool parses an optional boolean query parameter.
func queryBool(ctx *fiber.Ctx, key string) (value bool, present bool, err error) {
	raw := ctx.Query(key)
	if raw == "" {
		return false, false, nil
	}
	value, err = strconv.ParseBool(raw)
	if err != nil {
		return false, true, errors.Errorf("параметр %v должен быть true или false", key)
	}
	return value, true, nil
}

// queryPositiveInt parses an optional positive integer query parameter.
func queryPositiveInt(ctx *fiber.Ctx, key string) (value int, present bool, err error) {
	raw := ctx.Query(key)
	if raw == "" {
		return 0, false, nil
	}
	value, err = strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, true, errors.Errorf("параметр %v должен быть положительным целым числом", key)
	}
	return value, true, nil
}
