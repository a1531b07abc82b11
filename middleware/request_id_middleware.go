package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"placement-gateway/fiberlog"
	placementclient "placement-gateway/lib/placement-client"
)

const HeaderRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it back.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := utils.CopyString(c.Get(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(fiberlog.RequestIDLocal, requestID)
		c.Set(HeaderRequestID, requestID)
		return c.Next()
	}
}

func GetRequestID(c *fiber.Ctx) string {
	requestID, _ := c.Locals(fiberlog.RequestIDLocal).(string)
	return requestID
}

// CallContext is the context handlers pass to the placement client:
// it carries the inbound request id and the matched route as the initiator.
func CallContext(c *fiber.Ctx) context.Context {
	ctx := placementclient.WithRequestID(c.UserContext(), GetRequestID(c))
	initiator := c.Method() + " " + c.Path()
	if r := c.Route(); r != nil && r.Path != "" {
		initiator = c.Method() + " " + r.Path
	}
	return placementclient.WithInitiator(ctx, initiator)
}
