package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid     = "pid"
	TagIP      = "ip"
	TagMethod  = "method"
	TagPath    = "path"
	TagRoute   = "route"
	TagQuery   = "query"
	TagStatus  = "status"
	TagLatency = "latency"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

// RequestIDLocal is the fiber Locals key the request id middleware stores the id under.
const RequestIDLocal = "requestid"

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag computes the value of a single log field
type FuncTag func(c *fiber.Ctx, d *data) interface{}

var funcTags = map[string]FuncTag{
	TagPid: func(_ *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagIP: func(c *fiber.Ctx, _ *data) interface{} {
		return c.IP()
	},
	TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, _ *data) interface{} {
		return c.Path()
	},
	TagRoute: func(c *fiber.Ctx, _ *data) interface{} {
		if r := c.Route(); r != nil {
			return r.Path
		}
		return ""
	},
	TagQuery: func(c *fiber.Ctx, _ *data) interface{} {
		return string(c.Request().URI().QueryString())
	},
	TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
		return c.Response().StatusCode()
	},
	TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagBody: func(c *fiber.Ctx, _ *data) interface{} {
		if len(c.Body()) > maxBodyLog {
			return string(c.Body()[:maxBodyLog])
		}
		return string(c.Body())
	},
	TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
		body := c.Response().Body()
		if len(body) > maxBodyLog {
			return string(body[:maxBodyLog])
		}
		return string(body)
	},
	RequestID: func(c *fiber.Ctx, _ *data) interface{} {
		id, _ := c.Locals(RequestIDLocal).(string)
		return id
	},
}

const maxBodyLog = 2048

func getFuncTagMap(cfg Config, _ *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := funcTags[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
