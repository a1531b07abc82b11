package fiberlog

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, static log.Fields, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields, len(ftm)+len(static))
	for k, v := range static {
		f[k] = v
	}
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg, nil)
	return func(c *fiber.Ctx) error {
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		fields := getLogrusFields(ftm, cfg.Fields, c, d)
		status := c.Response().StatusCode()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			fields[TagStatus] = status
		}

		var entity *log.Entry
		if cfg.Logger == nil {
			entity = log.WithFields(fields)
		} else {
			entity = cfg.Logger.WithFields(fields)
		}
		if err != nil {
			entity = entity.WithError(err)
		}
		if status >= fiber.StatusMultipleChoices {
			entity.Warn(getMessage(c))
		} else {
			entity.Info(getMessage(c))
		}
		return err
	}
}

func getMessage(_ *fiber.Ctx) string {
	return "запрос api"
}
