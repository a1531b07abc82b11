package initializers

import (
	log "github.com/sirupsen/logrus"
	"placement-gateway/config"
	"placement-gateway/fiberlog"
)

func InitLogger() *fiberlog.Config {
	formatter := &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
	level, err := log.ParseLevel(config.Conf.App.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetFormatter(formatter)
	log.SetLevel(level)

	logger := log.New()
	logger.SetFormatter(formatter)
	logger.SetLevel(level)
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagRoute,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagQuery,
			fiberlog.RequestID,
		},
		Fields: fiberlog.ConfigDefault.Fields,
	}
}
