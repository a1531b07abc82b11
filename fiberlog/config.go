package fiberlog

import "github.com/sirupsen/logrus"

// Config selects the logger, the per-request tags and the static fields of every access log line.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// Fields are added to every line as is, e.g. the service name.
	Fields logrus.Fields
}

// ConfigDefault logs the request id and the matched route so gateway lines join the backend audit trail.
var ConfigDefault = Config{
	Tags: []string{
		RequestID,
		TagMethod,
		TagRoute,
		TagStatus,
		TagLatency,
	},
	Fields: logrus.Fields{"service": "placement-gateway"},
}
