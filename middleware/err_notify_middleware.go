package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	log "github.com/sirupsen/logrus"
)

const (
	backendRejectedLocal = "backendRejected"
	notifyQueueSize      = 64
)

type errNotification struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

var notifyClient = &http.Client{Timeout: 10 * time.Second}

// MarkBackendRejected flags a response that relays the backend's own error answer.
// ErrNotify does not report such responses.
func MarkBackendRejected(c *fiber.Ctx) {
	c.Locals(backendRejectedLocal, true)
}

func isBackendRejected(c *fiber.Ctx) bool {
	rejected, _ := c.Locals(backendRejectedLocal).(bool)
	return rejected
}

// ErrNotify posts a short JSON report to addr for every 5xx response of the gateway,
// except 502s marked with MarkBackendRejected. Reports are sent one by one from a
// bounded queue; when the queue is full the report is dropped.
func ErrNotify(addr string) fiber.Handler {
	notifier := newErrNotifier(addr, notifyQueueSize)
	go notifier.run()
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				statusCode = fiberErr.Code
			} else {
				statusCode = fiber.StatusInternalServerError
			}
		}
		if statusCode < http.StatusInternalServerError || isBackendRejected(c) {
			return err
		}

		var data struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		body := c.Response().Body()
		if unmErr := json.Unmarshal(body, &data); unmErr != nil {
			log.WithError(unmErr).Debug("ответ не в формате apimodels.Response")
		}
		msg := data.Message
		if msg == "" {
			msg = string(body)
		}
		if msg == "" && err != nil {
			msg = err.Error()
		}

		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		notifier.enqueue(errNotification{
			Code:      statusCode,
			Method:    utils.CopyString(c.Method()),
			Path:      utils.CopyString(path),
			RequestID: GetRequestID(c),
			Error:     msg,
		})
		return err
	}
}

type errNotifier struct {
	addr  string
	queue chan errNotification
}

func newErrNotifier(addr string, size int) *errNotifier {
	return &errNotifier{addr: addr, queue: make(chan errNotification, size)}
}

func (n *errNotifier) enqueue(notification errNotification) {
	select {
	case n.queue <- notification:
	default:
		log.
			WithField("path", notification.Path).
			WithField("request_id", notification.RequestID).
			Warn("очередь уведомлений об ошибках переполнена, уведомление отброшено")
	}
}

func (n *errNotifier) run() {
	for notification := range n.queue {
		n.send(notification)
	}
}

func (n *errNotifier) send(notification errNotification) {
	payload, err := json.Marshal(notification)
	if err != nil {
		log.WithError(err).Warn("ошибка формирования уведомления об ошибке")
		return
	}
	resp, err := notifyClient.Post(n.addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
	if err != nil {
		log.WithError(err).Warn("ошибка отправки уведомления об ошибке")
		return
	}
	resp.Body.Close()
}
