package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newNotifyReceiver(t *testing.T) (string, chan errNotification) {
	received := make(chan errNotification, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var notification errNotification
		require.NoError(t, json.NewDecoder(r.Body).Decode(&notification))
		received <- notification
	}))
	t.Cleanup(server.Close)
	return server.URL, received
}

func nextNotification(t *testing.T, received chan errNotification) errNotification {
	select {
	case notification := <-received:
		return notification
	case <-time.After(5 * time.Second):
		t.Fatal("уведомление не получено")
		return errNotification{}
	}
}

func TestErrNotify(t *testing.T) {
	addr, received := newNotifyReceiver(t)
	app := fiber.New()
	app.Use(RequestID(), ErrNotify(addr))
	app.Get("/rejected", func(c *fiber.Ctx) error {
		MarkBackendRejected(c)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "Student not found"})
	})
	app.Get("/unreachable", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "Request failed"})
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "ошибка"})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "нет"})
	})

	do := func(t *testing.T, path string) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	t.Run(`backend rejection not reported check`, func(t *testing.T) {
		do(t, "/rejected")
		do(t, "/missing")
		do(t, "/unreachable")
		// a single worker sends in order, so a reported rejection would arrive first
		notification := nextNotification(t, received)
		require.Equal(t, "/unreachable", notification.Path)
		require.Equal(t, fiber.StatusBadGateway, notification.Code)
		require.Equal(t, "Request failed", notification.Error)
		require.NotEmpty(t, notification.RequestID)
	})

	t.Run(`internal error reported check`, func(t *testing.T) {
		do(t, "/broken")
		notification := nextNotification(t, received)
		require.Equal(t, "/broken", notification.Path)
		require.Equal(t, fiber.StatusInternalServerError, notification.Code)
		require.Equal(t, "ошибка", notification.Error)
	})
}

func TestErrNotifierQueue(t *testing.T) {
	t.Run(`full queue drops check`, func(t *testing.T) {
		notifier := newErrNotifier("http://127.0.0.1:0", 1)
		notifier.enqueue(errNotification{Path: "/first"})
		notifier.enqueue(errNotification{Path: "/second"})
		require.Len(t, notifier.queue, 1)
		require.Equal(t, "/first", (<-notifier.queue).Path)
	})
}
