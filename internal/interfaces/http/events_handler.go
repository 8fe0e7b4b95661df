package http

import (
	"bufio"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/gestor-api/internal/infrastructure/postgres"
)

// EventsHandler expone el feed de cambios como Server-Sent Events. Cada evento
// lleva el nombre de la tabla que cambió; el cliente refetchea ese módulo.
type EventsHandler struct {
	listener *postgres.Listener
}

// NewEventsHandler construye el handler.
func NewEventsHandler(listener *postgres.Listener) *EventsHandler {
	return &EventsHandler{listener: listener}
}

// Stream GET /api/events
func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	changes, cancel := h.listener.Subscribe()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		keepalive := time.NewTicker(25 * time.Second)
		defer keepalive.Stop()

		for {
			select {
			case table := <-changes:
				fmt.Fprintf(w, "event: change\ndata: %s\n\n", table)
			case <-keepalive.C:
				fmt.Fprint(w, ": keepalive\n\n")
			}
			if err := w.Flush(); err != nil {
				// cliente desconectado
				return
			}
		}
	}))
	return nil
}
