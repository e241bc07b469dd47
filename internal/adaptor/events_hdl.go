package adaptor

import (
	"net/http"

	"cine-reserve/internal/data/store"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// EventsHandler streams committed change events over a websocket so the
// presentation layer can refresh without polling.
type EventsHandler struct {
	store    *store.Store
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewEventsHandler(st *store.Store, log *zap.Logger) *EventsHandler {
	return &EventsHandler{
		store: st,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the identity middleware already gates this endpoint
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log.With(zap.String("handler", "events")),
	}
}

// Stream handles GET /api/events (authenticated users)
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	events, cancel := h.store.Subscribe()
	defer cancel()

	// Drain client frames so close handshakes are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				h.log.Debug("Event subscriber disconnected", zap.Error(err))
				return
			}
		}
	}
}
