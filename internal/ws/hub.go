package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

// Notice levels sent to the front-end toast component.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// BroadcastBuffer is how many messages may wait for Run before Publish
// starts dropping them.
const BroadcastBuffer = 256

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
	log        logrus.FieldLogger
}

func NewHub(log logrus.FieldLogger) *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, BroadcastBuffer),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			h.log.Info("New WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Publish marshals payload and queues it for Run without blocking the
// caller. Messages keep publish order; when the queue is full the message is
// dropped.
func (h *Hub) Publish(payload map[string]interface{}) {
	msg, err := json.Marshal(payload)
	if err != nil {
		h.log.WithError(err).Error("ws: marshal payload")
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		h.log.WithField("type", payload["type"]).Warn("ws: broadcast queue full, message dropped")
	}
}

// Success pushes a transient success notice to every connected client.
func (h *Hub) Success(message string) {
	h.notice(NoticeSuccess, message)
}

// Error pushes a transient error notice to every connected client.
func (h *Hub) Error(message string) {
	h.notice(NoticeError, message)
}

func (h *Hub) notice(level, message string) {
	h.Publish(map[string]interface{}{
		"type":    "notice",
		"level":   level,
		"message": message,
	})
}
