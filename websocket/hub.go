package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// StatusEvent is pushed to a student's open dashboard when one of their
// records changes status. Best-effort: offline students miss the push and
// see the new status on the next fetch.
type StatusEvent struct {
	UserID     uuid.UUID `json:"-"`
	Kind       string    `json:"kind"` // enrollment | application
	RecordID   uuid.UUID `json:"record_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Events = make(chan *StatusEvent, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Status hub: client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Status hub: client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Events:
			clientsMu.RLock()
			conn, ok := clients[event.UserID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("Status hub: error pushing event to client %s: %v", event.UserID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, event.UserID)
				clientsMu.Unlock()
			}
		}
	}
}

// NotifyStatusChange queues a push without blocking the calling handler.
func NotifyStatusChange(userID uuid.UUID, kind string, recordID uuid.UUID, status string) {
	event := &StatusEvent{
		UserID:     userID,
		Kind:       kind,
		RecordID:   recordID,
		Status:     status,
		OccurredAt: time.Now(),
	}
	select {
	case Events <- event:
	default:
		log.Printf("Status hub: event queue full, dropping push for %s", userID)
	}
}
