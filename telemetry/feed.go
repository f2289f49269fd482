package telemetry

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 2 * time.Second

// Event is one message on the feed.
type Event struct {
	Type string      `json:"event"`
	Data interface{} `json:"data"`
}

// Feed fans gameplay events out to websocket clients. Publishing never
// blocks the game loop: when the buffer is full the event is dropped.
type Feed struct {
	upgrader  websocket.Upgrader
	broadcast chan []byte

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewFeed creates a feed with room for buffer pending messages.
func NewFeed(buffer int, checkOrigin func(r *http.Request) bool) *Feed {
	return &Feed{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		broadcast: make(chan []byte, buffer),
		clients:   make(map[*websocket.Conn]struct{}),
	}
}

// Run delivers queued events until ctx is done, then closes every client.
func (f *Feed) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			f.mu.Lock()
			for conn := range f.clients {
				_ = conn.Close()
				delete(f.clients, conn)
			}
			f.mu.Unlock()
			return
		case msg := <-f.broadcast:
			f.send(msg)
		}
	}
}

func (f *Feed) send(msg []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for conn := range f.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			_ = conn.Close()
			delete(f.clients, conn)
		}
	}
}

// Publish queues an event for every connected client.
func (f *Feed) Publish(eventType string, data interface{}) {
	msg, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		log.Printf("Warning: could not encode %s event: %v", eventType, err)
		return
	}

	select {
	case f.broadcast <- msg:
	default:
		// Buffer full, drop
	}
}

// ClientCount returns the number of connected clients.
func (f *Feed) ClientCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// ServeHTTP upgrades the request and keeps the client until it disconnects.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Warning: websocket upgrade failed: %v", err)
		return
	}

	f.mu.Lock()
	f.clients[conn] = struct{}{}
	f.mu.Unlock()

	// The feed is one-way; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	f.mu.Lock()
	if _, ok := f.clients[conn]; ok {
		delete(f.clients, conn)
		_ = conn.Close()
	}
	f.mu.Unlock()
}
