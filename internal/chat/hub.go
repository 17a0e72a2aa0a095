package chat

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outbound frame fanned out to every connection in a room.
type Message struct {
	Message     string `json:"message"`
	SenderEmail string `json:"sender_email"`
}

// One websocket connection joined to a room. Outbound frames go
// through the buffered Send channel so a slow peer never blocks the
// broadcaster.
type Client struct {
	ID    string
	Email string
	Send  chan Message
}

// Size of each client's outbound buffer. A client that falls this
// far behind starts losing frames rather than stalling the room.
const sendBufferSize = 32

// Hub keeps the in-memory registry of rooms and their current
// connections. Nothing is persisted: delivery is scoped to whoever
// is connected right now.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[string]*Client
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[string]*Client),
		logger: logger,
	}
}

// Join registers a new connection in room and returns its client
// handle.
func (h *Hub) Join(room, email string) *Client {
	client := &Client{
		ID:    uuid.New().String(),
		Email: email,
		Send:  make(chan Message, sendBufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[string]*Client)
	}
	h.rooms[room][client.ID] = client

	h.logger.Info("client joined room",
		zap.String("room", room),
		zap.String("client_id", client.ID))
	return client
}

// Leave removes a connection from room. The last one out deletes
// the room entry. No other side effects.
func (h *Hub) Leave(room string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.rooms[room]; ok {
		if _, ok := clients[client.ID]; ok {
			delete(clients, client.ID)
			close(client.Send)
		}
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}

	h.logger.Info("client left room",
		zap.String("room", room),
		zap.String("client_id", client.ID))
}

// Broadcast delivers msg to every connection currently in room,
// including the sender's own other connections. Best effort: a full
// client buffer means that client misses the frame.
func (h *Hub) Broadcast(room string, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.rooms[room] {
		select {
		case client.Send <- msg:
		default:
			h.logger.Warn("dropping frame for slow client",
				zap.String("room", room),
				zap.String("client_id", client.ID))
		}
	}
}

// RoomSize reports the number of live connections in room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
