package service

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Hub tracks one room per member conversation. The member's own sockets and
// any admin socket watching that conversation subscribe to the same room.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]*Room)}
}

// Room returns the room for a member id, creating it on first use.
func (h *Hub) Room(userID string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[userID]
	if ok {
		return room
	}
	room = &Room{userID: userID, subscribers: make(map[*websocket.Conn]struct{})}
	h.rooms[userID] = room
	return room
}

// Broadcast pushes a payload to every socket in the member's room. A failed
// write evicts the socket; the peer is gone.
func (h *Hub) Broadcast(userID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.Room(userID).broadcast(data)
}

type Room struct {
	mu          sync.Mutex
	userID      string
	subscribers map[*websocket.Conn]struct{}
}

func (r *Room) Join(conn *websocket.Conn) {
	r.mu.Lock()
	r.subscribers[conn] = struct{}{}
	r.mu.Unlock()
}

// Leave removes a socket and reports whether the room is now empty.
func (r *Room) Leave(conn *websocket.Conn) bool {
	r.mu.Lock()
	delete(r.subscribers, conn)
	empty := len(r.subscribers) == 0
	r.mu.Unlock()
	return empty
}

func (r *Room) broadcast(data []byte) {
	r.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(r.subscribers))
	for conn := range r.subscribers {
		conns = append(conns, conn)
	}
	r.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			r.Leave(conn)
			_ = conn.Close()
		}
	}
}
