package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type envelope struct {
	userID uuid.UUID
	data   []byte
}

type Hub struct {
	clients    map[*Client]bool
	direct     chan envelope
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		direct:     make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)
			}

		case env := <-h.direct:
			h.mutex.RLock()
			targets := make([]*Client, 0, 2)
			for c := range h.clients {
				if c.userID == env.userID {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- env.data:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// SendToUser queues a payload for every open connection of one user. Drops
// the payload when the hub buffer is full.
func (h *Hub) SendToUser(userID uuid.UUID, data []byte) {
	if h == nil {
		return
	}
	select {
	case h.direct <- envelope{userID: userID, data: data}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS send dropped | reason=buffer_full user=%s", userID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
