package live

import "sync"

// Client is one dashboard subscriber. Room is the vendor ID the
// subscriber watches.
type Client struct {
	Send chan []byte
	Room string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

// Hub fans catalog events out to the vendor dashboards subscribed to
// each vendor room.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Register adds a subscriber to its vendor room.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a subscriber and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Broadcast delivers data to every subscriber of room. Slow consumers
// are dropped rather than blocking the hub.
func (h *Hub) Broadcast(room string, data []byte) {
	h.broadcast <- broadcastMsg{Room: room, Data: data}
}
