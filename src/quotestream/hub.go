package quotestream

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-pricing/src/optionmodels"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans quote updates out to every connected websocket client.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// Run subscribes the hub to the quote update topic. Call after Init.
func (h *Hub) Run() error {
	return Subscribe(QuoteUpdateEvent, h.broadcast)
}

func (h *Hub) broadcast(update optionmodels.QuoteUpdate) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().UTC().Add(writeTimeout))
		if err := conn.WriteJSON(update); err != nil {
			log.Errorf("Hub: broadcast: dropping client: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[conn] = true
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, found := h.clients[conn]; found {
		conn.Close()
		delete(h.clients, conn)
	}
}

// ClientCount reports the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// ServeWs upgrades the request and keeps the connection registered
// until the client goes away.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("Hub: ServeWs: upgrade: %v", err)
		return
	}

	h.add(conn)
	log.Infof("Hub: client connected, %d total", h.ClientCount())

	go func() {
		defer h.remove(conn)

		for {
			// Clients do not send application messages. The read
			// loop only notices disconnects.
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				log.Debugf("Hub: client disconnected: %v", readErr)
				return
			}
		}
	}()
}
