package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// StatusUpdate is pushed to every open public payment page watching a link
// when the admin changes its status.
type StatusUpdate struct {
	UniqueID string `json:"unique_id"`
	Status   string `json:"status"`
}

type Client struct {
	LinkID string
	Conn   *websocket.Conn
}

var clients = make(map[string]map[*websocket.Conn]bool)
var clientsMu sync.RWMutex

var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan StatusUpdate, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			if clients[client.LinkID] == nil {
				clients[client.LinkID] = make(map[*websocket.Conn]bool)
			}
			clients[client.LinkID][client.Conn] = true
			clientsMu.Unlock()
		case client := <-Unregister:
			clientsMu.Lock()
			if conns, ok := clients[client.LinkID]; ok {
				delete(conns, client.Conn)
				if len(conns) == 0 {
					delete(clients, client.LinkID)
				}
			}
			clientsMu.Unlock()
		case update := <-Broadcast:
			clientsMu.RLock()
			conns := make([]*websocket.Conn, 0, len(clients[update.UniqueID]))
			for conn := range clients[update.UniqueID] {
				conns = append(conns, conn)
			}
			clientsMu.RUnlock()

			for _, conn := range conns {
				if err := conn.WriteJSON(update); err != nil {
					log.Printf("Error sending status update for %s: %v", update.UniqueID, err)
					conn.Close()
					clientsMu.Lock()
					if m, ok := clients[update.UniqueID]; ok {
						delete(m, conn)
					}
					clientsMu.Unlock()
				}
			}
		}
	}
}
