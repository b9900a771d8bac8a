package handlers

import (
	websocketcontrib "github.com/gofiber/contrib/websocket"

	"github.com/nurbekov/paylinks/websocket"
)

// ServePayStatusWs keeps a public payment page connected until the customer
// closes it, relaying admin status changes for the watched link.
func ServePayStatusWs(conn *websocketcontrib.Conn) {
	linkID := conn.Params("id")
	if linkID == "" {
		conn.Close()
		return
	}

	client := &websocket.Client{LinkID: linkID, Conn: conn}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
