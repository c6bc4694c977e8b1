package live

import (
	"log"
	"net/http"

	"mandi/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// DashboardSocket upgrades the request and streams catalog events for
// the authenticated vendor until the client goes away.
func DashboardSocket(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		vendorID := utils.GetUserIDFromContext(r.Context())
		if vendorID == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Send: make(chan []byte, 256),
			Room: vendorID,
		}
		hub.Register(client)

		go writePump(client, conn)
		go readPump(client, conn, hub)
	}
}

func writePump(c *Client, conn *websocket.Conn) {
	defer conn.Close()
	for msg := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump drains inbound frames so pings and close frames are
// processed; dashboard clients never send application data.
func readPump(c *Client, conn *websocket.Conn, hub *Hub) {
	defer func() {
		hub.Unregister(c)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
