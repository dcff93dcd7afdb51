package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"github.com/goldenpalm/resort_backend/models"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type push struct {
	UserID       uuid.UUID
	Notification *models.Notification
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var pushes = make(chan push, 64)

// RunHub delivers queued notifications to connected clients. Guests without
// an open connection simply miss the live push; the notification rows are
// already persisted and show up on the next fetch.
func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case p := <-pushes:
			clientsMu.RLock()
			conn, ok := clients[p.UserID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(p.Notification); err != nil {
				log.Printf("Error pushing notification to client %s: %v", p.UserID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, p.UserID)
				clientsMu.Unlock()
			}
		}
	}
}

// Hub satisfies the services push contract. A full queue drops the live push
// rather than blocking the caller's transaction path.
type Hub struct{}

func (Hub) Push(userID uuid.UUID, n *models.Notification) {
	select {
	case pushes <- push{UserID: userID, Notification: n}:
	default:
		log.Printf("Notification push queue full, dropping live push for %s", userID)
	}
}
