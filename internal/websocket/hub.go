package websocket

import (
	"encoding/json"
	"sync"

	"cryptowallet/internal/models"
)

// Event is the envelope pushed to connected clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type PriceUpdate struct {
	Symbol    string `json:"symbol"`
	Price     string `json:"price"`
	Change24h string `json:"change_24h"`
}

type WalletUpdate struct {
	Balance       string `json:"balance"`
	TotalEarnings string `json:"total_earnings"`
	Currency      string `json:"currency"`
}

// Hub fans session events out to that session's connected clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(sessionID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[sessionID] == nil {
		h.clients[sessionID] = make(map[*Client]struct{})
	}
	h.clients[sessionID][client] = struct{}{}
}

func (h *Hub) Unregister(sessionID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[sessionID] == nil {
		return
	}
	delete(h.clients[sessionID], client)
	if len(h.clients[sessionID]) == 0 {
		delete(h.clients, sessionID)
	}
}

// Broadcast sends the event to every client of the session. Slow clients
// are skipped rather than blocking the sender.
func (h *Hub) Broadcast(sessionID string, event Event) {
	payload, _ := json.Marshal(event)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[sessionID] {
		select {
		case client.send <- payload:
		default:
		}
	}
}

func (h *Hub) BroadcastPrices(sessionID string, updates []PriceUpdate) {
	h.Broadcast(sessionID, Event{Type: "prices", Payload: updates})
}

func (h *Hub) BroadcastWallet(sessionID string, update WalletUpdate) {
	h.Broadcast(sessionID, Event{Type: "wallet", Payload: update})
}

func (h *Hub) BroadcastNotification(sessionID string, notification models.Notification) {
	h.Broadcast(sessionID, Event{Type: "notification", Payload: notification})
}
