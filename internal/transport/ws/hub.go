package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Coach message types
const (
	MsgCheckInScored MessageType = "checkin_scored"
	MsgInsightsReady MessageType = "insights_ready"
	MsgClientOnline  MessageType = "client_online"
	MsgClientOffline MessageType = "client_offline"
)

// Client message types
const (
	MsgStatusUpdate MessageType = "status_update"
	MsgError        MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for coaches and their clients
type Hub struct {
	coachConns  map[string]*Connection // coachID -> conn
	clientConns map[string]*Connection // clientID -> conn

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	CoachID  string
	ClientID string // Empty for coach connections
	IsCoach  bool
	Send     chan []byte
	Hub      *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	ToCoach  string // Coach ID, empty when targeting a client
	ToClient string
	Message  *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		coachConns:  make(map[string]*Connection),
		clientConns: make(map[string]*Connection),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		broadcast:   make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsCoach {
				h.coachConns[conn.CoachID] = conn
				log.Printf("Coach %s connected", conn.CoachID)
			} else {
				h.clientConns[conn.ClientID] = conn
				log.Printf("Client %s connected", conn.ClientID)
				h.notifyCoachClientPresence(conn.CoachID, conn.ClientID, MsgClientOnline)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.IsCoach {
				if existing, ok := h.coachConns[conn.CoachID]; ok && existing == conn {
					delete(h.coachConns, conn.CoachID)
					close(conn.Send)
					log.Printf("Coach %s disconnected", conn.CoachID)
				}
			} else {
				if existing, ok := h.clientConns[conn.ClientID]; ok && existing == conn {
					delete(h.clientConns, conn.ClientID)
					close(conn.Send)
					log.Printf("Client %s disconnected", conn.ClientID)
					h.notifyCoachClientPresence(conn.CoachID, conn.ClientID, MsgClientOffline)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToCoach != "" {
				if conn, ok := h.coachConns[msg.ToCoach]; ok {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else if msg.ToClient != "" {
				if conn, ok := h.clientConns[msg.ToClient]; ok {
					select {
					case conn.Send <- data:
					default:
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToCoach sends a message to a coach (implements service.Broadcaster)
func (h *Hub) BroadcastToCoach(coachID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ToCoach: coachID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToClient sends a message to a specific client (implements service.Broadcaster)
func (h *Hub) BroadcastToClient(clientID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ToClient: clientID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

func (h *Hub) notifyCoachClientPresence(coachID, clientID string, msgType MessageType) {
	if conn, ok := h.coachConns[coachID]; ok {
		data, _ := json.Marshal(&Message{
			Type:    msgType,
			Payload: json.RawMessage(`{"clientId":"` + clientID + `"}`),
		})
		select {
		case conn.Send <- data:
		default:
		}
	}
}
