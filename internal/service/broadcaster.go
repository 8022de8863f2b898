package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToCoach(coachID string, msgType string, payload interface{})
	BroadcastToClient(clientID string, msgType string, payload interface{})
}
