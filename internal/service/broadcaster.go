package service

// Broadcaster interface for WebSocket fan-out (avoids import cycle with
// the transport layer). Viewer delivery failures stay inside the hub and
// the viewers' reconnect protocol; they are never surfaced here.
type Broadcaster interface {
	// BroadcastToViewers delivers a payload to every subscriber of a
	// game, host included.
	BroadcastToViewers(gameID string, payload interface{})
	// BroadcastToHost delivers a payload to the host connection only.
	// Used for private facts such as investigation results.
	BroadcastToHost(gameID string, payload interface{})
}
