package room

import "micattix/internal/game"

// Broadcaster pushes room-scoped messages to whoever is subscribed. The
// websocket hub implements it; tests plug in a recorder.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data any)
}

// relay forwards engine events into the room broadcast channel. It is the
// only path game state takes toward subscribers.
type relay struct {
	m    *Manager
	code string
}

func (l *relay) OnEvent(ev game.Event) {
	l.m.broadcast(l.code, string(ev.Kind), ev.Payload)
}
