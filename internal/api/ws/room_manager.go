package ws

import "micattix/internal/game"

// RoomManager is the slice of the room layer the hub needs.
type RoomManager interface {
	Exists(code string) bool
	ApplyMove(code, playerID string, target game.Coord) error
}
