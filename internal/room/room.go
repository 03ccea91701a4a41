package room

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"micattix/internal/game"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomFull      = errors.New("room is full")
	ErrRoomNotFull   = errors.New("room is not full yet")
	ErrUnknownPlayer = errors.New("player not in room")
	ErrNotYourTurn   = errors.New("not your turn")
)

// Player binds a person to a seat in one room.
type Player struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Seat game.Seat `json:"seat"`
}

// Room couples one game manager with a join code and the people on its
// seats. The mutex serializes driver access; the engine itself is
// single-threaded.
type Room struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	Size      game.BoardSize `json:"size"`
	Mode      game.GameMode  `json:"mode"`
	Players   []Player       `json:"players"`
	CreatedAt time.Time      `json:"createdAt"`

	mu  sync.Mutex
	mgr *game.Manager
}

// State is the full room view handed to drivers.
type State struct {
	ID        string        `json:"id"`
	Code      string        `json:"code"`
	Players   []Player      `json:"players"`
	CreatedAt time.Time     `json:"createdAt"`
	Game      game.Snapshot `json:"game"`
}

func (r *Room) player(playerID string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == playerID {
			return &r.Players[i]
		}
	}
	return nil
}

func (r *Room) full() bool {
	return len(r.Players) == r.Mode.PlayerCount()
}

func (r *Room) state() State {
	return State{
		ID:        r.ID,
		Code:      r.Code,
		Players:   append([]Player(nil), r.Players...),
		CreatedAt: r.CreatedAt,
		Game:      r.mgr.Snapshot(),
	}
}

// Store keeps live rooms by join code.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	Count() int
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
