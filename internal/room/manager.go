package room

import (
	"time"

	"micattix/internal/config"
	"micattix/internal/game"
	"micattix/internal/logger"

	"github.com/google/uuid"
)

// Manager owns the room lifecycle: creation, seating, and the pass-through
// of game operations with turn ownership checks.
type Manager struct {
	store Store
	cfg   *config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg *config.Config) *Manager {
	return &Manager{store: s, cfg: cfg}
}

// SetBroadcaster wires the hub in after construction; the hub needs the
// manager first.
func (m *Manager) SetBroadcaster(b Broadcaster) {
	m.hub = b
}

func (m *Manager) broadcast(code, action string, data any) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(code, action, data)
}

// CreateRoom opens a room and seats the creator at seat 0. Empty size or
// mode fall back to the server defaults.
func (m *Manager) CreateRoom(creatorName string, size game.BoardSize, mode game.GameMode) (State, Player, error) {
	if size == "" {
		size = m.cfg.DefaultSize
	}
	if mode == "" {
		mode = m.cfg.DefaultMode
	}
	mgr, err := game.NewManager(game.Config{Size: size, Mode: mode})
	if err != nil {
		return State{}, Player{}, err
	}

	r := &Room{
		ID:        uuid.NewString(),
		Code:      randCode(6),
		Size:      size,
		Mode:      mode,
		CreatedAt: time.Now(),
		mgr:       mgr,
	}
	creator := Player{ID: uuid.NewString(), Name: creatorName, Seat: 0}
	r.Players = append(r.Players, creator)

	mgr.AddListener(&relay{m: m, code: r.Code})
	mgr.AddListener(meter{})

	m.store.SaveRoom(r)
	logger.Info("room created", "code", r.Code, "size", size, "mode", mode)
	roomsOpen.Inc()
	return r.state(), creator, nil
}

// JoinRoom claims the next free seat.
func (m *Manager) JoinRoom(code, name string) (State, Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return State{}, Player{}, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.full() {
		return State{}, Player{}, ErrRoomFull
	}
	p := Player{ID: uuid.NewString(), Name: name, Seat: game.Seat(len(r.Players))}
	r.Players = append(r.Players, p)
	m.store.SaveRoom(r)

	m.broadcast(code, "player_joined", p)
	logger.Info("player joined", "code", code, "seat", p.Seat)
	return r.state(), p, nil
}

// StartGame begins play once every seat is taken. Any member may start.
func (m *Manager) StartGame(code, playerID string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.player(playerID) == nil {
		return ErrUnknownPlayer
	}
	if !r.full() {
		return ErrRoomNotFull
	}
	if err := r.mgr.StartGame(); err != nil {
		return err
	}
	m.store.SaveRoom(r)
	return nil
}

// ApplyMove forwards a move after checking the submitting player owns the
// active seat. Engine rejections pass through untouched.
func (m *Manager) ApplyMove(code, playerID string, target game.Coord) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.player(playerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if p.Seat != r.mgr.ActiveSeat() {
		return ErrNotYourTurn
	}
	if err := r.mgr.MakeMove(target); err != nil {
		return err
	}
	m.store.SaveRoom(r)
	return nil
}

// NextRound starts the following round once the current one is over.
func (m *Manager) NextRound(code, playerID string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.player(playerID) == nil {
		return ErrUnknownPlayer
	}
	if err := r.mgr.StartNextRound(); err != nil {
		return err
	}
	m.store.SaveRoom(r)
	return nil
}

// EndGame closes the game and reports the standings.
func (m *Manager) EndGame(code, playerID string) (game.Standings, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return game.Standings{}, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.player(playerID) == nil {
		return game.Standings{}, ErrUnknownPlayer
	}
	st := r.mgr.EndGame()
	m.store.SaveRoom(r)
	logger.Info("game ended", "code", code, "tie", st.Tie)
	return st, nil
}

// LegalMoves lists the active seat's targets and which of them capture.
func (m *Manager) LegalMoves(code string) (legal, captures []game.Coord, err error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	legal, err = r.mgr.LegalTargets()
	if err != nil {
		return nil, nil, err
	}
	captures, err = r.mgr.CaptureMoves()
	if err != nil {
		return nil, nil, err
	}
	return legal, captures, nil
}

// GetState returns the combined room and game view.
func (m *Manager) GetState(code string) (State, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return State{}, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(), nil
}

// Exists reports whether a join code is live.
func (m *Manager) Exists(code string) bool {
	_, ok := m.store.GetRoom(code)
	return ok
}

// OpenRooms reports how many rooms are live.
func (m *Manager) OpenRooms() int {
	return m.store.Count()
}
