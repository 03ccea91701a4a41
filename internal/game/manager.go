package game

// Manager fronts a session: drivers mutate the game through it and observe
// the results through registered listeners. Like the session it wraps, a
// manager is single-threaded.
type Manager struct {
	session   *Session
	listeners []Listener
}

func NewManager(cfg Config) (*Manager, error) {
	s, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &Manager{session: s}, nil
}

// AddListener appends l to the dispatch list. Listeners are invoked in the
// order they were added.
func (m *Manager) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Manager) notify(kind EventKind, payload any) {
	ev := Event{Kind: kind, Payload: payload}
	for _, l := range m.listeners {
		l.OnEvent(ev)
	}
}

// StartGame deals the first round and announces it.
func (m *Manager) StartGame() error {
	if err := m.session.Start(); err != nil {
		return err
	}
	m.notify(EventGameStarted, GameStartedPayload{
		Size: m.session.Size(),
		Mode: m.session.Mode(),
	})
	m.notify(EventRoundStarted, RoundStartedPayload{
		Round:  m.session.Round(),
		Opener: m.session.ActiveSeat(),
	})
	return nil
}

// MakeMove plays the active seat's move. An accepted move announces itself,
// plus the round's end when it is the closing move. A rejected move returns
// the rejection and announces nothing.
func (m *Manager) MakeMove(target Coord) error {
	out, err := m.session.ApplyMove(target)
	if err != nil {
		return err
	}
	m.notify(EventMoveMade, MoveMadePayload{
		Seat:     out.Seat,
		Target:   out.Target,
		Captured: out.Captured,
		Next:     out.Next,
	})
	if out.RoundOver {
		winner, tie := m.session.roundStandings()
		m.notify(EventRoundOver, RoundOverPayload{
			Round:  m.session.Round(),
			Winner: winner,
			Tie:    tie,
			Scores: m.session.RoundScores(),
		})
	}
	return nil
}

// StartNextRound folds the finished round and announces the new one.
func (m *Manager) StartNextRound() error {
	if err := m.session.StartNextRound(); err != nil {
		return err
	}
	m.notify(EventRoundStarted, RoundStartedPayload{
		Round:  m.session.Round(),
		Opener: m.session.ActiveSeat(),
	})
	return nil
}

// EndGame closes the game and returns the final standings. The first call
// announces the result; ending an already-over game just reports it again.
func (m *Manager) EndGame() Standings {
	alreadyOver := m.session.Phase() == PhaseGameOver
	st := m.session.End()
	if !alreadyOver {
		m.notify(EventGameOver, GameOverPayload{
			Winner: st.Winner,
			Tie:    st.Tie,
			Totals: st.Scores,
		})
	}
	return st
}

func (m *Manager) Phase() Phase {
	return m.session.Phase()
}

func (m *Manager) Round() int {
	return m.session.Round()
}

func (m *Manager) Size() BoardSize {
	return m.session.Size()
}

func (m *Manager) Mode() GameMode {
	return m.session.Mode()
}

func (m *Manager) ActiveSeat() Seat {
	return m.session.ActiveSeat()
}

func (m *Manager) ActiveAxis() Axis {
	return m.session.ActiveAxis()
}

func (m *Manager) Players() []Player {
	return m.session.Players()
}

func (m *Manager) RoundScores() []SeatScore {
	return m.session.RoundScores()
}

func (m *Manager) TotalScores() []SeatScore {
	return m.session.TotalScores()
}

func (m *Manager) LegalTargets() ([]Coord, error) {
	return m.session.LegalTargets()
}

func (m *Manager) CaptureMoves() ([]Coord, error) {
	return m.session.CaptureMoves()
}

// Snapshot is a read-only view of the whole session for drivers.
type Snapshot struct {
	Phase   Phase       `json:"phase"`
	Round   int         `json:"round"`
	Active  Seat        `json:"active"`
	Size    BoardSize   `json:"size"`
	Mode    GameMode    `json:"mode"`
	Board   [][]Piece   `json:"board,omitempty"`
	Players []Player    `json:"players"`
	Totals  []SeatScore `json:"totals"`
}

func (m *Manager) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:   m.session.Phase(),
		Round:   m.session.Round(),
		Active:  m.session.ActiveSeat(),
		Size:    m.session.Size(),
		Mode:    m.session.Mode(),
		Players: m.session.Players(),
		Totals:  m.session.TotalScores(),
	}
	if b := m.session.Board(); b != nil {
		snap.Board = b.Grid()
	}
	return snap
}
