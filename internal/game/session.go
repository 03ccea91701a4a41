package game

import (
	"fmt"
	"time"
)

// Phase tracks where a session is in its lifecycle.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseInProgress Phase = "in_progress"
	PhaseRoundOver  Phase = "round_over"
	PhaseGameOver   Phase = "game_over"
)

// Player is one seat's standing. Captured and RoundScore cover the round in
// play; Total holds the folded score of finished rounds.
type Player struct {
	Seat       Seat    `json:"seat"`
	Axis       Axis    `json:"axis"`
	Captured   []Piece `json:"captured"`
	RoundScore int     `json:"roundScore"`
	Total      int     `json:"total"`
}

// Config describes a session before it starts. A nil Layout means a
// time-seeded shuffle.
type Config struct {
	Size   BoardSize
	Mode   GameMode
	Layout Layout
}

// MoveOutcome reports what an accepted move did.
type MoveOutcome struct {
	Seat      Seat   `json:"seat"`
	Target    Coord  `json:"target"`
	Captured  *Piece `json:"captured,omitempty"`
	Next      Seat   `json:"next"`
	RoundOver bool   `json:"roundOver"`
}

// Standings is the score table at the moment a game ends. Winner is nil when
// Tie is set.
type Standings struct {
	Scores []SeatScore `json:"scores"`
	Winner *Seat       `json:"winner,omitempty"`
	Tie    bool        `json:"tie"`
}

// Session runs the rounds of one game: it owns the board, the seats, turn
// order and scoring. Not safe for concurrent use; callers serialize access.
type Session struct {
	cfg     Config
	layout  Layout
	board   *Board
	players []*Player
	active  int
	round   int
	phase   Phase
}

func NewSession(cfg Config) (*Session, error) {
	if !cfg.Size.Valid() {
		return nil, fmt.Errorf("%w: board size %q", ErrInvalidConfig, cfg.Size)
	}
	if !cfg.Mode.Valid() {
		return nil, fmt.Errorf("%w: game mode %q", ErrInvalidConfig, cfg.Mode)
	}
	layout := cfg.Layout
	if layout == nil {
		layout = NewShuffledLayout(time.Now().UnixNano())
	}
	players := make([]*Player, cfg.Mode.PlayerCount())
	for i := range players {
		seat := Seat(i)
		players[i] = &Player{Seat: seat, Axis: seat.Axis()}
	}
	return &Session{
		cfg:     cfg,
		layout:  layout,
		players: players,
		phase:   PhaseNotStarted,
	}, nil
}

// Start deals the first round. Seat 0 opens.
func (s *Session) Start() error {
	if s.phase != PhaseNotStarted {
		return fmt.Errorf("%w: session is %s", ErrWrongPhase, s.phase)
	}
	board, err := NewBoard(s.cfg.Size, s.layout)
	if err != nil {
		return err
	}
	s.board = board
	s.round = 1
	s.active = 0
	s.phase = PhaseInProgress
	return nil
}

// ApplyMove slides the cross for the active seat. On success the captured
// piece (if any) is credited, the turn rotates, and the round-over conditions
// are checked. A rejected move leaves the session untouched.
func (s *Session) ApplyMove(target Coord) (MoveOutcome, error) {
	if s.phase != PhaseInProgress {
		return MoveOutcome{}, fmt.Errorf("%w: session is %s", ErrWrongPhase, s.phase)
	}
	mover := s.players[s.active]
	if err := CheckMove(s.board, mover.Axis, target); err != nil {
		return MoveOutcome{}, err
	}
	cross, err := s.board.CrossPosition()
	if err != nil {
		return MoveOutcome{}, err
	}

	var captured *Piece
	occ, err := s.board.Occupant(target)
	if err != nil {
		return MoveOutcome{}, err
	}
	if !occ.IsEmpty() {
		taken, err := s.board.Remove(target)
		if err != nil {
			return MoveOutcome{}, err
		}
		captured = &taken
		mover.Captured = append(mover.Captured, taken)
		mover.RoundScore += taken.Value
	}
	if _, err := s.board.Remove(cross); err != nil {
		return MoveOutcome{}, err
	}
	if err := s.board.Place(target, Cross()); err != nil {
		return MoveOutcome{}, err
	}

	s.active = (s.active + 1) % len(s.players)
	out := MoveOutcome{
		Seat:     mover.Seat,
		Target:   target,
		Captured: captured,
		Next:     Seat(s.active),
	}
	over, err := s.roundFinished()
	if err != nil {
		return MoveOutcome{}, err
	}
	if over {
		s.phase = PhaseRoundOver
		out.RoundOver = true
	}
	return out, nil
}

// roundFinished holds after a move when the board has no numbers left, or
// when the seat now to play has no capture on its line. Sliding along an axis
// always offers some empty cell, so a capture-less line is the stall that
// ends a round.
func (s *Session) roundFinished() (bool, error) {
	if s.board.NumbersLeft() == 0 {
		return true, nil
	}
	caps, err := CaptureTargets(s.board, s.players[s.active].Axis)
	if err != nil {
		return false, err
	}
	return len(caps) == 0, nil
}

// StartNextRound folds the finished round into the totals, deals a fresh
// board, and hands the opening move to the next seat in rotation.
func (s *Session) StartNextRound() error {
	if s.phase != PhaseRoundOver {
		return fmt.Errorf("%w: session is %s", ErrWrongPhase, s.phase)
	}
	for _, p := range s.players {
		p.Total += p.RoundScore
		p.RoundScore = 0
		p.Captured = nil
	}
	board, err := NewBoard(s.cfg.Size, s.layout)
	if err != nil {
		return err
	}
	s.board = board
	s.round++
	s.active = (s.round - 1) % len(s.players)
	s.phase = PhaseInProgress
	return nil
}

// End closes the game from any phase and returns the final standings over
// cumulative scores, including the round still in play.
func (s *Session) End() Standings {
	s.phase = PhaseGameOver
	return s.overallStandings()
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Round() int {
	return s.round
}

// Board is nil until the session starts.
func (s *Session) Board() *Board {
	return s.board
}

func (s *Session) Size() BoardSize {
	return s.cfg.Size
}

func (s *Session) Mode() GameMode {
	return s.cfg.Mode
}

func (s *Session) ActiveSeat() Seat {
	return Seat(s.active)
}

func (s *Session) ActiveAxis() Axis {
	return s.players[s.active].Axis
}

// Players returns per-seat standings as copies.
func (s *Session) Players() []Player {
	out := make([]Player, len(s.players))
	for i, p := range s.players {
		cp := *p
		cp.Captured = append([]Piece(nil), p.Captured...)
		out[i] = cp
	}
	return out
}

// RoundScores lists the points captured in the round in play, by seat.
func (s *Session) RoundScores() []SeatScore {
	out := make([]SeatScore, len(s.players))
	for i, p := range s.players {
		out[i] = SeatScore{Seat: p.Seat, Score: p.RoundScore}
	}
	return out
}

// TotalScores lists cumulative points by seat, open round included.
func (s *Session) TotalScores() []SeatScore {
	out := make([]SeatScore, len(s.players))
	for i, p := range s.players {
		out[i] = SeatScore{Seat: p.Seat, Score: p.Total + p.RoundScore}
	}
	return out
}

// LegalTargets lists the cells the active seat may move to.
func (s *Session) LegalTargets() ([]Coord, error) {
	if s.phase != PhaseInProgress {
		return nil, fmt.Errorf("%w: session is %s", ErrWrongPhase, s.phase)
	}
	return LegalTargets(s.board, s.players[s.active].Axis)
}

// CaptureMoves lists the subset of legal targets that seize a piece.
func (s *Session) CaptureMoves() ([]Coord, error) {
	if s.phase != PhaseInProgress {
		return nil, fmt.Errorf("%w: session is %s", ErrWrongPhase, s.phase)
	}
	return CaptureTargets(s.board, s.players[s.active].Axis)
}

// roundStandings ranks the round in play. Winner is nil on a shared maximum.
func (s *Session) roundStandings() (*Seat, bool) {
	return winnerOf(s.RoundScores())
}

func (s *Session) overallStandings() Standings {
	scores := s.TotalScores()
	winner, tie := winnerOf(scores)
	return Standings{Scores: scores, Winner: winner, Tie: tie}
}

// winnerOf scans for the highest score, flagging a tie when the maximum is
// shared.
func winnerOf(scores []SeatScore) (*Seat, bool) {
	var winner *Seat
	tie := false
	best := 0
	for i, sc := range scores {
		switch {
		case i == 0 || sc.Score > best:
			best = sc.Score
			seat := sc.Seat
			winner = &seat
			tie = false
		case sc.Score == best:
			tie = true
		}
	}
	if tie {
		return nil, true
	}
	return winner, false
}
