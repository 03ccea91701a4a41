package game

// EventKind tags the closed set of things a manager announces.
type EventKind string

const (
	EventGameStarted  EventKind = "game_started"
	EventRoundStarted EventKind = "round_started"
	EventMoveMade     EventKind = "move_made"
	EventRoundOver    EventKind = "round_over"
	EventGameOver     EventKind = "game_over"
)

// Event is one announcement. Payload holds the kind's payload struct below.
// Events describe accepted state changes only; a rejected move produces an
// error and no event.
type Event struct {
	Kind    EventKind `json:"kind"`
	Payload any       `json:"payload,omitempty"`
}

type GameStartedPayload struct {
	Size BoardSize `json:"size"`
	Mode GameMode  `json:"mode"`
}

type RoundStartedPayload struct {
	Round  int  `json:"round"`
	Opener Seat `json:"opener"`
}

type MoveMadePayload struct {
	Seat     Seat   `json:"seat"`
	Target   Coord  `json:"target"`
	Captured *Piece `json:"captured,omitempty"`
	Next     Seat   `json:"next"`
}

type RoundOverPayload struct {
	Round  int         `json:"round"`
	Winner *Seat       `json:"winner,omitempty"`
	Tie    bool        `json:"tie"`
	Scores []SeatScore `json:"scores"`
}

type GameOverPayload struct {
	Winner *Seat       `json:"winner,omitempty"`
	Tie    bool        `json:"tie"`
	Totals []SeatScore `json:"totals"`
}

// Listener receives every event a manager emits, synchronously and in
// registration order. A listener must not call back into the manager from
// OnEvent.
type Listener interface {
	OnEvent(Event)
}
