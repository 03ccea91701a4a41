package game

import (
	"fmt"
	"strconv"
)

// BoardSize selects one of the two supported grids.
type BoardSize string

const (
	SizeSmall BoardSize = "small" // 4x4
	SizeLarge BoardSize = "large" // 6x6
)

func (s BoardSize) Valid() bool {
	return s == SizeSmall || s == SizeLarge
}

func (s BoardSize) Dimensions() (rows, cols int) {
	if s == SizeLarge {
		return 6, 6
	}
	return 4, 4
}

// GameMode fixes how many seats a session has.
type GameMode string

const (
	ModeTwoPlayer  GameMode = "two_player"
	ModeFourPlayer GameMode = "four_player"
)

func (m GameMode) Valid() bool {
	return m == ModeTwoPlayer || m == ModeFourPlayer
}

func (m GameMode) PlayerCount() int {
	if m == ModeFourPlayer {
		return 4
	}
	return 2
}

// Axis is the movement line a seat is bound to for the whole game.
type Axis string

const (
	AxisHorizontal Axis = "horizontal" // moves stay within the cross's row
	AxisVertical   Axis = "vertical"   // moves stay within the cross's column
)

// Seat identifies a player within a session, in turn order starting at 0.
type Seat int

// Axis alternates by seat: even seats move horizontally, odd vertically.
func (s Seat) Axis() Axis {
	if s%2 == 0 {
		return AxisHorizontal
	}
	return AxisVertical
}

func (s Seat) String() string {
	return fmt.Sprintf("P%d", int(s)+1)
}

// Coord addresses a cell, row-major from the top-left.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type PieceKind string

const (
	PieceEmpty  PieceKind = "empty"
	PieceNumber PieceKind = "number"
	PieceCross  PieceKind = "cross"
)

// Piece is what a cell holds. Numbers carry their point value, which may be
// negative on the large board.
type Piece struct {
	Kind  PieceKind `json:"kind"`
	Value int       `json:"value,omitempty"`
}

func Empty() Piece {
	return Piece{Kind: PieceEmpty}
}

func Cross() Piece {
	return Piece{Kind: PieceCross}
}

func Number(v int) Piece {
	return Piece{Kind: PieceNumber, Value: v}
}

// IsEmpty treats the zero value as an empty cell.
func (p Piece) IsEmpty() bool {
	return p.Kind == PieceEmpty || p.Kind == ""
}

func (p Piece) IsNumber() bool {
	return p.Kind == PieceNumber
}

func (p Piece) IsCross() bool {
	return p.Kind == PieceCross
}

func (p Piece) String() string {
	switch p.Kind {
	case PieceCross:
		return "X"
	case PieceNumber:
		return strconv.Itoa(p.Value)
	default:
		return "."
	}
}

// SeatScore pairs a seat with a point count for score listings.
type SeatScore struct {
	Seat  Seat `json:"seat"`
	Score int  `json:"score"`
}
