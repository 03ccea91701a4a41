package game

import "errors"

var (
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrOccupiedCell  = errors.New("cell already occupied")
	ErrEmptyCell     = errors.New("cell is empty")
	ErrIllegalMove   = errors.New("illegal move")
	ErrInvariant     = errors.New("board invariant violated")
	ErrInvalidConfig = errors.New("invalid game configuration")
	ErrWrongPhase    = errors.New("operation not allowed in current phase")
)
