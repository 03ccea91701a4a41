package game

import "fmt"

// Board is the square grid holding one round's pieces. Cells change only
// through Place and Remove, which keeps the single-cross invariant checkable.
type Board struct {
	size  BoardSize
	cells [][]Piece
}

// NewBoard deals a fresh board from the layout. The deal must cover every
// cell and contain exactly one cross.
func NewBoard(size BoardSize, layout Layout) (*Board, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: board size %q", ErrInvalidConfig, size)
	}
	rows, cols := size.Dimensions()
	dealt := layout.Deal(size)
	if len(dealt) != rows*cols {
		return nil, fmt.Errorf("%w: layout dealt %d pieces for a %dx%d board", ErrInvalidConfig, len(dealt), rows, cols)
	}
	crosses := 0
	for _, p := range dealt {
		if p.IsCross() {
			crosses++
		}
	}
	if crosses != 1 {
		return nil, fmt.Errorf("%w: layout dealt %d crosses", ErrInvalidConfig, crosses)
	}

	cells := make([][]Piece, rows)
	for r := range cells {
		cells[r] = make([]Piece, cols)
		for c := range cells[r] {
			p := dealt[r*cols+c]
			if p.IsEmpty() {
				p = Empty()
			}
			cells[r][c] = p
		}
	}
	return &Board{size: size, cells: cells}, nil
}

func (b *Board) Size() BoardSize {
	return b.size
}

func (b *Board) Dimensions() (rows, cols int) {
	return b.size.Dimensions()
}

func (b *Board) InBounds(c Coord) bool {
	rows, cols := b.size.Dimensions()
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// at assumes c is in bounds.
func (b *Board) at(c Coord) Piece {
	return b.cells[c.Row][c.Col]
}

// Occupant returns the piece at c, possibly the empty piece.
func (b *Board) Occupant(c Coord) (Piece, error) {
	if !b.InBounds(c) {
		return Piece{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return b.at(c), nil
}

// Place puts a piece on an empty cell.
func (b *Board) Place(c Coord, p Piece) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if !b.at(c).IsEmpty() {
		return fmt.Errorf("%w: %s", ErrOccupiedCell, c)
	}
	b.cells[c.Row][c.Col] = p
	return nil
}

// Remove clears an occupied cell and returns what was there.
func (b *Board) Remove(c Coord) (Piece, error) {
	if !b.InBounds(c) {
		return Piece{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	p := b.at(c)
	if p.IsEmpty() {
		return Piece{}, fmt.Errorf("%w: %s", ErrEmptyCell, c)
	}
	b.cells[c.Row][c.Col] = Empty()
	return p, nil
}

// CrossPosition scans the whole grid. Anything but exactly one cross means
// the round state is corrupt.
func (b *Board) CrossPosition() (Coord, error) {
	found := false
	var at Coord
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c].IsCross() {
				if found {
					return Coord{}, fmt.Errorf("%w: more than one cross on the board", ErrInvariant)
				}
				found = true
				at = Coord{Row: r, Col: c}
			}
		}
	}
	if !found {
		return Coord{}, fmt.Errorf("%w: no cross on the board", ErrInvariant)
	}
	return at, nil
}

// NumbersLeft counts the numeric pieces still on the board.
func (b *Board) NumbersLeft() int {
	n := 0
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c].IsNumber() {
				n++
			}
		}
	}
	return n
}

// Grid returns a copy of the cells, row-major.
func (b *Board) Grid() [][]Piece {
	out := make([][]Piece, len(b.cells))
	for r := range b.cells {
		out[r] = make([]Piece, len(b.cells[r]))
		copy(out[r], b.cells[r])
	}
	return out
}
