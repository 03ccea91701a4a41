package game

import "math/rand"

// Catalog returns the full multiset of pieces for a board size, exactly one
// piece per cell. The small board carries 1-7 twice and a single 8. The large
// board carries 1-9 twice, -1 through -10 once each, a single +10, and one
// extra each of 1-6 to fill the remaining cells. Both include one cross.
func Catalog(size BoardSize) []Piece {
	var pieces []Piece
	switch size {
	case SizeLarge:
		for v := 1; v <= 9; v++ {
			pieces = append(pieces, Number(v), Number(v))
		}
		for v := 1; v <= 10; v++ {
			pieces = append(pieces, Number(-v))
		}
		pieces = append(pieces, Number(10))
		for v := 1; v <= 6; v++ {
			pieces = append(pieces, Number(v))
		}
	default:
		for v := 1; v <= 7; v++ {
			pieces = append(pieces, Number(v), Number(v))
		}
		pieces = append(pieces, Number(8))
	}
	return append(pieces, Cross())
}

// Layout decides the initial arrangement of a round. Deal returns one piece
// per cell, row-major, with exactly one cross among them.
type Layout interface {
	Deal(size BoardSize) []Piece
}

// ShuffledLayout deals the full catalog in random order. Successive rounds
// drawing from the same layout get fresh shuffles.
type ShuffledLayout struct {
	rng *rand.Rand
}

func NewShuffledLayout(seed int64) *ShuffledLayout {
	return &ShuffledLayout{rng: rand.New(rand.NewSource(seed))}
}

func (l *ShuffledLayout) Deal(size BoardSize) []Piece {
	pieces := Catalog(size)
	l.rng.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})
	return pieces
}

// FixedLayout deals the same predetermined arrangement every round. Cells may
// be left empty, which the catalog never does; that is what makes it useful
// for crafted positions.
type FixedLayout []Piece

func (l FixedLayout) Deal(size BoardSize) []Piece {
	out := make([]Piece, len(l))
	copy(out, l)
	return out
}
