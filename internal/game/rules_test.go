package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cross at (1,1), one piece at the end of its row, one at the end of its
// column.
func slideBoard(t *testing.T) *Board {
	return mustBoard(t, SizeSmall, map[Coord]Piece{
		{Row: 1, Col: 1}: Cross(),
		{Row: 1, Col: 3}: Number(5),
		{Row: 3, Col: 1}: Number(7),
	})
}

func TestLegalTargetsSlideUpToFirstOccupied(t *testing.T) {
	b := slideBoard(t)

	horizontal, err := LegalTargets(b, AxisHorizontal)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Coord{
		{Row: 1, Col: 0},
		{Row: 1, Col: 2},
		{Row: 1, Col: 3},
	}, horizontal)

	vertical, err := LegalTargets(b, AxisVertical)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Coord{
		{Row: 0, Col: 1},
		{Row: 2, Col: 1},
		{Row: 3, Col: 1},
	}, vertical)
}

func TestLegalTargetsStopAtBlocker(t *testing.T) {
	b := mustBoard(t, SizeSmall, map[Coord]Piece{
		{Row: 1, Col: 1}: Cross(),
		{Row: 1, Col: 2}: Number(3),
		{Row: 1, Col: 3}: Number(5),
	})

	horizontal, err := LegalTargets(b, AxisHorizontal)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Coord{
		{Row: 1, Col: 0},
		{Row: 1, Col: 2},
	}, horizontal)
}

func TestCaptureTargets(t *testing.T) {
	b := slideBoard(t)

	horizontal, err := CaptureTargets(b, AxisHorizontal)
	require.NoError(t, err)
	assert.Equal(t, []Coord{{Row: 1, Col: 3}}, horizontal)

	vertical, err := CaptureTargets(b, AxisVertical)
	require.NoError(t, err)
	assert.Equal(t, []Coord{{Row: 3, Col: 1}}, vertical)
}

func TestCaptureTargetsEmptyLine(t *testing.T) {
	b := mustBoard(t, SizeSmall, map[Coord]Piece{
		{Row: 0, Col: 0}: Cross(),
		{Row: 2, Col: 2}: Number(4),
	})

	horizontal, err := CaptureTargets(b, AxisHorizontal)
	require.NoError(t, err)
	assert.Empty(t, horizontal)

	legal, err := LegalTargets(b, AxisHorizontal)
	require.NoError(t, err)
	assert.Len(t, legal, 3) // the whole empty row stays reachable
}

func TestCheckMove(t *testing.T) {
	cases := []struct {
		name   string
		axis   Axis
		target Coord
		want   error
	}{
		{"empty cell on row", AxisHorizontal, Coord{Row: 1, Col: 2}, nil},
		{"first occupied on row", AxisHorizontal, Coord{Row: 1, Col: 3}, nil},
		{"empty cell on column", AxisVertical, Coord{Row: 0, Col: 1}, nil},
		{"first occupied on column", AxisVertical, Coord{Row: 3, Col: 1}, nil},
		{"row move on vertical axis", AxisVertical, Coord{Row: 1, Col: 2}, ErrIllegalMove},
		{"column move on horizontal axis", AxisHorizontal, Coord{Row: 3, Col: 1}, ErrIllegalMove},
		{"diagonal", AxisHorizontal, Coord{Row: 0, Col: 0}, ErrIllegalMove},
		{"cross itself", AxisHorizontal, Coord{Row: 1, Col: 1}, ErrIllegalMove},
		{"out of bounds", AxisHorizontal, Coord{Row: 1, Col: 4}, ErrOutOfBounds},
		{"negative", AxisHorizontal, Coord{Row: 1, Col: -1}, ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckMove(slideBoard(t), tc.axis, tc.target)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestCheckMoveBeyondFirstOccupied(t *testing.T) {
	b := mustBoard(t, SizeSmall, map[Coord]Piece{
		{Row: 1, Col: 1}: Cross(),
		{Row: 1, Col: 2}: Number(3),
		{Row: 1, Col: 3}: Number(5),
	})

	assert.NoError(t, CheckMove(b, AxisHorizontal, Coord{Row: 1, Col: 2}))
	assert.ErrorIs(t, CheckMove(b, AxisHorizontal, Coord{Row: 1, Col: 3}), ErrIllegalMove)
}

func TestCheckMovePastEmptyGap(t *testing.T) {
	// the far piece is reachable when everything between is empty
	b := mustBoard(t, SizeLarge, map[Coord]Piece{
		{Row: 2, Col: 0}: Cross(),
		{Row: 2, Col: 5}: Number(9),
	})

	assert.NoError(t, CheckMove(b, AxisHorizontal, Coord{Row: 2, Col: 5}))
	assert.NoError(t, CheckMove(b, AxisHorizontal, Coord{Row: 2, Col: 4}))
}
