package game

import "fmt"

// axisSteps returns the two unit directions along an axis.
func axisSteps(axis Axis) [2]Coord {
	if axis == AxisVertical {
		return [2]Coord{{Row: -1}, {Row: 1}}
	}
	return [2]Coord{{Col: -1}, {Col: 1}}
}

// LegalTargets lists every cell the cross may slide to along the given axis:
// outward from the cross, each empty cell up to and including the first
// occupied cell in either direction. Nothing past an occupied cell is
// reachable.
func LegalTargets(b *Board, axis Axis) ([]Coord, error) {
	cross, err := b.CrossPosition()
	if err != nil {
		return nil, err
	}
	var targets []Coord
	for _, d := range axisSteps(axis) {
		cur := Coord{Row: cross.Row + d.Row, Col: cross.Col + d.Col}
		for b.InBounds(cur) {
			targets = append(targets, cur)
			if !b.at(cur).IsEmpty() {
				break
			}
			cur = Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
		}
	}
	return targets, nil
}

// CaptureTargets lists the legal targets that seize a piece: the first
// occupied cell in each direction, where there is one.
func CaptureTargets(b *Board, axis Axis) ([]Coord, error) {
	cross, err := b.CrossPosition()
	if err != nil {
		return nil, err
	}
	var targets []Coord
	for _, d := range axisSteps(axis) {
		cur := Coord{Row: cross.Row + d.Row, Col: cross.Col + d.Col}
		for b.InBounds(cur) {
			if !b.at(cur).IsEmpty() {
				targets = append(targets, cur)
				break
			}
			cur = Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
		}
	}
	return targets, nil
}

// CheckMove decides whether the cross may slide to target along axis. The
// target must sit on the cross's line, must not be the cross's own cell, and
// every cell between the two must be empty.
func CheckMove(b *Board, axis Axis, target Coord) error {
	cross, err := b.CrossPosition()
	if err != nil {
		return err
	}
	if !b.InBounds(target) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, target)
	}
	if target == cross {
		return fmt.Errorf("%w: target %s is the cross itself", ErrIllegalMove, target)
	}
	if axis == AxisHorizontal && target.Row != cross.Row {
		return fmt.Errorf("%w: target %s leaves row %d", ErrIllegalMove, target, cross.Row)
	}
	if axis == AxisVertical && target.Col != cross.Col {
		return fmt.Errorf("%w: target %s leaves column %d", ErrIllegalMove, target, cross.Col)
	}

	d := Coord{}
	switch {
	case target.Col > cross.Col:
		d.Col = 1
	case target.Col < cross.Col:
		d.Col = -1
	case target.Row > cross.Row:
		d.Row = 1
	default:
		d.Row = -1
	}
	cur := Coord{Row: cross.Row + d.Row, Col: cross.Col + d.Col}
	for cur != target {
		if !b.at(cur).IsEmpty() {
			return fmt.Errorf("%w: target %s lies beyond the occupied cell %s", ErrIllegalMove, target, cur)
		}
		cur = Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
	}
	return nil
}
