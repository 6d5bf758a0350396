package game

// Board is the ordered chain of Segments forming the river, append-only as
// new segments are revealed. NextDirection is the direction the next
// not-yet-revealed segment will attach in.
type Board struct {
	Segments      []*Segment
	NextDirection CubeDirection
}

// NewBoard builds a Board starting from its first segment.
func NewBoard(first *Segment, nextDirection CubeDirection) *Board {
	return &Board{Segments: []*Segment{first}, NextDirection: nextDirection}
}

// Clone returns a deep copy of the board: every segment is copied so a
// passenger pickup on the clone never mutates a prior snapshot.
func (b *Board) Clone() *Board {
	segments := make([]*Segment, len(b.Segments))
	for i, seg := range b.Segments {
		clone := *seg
		segments[i] = &clone
	}
	return &Board{Segments: segments, NextDirection: b.NextDirection}
}

// RevealNext appends a new segment attached beyond the current tail's tip
// along NextDirection, populated with fields: its center lies two hexes past
// the tip, so its first column is the hex right after the tip and no
// coordinate is claimed by both segments. It does not choose the fields
// themselves (randomizing the board layout is a Non-goal); the caller
// supplies them.
func (b *Board) RevealNext(fields [SegmentHeight][SegmentWidth]Field, nextNextDirection CubeDirection) *Segment {
	tail := b.Segments[len(b.Segments)-1]
	center := tail.Tip().Add(b.NextDirection.Vector().Scale(2))
	seg := NewSegment(b.NextDirection, center, fields)
	b.Segments = append(b.Segments, seg)
	b.NextDirection = nextNextDirection
	return seg
}

// Get returns the field at c from whichever segment claims it, scanning
// segments head to tail and returning the first hit.
func (b *Board) Get(c CubeCoordinate) (Field, bool) {
	for _, seg := range b.Segments {
		if f, ok := seg.Get(c); ok {
			return f, true
		}
	}
	return Field{}, false
}

// Contains reports whether any segment claims c.
func (b *Board) Contains(c CubeCoordinate) bool {
	_, ok := b.Get(c)
	return ok
}

// FindSegment returns the segment claiming c, if any.
func (b *Board) FindSegment(c CubeCoordinate) (*Segment, bool) {
	for _, seg := range b.Segments {
		if seg.Contains(c) {
			return seg, true
		}
	}
	return nil, false
}

// SegmentIndex returns the position of the segment claiming c within the
// chain, if any.
func (b *Board) SegmentIndex(c CubeCoordinate) (int, bool) {
	for i, seg := range b.Segments {
		if seg.Contains(c) {
			return i, true
		}
	}
	return 0, false
}

// SegmentDistance returns |segment_index(a) - segment_index(b)|. ok is
// false if either coordinate falls outside the board.
func (b *Board) SegmentDistance(a, c CubeCoordinate) (dist int, ok bool) {
	ia, oka := b.SegmentIndex(a)
	ic, okc := b.SegmentIndex(c)
	if !oka || !okc {
		return 0, false
	}
	return absInt(ia - ic), true
}

// ProjectionIndex returns the along-direction column of c within its
// segment, used by ship-advance scoring.
func (b *Board) ProjectionIndex(c CubeCoordinate) (int, bool) {
	seg, ok := b.FindSegment(c)
	if !ok {
		return 0, false
	}
	return seg.ProjectionIndex(c)
}

// Neighbors returns the six coordinates adjacent to c, in the fixed order
// of CubeDirection ordinals 0..5, regardless of board membership.
func (b *Board) Neighbors(c CubeCoordinate) [6]CubeCoordinate {
	var result [6]CubeCoordinate
	for i, d := range AllDirections() {
		result[i] = c.Neighbor(d)
	}
	return result
}

// GetFieldCurrentDirection returns the direction of flow at c, if c lies on
// the central axis of its segment (midline row, excluding the segment's
// forward-axis ends).
func (b *Board) GetFieldCurrentDirection(c CubeCoordinate) (CubeDirection, bool) {
	seg, ok := b.FindSegment(c)
	if !ok {
		return 0, false
	}
	local := seg.GlobalToLocal(c)
	x, y := localGridCell(local)
	if !isCurrentRow(y) || isSegmentEndColumn(x) {
		return 0, false
	}
	return seg.Direction, true
}

// EffectiveSpeed returns ship's speed minus one while it sits on a current
// field, and its speed unchanged otherwise (original source's board.rs
// effective_speed). Passenger pickup gates on this: a ship only crawls
// slowly enough to take someone aboard.
func (b *Board) EffectiveSpeed(ship Ship) int {
	if _, ok := b.GetFieldCurrentDirection(ship.Position); ok {
		return ship.Speed - 1
	}
	return ship.Speed
}

// FindNearestFieldTypes performs a breadth-first search over hex neighbors,
// constrained to board-mapped fields, returning every coordinate at the
// minimum distance from start whose field is of the given type. start
// itself is evaluated at distance 0, so a matching start field is the sole
// result (original source's board.rs find_nearest_field_types). It returns
// an empty slice (fails soft) when no such field exists within the board.
func (b *Board) FindNearestFieldTypes(start CubeCoordinate, fieldType FieldType) []CubeCoordinate {
	visited := map[CubeCoordinate]bool{start: true}
	queue := []CubeCoordinate{start}

	var found []CubeCoordinate
	foundDistance := -1

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if f, ok := b.Get(current); ok && f.Type == fieldType {
			dist := start.DistanceTo(current)
			if foundDistance == -1 {
				foundDistance = dist
			}
			if dist == foundDistance {
				found = append(found, current)
			}
		}

		if foundDistance != -1 && start.DistanceTo(current) >= foundDistance {
			continue
		}

		for _, n := range b.Neighbors(current) {
			if visited[n] {
				continue
			}
			if _, ok := b.Get(n); !ok {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return found
}
