package game

// Segment is an oriented SegmentWidth x SegmentHeight patch of river: Fields
// is indexed [y][x] (y the across-width row, x the along-direction column).
// The segment's local-to-global rotation is computed once at construction
// (it never changes) rather than recomputed on every lookup.
type Segment struct {
	Direction CubeDirection
	Center    CubeCoordinate
	Fields    [SegmentHeight][SegmentWidth]Field

	turns int // precomputed Right.TurnCountToDirection(Direction)
}

// NewSegment builds a Segment anchored at center, oriented along direction,
// populated with fields (indexed [y][x]).
func NewSegment(direction CubeDirection, center CubeCoordinate, fields [SegmentHeight][SegmentWidth]Field) *Segment {
	return &Segment{
		Direction: direction,
		Center:    center,
		Fields:    fields,
		turns:     Right.TurnCountToDirection(direction),
	}
}

// Tip returns the far edge midpoint of the segment, the anchor the next
// segment attaches to.
func (s *Segment) Tip() CubeCoordinate {
	return s.Center.Add(s.Direction.Vector().Scale(2))
}

// localCubeAt converts a local grid cell (x, y) into a local cube
// coordinate centered on the segment (origin at the segment's logical
// center cell).
func localCubeAt(x, y int) CubeCoordinate {
	return CartesianCoordinate{X: x - 1, Y: y - SegmentHeight/2}.ToCube()
}

// localGridCell is the inverse of localCubeAt.
func localGridCell(local CubeCoordinate) (x, y int) {
	cart := CartesianFromCube(local)
	return cart.X + 1, cart.Y + SegmentHeight/2
}

// LocalToGlobal maps a local cube coordinate (origin at the segment center,
// aligned with Direction) to a global coordinate.
func (s *Segment) LocalToGlobal(local CubeCoordinate) CubeCoordinate {
	return local.RotatedBy(s.turns).Add(s.Center)
}

// GlobalToLocal inverts LocalToGlobal.
func (s *Segment) GlobalToLocal(global CubeCoordinate) CubeCoordinate {
	return global.Sub(s.Center).RotatedBy(-s.turns)
}

// Contains reports whether global falls within this segment's grid.
func (s *Segment) Contains(global CubeCoordinate) bool {
	_, ok := s.Get(global)
	return ok
}

// Get returns the field at global, or false if global falls outside this
// segment.
func (s *Segment) Get(global CubeCoordinate) (Field, bool) {
	x, y, ok := s.localGridIndex(global)
	if !ok {
		return Field{}, false
	}
	return s.Fields[y][x], true
}

// ProjectionIndex returns the local along-direction column (0..SegmentWidth-1)
// of global within this segment, the "projection index" used for scoring.
func (s *Segment) ProjectionIndex(global CubeCoordinate) (int, bool) {
	x, _, ok := s.localGridIndex(global)
	return x, ok
}

func (s *Segment) localGridIndex(global CubeCoordinate) (x, y int, ok bool) {
	x, y = localGridCell(s.GlobalToLocal(global))
	if x < 0 || x >= SegmentWidth || y < 0 || y >= SegmentHeight {
		return 0, 0, false
	}
	return x, y, true
}

// isCurrentRow reports whether local row y lies on the segment's midline.
func isCurrentRow(y int) bool {
	return y == SegmentHeight/2
}

// isSegmentEndColumn reports whether local column x is one of the
// segment's two forward-axis ends.
func isSegmentEndColumn(x int) bool {
	return x == 0 || x == SegmentWidth-1
}

// withDecrementedPassenger returns a copy of the segment with one passenger
// token claimed at global, if a Passenger field with a token sits there.
func (s *Segment) withDecrementedPassenger(global CubeCoordinate) *Segment {
	x, y, ok := s.localGridIndex(global)
	if !ok {
		return s
	}
	clone := *s
	clone.Fields[y][x] = clone.Fields[y][x].withDecrementedPassenger()
	return &clone
}
