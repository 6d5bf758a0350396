package game

// CartesianCoordinate is an offset coordinate used for indexing a segment's
// local field grid: X runs 0..SegmentWidth-1 along the segment's forward
// axis, Y runs 0..SegmentHeight-1 across it.
type CartesianCoordinate struct {
	X, Y int
}

// ToCube converts an offset coordinate to a cube coordinate using an
// odd-row offset layout: q = x - (y - (y&1))/2, r = y.
func (c CartesianCoordinate) ToCube() CubeCoordinate {
	q := c.X - (c.Y-(c.Y&1))/2
	r := c.Y
	return NewCubeCoordinate(q, r)
}

// CartesianFromCube is the inverse of CartesianCoordinate.ToCube.
func CartesianFromCube(c CubeCoordinate) CartesianCoordinate {
	y := c.R
	x := c.Q + (y-(y&1))/2
	return CartesianCoordinate{X: x, Y: y}
}

// ToIndex packs (x, y) into a row-major index within a SegmentWidth x
// SegmentHeight grid. It returns false when x or y is out of range.
func (c CartesianCoordinate) ToIndex() (int, bool) {
	if c.X < 0 || c.X >= SegmentWidth || c.Y < 0 || c.Y >= SegmentHeight {
		return 0, false
	}
	return c.Y*SegmentWidth + c.X, true
}

// CartesianFromIndex is the inverse of ToIndex.
func CartesianFromIndex(idx int) CartesianCoordinate {
	return CartesianCoordinate{X: idx % SegmentWidth, Y: idx / SegmentWidth}
}
