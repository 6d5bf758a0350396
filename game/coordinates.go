package game

// CubeCoordinate is an integer cube hex coordinate. The invariant q+r+s=0
// always holds; s is derived from q and r but stored for convenience since
// rotation and distance read all three fields.
type CubeCoordinate struct {
	Q, R, S int
}

// NewCubeCoordinate builds a CubeCoordinate from its two independent axes,
// deriving S so that Q+R+S=0.
func NewCubeCoordinate(q, r int) CubeCoordinate {
	return CubeCoordinate{Q: q, R: r, S: -q - r}
}

func (c CubeCoordinate) Add(other CubeCoordinate) CubeCoordinate {
	return CubeCoordinate{Q: c.Q + other.Q, R: c.R + other.R, S: c.S + other.S}
}

func (c CubeCoordinate) Sub(other CubeCoordinate) CubeCoordinate {
	return CubeCoordinate{Q: c.Q - other.Q, R: c.R - other.R, S: c.S - other.S}
}

func (c CubeCoordinate) Negate() CubeCoordinate {
	return CubeCoordinate{Q: -c.Q, R: -c.R, S: -c.S}
}

func (c CubeCoordinate) Scale(n int) CubeCoordinate {
	return CubeCoordinate{Q: c.Q * n, R: c.R * n, S: c.S * n}
}

// DistanceTo returns the Manhattan-hex distance between two coordinates.
func (c CubeCoordinate) DistanceTo(other CubeCoordinate) int {
	d := c.Sub(other)
	return (absInt(d.Q) + absInt(d.R) + absInt(d.S)) / 2
}

// RotatedBy applies n 60-degree clockwise rotation steps, each step being
// the cyclic permutation-and-negation (q, r, s) -> (-r, -s, -q).
func (c CubeCoordinate) RotatedBy(n int) CubeCoordinate {
	steps := ((n % 6) + 6) % 6
	result := c
	for i := 0; i < steps; i++ {
		result = CubeCoordinate{Q: -result.R, R: -result.S, S: -result.Q}
	}
	return result
}

// Neighbor returns the coordinate one hex away in the given direction.
func (c CubeCoordinate) Neighbor(d CubeDirection) CubeCoordinate {
	return c.Add(d.Vector())
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CubeDirection is one of the six hex directions, ordered so that rotation
// by n turns is simply (ordinal + n) mod 6.
type CubeDirection int

const (
	Right CubeDirection = iota
	DownRight
	DownLeft
	Left
	UpLeft
	UpRight
)

var directionNames = [6]string{"Right", "DownRight", "DownLeft", "Left", "UpLeft", "UpRight"}

func (d CubeDirection) String() string {
	return directionNames[(int(d)%6+6)%6]
}

// directionVectors holds the unit cube vector for each direction, built so
// that rotating direction i by one clockwise step yields direction i+1 mod 6
// (i.e. RotatedBy(1) on direction Right's vector equals DownRight's vector).
var directionVectors = [6]CubeCoordinate{
	{Q: 1, R: 0, S: -1},  // Right
	{Q: 0, R: 1, S: -1},  // DownRight
	{Q: -1, R: 1, S: 0},  // DownLeft
	{Q: -1, R: 0, S: 1},  // Left
	{Q: 0, R: -1, S: 1},  // UpLeft
	{Q: 1, R: -1, S: 0},  // UpRight
}

// Vector returns the unit cube vector for this direction.
func (d CubeDirection) Vector() CubeCoordinate {
	return directionVectors[(int(d)%6+6)%6]
}

// RotatedBy returns the direction reached by rotating n steps clockwise.
func (d CubeDirection) RotatedBy(n int) CubeDirection {
	return CubeDirection((((int(d)+n)%6)+6)%6)
}

// Opposite returns the direction pointing the opposite way.
func (d CubeDirection) Opposite() CubeDirection {
	return d.RotatedBy(3)
}

// TurnCountToDirection returns the signed minimal turn count n in [-3, 3]
// such that d.RotatedBy(n) == target, tie-breaking towards negative
// (counterclockwise) when |n| == 3.
func (d CubeDirection) TurnCountToDirection(target CubeDirection) int {
	diff := (((int(target) - int(d)) % 6) + 6) % 6
	switch {
	case diff <= 2:
		return diff
	case diff == 3:
		return -3
	default:
		return diff - 6
	}
}

// WithNeighbors returns [RotatedBy(-1), self, RotatedBy(+1)].
func (d CubeDirection) WithNeighbors() [3]CubeDirection {
	return [3]CubeDirection{d.RotatedBy(-1), d, d.RotatedBy(1)}
}

// AllDirections returns the six directions in ordinal order 0..5, the fixed
// order used whenever neighboring fields are enumerated.
func AllDirections() [6]CubeDirection {
	return [6]CubeDirection{Right, DownRight, DownLeft, Left, UpLeft, UpRight}
}
