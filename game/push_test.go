package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fieldFor locates the (x, y) grid cell a global coordinate occupies within
// a segment sharing geom's direction and center, so a test can paint a
// field onto the exact hex a Push (or Advance) will land on without having
// to hand-derive the rotated local grid by eye.
func fieldFor(geom *Segment, global CubeCoordinate) (x, y int) {
	return localGridCell(geom.GlobalToLocal(global))
}

func TestPush(t *testing.T) {
	seg := NewSegment(Right, NewCubeCoordinate(0, 0), allWaterFields())
	board := NewBoard(seg, Right)
	shared := localPos(seg, 1, 2)

	t.Run("spec.md §8.3: pushes the co-located opponent one hex sideways", func(t *testing.T) {
		one := Ship{Position: shared, Direction: Right, Speed: 2}
		one.Movement = 2
		two := Ship{Position: shared, Direction: Left, Speed: 1}
		state := NewGameState(board.Clone(), one, two, 0)

		next, err := Push{Direction: DownRight}.Perform(state)

		require.NoError(t, err)
		require.Equal(t, shared.Neighbor(DownRight), next.OtherShip().Position)
		require.Equal(t, 1, next.CurrentShip().Movement)
	})

	t.Run("requires the opponent to share the current field", func(t *testing.T) {
		one := Ship{Position: shared, Direction: Right, Speed: 1}
		two := Ship{Position: localPos(seg, 2, 2), Direction: Left, Speed: 1}
		state := NewGameState(board.Clone(), one, two, 0)

		_, err := Push{Direction: DownRight}.Perform(state)
		require.Equal(t, SameFieldPush, err)
	})

	t.Run("requires at least one movement point", func(t *testing.T) {
		one := Ship{Position: shared, Direction: Right, Speed: 1}
		state := NewGameState(board.Clone(), one, Ship{Position: shared, Direction: Left, Speed: 1}, 0)
		state.TeamOne.Movement = 0

		_, err := Push{Direction: DownRight}.Perform(state)
		require.Equal(t, PushMovementPointsMissing, err)
	})

	t.Run("a ship on a sandbank cannot push", func(t *testing.T) {
		sandSeg := NewSegment(Right, NewCubeCoordinate(0, 0), allWaterFields())
		sandSeg.Fields[2][1] = Field{Type: Sandbank}
		sandBoard := NewBoard(sandSeg, Right)
		pos := localPos(sandSeg, 1, 2)
		one := Ship{Position: pos, Direction: Right, Speed: 1}
		state := NewGameState(sandBoard, one, Ship{Position: pos, Direction: Left, Speed: 1}, 0)

		_, err := Push{Direction: DownRight}.Perform(state)
		require.Equal(t, SandbankPush, err)
	})

	t.Run("cannot push directly backward against the pusher's own heading", func(t *testing.T) {
		one := Ship{Position: shared, Direction: Right, Speed: 1}
		state := NewGameState(board.Clone(), one, Ship{Position: shared, Direction: Left, Speed: 1}, 0)

		_, err := Push{Direction: Left}.Perform(state)
		require.Equal(t, BackwardPushingRestricted, err)
	})

	t.Run("cannot push off the board", func(t *testing.T) {
		corner := localPos(seg, 0, 2)
		one := Ship{Position: corner, Direction: Right, Speed: 1}
		state := NewGameState(board.Clone(), one, Ship{Position: corner, Direction: Left, Speed: 1}, 0)

		x, y := fieldFor(seg, corner.Neighbor(UpLeft))
		require.Falsef(t, x >= 0 && x < SegmentWidth && y >= 0 && y < SegmentHeight,
			"test fixture assumption: UpLeft from the (0, 2) corner must fall off the segment")

		_, err := Push{Direction: UpLeft}.Perform(state)
		require.Equal(t, InvalidFieldPush, err)
	})

	t.Run("cannot push onto an island", func(t *testing.T) {
		geom := NewSegment(Right, NewCubeCoordinate(0, 0), allWaterFields())
		pos := localPos(geom, 1, 2)
		x, y := fieldFor(geom, pos.Neighbor(UpLeft))

		fields := allWaterFields()
		fields[y][x] = Field{Type: Island}
		islandSeg := NewSegment(Right, NewCubeCoordinate(0, 0), fields)
		islandBoard := NewBoard(islandSeg, Right)
		one := Ship{Position: pos, Direction: Right, Speed: 1}
		state := NewGameState(islandBoard, one, Ship{Position: pos, Direction: Left, Speed: 1}, 0)

		_, err := Push{Direction: UpLeft}.Perform(state)
		require.Equal(t, BlockedFieldPush, err)
	})

	t.Run("pushing an opponent onto a sandbank resets its speed and free turns", func(t *testing.T) {
		geom := NewSegment(Right, NewCubeCoordinate(0, 0), allWaterFields())
		pos := localPos(geom, 1, 2)
		x, y := fieldFor(geom, pos.Neighbor(UpLeft))

		fields := allWaterFields()
		fields[y][x] = Field{Type: Sandbank}
		sandSeg := NewSegment(Right, NewCubeCoordinate(0, 0), fields)
		sandBoard := NewBoard(sandSeg, Right)
		one := Ship{Position: pos, Direction: Right, Speed: 1}
		two := Ship{Position: pos, Direction: Left, Speed: 4, FreeTurns: 0}
		state := NewGameState(sandBoard, one, two, 0)

		next, err := Push{Direction: UpLeft}.Perform(state)

		require.NoError(t, err)
		require.Equal(t, 1, next.OtherShip().Speed)
		require.Equal(t, 1, next.OtherShip().FreeTurns)
	})
}
