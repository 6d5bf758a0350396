package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A segment facing Right lays its columns out along the travel direction:
// local (x, y) -> local (x+1, y) is exactly one step Right. Midline row
// (y == SegmentHeight/2), non-end columns carry a Right-flowing current.

func localPos(seg *Segment, x, y int) CubeCoordinate {
	return seg.LocalToGlobal(localCubeAt(x, y))
}

func TestAdvanceHappyPath(t *testing.T) {
	t.Run("moves forward, charging one movement point on an aiding current", func(t *testing.T) {
		seg := NewSegment(Right, NewCubeCoordinate(0, 0), allWaterFields())
		board := NewBoard(seg, Right)
		one := Ship{Position: localPos(seg, 0, 2), Direction: Right, Speed: 2, Coal: 0}
		state := NewGameState(board, one, Ship{Position: NewCubeCoordinate(900, 900)}, 0)

		next, err := Advance{Distance: 1}.Perform(state)

		require.NoError(t, err)
		require.Equal(t, localPos(seg, 1, 2), next.CurrentShip().Position)
		require.Equal(t, 1, next.CurrentShip().Movement)
	})

	t.Run("an opposing current adds one movement point to the step", func(t *testing.T) {
		// The segment faces Right, so its current flows Right; a ship
		// heading Left sails directly against it.
		seg := NewSegment(Right, NewCubeCoordinate(0, 0), allWaterFields())
		board := NewBoard(seg, Right)
		one := Ship{Position: localPos(seg, 3, 2), Direction: Left, Speed: 2, Coal: 0}
		state := NewGameState(board, one, Ship{Position: NewCubeCoordinate(900, 900)}, 0)

		next, err := Advance{Distance: 1}.Perform(state)

		require.NoError(t, err)
		require.Equal(t, localPos(seg, 2, 2), next.CurrentShip().Position)
		require.Equal(t, 0, next.CurrentShip().Movement, "2 movement points in, 2 spent on the opposed step")
	})
}

func TestAdvanceInvalidDistance(t *testing.T) {
	t.Run("zero distance is rejected", func(t *testing.T) {
		state := newSingleSegmentState(Ship{Position: NewCubeCoordinate(0, 0), Direction: Right, Speed: 1}, Ship{})
		_, err := Advance{Distance: 0}.Perform(state)
		require.Equal(t, InvalidDistance, err)
	})

	t.Run("negative distance is rejected off a sandbank", func(t *testing.T) {
		state := newSingleSegmentState(Ship{Position: NewCubeCoordinate(0, 0), Direction: Right, Speed: 1}, Ship{})
		_, err := Advance{Distance: -1}.Perform(state)
		require.Equal(t, InvalidDistance, err)
	})
}

func TestAdvanceFieldIsBlocked(t *testing.T) {
	t.Run("spec.md §8.2: advancing into an island is blocked", func(t *testing.T) {
		fields := allWaterFields()
		fields[2][3] = Field{Type: Island}
		seg := NewSegment(Right, NewCubeCoordinate(0, 0), fields)
		board := NewBoard(seg, Right)
		one := Ship{Position: localPos(seg, 2, 2), Direction: Right, Speed: 1}
		state := NewGameState(board, one, Ship{Position: NewCubeCoordinate(900, 900)}, 0)

		_, err := Advance{Distance: 1}.Perform(state)
		require.Equal(t, FieldIsBlocked, err)
	})
}

func TestAdvanceMovementPointsMissing(t *testing.T) {
	t.Run("rejects an advance the ship cannot afford", func(t *testing.T) {
		seg := NewSegment(Right, NewCubeCoordinate(0, 0), allWaterFields())
		board := NewBoard(seg, Right)
		one := Ship{Position: localPos(seg, 0, 2), Direction: Right, Speed: 1}
		state := NewGameState(board, one, Ship{Position: NewCubeCoordinate(900, 900)}, 0)
		state.TeamOne.Movement = 0 // Normalize already set Movement to Speed; spend it all first

		_, err := Advance{Distance: 1}.Perform(state)
		require.Equal(t, MovementPointsMissing, err)
	})
}

func TestAdvanceOpponentCollision(t *testing.T) {
	seg := NewSegment(Right, NewCubeCoordinate(0, 0), allWaterFields())
	board := NewBoard(seg, Right)

	t.Run("halts on a mid-path opponent and obliges a push", func(t *testing.T) {
		one := Ship{Position: localPos(seg, 0, 2), Direction: Right, Speed: 3}
		two := Ship{Position: localPos(seg, 1, 2), Direction: Left, Speed: 1}
		state := NewGameState(board.Clone(), one, two, 0)

		next, err := Advance{Distance: 2}.Perform(state)

		require.NoError(t, err)
		require.Equal(t, localPos(seg, 1, 2), next.CurrentShip().Position)
		require.True(t, next.CurrentShip().PushPending)
	})

	t.Run("spec.md §9: landing on the opponent as the final requested step raises ShipAlreadyInTarget", func(t *testing.T) {
		one := Ship{Position: localPos(seg, 0, 2), Direction: Right, Speed: 3}
		two := Ship{Position: localPos(seg, 1, 2), Direction: Left, Speed: 1}
		state := NewGameState(board.Clone(), one, two, 0)

		_, err := Advance{Distance: 1}.Perform(state)
		require.Equal(t, ShipAlreadyInTarget, err)
	})
}

func TestAdvanceOntoSandbank(t *testing.T) {
	fields := allWaterFields()
	fields[2][2] = Field{Type: Sandbank}
	seg := NewSegment(Right, NewCubeCoordinate(0, 0), fields)
	board := NewBoard(seg, Right)

	t.Run("forfeits the rest of the requested distance and forces speed to 1", func(t *testing.T) {
		one := Ship{Position: localPos(seg, 0, 2), Direction: Right, Speed: 3}
		state := NewGameState(board.Clone(), one, Ship{Position: NewCubeCoordinate(900, 900)}, 0)

		next, err := Advance{Distance: 3}.Perform(state)

		require.NoError(t, err)
		require.Equal(t, localPos(seg, 2, 2), next.CurrentShip().Position)
		require.Equal(t, 1, next.CurrentShip().Speed)
		require.Equal(t, 0, next.CurrentShip().Movement)
		require.True(t, next.CurrentShip().Stranded)
	})

	t.Run("a stranded ship cannot issue another advance this move", func(t *testing.T) {
		one := Ship{Position: localPos(seg, 2, 2), Direction: Right, Speed: 1}
		state := NewGameState(board.Clone(), one, Ship{Position: NewCubeCoordinate(900, 900)}, 0)
		state.TeamOne.Stranded = true

		_, err := Advance{Distance: 1}.Perform(state)
		require.Equal(t, MoveEndOnSandbank, err)
	})
}

func TestAdvanceFromSandbank(t *testing.T) {
	fields := allWaterFields()
	fields[2][2] = Field{Type: Sandbank}
	seg := NewSegment(Right, NewCubeCoordinate(0, 0), fields)
	board := NewBoard(seg, Right)

	t.Run("a ship on a sandbank may reverse one step", func(t *testing.T) {
		one := Ship{Position: localPos(seg, 2, 2), Direction: Right, Speed: 1}
		state := NewGameState(board.Clone(), one, Ship{Position: NewCubeCoordinate(900, 900)}, 0)
		state.TeamOne.Movement = 2 // enough to cover the opposed reverse step

		next, err := Advance{Distance: -1}.Perform(state)
		require.NoError(t, err)
		require.Equal(t, localPos(seg, 1, 2), next.CurrentShip().Position)
	})

	t.Run("a distance outside {-1, 1, 2} is rejected from a sandbank", func(t *testing.T) {
		one := Ship{Position: localPos(seg, 2, 2), Direction: Right, Speed: 1}
		state := NewGameState(board.Clone(), one, Ship{Position: NewCubeCoordinate(900, 900)}, 0)
		state.TeamOne.Movement = 3

		_, err := Advance{Distance: 3}.Perform(state)
		require.Equal(t, InvalidDistance, err)
	})
}
