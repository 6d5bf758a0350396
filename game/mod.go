// Package game implements the Mississippi Queen rules engine: hexagonal
// board geometry, ship state, the four action variants, and the move
// generator that enumerates the legal action space from a GameState.
package game

import "github.com/rs/zerolog/log"

// Team identifies one of the two players.
type Team int

const (
	TeamOne Team = iota
	TeamTwo
)

func (t Team) String() string {
	if t == TeamOne {
		return "One"
	}
	return "Two"
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamOne {
		return TeamTwo
	}
	return TeamOne
}

const (
	// MinSpeed and MaxSpeed bound a ship's speed at every turn boundary.
	MinSpeed = 1
	MaxSpeed = 6

	// MaxPassengers caps how many passengers a ship can carry. Not given a
	// number in spec.md; fixed here to match the ">= 2 passengers" finish
	// condition (§4.5) that would otherwise be unreachable. See DESIGN.md.
	MaxPassengers = 2

	// MaxFreeTurns is the upper bound of free_turns; Ship.Normalize clamps
	// FreeTurns into [0, MaxFreeTurns].
	MaxFreeTurns = 2

	// SegmentWidth and SegmentHeight size every Segment's local field grid:
	// width runs along the segment's forward axis, height across it.
	SegmentWidth  = 4
	SegmentHeight = 5

	// MaxTurns is the two-round x 15-turn cap after which a game is over.
	MaxTurns = 30

	// PassengerBonusPoints and FinishBonusPoints feed CalculatePoints. Not
	// numerically specified by spec.md; the values are fixed here.
	PassengerBonusPoints = 2
	FinishBonusPoints    = 1
)

var logger = log.With().Str("component", "game").Logger()
