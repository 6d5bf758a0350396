package game

// Ship is the mutable-in-spirit, value-semantic actor state for one team.
// GameState copies Ships into each new state rather than mutating shared
// ones, so a Ship by itself never aliases across snapshots.
type Ship struct {
	Team       Team
	Position   CubeCoordinate
	Direction  CubeDirection
	Speed      int
	Coal       int
	Passengers int
	FreeTurns  int
	Points     int
	FreeAcc    int
	Movement   int // remaining movement points this turn

	// Stranded is true once an Advance within the current Move has ended on
	// a Sandbank, forfeiting the rest of this turn's movement. Reset by
	// GameState.advanceTurn.
	Stranded bool
	// PushPending is true when an Advance halted the ship on the opponent's
	// field; a Push must be the next action in the same Move. Reset by a
	// successful Push and by GameState.advanceTurn.
	PushPending bool
}

// NewShip builds a Ship at the start of a game: full free budget, movement
// equal to speed.
func NewShip(team Team, position CubeCoordinate, direction CubeDirection, speed, coal int) Ship {
	s := Ship{
		Team:      team,
		Position:  position,
		Direction: direction,
		Speed:     speed,
		Coal:      coal,
		FreeAcc:   1,
		FreeTurns: 1,
	}
	return s.Normalize()
}

// Normalize is the post-deserialization invariant check spec.md's §9 leaves
// as an open question about the source's read_resolve: recompute movement
// from speed and clamp the free-budget counters into their valid ranges.
func (s Ship) Normalize() Ship {
	s.Movement = s.Speed
	if s.FreeAcc < 0 {
		s.FreeAcc = 0
	} else if s.FreeAcc > 1 {
		s.FreeAcc = 1
	}
	if s.FreeTurns < 0 {
		s.FreeTurns = 0
	} else if s.FreeTurns > MaxFreeTurns {
		s.FreeTurns = MaxFreeTurns
	}
	return s
}

// MaxAcc returns min(MaxSpeed-Speed, Speed-MinSpeed+Coal+FreeAcc), the
// magnitude bound the move generator enumerates accelerations within. It
// does not check that Coal funds every value in that range; AccelerateBy
// does that for each concrete acceleration.
func (s Ship) MaxAcc() int {
	up := MaxSpeed - s.Speed
	budget := s.Speed - MinSpeed + s.Coal + s.FreeAcc
	if up < budget {
		return up
	}
	return budget
}

// AccelerateBy applies a signed acceleration, consuming free_acc before
// coal. onSandbank must reflect whether the ship currently stands on a
// Sandbank field (Ship has no board reference of its own).
func (s Ship) AccelerateBy(diff int, onSandbank bool) (Ship, error) {
	if diff == 0 {
		return Ship{}, ZeroAcc
	}
	newSpeed := s.Speed + diff
	if newSpeed > MaxSpeed {
		return Ship{}, AboveMaxSpeed
	}
	if newSpeed < MinSpeed {
		return Ship{}, BelowMinSpeed
	}
	if onSandbank {
		return Ship{}, OnSandbank
	}
	magnitude := absInt(diff)
	cost := magnitude - s.FreeAcc
	if cost < 0 {
		cost = 0
	}
	if s.Coal < cost {
		return Ship{}, InsufficientCoal
	}

	freeUsed := magnitude
	if freeUsed > s.FreeAcc {
		freeUsed = s.FreeAcc
	}
	next := s
	next.Speed = newSpeed
	next.FreeAcc -= freeUsed
	next.Coal -= cost
	// Accelerate is only legal as the first action of a Move (state.go's
	// GameState.PerformMove enforces that), so movement has not yet been
	// spent; the new speed becomes this turn's movement budget.
	next.Movement = newSpeed
	return next, nil
}

// TurnTo rotates the ship to face direction, consuming free_turns before
// coal. onSandbank must reflect whether the ship currently stands on a
// Sandbank field.
func (s Ship) TurnTo(direction CubeDirection, onSandbank bool) (Ship, error) {
	if onSandbank {
		return Ship{}, RotationOnSandbankNotAllowed
	}
	turns := s.Direction.TurnCountToDirection(direction)
	magnitude := absInt(turns)
	cost := magnitude - s.FreeTurns
	if cost < 0 {
		cost = 0
	}
	if s.Coal < cost {
		return Ship{}, NotEnoughCoalForRotation
	}

	freeUsed := magnitude
	if freeUsed > s.FreeTurns {
		freeUsed = s.FreeTurns
	}
	next := s
	next.Direction = direction
	next.FreeTurns -= freeUsed
	next.Coal -= cost
	return next, nil
}
