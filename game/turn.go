package game

// Turn rotates the current ship to face Direction, funding anything beyond
// its free turn budget with coal.
type Turn struct {
	Direction CubeDirection
}

// Perform validates and applies the rotation, per spec.md §4.4's precondition
// order: the sandbank guard first, then the board-membership guard.
func (t Turn) Perform(state *GameState) (*GameState, error) {
	ship := state.CurrentShip()

	if state.shipOnSandbank(ship) {
		return nil, RotationOnSandbankNotAllowed
	}
	// Rotating is only permitted on a valid board field. The ship's current
	// field always is one in practice; this guards external callers feeding
	// a malformed state (spec.md §4.4).
	if !state.Board.Contains(ship.Position) {
		return nil, RotationOnNonExistingField
	}

	next, err := ship.TurnTo(t.Direction, false)
	if err != nil {
		return nil, err
	}

	result := state.withCurrentShip(next)
	logger.Debug().Str("direction", t.Direction.String()).Msg("ship turned")
	return result, nil
}
