package game

// Accelerate changes the current ship's speed by Acc (positive or
// negative), funding anything beyond its free acceleration with coal.
type Accelerate struct {
	Acc int
}

// Perform validates and applies the acceleration, per spec.md §4.4.
func (a Accelerate) Perform(state *GameState) (*GameState, error) {
	ship := state.CurrentShip()
	onSandbank := state.shipOnSandbank(ship)

	next, err := ship.AccelerateBy(a.Acc, onSandbank)
	if err != nil {
		return nil, err
	}

	result := state.withCurrentShip(next)
	logger.Debug().Int("acc", a.Acc).Int("speed", next.Speed).Msg("ship accelerated")
	return result, nil
}
