package game

// Advance moves the current ship Distance hexes along its heading (or, from
// a Sandbank only, one hex against it). See spec.md §4.4 for the full
// precondition cascade.
type Advance struct {
	Distance int
}

// Perform validates and applies the advance, per spec.md §4.4.
func (a Advance) Perform(state *GameState) (*GameState, error) {
	ship := state.CurrentShip()
	opponent := state.OtherShip()

	if a.Distance == 0 {
		return nil, InvalidDistance
	}
	if ship.Stranded {
		return nil, MoveEndOnSandbank
	}

	onSandbank := state.shipOnSandbank(ship)
	if onSandbank {
		if a.Distance != -1 && a.Distance != 1 && a.Distance != 2 {
			return nil, InvalidDistance
		}
	} else if a.Distance < 0 {
		return nil, InvalidDistance
	}

	travelDirection := ship.Direction
	if a.Distance < 0 {
		travelDirection = ship.Direction.Opposite()
	}
	steps := absInt(a.Distance)

	pos := ship.Position
	cost := 0
	pendingPush := false
	strandedOnSandbank := false

	for i := 1; i <= steps; i++ {
		next := pos.Neighbor(travelDirection)
		field, ok := state.Board.Get(next)
		if !ok || field.Type == Island {
			return nil, FieldIsBlocked
		}

		stepCost := 1
		if current, ok := state.Board.GetFieldCurrentDirection(next); ok && current == travelDirection.Opposite() {
			stepCost = 2
		}
		if cost+stepCost > ship.Movement {
			return nil, MovementPointsMissing
		}

		if next == opponent.Position {
			if i == steps {
				return nil, ShipAlreadyInTarget
			}
			cost += stepCost
			pos = next
			pendingPush = true
			break
		}

		cost += stepCost
		pos = next

		if field.Type == Sandbank {
			strandedOnSandbank = true
			break
		}
	}

	if pos == ship.Position {
		return nil, InvalidDistance
	}

	next := ship
	next.Position = pos
	next.Movement -= cost
	next.PushPending = pendingPush
	if strandedOnSandbank {
		next.Speed = 1
		next.Movement = 0
		next.Stranded = true
	}

	result := state.withCurrentShip(next)
	logger.Debug().Int("distance", a.Distance).Msg("ship advanced")
	return result, nil
}
