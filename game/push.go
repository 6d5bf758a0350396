package game

// Push shoves the opponent ship sharing the current ship's field one hex in
// Direction. It is consumed as one action within a Move, typically the one
// immediately following an Advance that halted on the opponent (see
// spec.md §4.4).
type Push struct {
	Direction CubeDirection
}

// Perform validates and applies the push, per spec.md §4.4.
func (p Push) Perform(state *GameState) (*GameState, error) {
	ship := state.CurrentShip()
	opponent := state.OtherShip()

	if ship.Position != opponent.Position {
		return nil, SameFieldPush
	}
	if ship.Movement < 1 {
		return nil, PushMovementPointsMissing
	}
	if state.shipOnSandbank(ship) {
		return nil, SandbankPush
	}
	if p.Direction == ship.Direction.Opposite() {
		return nil, BackwardPushingRestricted
	}

	target := opponent.Position.Neighbor(p.Direction)
	field, ok := state.Board.Get(target)
	if !ok {
		return nil, InvalidFieldPush
	}
	if field.Type == Island {
		return nil, BlockedFieldPush
	}

	nextOpponent := opponent
	nextOpponent.Position = target
	if field.Type == Sandbank {
		nextOpponent.Speed = 1
		nextOpponent.FreeTurns = 1
	}

	nextShip := ship
	nextShip.Movement--
	nextShip.PushPending = false

	result := state.withOtherShip(nextOpponent).withCurrentShip(nextShip)
	logger.Debug().Str("direction", p.Direction.String()).Msg("ship pushed")
	return result, nil
}
