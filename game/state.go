package game

// GameState is turn ownership plus the two Ships and the Board they act on.
// Turn is 0-based; an even Turn means TeamOne moves next (spec.md §3).
type GameState struct {
	Board    *Board
	Turn     int
	TeamOne  Ship
	TeamTwo  Ship
	LastMove Move
}

// NewGameState constructs a GameState from a Board, two Ships, and a turn
// index, normalizing each ship (spec.md §9's read_resolve treatment).
func NewGameState(board *Board, teamOne, teamTwo Ship, turn int) *GameState {
	teamOne.Team = TeamOne
	teamTwo.Team = TeamTwo
	return &GameState{
		Board:   board,
		Turn:    turn,
		TeamOne: teamOne.Normalize(),
		TeamTwo: teamTwo.Normalize(),
	}
}

// currentTeam selects the acting team by turn parity.
func (gs *GameState) currentTeam() Team {
	if gs.Turn%2 == 0 {
		return TeamOne
	}
	return TeamTwo
}

// CurrentShip returns the ship whose turn it is.
func (gs *GameState) CurrentShip() Ship {
	return gs.shipFor(gs.currentTeam())
}

// OtherShip returns the opponent's ship.
func (gs *GameState) OtherShip() Ship {
	return gs.shipFor(gs.currentTeam().Opponent())
}

func (gs *GameState) shipFor(team Team) Ship {
	if team == TeamOne {
		return gs.TeamOne
	}
	return gs.TeamTwo
}

// shipOnSandbank reports whether ship currently stands on a Sandbank field.
func (gs *GameState) shipOnSandbank(ship Ship) bool {
	field, ok := gs.Board.Get(ship.Position)
	return ok && field.Type == Sandbank
}

// withCurrentShip returns a shallow copy of gs with the acting team's ship
// replaced by next. The Board is shared, not recloned: every withXShip call
// within one PerformMove chains off the single deep clone PerformMove makes
// up front (spec.md §5, "Passenger pickup mutates only the current Board
// snapshot, never a prior one").
func (gs *GameState) withCurrentShip(next Ship) *GameState {
	clone := *gs
	if gs.currentTeam() == TeamOne {
		clone.TeamOne = next
	} else {
		clone.TeamTwo = next
	}
	return &clone
}

// withOtherShip is withCurrentShip for the opponent, used by Push.
func (gs *GameState) withOtherShip(next Ship) *GameState {
	clone := *gs
	if gs.currentTeam() == TeamOne {
		clone.TeamTwo = next
	} else {
		clone.TeamOne = next
	}
	return &clone
}

// Clone deep-copies gs: a fresh Board (so passenger pickup never mutates a
// prior snapshot) and value-semantic Ships (already independent copies).
func (gs *GameState) Clone() *GameState {
	return &GameState{
		Board:    gs.Board.Clone(),
		Turn:     gs.Turn,
		TeamOne:  gs.TeamOne,
		TeamTwo:  gs.TeamTwo,
		LastMove: gs.LastMove,
	}
}

// PerformMove clones state, applies move's actions left to right, enforces
// the Move-shape rules, resolves passenger pickup, and advances the turn.
// The first returned problem aborts the whole Move; no partial state ever
// escapes to the caller (spec.md §4.5, §7).
func (gs *GameState) PerformMove(move Move) (*GameState, error) {
	state := gs.Clone()

	for i, action := range move.Actions {
		if i > 0 {
			if _, isAccel := action.(Accelerate); isAccel {
				// Accelerate is only legal as the first action of a Move.
				return nil, MovementPointsMissing
			}
		}
		next, err := action.Perform(state)
		if err != nil {
			return nil, err
		}
		state = next
	}

	ship := state.CurrentShip()
	if ship.PushPending {
		return nil, InsufficientPush
	}
	if ship.Movement != 0 {
		return nil, MovementPointsMissing
	}

	state = state.applyPassengerPickup()
	state.LastMove = move
	state.advanceTurn()

	logger.Info().Int("turn", state.Turn).Int("actions", len(move.Actions)).Msg("move performed")
	return state, nil
}

// applyPassengerPickup claims a passenger for the current ship when it sits
// on the water hex a Passenger field's Direction faces, the ship has spare
// capacity (spec.md §4.5 step 4), and the ship is crawling: its effective
// speed (speed, minus one on a current field) is below 2, matching the
// original source's board.rs effective_speed/pickup_passenger gate — a ship
// moving too fast sails past a passenger without taking it aboard.
func (gs *GameState) applyPassengerPickup() *GameState {
	ship := gs.CurrentShip()
	if ship.Passengers >= MaxPassengers {
		return gs
	}
	if gs.Board.EffectiveSpeed(ship) >= 2 {
		return gs
	}

	for _, n := range gs.Board.Neighbors(ship.Position) {
		field, ok := gs.Board.Get(n)
		if !ok || field.Type != Passenger || field.Passenger == nil || field.Passenger.Count <= 0 {
			continue
		}
		if n.Neighbor(field.Passenger.Direction) != ship.Position {
			continue
		}
		idx, ok := gs.Board.SegmentIndex(n)
		if !ok {
			continue
		}
		gs.Board.Segments[idx] = gs.Board.Segments[idx].withDecrementedPassenger(n)
		ship.Passengers++
		return gs.withCurrentShip(ship)
	}
	return gs
}

// advanceTurn increments Turn, resets the now-current ship's per-turn
// bookkeeping, and applies current displacement (spec.md §4.5). It mutates
// gs directly: by this point gs is PerformMove's own clone, not visible to
// any caller yet, matching the teacher's AdvancePhase (game/state.go),
// which also mutates its receiver in place at the terminal step of a turn.
func (gs *GameState) advanceTurn() {
	gs.Turn++
	ship := gs.CurrentShip()

	ship.FreeAcc = 1
	ship.FreeTurns = 1
	ship.Movement = ship.Speed
	ship.PushPending = false
	ship.Stranded = false

	if direction, ok := gs.Board.GetFieldCurrentDirection(ship.Position); ok {
		displaced := ship.Position.Neighbor(direction)
		if field, ok := gs.Board.Get(displaced); ok && field.Type != Island {
			ship.Position = displaced
		}
	}

	if gs.currentTeam() == TeamOne {
		gs.TeamOne = ship
	} else {
		gs.TeamTwo = ship
	}
}

// DetermineAheadTeam reports which team's ship is further along the board:
// greater segment index first, then greater projection index within a
// shared segment (spec.md §4.5 "Turn ordering tie-break"). It is a pure
// query for external callers (e.g. the AI layer picking a tie-break); it
// does not itself reorder whose turn is next — see DESIGN.md for why the
// base turn-parity model (§5 "turn parity flips exactly once per successful
// Move") is kept as the sole source of turn order.
func (gs *GameState) DetermineAheadTeam() Team {
	oneIdx, _ := gs.Board.SegmentIndex(gs.TeamOne.Position)
	twoIdx, _ := gs.Board.SegmentIndex(gs.TeamTwo.Position)
	if oneIdx != twoIdx {
		if oneIdx > twoIdx {
			return TeamOne
		}
		return TeamTwo
	}
	oneProj, _ := gs.Board.ProjectionIndex(gs.TeamOne.Position)
	twoProj, _ := gs.Board.ProjectionIndex(gs.TeamTwo.Position)
	if oneProj >= twoProj {
		return TeamOne
	}
	return TeamTwo
}

// shipAdvancePoints is segment_index*5 + projection index along the
// segment (spec.md §4.5 "Point function").
func (gs *GameState) shipAdvancePoints(ship Ship) int {
	idx, ok := gs.Board.SegmentIndex(ship.Position)
	if !ok {
		return 0
	}
	proj, _ := gs.Board.ProjectionIndex(ship.Position)
	return idx*5 + proj
}

// TeamPoints is the split point readout spec.md §3 names but never wires to
// an operation; CalculatePoints sums it into a single total.
type TeamPoints struct {
	ShipPoints   int
	CoalPoints   int
	FinishPoints int
}

// TeamPoints computes the split point readout for team.
func (gs *GameState) TeamPoints(team Team) TeamPoints {
	ship := gs.shipFor(team)
	tp := TeamPoints{
		ShipPoints: gs.shipAdvancePoints(ship),
		CoalPoints: ship.Coal,
	}
	if field, ok := gs.Board.Get(ship.Position); ok && field.Type == Goal {
		tp.FinishPoints = FinishBonusPoints
	}
	return tp
}

// CalculatePoints sums ship's TeamPoints with its passenger bonus.
func (gs *GameState) CalculatePoints(ship Ship) int {
	tp := gs.TeamPoints(ship.Team)
	return tp.ShipPoints + tp.CoalPoints + tp.FinishPoints + ship.Passengers*PassengerBonusPoints
}

// IsWinner reports whether ship beats the opponent on points, tie-breaking
// on passengers then coal (spec.md §4.5).
func (gs *GameState) IsWinner(ship Ship) bool {
	other := gs.shipFor(ship.Team.Opponent())
	points, otherPoints := gs.CalculatePoints(ship), gs.CalculatePoints(other)
	if points != otherPoints {
		return points > otherPoints
	}
	if ship.Passengers != other.Passengers {
		return ship.Passengers > other.Passengers
	}
	return ship.Coal > other.Coal
}

// IsOver reports whether the game has ended: a ship finished (speed 1,
// on a Goal field, with at least two passengers), the turn cap was hit, or
// the current ship has no legal move (spec.md §4.5).
func (gs *GameState) IsOver() bool {
	if gs.Turn >= MaxTurns {
		return true
	}
	if gs.shipFinished(gs.TeamOne) || gs.shipFinished(gs.TeamTwo) {
		return true
	}
	return len(gs.GetSimpleMoves(gs.CurrentShip().Coal)) == 0
}

func (gs *GameState) shipFinished(ship Ship) bool {
	if ship.Speed != 1 || ship.Passengers < 2 {
		return false
	}
	field, ok := gs.Board.Get(ship.Position)
	return ok && field.Type == Goal
}
