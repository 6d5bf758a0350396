package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// GetActions enumerates every legal Move the current ship can make, bounded
// by how many Advance actions a single Move may chain (rank) and how much
// coal the whole Move may spend (maxCoal). It is the move generator's
// Produced API (spec.md §4.6, §6).
//
// "rank" bounds the number of Advance actions in a generated Move rather
// than the Move's total action count: a Move halted mid-advance by an
// opponent contact needs an Advance-then-Push-then-Advance chain to cover
// the ship's full movement budget, and rank is what keeps that chain
// finite. See DESIGN.md for this reading of spec.md §4.6's "rank actions".
func (gs *GameState) GetActions(rank, maxCoal int) []Move {
	ship := gs.CurrentShip()
	maxAcc := ship.MaxAcc()

	var moves []Move
	for acc := -maxAcc; acc <= maxAcc; acc++ {
		shipAfterAccel, accelAction, accelCoal, ok := gs.tryAccelerate(ship, acc)
		if !ok || accelCoal > maxCoal {
			continue
		}
		remainingCoal := maxCoal - accelCoal

		for turns := -3; turns <= 3; turns++ {
			shipAfterTurn, turnAction, turnCoal, ok := gs.tryTurn(shipAfterAccel, turns)
			if !ok || turnCoal > remainingCoal {
				continue
			}

			var prefix []Action
			if accelAction != nil {
				prefix = append(prefix, accelAction)
			}
			if turnAction != nil {
				prefix = append(prefix, turnAction)
			}

			base := gs.withCurrentShip(shipAfterTurn)
			moves = append(moves, gs.generateAdvanceSequences(base, prefix, rank)...)
		}
	}

	return dedupMoves(moves)
}

// GetSimpleMoves is GetActions at rank 4, the default the spec's Produced
// API names (spec.md §6).
func (gs *GameState) GetSimpleMoves(maxCoal int) []Move {
	return gs.GetActions(4, maxCoal)
}

// tryAccelerate reports the ship state, the Accelerate action (nil when
// acc == 0, meaning no Accelerate action is issued and speed is taken
// as-is), and the coal it costs, or ok=false when acc is illegal.
func (gs *GameState) tryAccelerate(ship Ship, acc int) (Ship, Action, int, bool) {
	if acc == 0 {
		return ship, nil, 0, true
	}
	next, err := ship.AccelerateBy(acc, gs.shipOnSandbank(ship))
	if err != nil {
		return Ship{}, nil, 0, false
	}
	cost := absInt(acc) - ship.FreeAcc
	if cost < 0 {
		cost = 0
	}
	return next, Accelerate{Acc: acc}, cost, true
}

// tryTurn is tryAccelerate's counterpart for rotation.
func (gs *GameState) tryTurn(ship Ship, turns int) (Ship, Action, int, bool) {
	if turns == 0 {
		return ship, nil, 0, true
	}
	direction := ship.Direction.RotatedBy(turns)
	next, err := ship.TurnTo(direction, gs.shipOnSandbank(ship))
	if err != nil {
		return Ship{}, nil, 0, false
	}
	cost := absInt(turns) - ship.FreeTurns
	if cost < 0 {
		cost = 0
	}
	return next, Turn{Direction: direction}, cost, true
}

// generateAdvanceSequences depth-first searches every Advance/Push chain
// reachable from base that fully consumes the current ship's movement
// (spec.md §4.6 steps 3-4): cutting on Island/out-of-board via Advance's
// own FieldIsBlocked, branching into an Advance-and-Push alternative at
// each opponent-contact step, and stopping early (forfeiting the rest) on a
// Sandbank landing.
func (gs *GameState) generateAdvanceSequences(base *GameState, prefix []Action, rank int) []Move {
	var moves []Move

	var walk func(state *GameState, actions []Action, advances int)
	walk = func(state *GameState, actions []Action, advances int) {
		ship := state.CurrentShip()

		if ship.PushPending {
			for _, direction := range AllDirections() {
				next, err := Push{Direction: direction}.Perform(state)
				if err != nil {
					continue
				}
				walk(next, withAction(actions, Push{Direction: direction}), advances)
			}
			return
		}

		if ship.Movement == 0 {
			moves = append(moves, NewMove(actions...))
			return
		}
		if advances >= rank {
			return
		}

		// Several requested distances can halt at the same opponent-contact
		// step (Advance breaks the moment it reaches the opponent, whatever
		// distance was asked for) and land the ship in an identical
		// resulting state; seenResults keeps only the first such Advance,
		// so the generator doesn't emit effect-duplicate Moves that differ
		// only in the Distance nothing downstream can tell apart.
		seenResults := make(map[string]bool)
		for _, distance := range advanceCandidates(state, ship) {
			next, err := Advance{Distance: distance}.Perform(state)
			if err != nil {
				continue
			}
			key := shipResultKey(next.CurrentShip())
			if seenResults[key] {
				continue
			}
			seenResults[key] = true
			walk(next, withAction(actions, Advance{Distance: distance}), advances+1)
		}
	}

	walk(base, prefix, 0)
	return moves
}

// shipResultKey identifies a ship's outcome-relevant state after an action:
// two Advance candidates reaching this same key produce indistinguishable
// downstream Moves.
func shipResultKey(s Ship) string {
	return fmt.Sprintf("%d,%d,%d/%d/%d/%t/%t", s.Position.Q, s.Position.R, s.Position.S, s.Speed, s.Movement, s.PushPending, s.Stranded)
}

// withAction returns a new slice with action appended, never sharing a
// backing array with actions: walk explores multiple sibling branches
// (every push direction, every advance distance) from the same prefix, and
// an in-place append would let a later sibling's write corrupt an earlier
// sibling's already-recorded Move.
func withAction(actions []Action, action Action) []Action {
	next := make([]Action, len(actions)+1)
	copy(next, actions)
	next[len(actions)] = action
	return next
}

// advanceCandidates lists the distances worth trying from ship's current
// state: {-1, 1, 2} from a Sandbank (spec.md §4.4), otherwise every forward
// distance up to the ship's remaining movement (a safe upper bound, since
// each step costs at least one movement point; Advance.Perform rejects
// whatever doesn't actually fit).
func advanceCandidates(state *GameState, ship Ship) []int {
	if state.shipOnSandbank(ship) {
		return []int{-1, 1, 2}
	}
	candidates := make([]int, ship.Movement)
	for i := range candidates {
		candidates[i] = i + 1
	}
	return candidates
}

// dedupMoves removes duplicate Moves, preserving first-seen (and therefore
// accel x turn x advance lexicographic) order, per spec.md §5/§8. keys tracks
// every key already emitted; slices.Contains is what actually drives the
// dedup decision below, not a redundant guard around a map that already
// enforces uniqueness.
func dedupMoves(moves []Move) []Move {
	var keys []string
	result := make([]Move, 0, len(moves))
	for _, move := range moves {
		key := moveKey(move)
		if slices.Contains(keys, key) {
			continue
		}
		keys = append(keys, key)
		result = append(result, move)
	}
	return result
}

func moveKey(move Move) string {
	key := ""
	for _, action := range move.Actions {
		switch a := action.(type) {
		case Accelerate:
			key += fmt.Sprintf("A%d;", a.Acc)
		case Turn:
			key += fmt.Sprintf("T%d;", a.Direction)
		case Advance:
			key += fmt.Sprintf("D%d;", a.Distance)
		case Push:
			key += fmt.Sprintf("P%d;", a.Direction)
		}
	}
	return key
}
