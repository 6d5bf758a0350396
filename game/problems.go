package game

// The four problem taxonomies are typed, enumerated, non-exceptional error
// values (spec.md §7): each action's Perform returns either a new GameState
// or one of its taxonomy's values, never both, never a panic. A problem
// value carries its own deterministic message and needs no wrapping.

// AccelerationProblem is returned by Accelerate.Perform.
type AccelerationProblem string

func (p AccelerationProblem) Error() string { return string(p) }

const (
	ZeroAcc          AccelerationProblem = "acceleration must be non-zero"
	AboveMaxSpeed    AccelerationProblem = "resulting speed would exceed the maximum of 6"
	BelowMinSpeed    AccelerationProblem = "resulting speed would fall below the minimum of 1"
	InsufficientCoal AccelerationProblem = "insufficient coal to fund the requested acceleration"
	OnSandbank       AccelerationProblem = "a ship stranded on a sandbank cannot accelerate"
)

// AdvanceProblem is returned by Advance.Perform, and reused by GameState for
// the Move-level checks described in spec.md §4.5/§7 (unconsumed movement
// points, unresolved push obligation) and for an Accelerate that is not the
// Move's first action.
type AdvanceProblem string

func (p AdvanceProblem) Error() string { return string(p) }

const (
	MovementPointsMissing AdvanceProblem = "not enough movement points remain for this advance"
	InsufficientPush      AdvanceProblem = "a push obligation from an earlier advance was never fulfilled"
	InvalidDistance       AdvanceProblem = "the requested advance distance is not legal from here"
	ShipAlreadyInTarget   AdvanceProblem = "the opponent's ship already occupies the requested destination"
	FieldIsBlocked        AdvanceProblem = "the advance path is blocked by an island or another ship"
	MoveEndOnSandbank     AdvanceProblem = "the ship's movement already ended this turn on a sandbank"
)

// PushProblem is returned by Push.Perform. Its movement-points variant is
// named distinctly from AdvanceProblem's (PushMovementPointsMissing vs
// MovementPointsMissing) since Go const identifiers share one package
// namespace regardless of their named type.
type PushProblem string

func (p PushProblem) Error() string { return string(p) }

const (
	PushMovementPointsMissing PushProblem = "not enough movement points remain to push"
	SameFieldPush             PushProblem = "pushing requires an opponent ship on the same field"
	InvalidFieldPush          PushProblem = "the push target field does not exist on the board"
	BlockedFieldPush          PushProblem = "the push target field is an island"
	SandbankPush              PushProblem = "a ship stranded on a sandbank cannot push"
	BackwardPushingRestricted PushProblem = "a ship cannot push directly against its own heading"
)

// TurnProblem is returned by Turn.Perform.
type TurnProblem string

func (p TurnProblem) Error() string { return string(p) }

const (
	RotationOnSandbankNotAllowed TurnProblem = "a ship stranded on a sandbank cannot rotate"
	NotEnoughCoalForRotation     TurnProblem = "insufficient coal to fund the requested rotation"
	RotationOnNonExistingField   TurnProblem = "the ship's current field does not exist on the board"
)
