// Package workflow is the single source of truth for the event-approval and
// booking-refund lifecycles. Every view and every handler that moves an entity
// between statuses consults the table here instead of carrying its own switch.
package workflow

import "fmt"

type Entity string

const (
	EntityEvent  Entity = "event"
	EntityRefund Entity = "refund"
)

type State string

// Event states.
const (
	StatePending  State = "pending"
	StateApproved State = "approved"
	StateDeclined State = "declined"
)

// Booking/refund states. Canonical strings are lower-case; the wire parameter
// "refund approved" maps to StateRefunded (see StateForWireStatus).
const (
	StateConfirmed       State = "confirmed"
	StateRefundRequested State = "refund requested"
	StateRefunded        State = "refunded"
	StateRefundCancelled State = "refund cancelled"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionDecline Action = "decline"
	ActionCancel  Action = "cancel"
	ActionRequest Action = "request"
)

// InvalidTransitionError reports an action that is not legal for the entity's
// current state. It never reaches the network: callers check before issuing
// any persistence call.
type InvalidTransitionError struct {
	Entity Entity
	State  State
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: no action %q for %s in state %q", e.Action, e.Entity, e.State)
}

var transitions = map[Entity]map[State]map[Action]State{
	EntityEvent: {
		StatePending:  {ActionApprove: StateApproved, ActionDecline: StateDeclined},
		StateApproved: {ActionDecline: StateDeclined},
		StateDeclined: {ActionApprove: StateApproved},
	},
	EntityRefund: {
		StateConfirmed:       {ActionRequest: StateRefundRequested},
		StateRefundRequested: {ActionApprove: StateRefunded, ActionCancel: StateRefundCancelled},
		StateRefunded:        {},
		StateRefundCancelled: {},
	},
}

// actionOrder fixes the rendering order of buttons so ActionsFor is
// deterministic regardless of map iteration.
var actionOrder = []Action{ActionApprove, ActionDecline, ActionCancel, ActionRequest}

// NextState returns the state produced by applying action to the entity's
// current state. Pure lookup, no side effects.
func NextState(entity Entity, current State, action Action) (State, error) {
	states, ok := transitions[entity]
	if !ok {
		return "", &InvalidTransitionError{Entity: entity, State: current, Action: action}
	}
	actions, ok := states[current]
	if !ok {
		return "", &InvalidTransitionError{Entity: entity, State: current, Action: action}
	}
	next, ok := actions[action]
	if !ok {
		return "", &InvalidTransitionError{Entity: entity, State: current, Action: action}
	}
	return next, nil
}

// CanTransition reports whether a direct transition from one state to another
// exists in the table. Handlers use it to validate a requested target status
// without knowing which action the caller pressed.
func CanTransition(entity Entity, from, to State) bool {
	for _, next := range transitions[entity][from] {
		if next == to {
			return true
		}
	}
	return false
}

// ActionsFor returns the actions legal in the given state, in a stable order.
// An unknown state yields an empty slice.
func ActionsFor(entity Entity, current State) []Action {
	available := transitions[entity][current]
	actions := make([]Action, 0, len(available))
	for _, action := range actionOrder {
		if _, ok := available[action]; ok {
			actions = append(actions, action)
		}
	}
	return actions
}

// IsTerminal reports whether the state has no outward transitions.
func IsTerminal(entity Entity, current State) bool {
	actions, ok := transitions[entity][current]
	return ok && len(actions) == 0
}

// KnownState reports whether the state belongs to the entity's enumerated set.
func KnownState(entity Entity, s State) bool {
	_, ok := transitions[entity][s]
	return ok
}

// States returns the entity's enumerated state set in a stable order.
func States(entity Entity) []State {
	switch entity {
	case EntityEvent:
		return []State{StatePending, StateApproved, StateDeclined}
	case EntityRefund:
		return []State{StateConfirmed, StateRefundRequested, StateRefunded, StateRefundCancelled}
	}
	return nil
}

// Refunded reports the value of the booking's refunded flag implied by a
// refund-workflow state: true only once the refund has been paid out.
func Refunded(s State) bool {
	return s == StateRefunded
}

// Wire status values carried in the updateBookingStatus query parameter. The
// backend contract says "refund approved" where the stored state is
// "refunded"; this is the only place that mapping lives.
const (
	WireRefundRequested = "refund requested"
	WireRefundApproved  = "refund approved"
	WireRefundCancelled = "refund cancelled"
)

// StateForWireStatus maps an updateBookingStatus wire value to its canonical
// state. The bool is false for unrecognised values.
func StateForWireStatus(status string) (State, bool) {
	switch status {
	case WireRefundRequested:
		return StateRefundRequested, true
	case WireRefundApproved:
		return StateRefunded, true
	case WireRefundCancelled:
		return StateRefundCancelled, true
	}
	return "", false
}

// WireStatusForState is the inverse mapping, used by clients when persisting a
// refund transition.
func WireStatusForState(s State) (string, bool) {
	switch s {
	case StateRefundRequested:
		return WireRefundRequested, true
	case StateRefunded:
		return WireRefundApproved, true
	case StateRefundCancelled:
		return WireRefundCancelled, true
	}
	return "", false
}
