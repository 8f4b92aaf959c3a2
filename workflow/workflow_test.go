package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionTest struct {
	description string
	entity      Entity
	current     State
	action      Action
	expected    State
	expectError bool
}

func TestNextState(t *testing.T) {
	tests := []transitionTest{
		{
			description: "approve pending event",
			entity:      EntityEvent,
			current:     StatePending,
			action:      ActionApprove,
			expected:    StateApproved,
		},
		{
			description: "decline pending event",
			entity:      EntityEvent,
			current:     StatePending,
			action:      ActionDecline,
			expected:    StateDeclined,
		},
		{
			description: "decline approved event",
			entity:      EntityEvent,
			current:     StateApproved,
			action:      ActionDecline,
			expected:    StateDeclined,
		},
		{
			description: "approve declined event",
			entity:      EntityEvent,
			current:     StateDeclined,
			action:      ActionApprove,
			expected:    StateApproved,
		},
		{
			description: "approve an already approved event is rejected",
			entity:      EntityEvent,
			current:     StateApproved,
			action:      ActionApprove,
			expectError: true,
		},
		{
			description: "decline an already declined event is rejected",
			entity:      EntityEvent,
			current:     StateDeclined,
			action:      ActionDecline,
			expectError: true,
		},
		{
			description: "request refund for confirmed booking",
			entity:      EntityRefund,
			current:     StateConfirmed,
			action:      ActionRequest,
			expected:    StateRefundRequested,
		},
		{
			description: "approve requested refund",
			entity:      EntityRefund,
			current:     StateRefundRequested,
			action:      ActionApprove,
			expected:    StateRefunded,
		},
		{
			description: "cancel requested refund",
			entity:      EntityRefund,
			current:     StateRefundRequested,
			action:      ActionCancel,
			expected:    StateRefundCancelled,
		},
		{
			description: "refunded booking cannot be re-requested",
			entity:      EntityRefund,
			current:     StateRefunded,
			action:      ActionRequest,
			expectError: true,
		},
		{
			description: "cancelled refund cannot be re-requested",
			entity:      EntityRefund,
			current:     StateRefundCancelled,
			action:      ActionRequest,
			expectError: true,
		},
		{
			description: "unknown entity",
			entity:      Entity("venue"),
			current:     StatePending,
			action:      ActionApprove,
			expectError: true,
		},
		{
			description: "unknown state",
			entity:      EntityEvent,
			current:     State("archived"),
			action:      ActionApprove,
			expectError: true,
		},
	}

	for _, test := range tests {
		next, err := NextState(test.entity, test.current, test.action)
		if test.expectError {
			require.Error(t, err, test.description)
			var invalid *InvalidTransitionError
			assert.ErrorAs(t, err, &invalid, test.description)
			continue
		}
		require.NoError(t, err, test.description)
		assert.Equal(t, test.expected, next, test.description)
	}
}

func TestNextStateIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		next, err := NextState(EntityEvent, StatePending, ActionApprove)
		require.NoError(t, err)
		assert.Equal(t, StateApproved, next)
	}
}

func TestEveryActionNotInTableFails(t *testing.T) {
	actions := []Action{ActionApprove, ActionDecline, ActionCancel, ActionRequest}
	for _, entity := range []Entity{EntityEvent, EntityRefund} {
		for _, state := range States(entity) {
			legal := map[Action]bool{}
			for _, a := range ActionsFor(entity, state) {
				legal[a] = true
			}
			for _, action := range actions {
				next, err := NextState(entity, state, action)
				if legal[action] {
					require.NoError(t, err)
					assert.NotEqual(t, state, next,
						"no self-loop expected for %s %s %s", entity, state, action)
					continue
				}
				assert.Error(t, err, "%s %s %s should be invalid", entity, state, action)
			}
		}
	}
}

func TestNoEventStateIsTerminal(t *testing.T) {
	for _, state := range States(EntityEvent) {
		assert.NotEmpty(t, ActionsFor(EntityEvent, state), "event state %q must offer an action", state)
		assert.False(t, IsTerminal(EntityEvent, state))
	}
}

func TestRefundTerminalStates(t *testing.T) {
	assert.Empty(t, ActionsFor(EntityRefund, StateRefunded))
	assert.Empty(t, ActionsFor(EntityRefund, StateRefundCancelled))
	assert.True(t, IsTerminal(EntityRefund, StateRefunded))
	assert.True(t, IsTerminal(EntityRefund, StateRefundCancelled))
	assert.False(t, IsTerminal(EntityRefund, StateRefundRequested))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(EntityEvent, StatePending, StateApproved))
	assert.True(t, CanTransition(EntityEvent, StateApproved, StateDeclined))
	assert.True(t, CanTransition(EntityEvent, StateDeclined, StateApproved))
	assert.False(t, CanTransition(EntityEvent, StateApproved, StateApproved))
	assert.False(t, CanTransition(EntityEvent, StatePending, StatePending))

	assert.True(t, CanTransition(EntityRefund, StateRefundRequested, StateRefunded))
	assert.True(t, CanTransition(EntityRefund, StateRefundRequested, StateRefundCancelled))
	assert.False(t, CanTransition(EntityRefund, StateRefunded, StateRefundRequested))
	assert.False(t, CanTransition(EntityRefund, StateRefundCancelled, StateRefundRequested))
}

func TestActionsForOrderIsStable(t *testing.T) {
	assert.Equal(t, []Action{ActionApprove, ActionDecline}, ActionsFor(EntityEvent, StatePending))
	assert.Equal(t, []Action{ActionApprove, ActionCancel}, ActionsFor(EntityRefund, StateRefundRequested))
	assert.Empty(t, ActionsFor(EntityEvent, State("archived")))
}

func TestRefundedFlag(t *testing.T) {
	assert.True(t, Refunded(StateRefunded))
	assert.False(t, Refunded(StateRefundCancelled))
	assert.False(t, Refunded(StateRefundRequested))
	assert.False(t, Refunded(StateConfirmed))
}

func TestWireStatusMapping(t *testing.T) {
	state, ok := StateForWireStatus(WireRefundApproved)
	require.True(t, ok)
	assert.Equal(t, StateRefunded, state)

	state, ok = StateForWireStatus(WireRefundCancelled)
	require.True(t, ok)
	assert.Equal(t, StateRefundCancelled, state)

	state, ok = StateForWireStatus(WireRefundRequested)
	require.True(t, ok)
	assert.Equal(t, StateRefundRequested, state)

	_, ok = StateForWireStatus("Not Refunded")
	assert.False(t, ok)

	for _, s := range []State{StateRefundRequested, StateRefunded, StateRefundCancelled} {
		wire, ok := WireStatusForState(s)
		require.True(t, ok)
		roundTripped, ok := StateForWireStatus(wire)
		require.True(t, ok)
		assert.Equal(t, s, roundTripped)
	}
}

func TestKnownState(t *testing.T) {
	assert.True(t, KnownState(EntityEvent, StatePending))
	assert.False(t, KnownState(EntityEvent, StateRefunded))
	assert.True(t, KnownState(EntityRefund, StateConfirmed))
	assert.False(t, KnownState(EntityRefund, State("Refunded")))
}
