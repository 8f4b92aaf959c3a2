// Package view holds the stateful controllers behind each screen: a cached
// list from the last successful fetch plus the actions the screen offers.
// Every status transition is validated against the workflow table before any
// request leaves the process.
package view

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

// EventsAPI is the slice of the backend client the event approval screen
// needs.
type EventsAPI interface {
	GetEventsByStatus(ctx context.Context, status workflow.State) ([]model.Event, error)
	UpdateEventStatus(ctx context.Context, eventId int64, status workflow.State) (string, error)
}

// EventApprovalView lists events with a requested status and lets an admin
// move each one through the event workflow.
type EventApprovalView struct {
	api EventsAPI
	log *logrus.Entry

	mu       sync.Mutex
	closed   bool
	status   workflow.State
	events   []model.Event
	inflight map[int64]bool
	loading  bool
	loadErr  error
	notice   string
}

func NewEventApprovalView(api EventsAPI) *EventApprovalView {
	return &EventApprovalView{
		api:      api,
		log:      logrus.WithField("view", "event-approval"),
		inflight: map[int64]bool{},
	}
}

// Load fetches the events with the given status and replaces the cached list.
// On failure the previous list is left untouched so a transient error does not
// blank the screen; the error is kept for a retry affordance.
func (v *EventApprovalView) Load(ctx context.Context, status workflow.State) error {
	v.mu.Lock()
	v.status = status
	v.loading = true
	v.mu.Unlock()

	events, err := v.api.GetEventsByStatus(ctx, status)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if v.closed || ctx.Err() != nil {
		// the screen is gone, drop the result
		return ctx.Err()
	}
	if err != nil {
		v.log.WithError(err).Warn("cannot load events")
		v.loadErr = err
		return err
	}
	v.loadErr = nil
	v.events = events
	return nil
}

// Reload retries the last requested status.
func (v *EventApprovalView) Reload(ctx context.Context) error {
	v.mu.Lock()
	status := v.status
	v.mu.Unlock()
	return v.Load(ctx, status)
}

// ApplyAction moves the event through the workflow. An unknown id or an
// action illegal for the event's current status is a silent no-op: the button
// should never have been rendered, so nothing goes over the wire. A legal
// action updates the cached row optimistically, persists the transition, and
// rolls the row back if the server rejects it. A second action on the same id
// while one is still in flight is dropped.
func (v *EventApprovalView) ApplyAction(ctx context.Context, eventId int64, action workflow.Action) error {
	v.mu.Lock()

	idx := -1
	for i := range v.events {
		if v.events[i].Id == eventId {
			idx = i
			break
		}
	}
	if idx == -1 {
		v.mu.Unlock()
		v.log.WithField("eventId", eventId).Debug("action on event not in the loaded list")
		return nil
	}

	if v.inflight[eventId] {
		v.mu.Unlock()
		v.log.WithField("eventId", eventId).Debug("transition already in flight, dropping")
		return nil
	}

	previous := v.events[idx].Status
	next, err := workflow.NextState(workflow.EntityEvent, previous, action)
	if err != nil {
		v.mu.Unlock()
		v.log.WithError(err).WithField("eventId", eventId).Debug("action not legal for current status")
		return nil
	}

	v.events[idx].Status = next
	v.inflight[eventId] = true
	v.mu.Unlock()

	message, err := v.api.UpdateEventStatus(ctx, eventId, next)

	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.inflight, eventId)
	if err != nil {
		// restore the snapshot, then surface the server's message
		for i := range v.events {
			if v.events[i].Id == eventId {
				v.events[i].Status = previous
				break
			}
		}
		v.log.WithError(err).WithField("eventId", eventId).Warn("event transition rejected")
		v.loadErr = err
		return err
	}
	v.notice = message
	return nil
}

// Actions returns the workflow actions legal for the event's current status,
// for per-row button rendering.
func (v *EventApprovalView) Actions(eventId int64) []workflow.Action {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.events {
		if v.events[i].Id == eventId {
			return workflow.ActionsFor(workflow.EntityEvent, v.events[i].Status)
		}
	}
	return nil
}

// Events returns a copy of the cached list.
func (v *EventApprovalView) Events() []model.Event {
	v.mu.Lock()
	defer v.mu.Unlock()
	events := make([]model.Event, len(v.events))
	copy(events, v.events)
	return events
}

// Count is the header projection over the cached list.
func (v *EventApprovalView) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.events)
}

func (v *EventApprovalView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Err returns the last load or transition failure, nil after a successful
// reload.
func (v *EventApprovalView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadErr
}

// Notice returns the last server acknowledgement message.
func (v *EventApprovalView) Notice() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notice
}

// Close marks the view torn down; results of in-flight loads are discarded.
func (v *EventApprovalView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
