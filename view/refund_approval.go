package view

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

// RefundsAPI is the slice of the backend client the refund approval screen
// needs.
type RefundsAPI interface {
	GetAllRefundBookingsByStatus(ctx context.Context, status workflow.State) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingId int64, status workflow.State) (string, error)
}

// RefundApprovalView lists refund requests with a requested status and lets an
// admin approve or cancel each one.
type RefundApprovalView struct {
	api RefundsAPI
	log *logrus.Entry

	mu       sync.Mutex
	closed   bool
	status   workflow.State
	bookings []model.Booking
	inflight map[int64]bool
	loading  bool
	loadErr  error
	notice   string
}

func NewRefundApprovalView(api RefundsAPI) *RefundApprovalView {
	return &RefundApprovalView{
		api:      api,
		log:      logrus.WithField("view", "refund-approval"),
		inflight: map[int64]bool{},
	}
}

// Load fetches the refund bookings with the given status. Same contract as
// the event view: failures keep the previous list and stay retryable.
func (v *RefundApprovalView) Load(ctx context.Context, status workflow.State) error {
	v.mu.Lock()
	v.status = status
	v.loading = true
	v.mu.Unlock()

	bookings, err := v.api.GetAllRefundBookingsByStatus(ctx, status)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if v.closed || ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		v.log.WithError(err).Warn("cannot load refund bookings")
		v.loadErr = err
		return err
	}
	v.loadErr = nil
	v.bookings = bookings
	return nil
}

func (v *RefundApprovalView) Reload(ctx context.Context) error {
	v.mu.Lock()
	status := v.status
	v.mu.Unlock()
	return v.Load(ctx, status)
}

// ApplyAction moves the booking through the refund workflow. Approve lands on
// "refunded" and sets the refunded flag, cancel lands on "refund cancelled"
// and clears it. Contract otherwise identical to the event view: silent no-op
// for unknown ids and illegal actions, optimistic update with rollback,
// per-id double-submit guard.
func (v *RefundApprovalView) ApplyAction(ctx context.Context, bookingId int64, action workflow.Action) error {
	v.mu.Lock()

	idx := -1
	for i := range v.bookings {
		if v.bookings[i].BookingId == bookingId {
			idx = i
			break
		}
	}
	if idx == -1 {
		v.mu.Unlock()
		v.log.WithField("bookingId", bookingId).Debug("action on booking not in the loaded list")
		return nil
	}

	if v.inflight[bookingId] {
		v.mu.Unlock()
		v.log.WithField("bookingId", bookingId).Debug("transition already in flight, dropping")
		return nil
	}

	previousStatus := v.bookings[idx].Status
	previousRefunded := v.bookings[idx].Refunded
	next, err := workflow.NextState(workflow.EntityRefund, previousStatus, action)
	if err != nil {
		v.mu.Unlock()
		v.log.WithError(err).WithField("bookingId", bookingId).Debug("action not legal for current status")
		return nil
	}

	v.bookings[idx].Status = next
	v.bookings[idx].Refunded = workflow.Refunded(next)
	v.inflight[bookingId] = true
	v.mu.Unlock()

	message, err := v.api.UpdateBookingStatus(ctx, bookingId, next)

	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.inflight, bookingId)
	if err != nil {
		for i := range v.bookings {
			if v.bookings[i].BookingId == bookingId {
				v.bookings[i].Status = previousStatus
				v.bookings[i].Refunded = previousRefunded
				break
			}
		}
		v.log.WithError(err).WithField("bookingId", bookingId).Warn("refund transition rejected")
		v.loadErr = err
		return err
	}
	v.notice = message
	return nil
}

// Actions returns the workflow actions legal for the booking's current
// status. Terminal refund states yield an empty set.
func (v *RefundApprovalView) Actions(bookingId int64) []workflow.Action {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.bookings {
		if v.bookings[i].BookingId == bookingId {
			return workflow.ActionsFor(workflow.EntityRefund, v.bookings[i].Status)
		}
	}
	return nil
}

// Bookings returns a copy of the cached list.
func (v *RefundApprovalView) Bookings() []model.Booking {
	v.mu.Lock()
	defer v.mu.Unlock()
	bookings := make([]model.Booking, len(v.bookings))
	copy(bookings, v.bookings)
	return bookings
}

// Count is the header projection over the cached list.
func (v *RefundApprovalView) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.bookings)
}

func (v *RefundApprovalView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *RefundApprovalView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadErr
}

func (v *RefundApprovalView) Notice() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notice
}

func (v *RefundApprovalView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
