package view

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

// BookingsAPI is the slice of the backend client the customer's bookings
// screen needs.
type BookingsAPI interface {
	GetAllBookingsOfUser(ctx context.Context, userId int64) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingId int64, status workflow.State) (string, error)
}

// BookingFilter narrows the cached list. Zero values mean "all".
type BookingFilter struct {
	Status       workflow.State
	RefundedOnly bool
}

// MyBookingsView lists a customer's bookings and lets them request a refund
// for a booking still in the confirmed state.
type MyBookingsView struct {
	api    BookingsAPI
	userId int64
	log    *logrus.Entry

	mu       sync.Mutex
	closed   bool
	bookings []model.Booking
	inflight map[int64]bool
	loading  bool
	loadErr  error
	notice   string
}

func NewMyBookingsView(api BookingsAPI, userId int64) *MyBookingsView {
	return &MyBookingsView{
		api:      api,
		userId:   userId,
		log:      logrus.WithField("view", "my-bookings").WithField("userId", userId),
		inflight: map[int64]bool{},
	}
}

func (v *MyBookingsView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	bookings, err := v.api.GetAllBookingsOfUser(ctx, v.userId)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if v.closed || ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		v.log.WithError(err).Warn("cannot load bookings")
		v.loadErr = err
		return err
	}
	v.loadErr = nil
	v.bookings = bookings
	return nil
}

// RequestRefund is the customer's entry into the refund workflow. A booking
// that is already refunded, already requested, or cancelled is a silent
// no-op, the same contract as the admin views.
func (v *MyBookingsView) RequestRefund(ctx context.Context, bookingId int64) error {
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
		v.log.WithField("bookingId", bookingId).Debug("refund request for booking not in the loaded list")
		return nil
	}

	if v.inflight[bookingId] {
		v.mu.Unlock()
		v.log.WithField("bookingId", bookingId).Debug("refund request already in flight, dropping")
		return nil
	}

	previous := v.bookings[idx].Status
	next, err := workflow.NextState(workflow.EntityRefund, previous, workflow.ActionRequest)
	if err != nil {
		v.mu.Unlock()
		v.log.WithError(err).WithField("bookingId", bookingId).Debug("booking is not eligible for a refund request")
		return nil
	}

	v.bookings[idx].Status = next
	v.inflight[bookingId] = true
	v.mu.Unlock()

	message, err := v.api.UpdateBookingStatus(ctx, bookingId, next)

	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.inflight, bookingId)
	if err != nil {
		for i := range v.bookings {
			if v.bookings[i].BookingId == bookingId {
				v.bookings[i].Status = previous
				break
			}
		}
		v.log.WithError(err).WithField("bookingId", bookingId).Warn("refund request rejected")
		v.loadErr = err
		return err
	}
	v.notice = message
	return nil
}

// CanRequestRefund reports whether the refund-request button is rendered for
// the booking.
func (v *MyBookingsView) CanRequestRefund(bookingId int64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.bookings {
		if v.bookings[i].BookingId == bookingId {
			_, err := workflow.NextState(workflow.EntityRefund, v.bookings[i].Status, workflow.ActionRequest)
			return err == nil
		}
	}
	return false
}

// Bookings returns a copy of the cached list narrowed by the filter.
func (v *MyBookingsView) Bookings(filter BookingFilter) []model.Booking {
	v.mu.Lock()
	defer v.mu.Unlock()
	bookings := make([]model.Booking, 0, len(v.bookings))
	for _, booking := range v.bookings {
		if filter.Status != "" && booking.Status != filter.Status {
			continue
		}
		if filter.RefundedOnly && !booking.Refunded {
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings
}

func (v *MyBookingsView) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.bookings)
}

// RefundedCount is the dashboard projection over the refunded flag.
func (v *MyBookingsView) RefundedCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	count := 0
	for _, booking := range v.bookings {
		if booking.Refunded {
			count++
		}
	}
	return count
}

func (v *MyBookingsView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *MyBookingsView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadErr
}

func (v *MyBookingsView) Notice() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notice
}

func (v *MyBookingsView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
