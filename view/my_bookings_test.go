package view

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

type fakeBookingsAPI struct {
	mu sync.Mutex

	bookings []model.Booking
	updates  []bookingUpdate
}

func (f *fakeBookingsAPI) GetAllBookingsOfUser(ctx context.Context, userId int64) ([]model.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingsAPI) UpdateBookingStatus(ctx context.Context, bookingId int64, status workflow.State) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, bookingUpdate{bookingId: bookingId, status: status})
	return "updated", nil
}

func TestMyBookingsRequestRefund(t *testing.T) {
	confirmed := requestedBooking(1)
	confirmed.Status = workflow.StateConfirmed

	api := &fakeBookingsAPI{bookings: []model.Booking{confirmed}}
	v := NewMyBookingsView(api, 5)
	require.NoError(t, v.Load(context.Background()))

	assert.True(t, v.CanRequestRefund(1))
	require.NoError(t, v.RequestRefund(context.Background(), 1))

	booking := v.Bookings(BookingFilter{})[0]
	assert.Equal(t, workflow.StateRefundRequested, booking.Status)
	require.Len(t, api.updates, 1)
	assert.Equal(t, bookingUpdate{bookingId: 1, status: workflow.StateRefundRequested}, api.updates[0])
	assert.False(t, v.CanRequestRefund(1), "a requested booking cannot be requested again")
}

func TestMyBookingsRefundedBookingIsNotEligible(t *testing.T) {
	refunded := requestedBooking(1)
	refunded.Status = workflow.StateRefunded
	refunded.Refunded = true

	api := &fakeBookingsAPI{bookings: []model.Booking{refunded}}
	v := NewMyBookingsView(api, 5)
	require.NoError(t, v.Load(context.Background()))

	assert.False(t, v.CanRequestRefund(1))
	require.NoError(t, v.RequestRefund(context.Background(), 1))
	assert.Empty(t, api.updates, "refunded bookings never produce a new refund request")
}

func TestMyBookingsFilters(t *testing.T) {
	confirmed := requestedBooking(1)
	confirmed.Status = workflow.StateConfirmed
	requested := requestedBooking(2)
	refunded := requestedBooking(3)
	refunded.Status = workflow.StateRefunded
	refunded.Refunded = true

	api := &fakeBookingsAPI{bookings: []model.Booking{confirmed, requested, refunded}}
	v := NewMyBookingsView(api, 5)
	require.NoError(t, v.Load(context.Background()))

	assert.Equal(t, 3, v.Count())
	assert.Equal(t, 1, v.RefundedCount())
	assert.Len(t, v.Bookings(BookingFilter{}), 3)
	assert.Len(t, v.Bookings(BookingFilter{Status: workflow.StateRefundRequested}), 1)
	assert.Len(t, v.Bookings(BookingFilter{RefundedOnly: true}), 1)
}

func TestMyBookingsUnknownIdIsNoOp(t *testing.T) {
	api := &fakeBookingsAPI{}
	v := NewMyBookingsView(api, 5)
	require.NoError(t, v.Load(context.Background()))

	require.NoError(t, v.RequestRefund(context.Background(), 999))
	assert.Empty(t, api.updates)
}
