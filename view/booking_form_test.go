package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

type fakeBookingAPI struct {
	calls   int
	booking model.Booking
}

func (f *fakeBookingAPI) MakeBooking(ctx context.Context, userId, eventId int64, numberOfTickets int) (model.Booking, error) {
	f.calls++
	booking := f.booking
	booking.UserId = userId
	booking.EventId = eventId
	booking.NumberOfTickets = numberOfTickets
	return booking, nil
}

func approvedEvent(seats int) model.Event {
	return model.Event{Id: 42, Name: "Go Conference", Status: workflow.StateApproved, Seats: seats, Price: 25}
}

func TestBookingFormCeilingIsTenForLargeEvents(t *testing.T) {
	form := NewBookingForm(&fakeBookingAPI{}, approvedEvent(20))

	assert.Equal(t, 10, form.MaxTickets())
	assert.Error(t, form.SetQuantity(11), "eleven tickets against a 20-seat event must be rejected")
	assert.Equal(t, 1, form.Quantity(), "rejected input leaves the quantity unchanged")
}

func TestBookingFormCeilingIsSeatsForSmallEvents(t *testing.T) {
	form := NewBookingForm(&fakeBookingAPI{}, approvedEvent(3))

	assert.Equal(t, 3, form.MaxTickets())
	assert.Error(t, form.SetQuantity(4))
	require.NoError(t, form.SetQuantity(3))
	assert.Equal(t, 3, form.Quantity())
}

func TestBookingFormIncrementSaturatesAtCeiling(t *testing.T) {
	form := NewBookingForm(&fakeBookingAPI{}, approvedEvent(2))

	form.Increment()
	form.Increment()
	form.Increment()
	assert.Equal(t, 2, form.Quantity())

	form.Decrement()
	form.Decrement()
	form.Decrement()
	assert.Equal(t, 1, form.Quantity())
}

func TestBookingFormTotalPrice(t *testing.T) {
	form := NewBookingForm(&fakeBookingAPI{}, approvedEvent(20))
	require.NoError(t, form.SetQuantity(4))

	assert.Equal(t, 100.0, form.TotalPrice())
}

func TestBookingFormOverCeilingNeverReachesTheWire(t *testing.T) {
	api := &fakeBookingAPI{}
	form := NewBookingForm(api, approvedEvent(20))
	form.quantity = 11 // bypass the setter to simulate stale form state

	_, err := form.Submit(context.Background(), 5)
	require.Error(t, err)
	assert.Zero(t, api.calls, "over-ceiling booking must be rejected before any call")
}

func TestBookingFormSubmit(t *testing.T) {
	api := &fakeBookingAPI{booking: model.Booking{BookingId: 7, Status: workflow.StateConfirmed}}
	form := NewBookingForm(api, approvedEvent(20))
	require.NoError(t, form.SetQuantity(2))

	booking, err := form.Submit(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 1, api.calls)
	assert.Equal(t, int64(5), booking.UserId)
	assert.Equal(t, int64(42), booking.EventId)
	assert.Equal(t, 2, booking.NumberOfTickets)
	assert.Equal(t, workflow.StateConfirmed, booking.Status)
}
