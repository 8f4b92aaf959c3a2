package view

import (
	"context"
	"fmt"

	"ticketing-webapp/model"
)

// BookingAPI is the slice of the backend client the booking form needs.
type BookingAPI interface {
	MakeBooking(ctx context.Context, userId, eventId int64, numberOfTickets int) (model.Booking, error)
}

// BookingForm is the ticket-quantity picker for a single event. The quantity
// is clamped to min(event.seats, 10) locally, so an over-ceiling booking
// never reaches the wire.
type BookingForm struct {
	api      BookingAPI
	event    model.Event
	quantity int
}

func NewBookingForm(api BookingAPI, event model.Event) *BookingForm {
	return &BookingForm{api: api, event: event, quantity: 1}
}

// MaxTickets is the ceiling for this event.
func (f *BookingForm) MaxTickets() int {
	return model.MaxTicketsFor(f.event.Seats)
}

func (f *BookingForm) Quantity() int {
	return f.quantity
}

// SetQuantity rejects values outside 1..MaxTickets, leaving the current
// quantity unchanged.
func (f *BookingForm) SetQuantity(quantity int) error {
	if quantity < 1 || quantity > f.MaxTickets() {
		return fmt.Errorf("number of tickets must be between 1 and %v", f.MaxTickets())
	}
	f.quantity = quantity
	return nil
}

// Increment bumps the quantity, saturating at the ceiling.
func (f *BookingForm) Increment() {
	if f.quantity < f.MaxTickets() {
		f.quantity++
	}
}

// Decrement lowers the quantity, saturating at one ticket.
func (f *BookingForm) Decrement() {
	if f.quantity > 1 {
		f.quantity--
	}
}

func (f *BookingForm) TotalPrice() float64 {
	return float64(f.quantity) * f.event.Price
}

// Submit re-checks the ceiling and books the tickets. The check fails before
// any request is issued.
func (f *BookingForm) Submit(ctx context.Context, userId int64) (model.Booking, error) {
	if f.quantity < 1 || f.quantity > f.MaxTickets() {
		return model.Booking{}, fmt.Errorf("number of tickets must be between 1 and %v", f.MaxTickets())
	}
	return f.api.MakeBooking(ctx, userId, f.event.Id, f.quantity)
}
