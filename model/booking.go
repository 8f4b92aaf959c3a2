package model

import "ticketing-webapp/workflow"

// MaxTicketsPerBooking is the per-booking ceiling, enforced client-side before
// any request is issued and re-validated server-side.
const MaxTicketsPerBooking = 10

type Booking struct {
	BookingId       int64          `json:"bookingId" bson:"_id"`
	EventId         int64          `json:"eventId" bson:"event_id"`
	EventName       string         `json:"eventName" bson:"event_name"`
	EventDate       string         `json:"eventDate" bson:"event_date"`
	EventTime       string         `json:"eventTime" bson:"event_time"`
	NumberOfTickets int            `json:"numberOfTickets" bson:"number_of_tickets"`
	UserId          int64          `json:"userId" bson:"user_id"`
	Status          workflow.State `json:"status" bson:"status"`
	Refunded        bool           `json:"refunded" bson:"refunded"`
	Reference       string         `json:"reference" bson:"reference"`
	BookedAt        string         `json:"bookedAt" bson:"booked_at"`
}

// MaxTicketsFor returns the booking ceiling for an event with the given
// remaining seats: min(seats, MaxTicketsPerBooking).
func MaxTicketsFor(seats int) int {
	if seats < MaxTicketsPerBooking {
		return seats
	}
	return MaxTicketsPerBooking
}
