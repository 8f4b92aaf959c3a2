package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

func (c *Client) MakeBooking(ctx context.Context, userId, eventId int64, numberOfTickets int) (model.Booking, error) {
	type bookingRequest struct {
		UserId          int64 `json:"userId"`
		EventId         int64 `json:"eventId"`
		NumberOfTickets int   `json:"numberOfTickets"`
	}

	var booking model.Booking
	body := bookingRequest{UserId: userId, EventId: eventId, NumberOfTickets: numberOfTickets}
	if err := c.do(ctx, http.MethodPost, "/booking/makeBooking", nil, body, &booking); err != nil {
		return model.Booking{}, fmt.Errorf("making booking: %w", err)
	}
	return booking, nil
}

func (c *Client) GetAllBookingsOfUser(ctx context.Context, userId int64) ([]model.Booking, error) {
	var bookings []model.Booking
	path := fmt.Sprintf("/booking/getAllBookingsOfUser/%v", userId)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &bookings); err != nil {
		return nil, fmt.Errorf("fetching bookings: %w", err)
	}
	return bookings, nil
}

func (c *Client) GetAllRefundBookingsByStatus(ctx context.Context, status workflow.State) ([]model.Booking, error) {
	var bookings []model.Booking
	query := url.Values{"status": {string(status)}}
	if err := c.do(ctx, http.MethodGet, "/booking/getAllRefundBookingsByStatus", query, nil, &bookings); err != nil {
		return nil, fmt.Errorf("fetching refund bookings: %w", err)
	}
	return bookings, nil
}

func (c *Client) GetRefundedBookings(ctx context.Context, userId int64) ([]model.Booking, error) {
	var bookings []model.Booking
	path := fmt.Sprintf("/booking/getRefundedBookings/%v", userId)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &bookings); err != nil {
		return nil, fmt.Errorf("fetching refunded bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus persists a refund transition. The target state is
// translated to its wire value ("refunded" travels as "refund approved").
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingId int64, status workflow.State) (string, error) {
	wireStatus, ok := workflow.WireStatusForState(status)
	if !ok {
		return "", fmt.Errorf("state %q has no wire status", status)
	}

	var ack messageEnvelope
	path := fmt.Sprintf("/booking/updateBookingStatus/%v", bookingId)
	query := url.Values{"status": {wireStatus}}
	if err := c.do(ctx, http.MethodPut, path, query, nil, &ack); err != nil {
		return "", fmt.Errorf("updating booking status: %w", err)
	}
	return ack.Message, nil
}
