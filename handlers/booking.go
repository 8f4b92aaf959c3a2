package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lithammer/shortuuid/v3"
	qrcode "github.com/skip2/go-qrcode"

	"ticketing-webapp/database"
	"ticketing-webapp/httperr"
	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

func MakeBooking(c *fiber.Ctx) error {
	type BookingRequest struct {
		UserId          int64 `json:"userId"`
		EventId         int64 `json:"eventId"`
		NumberOfTickets int   `json:"numberOfTickets"`
	}

	req := new(BookingRequest)
	if err := c.BodyParser(req); err != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for booking parameters: %v", err))
	}

	event, found, dbErr := database.GetEvent(req.EventId)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if !found {
		return httperr.RaiseNotFoundError(c, fmt.Sprintf("event %v not found", req.EventId))
	}

	if event.Status != workflow.StateApproved {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("event %v is not open for booking", event.Id))
	}

	if validationErr := ticketsNumberValidation(req.NumberOfTickets, event.Seats); validationErr != nil {
		return httperr.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for booking parameters: %v", validationErr))
	}

	bookingId, idErr := database.NextSequence("bookings")
	if idErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", idErr))
	}

	newBooking := model.Booking{
		BookingId:       bookingId,
		EventId:         event.Id,
		EventName:       event.Name,
		EventDate:       event.Date,
		EventTime:       event.Time,
		NumberOfTickets: req.NumberOfTickets,
		UserId:          req.UserId,
		Status:          workflow.StateConfirmed,
		Refunded:        false,
		Reference:       shortuuid.New(),
		BookedAt:        time.Now().Format(time.RFC3339),
	}

	if writeErr := database.InsertBooking(newBooking); writeErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}
	if seatsErr := database.UpdateEventSeats(event.Id, -req.NumberOfTickets); seatsErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", seatsErr))
	}

	return c.JSON(newBooking)
}

func GetAllBookingsOfUser(c *fiber.Ctx) error {
	userId, err := paramId(c, "id")
	if err != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unacceptable user id: %v", err))
	}

	bookings, dbErr := database.GetBookingsByUser(userId)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	return c.JSON(bookings)
}

func GetAllRefundBookingsByStatus(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return httperr.RaisePermissionsError(c, "only admin can perform this operation")
	}

	status, ok := workflow.StateForWireStatus(c.Query("status"))
	if !ok {
		// the views also pass canonical states straight through
		status = workflow.State(c.Query("status"))
		if !workflow.KnownState(workflow.EntityRefund, status) {
			return httperr.RaiseBadRequestError(c, fmt.Sprintf("unknown refund status %q", c.Query("status")))
		}
	}

	bookings, dbErr := database.GetRefundBookingsByStatus(status)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	return c.JSON(bookings)
}

func GetRefundedBookings(c *fiber.Ctx) error {
	userId, err := paramId(c, "id")
	if err != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unacceptable user id: %v", err))
	}

	bookings, dbErr := database.GetRefundedBookingsByUser(userId)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	return c.JSON(bookings)
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingId, err := paramId(c, "bookingId")
	if err != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking id: %v", err))
	}

	target, ok := workflow.StateForWireStatus(c.Query("status"))
	if !ok {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unknown refund status %q", c.Query("status")))
	}

	// refund decisions are the admin's; the refund request itself is the
	// customer's own transition
	if target != workflow.StateRefundRequested && !isAdminRole(c) {
		return httperr.RaisePermissionsError(c, "only admin can perform this operation")
	}

	booking, found, dbErr := database.GetBooking(bookingId)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if !found {
		return httperr.RaiseNotFoundError(c, fmt.Sprintf("booking %v not found", bookingId))
	}

	if !workflow.CanTransition(workflow.EntityRefund, booking.Status, target) {
		return httperr.RaiseBadRequestError(c,
			fmt.Sprintf("cannot move booking from %q to %q", booking.Status, target))
	}

	if updateErr := database.UpdateBookingStatus(bookingId, target, workflow.Refunded(target)); updateErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	// a paid-out refund returns the tickets to the event's pool
	if target == workflow.StateRefunded {
		if seatsErr := database.UpdateEventSeats(booking.EventId, booking.NumberOfTickets); seatsErr != nil {
			return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", seatsErr))
		}
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("booking %v is now %v", bookingId, target)})
}

// GetBookingTicket renders the booking reference as a QR code PNG.
func GetBookingTicket(c *fiber.Ctx) error {
	bookingId, err := paramId(c, "bookingId")
	if err != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking id: %v", err))
	}

	booking, found, dbErr := database.GetBooking(bookingId)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if !found {
		return httperr.RaiseNotFoundError(c, fmt.Sprintf("booking %v not found", bookingId))
	}

	png, qrErr := qrcode.Encode(
		fmt.Sprintf("booking:%v reference:%v tickets:%v", booking.BookingId, booking.Reference, booking.NumberOfTickets),
		qrcode.Medium, 256)
	if qrErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("cannot render ticket: %v", qrErr))
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func ticketsNumberValidation(ticketsToBook int, remainingSeats int) error {
	if ticketsToBook <= 0 {
		return errors.New("cannot book 0 tickets")
	}
	maxTickets := model.MaxTicketsFor(remainingSeats)
	if maxTickets == 0 {
		return errors.New("no seats left for the event")
	}
	if ticketsToBook > maxTickets {
		return fmt.Errorf("at most %v tickets can be booked, overbooking is not supported", maxTickets)
	}
	return nil
}
