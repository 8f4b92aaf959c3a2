package router

import (
	"ticketing-webapp/handlers"
	"ticketing-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/", logger.New())

	//Auth
	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)
	auth.Post("/logout", handlers.Logout)

	//Event
	event := api.Group("/event")
	event.Get("/getApprovedEvents", handlers.GetApprovedEvents)
	event.Get("/getEventsByStatus", middleware.Authorize(), handlers.GetEventsByStatus)
	event.Get("/getAllEventsOfOrganizer/:id", middleware.Authorize(), handlers.GetAllEventsOfOrganizer)
	event.Get("/getEventsOfOrganizerByStatus/:id", middleware.Authorize(), handlers.GetEventsOfOrganizerByStatus)
	event.Post("/createEvent", middleware.Authorize(), handlers.CreateEvent)
	event.Put("/updateStatus/:eventId", middleware.Authorize(), handlers.UpdateEventStatus)

	//Booking
	booking := api.Group("/booking", middleware.Authorize())
	booking.Post("/makeBooking", handlers.MakeBooking)
	booking.Get("/getAllBookingsOfUser/:id", handlers.GetAllBookingsOfUser)
	booking.Get("/getAllRefundBookingsByStatus", handlers.GetAllRefundBookingsByStatus)
	booking.Get("/getRefundedBookings/:id", handlers.GetRefundedBookings)
	booking.Get("/ticket/:bookingId", handlers.GetBookingTicket)
	booking.Put("/updateBookingStatus/:bookingId", handlers.UpdateBookingStatus)

	//User
	user := api.Group("/user", middleware.Authorize())
	user.Get("/getAllCustomers", handlers.GetAllCustomers)
	user.Get("/getAllOrganizers", handlers.GetAllOrganizers)
	user.Post("/createAdmin", handlers.Register)
}
