package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"ticketing-webapp/config"
	"ticketing-webapp/database"
	"ticketing-webapp/router"
)

func main() {
	var err error

	database.UsersCollection, err = database.DBInit("users")
	if err != nil {
		logrus.WithError(err).Fatal("cannot initialize users collection")
	}
	database.EventsCollection, err = database.DBInit("events")
	if err != nil {
		logrus.WithError(err).Fatal("cannot initialize events collection")
	}
	database.BookingsCollection, err = database.DBInit("bookings")
	if err != nil {
		logrus.WithError(err).Fatal("cannot initialize bookings collection")
	}
	database.CountersCollection, err = database.DBInit("counters")
	if err != nil {
		logrus.WithError(err).Fatal("cannot initialize counters collection")
	}

	app := fiber.New()

	router.SetupRoutes(app)

	addr := config.GetListenAddr()
	logrus.WithField("addr", addr).Info("ticketing service listening")
	if err := app.Listen(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
