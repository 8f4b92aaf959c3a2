package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

func GetBookings(filter bson.D) ([]model.Booking, error) {
	bookings := []model.Booking{}

	cur, err := BookingsCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var booking model.Booking
		if err := cur.Decode(&booking); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
		}
		bookings = append(bookings, booking)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
	}

	return bookings, nil
}

func GetBooking(bookingId int64) (model.Booking, bool, error) {
	bookings, err := GetBookings(bson.D{{Key: "_id", Value: bookingId}})
	if err != nil {
		return model.Booking{}, false, err
	}
	if len(bookings) == 0 {
		return model.Booking{}, false, nil
	}
	return bookings[0], true, nil
}

func GetBookingsByUser(userId int64) ([]model.Booking, error) {
	return GetBookings(bson.D{{Key: "user_id", Value: userId}})
}

func GetRefundBookingsByStatus(status workflow.State) ([]model.Booking, error) {
	return GetBookings(bson.D{{Key: "status", Value: status}})
}

func GetRefundedBookingsByUser(userId int64) ([]model.Booking, error) {
	return GetBookings(bson.D{
		{Key: "user_id", Value: userId},
		{Key: "refunded", Value: true},
	})
}

func InsertBooking(booking model.Booking) error {
	_, err := BookingsCollection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("db error while writing booking: %v", err)
	}
	return nil
}

func UpdateBookingStatus(bookingId int64, status workflow.State, refunded bool) error {
	_, err := BookingsCollection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: bookingId}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "refunded", Value: refunded},
		}}})
	if err != nil {
		return fmt.Errorf("db error while updating booking status: %v", err)
	}
	return nil
}
