package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

func GetEvents(filter bson.D) ([]model.Event, error) {
	events := []model.Event{}

	cur, err := EventsCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading events from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var event model.Event
		if err := cur.Decode(&event); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading events from database: %v", err)
		}
		events = append(events, event)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading events from database: %v", err)
	}

	return events, nil
}

func GetEventsByStatus(status workflow.State) ([]model.Event, error) {
	return GetEvents(bson.D{{Key: "status", Value: status}})
}

func GetEventsByOrganizer(organizerId int64) ([]model.Event, error) {
	return GetEvents(bson.D{{Key: "organizer_id", Value: organizerId}})
}

func GetEventsByOrganizerAndStatus(organizerId int64, status workflow.State) ([]model.Event, error) {
	return GetEvents(bson.D{
		{Key: "organizer_id", Value: organizerId},
		{Key: "status", Value: status},
	})
}

func GetEvent(eventId int64) (model.Event, bool, error) {
	events, err := GetEvents(bson.D{{Key: "_id", Value: eventId}})
	if err != nil {
		return model.Event{}, false, err
	}
	if len(events) == 0 {
		return model.Event{}, false, nil
	}
	return events[0], true, nil
}

func InsertEvent(event model.Event) error {
	_, err := EventsCollection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("db error while writing event: %v", err)
	}
	return nil
}

func UpdateEventStatus(eventId int64, status workflow.State) error {
	_, err := EventsCollection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: eventId}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}})
	if err != nil {
		return fmt.Errorf("db error while updating event status: %v", err)
	}
	return nil
}

// UpdateEventSeats adjusts the remaining seat count by delta, negative when a
// booking is made and positive when a refund returns tickets.
func UpdateEventSeats(eventId int64, delta int) error {
	_, err := EventsCollection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: eventId}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seats", Value: delta}}}})
	if err != nil {
		return fmt.Errorf("db error while updating event seats: %v", err)
	}
	return nil
}
