package model

import "ticketing-webapp/workflow"

type Event struct {
	Id            int64          `json:"id" bson:"_id"`
	Name          string         `json:"name" bson:"name"`
	Description   string         `json:"description" bson:"description"`
	Category      string         `json:"category" bson:"category"`
	Date          string         `json:"date" bson:"date"`
	Time          string         `json:"time" bson:"time"`
	Location      string         `json:"location" bson:"location"`
	Price         float64        `json:"price" bson:"price"`
	Seats         int            `json:"seats" bson:"seats"`
	OrganizerId   int64          `json:"organizerId" bson:"organizer_id"`
	OrganizerName string         `json:"organizerName" bson:"organizer_name"`
	PostedDate    string         `json:"postedDate" bson:"posted_date"`
	Status        workflow.State `json:"status" bson:"status"`
	Images        []string       `json:"images" bson:"images"`
}
