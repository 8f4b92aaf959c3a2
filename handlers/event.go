package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ticketing-webapp/database"
	"ticketing-webapp/httperr"
	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

func GetApprovedEvents(c *fiber.Ctx) error {
	events, dbErr := database.GetEventsByStatus(workflow.StateApproved)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	return c.JSON(events)
}

func GetEventsByStatus(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return httperr.RaisePermissionsError(c, "only admin can perform this operation")
	}

	status := workflow.State(c.Query("status"))
	if !workflow.KnownState(workflow.EntityEvent, status) {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unknown event status %q", c.Query("status")))
	}

	events, dbErr := database.GetEventsByStatus(status)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	return c.JSON(events)
}

func GetAllEventsOfOrganizer(c *fiber.Ctx) error {
	organizerId, err := paramId(c, "id")
	if err != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unacceptable organizer id: %v", err))
	}

	events, dbErr := database.GetEventsByOrganizer(organizerId)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	return c.JSON(events)
}

func GetEventsOfOrganizerByStatus(c *fiber.Ctx) error {
	organizerId, err := paramId(c, "id")
	if err != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unacceptable organizer id: %v", err))
	}

	status := workflow.State(c.Query("status"))
	if !workflow.KnownState(workflow.EntityEvent, status) {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unknown event status %q", c.Query("status")))
	}

	events, dbErr := database.GetEventsByOrganizerAndStatus(organizerId, status)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	return c.JSON(events)
}

func CreateEvent(c *fiber.Ctx) error {
	if !isOrganizerRole(c) {
		return httperr.RaisePermissionsError(c, "only organizer can perform this operation")
	}

	newEvent := new(model.Event)
	if jsonErr := c.BodyParser(newEvent); jsonErr != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unacceptable event parameters: %v", jsonErr))
	}
	newEvent.Name = strings.TrimSpace(newEvent.Name)

	if validationErr := validateEventInfoInput(*newEvent); validationErr != nil {
		return httperr.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for event parameters: %v", validationErr))
	}

	eventId, idErr := database.NextSequence("events")
	if idErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", idErr))
	}

	newEvent.Id = eventId
	newEvent.OrganizerId = identityUserId(c)
	newEvent.OrganizerName = tokenClaims(c)["name"].(string)
	newEvent.PostedDate = time.Now().Format("2006-01-02")
	newEvent.Status = workflow.StatePending
	if newEvent.Images == nil {
		newEvent.Images = []string{}
	}

	if writeErr := database.InsertEvent(*newEvent); writeErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	return c.JSON(newEvent)
}

func UpdateEventStatus(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return httperr.RaisePermissionsError(c, "only admin can perform this operation")
	}

	eventId, err := paramId(c, "eventId")
	if err != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unacceptable event id: %v", err))
	}

	target := workflow.State(c.Query("status"))
	if !workflow.KnownState(workflow.EntityEvent, target) {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unknown event status %q", c.Query("status")))
	}

	event, found, dbErr := database.GetEvent(eventId)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if !found {
		return httperr.RaiseNotFoundError(c, fmt.Sprintf("event %v not found", eventId))
	}

	if !workflow.CanTransition(workflow.EntityEvent, event.Status, target) {
		return httperr.RaiseBadRequestError(c,
			fmt.Sprintf("cannot move event from %q to %q", event.Status, target))
	}

	if updateErr := database.UpdateEventStatus(eventId, target); updateErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("event %v is now %v", eventId, target)})
}

func validateEventInfoInput(event model.Event) error {
	if len(event.Name) < 2 {
		return fmt.Errorf("event name is too short")
	}
	if event.Seats <= 0 {
		return fmt.Errorf("event must have at least one seat")
	}
	if event.Price < 0 {
		return fmt.Errorf("event price cannot be negative")
	}
	if event.Date == "" || event.Time == "" {
		return fmt.Errorf("event date and time are required")
	}
	if event.Location == "" {
		return fmt.Errorf("event location is required")
	}
	return nil
}
