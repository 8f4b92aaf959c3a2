package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ticketing-webapp/model"
	"ticketing-webapp/workflow"
)

func (c *Client) GetApprovedEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := c.do(ctx, http.MethodGet, "/event/getApprovedEvents", nil, nil, &events); err != nil {
		return nil, fmt.Errorf("fetching approved events: %w", err)
	}
	return events, nil
}

func (c *Client) GetEventsByStatus(ctx context.Context, status workflow.State) ([]model.Event, error) {
	var events []model.Event
	query := url.Values{"status": {string(status)}}
	if err := c.do(ctx, http.MethodGet, "/event/getEventsByStatus", query, nil, &events); err != nil {
		return nil, fmt.Errorf("fetching events by status: %w", err)
	}
	return events, nil
}

func (c *Client) GetAllEventsOfOrganizer(ctx context.Context, organizerId int64) ([]model.Event, error) {
	var events []model.Event
	path := fmt.Sprintf("/event/getAllEventsOfOrganizer/%v", organizerId)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &events); err != nil {
		return nil, fmt.Errorf("fetching organizer events: %w", err)
	}
	return events, nil
}

func (c *Client) GetEventsOfOrganizerByStatus(ctx context.Context, organizerId int64, status workflow.State) ([]model.Event, error) {
	var events []model.Event
	path := fmt.Sprintf("/event/getEventsOfOrganizerByStatus/%v", organizerId)
	query := url.Values{"status": {string(status)}}
	if err := c.do(ctx, http.MethodGet, path, query, nil, &events); err != nil {
		return nil, fmt.Errorf("fetching organizer events by status: %w", err)
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, event model.Event) (model.Event, error) {
	var created model.Event
	if err := c.do(ctx, http.MethodPost, "/event/createEvent", nil, event, &created); err != nil {
		return model.Event{}, fmt.Errorf("creating event: %w", err)
	}
	return created, nil
}

// UpdateEventStatus persists an event transition and returns the server's
// acknowledgement message.
func (c *Client) UpdateEventStatus(ctx context.Context, eventId int64, status workflow.State) (string, error) {
	var ack messageEnvelope
	path := fmt.Sprintf("/event/updateStatus/%v", eventId)
	query := url.Values{"status": {string(status)}}
	if err := c.do(ctx, http.MethodPut, path, query, nil, &ack); err != nil {
		return "", fmt.Errorf("updating event status: %w", err)
	}
	return ack.Message, nil
}
