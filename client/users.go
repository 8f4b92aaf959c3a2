package client

import (
	"context"
	"fmt"
	"net/http"

	"ticketing-webapp/model"
)

func (c *Client) GetAllCustomers(ctx context.Context) ([]model.User, error) {
	var customers []model.User
	if err := c.do(ctx, http.MethodGet, "/user/getAllCustomers", nil, nil, &customers); err != nil {
		return nil, fmt.Errorf("fetching customers: %w", err)
	}
	return customers, nil
}

func (c *Client) GetAllOrganizers(ctx context.Context) ([]model.User, error) {
	var organizers []model.User
	if err := c.do(ctx, http.MethodGet, "/user/getAllOrganizers", nil, nil, &organizers); err != nil {
		return nil, fmt.Errorf("fetching organizers: %w", err)
	}
	return organizers, nil
}
