package client

import (
	"context"
	"fmt"
	"net/http"
)

type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

type LoginResult struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	UserId   int64  `json:"userId"`
	Name     string `json:"name"`
	LoggedIn bool   `json:"loggedIn"`
}

func (c *Client) Register(ctx context.Context, reg Registration) (string, error) {
	var ack messageEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, reg, &ack); err != nil {
		return "", fmt.Errorf("registering: %w", err)
	}
	return ack.Message, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	type credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, credentials{Email: email, Password: password}, &result); err != nil {
		return LoginResult{}, fmt.Errorf("logging in: %w", err)
	}
	return result, nil
}

func (c *Client) Logout(ctx context.Context) (string, error) {
	var ack messageEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, &ack); err != nil {
		return "", fmt.Errorf("logging out: %w", err)
	}
	return ack.Message, nil
}
