// Package client is the typed HTTP client for the ticketing backend. One file
// per resource; every call takes a context and returns wrapped errors so the
// views can tell a transport failure from a server rejection.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// session.Session implements it; a nil source issues anonymous requests.
type TokenSource interface {
	Token() string
}

// ServerError is a non-2xx response with the server's message passed through.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request: %v (status %v)", e.Message, e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
}

// messageEnvelope covers both the success shape {message} and the error shape
// {status, message, data} used by the backend.
type messageEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, &reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending %v %v: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var envelope messageEnvelope
		message := res.Status
		if decodeErr := json.NewDecoder(res.Body).Decode(&envelope); decodeErr == nil && envelope.Message != "" {
			message = envelope.Message
			if envelope.Data != "" {
				message += ": " + envelope.Data
			}
		}
		return &ServerError{StatusCode: res.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response of %v %v: %w", method, path, err)
	}
	return nil
}
