// Package client talks to the persistence service. Every call is
// fallible and is never retried here; the session surfaces a single
// labeled failure to the user instead.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/seriparkdev/haru/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}
}

// FetchAll loads every stored event.
func (c *Client) FetchAll(ctx context.Context) ([]models.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/events", nil)
	if err != nil {
		return nil, err
	}
	var body struct {
		Events []models.Event `json:"events"`
	}
	if err := c.do(req, http.StatusOK, &body); err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	return body.Events, nil
}

// Create stores a new event; the service assigns its id.
func (c *Client) Create(ctx context.Context, draft models.EventDraft) (models.Event, error) {
	req, err := c.jsonRequest(ctx, http.MethodPost, c.baseURL+"/api/events", draft)
	if err != nil {
		return models.Event{}, err
	}
	var created models.Event
	if err := c.do(req, http.StatusCreated, &created); err != nil {
		return models.Event{}, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}

// Update overwrites the event stored under id.
func (c *Client) Update(ctx context.Context, id string, draft models.EventDraft) (models.Event, error) {
	req, err := c.jsonRequest(ctx, http.MethodPut, c.baseURL+"/api/events/"+id, draft)
	if err != nil {
		return models.Event{}, err
	}
	var updated models.Event
	if err := c.do(req, http.StatusOK, &updated); err != nil {
		return models.Event{}, fmt.Errorf("update event %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes the event stored under id.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/events/"+id, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
