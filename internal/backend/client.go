// Package backend is a client for the wellness backend API. The site only
// consumes two routes: the health check and the contact form intake.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/amaljosh/wellness/internal/domain"
	"github.com/go-resty/resty/v2"
)

const (
	healthPath  = "/health"
	contactPath = "/contact"
)

// StatusError is returned when the backend answers outside the 2xx range.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: backend returned status %d", e.Op, e.StatusCode)
}

// Client talks to the backend through its /api base URL.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client. apiBaseURL already includes the /api prefix.
// A zero timeout means requests wait as long as their context allows.
func NewClient(apiBaseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(apiBaseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &Client{http: rc}
}

// Health issues GET /api/health and returns the raw response body.
func (c *Client) Health(ctx context.Context) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return "", fmt.Errorf("health check: %w: %w", domain.ErrBackendUnavailable, err)
	}
	if !resp.IsSuccess() {
		return "", &StatusError{Op: "health check", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return resp.String(), nil
}

// SubmitLead posts the lead as JSON to /api/contact. The response body of a
// 2xx answer is not interpreted.
func (c *Client) SubmitLead(ctx context.Context, lead domain.LeadSubmission) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(lead).
		Post(contactPath)
	if err != nil {
		return fmt.Errorf("submit lead: %w: %w", domain.ErrBackendUnavailable, err)
	}
	if !resp.IsSuccess() {
		return &StatusError{Op: "submit lead", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}
