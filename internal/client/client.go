package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"surveybot/internal/config"
	"surveybot/internal/domain"
)

// StatusError is returned when an endpoint answers with a non-2xx status
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
}

// Client talks to the submit, authenticate and list endpoints
type Client struct {
	http *http.Client
	cfg  config.EndpointsConfig
}

// New creates a client. A nil httpClient gets one with the configured timeout.
func New(cfg config.EndpointsConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{http: httpClient, cfg: cfg}
}

type loginRequest struct {
	Password string `json:"password"`
}

type listResponse struct {
	Responses []domain.Response `json:"responses"`
}

// Submit sends a completed record
func (c *Client) Submit(ctx context.Context, record domain.SurveyRecord) error {
	resp, err := c.postJSON(ctx, c.cfg.SubmitURL, record)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus("submit", resp)
}

// Authenticate checks the admin password
func (c *Client) Authenticate(ctx context.Context, password string) error {
	resp, err := c.postJSON(ctx, c.cfg.AuthURL, loginRequest{Password: password})
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus("authenticate", resp)
}

// ListResponses fetches all stored responses, forwarding the password as a header
func (c *Client) ListResponses(ctx context.Context, password string) ([]domain.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.ListURL, nil)
	if err != nil {
		return nil, fmt.Errorf("list: failed to build request: %w", err)
	}
	req.Header.Set(c.header(), password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus("list", resp); err != nil {
		return nil, err
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil && err != io.EOF {
		return nil, fmt.Errorf("list: failed to decode body: %w", err)
	}
	if body.Responses == nil {
		return []domain.Response{}, nil
	}

	return body.Responses, nil
}

func (c *Client) postJSON(ctx context.Context, url string, payload any) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

func (c *Client) header() string {
	if c.cfg.AdminHeader == "" {
		return config.DefaultAdminHeader
	}
	return c.cfg.AdminHeader
}

func checkStatus(endpoint string, resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}
	return nil
}
