// Package client talks to the site's JSON API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/models/dto"
	"github.com/kartavya/website/internal/app/views"
	"github.com/kartavya/website/internal/pkg/apperrors"
)

// DefaultBaseURL is used when New is given an empty base URL.
const DefaultBaseURL = "http://localhost:8080"

// Client calls /api/v1 on one server
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for baseURL, e.g. "https://kartavya.org".
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a failed envelope returned by the server.
type APIError struct {
	StatusCode int
	Code       dto.ErrorCode
	Message    string
	Details    map[string]interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Unwrap maps the status onto the shared sentinel errors.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return apperrors.ErrResourceNotFound
	case http.StatusBadRequest:
		if e.Code == dto.ErrorCodeValidationFailed {
			return apperrors.ErrValidationFailed
		}
		return apperrors.ErrBadRequest
	case http.StatusTooManyRequests:
		return apperrors.ErrRateLimited
	case http.StatusInternalServerError:
		return apperrors.ErrSubmissionFailed
	}
	return nil
}

// FieldErrors returns per-field validation messages, if any.
func (e *APIError) FieldErrors() map[string]string {
	if len(e.Details) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Details))
	for k, v := range e.Details {
		out[k] = fmt.Sprint(v)
	}
	return out
}

type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, header http.Header, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s returned status %d: failed to decode response: %w", method, path, resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			if details, ok := env.Error.Details.(map[string]interface{}); ok {
				apiErr.Details = details
			}
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s data: %w", path, err)
	}
	return nil
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	items := []T{}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Organizations lists the active NGOs, newest incubation first.
func (c *Client) Organizations(ctx context.Context) ([]models.Organization, error) {
	return getList[models.Organization](ctx, c, "/api/v1/ngos")
}

// Members lists one NGO's members.
func (c *Client) Members(ctx context.Context, organizationID string) ([]models.OrganizationMember, error) {
	return getList[models.OrganizationMember](ctx, c, "/api/v1/ngos/"+url.PathEscape(organizationID)+"/members")
}

// Team lists the incubator team.
func (c *Client) Team(ctx context.Context) ([]models.TeamMember, error) {
	return getList[models.TeamMember](ctx, c, "/api/v1/team")
}

// Mentors lists the mentors.
func (c *Client) Mentors(ctx context.Context) ([]models.Mentor, error) {
	return getList[models.Mentor](ctx, c, "/api/v1/mentors")
}

// Podcasts lists the podcast episodes.
func (c *Client) Podcasts(ctx context.Context) ([]models.Podcast, error) {
	return getList[models.Podcast](ctx, c, "/api/v1/podcasts")
}

// Events lists events; the server applies the filter.
func (c *Client) Events(ctx context.Context, filter views.EventFilter) ([]models.Event, error) {
	path := "/api/v1/events"
	if filter != "" && filter != views.FilterAll {
		path += "?status=" + url.QueryEscape(string(filter))
	}
	return getList[models.Event](ctx, c, path)
}

// Health reports the server status.
func (c *Client) Health(ctx context.Context) (dto.HealthResponse, error) {
	var health dto.HealthResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, nil, &health)
	return health, err
}

// SubmitApplication posts one application. A non-empty clientToken is sent
// as the Idempotency-Key so a retry cannot create a second row.
func (c *Client) SubmitApplication(ctx context.Context, app models.Application, clientToken string) (dto.ApplicationSubmittedResponse, error) {
	var header http.Header
	if clientToken != "" {
		header = http.Header{"Idempotency-Key": []string{clientToken}}
	}
	var resp dto.ApplicationSubmittedResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/applications", dto.CreateApplicationRequest{Application: app}, header, &resp)
	return resp, err
}

// Submit satisfies views.ApplicationSubmitter.
func (c *Client) Submit(ctx context.Context, app models.Application, clientToken string) error {
	_, err := c.SubmitApplication(ctx, app, clientToken)
	return err
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound)
}
