package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"clockifish/internal/config"
	"clockifish/internal/domain"
	"clockifish/internal/errors"
	"clockifish/internal/logging"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Client defines the remote operations used against the time-tracking
// service. All state lives on the remote side; the client is stateless
// apart from its credentials.
type Client interface {
	// GetCurrentUser resolves the user owning the API key.
	GetCurrentUser(ctx context.Context) (*domain.User, error)

	// StartTimer creates a new time entry starting now. Empty description or
	// projectID means the field is omitted from the request entirely.
	StartTimer(ctx context.Context, description, projectID string) (*domain.TimeEntry, error)

	// GetInProgressEntries returns the user's entries with no end time.
	GetInProgressEntries(ctx context.Context, userID string) ([]*domain.TimeEntry, error)

	// StopTimer ends the user's running entry now. The caller is responsible
	// for knowing a timer is running.
	StopTimer(ctx context.Context, userID string) (*domain.TimeEntry, error)

	// GetTimeEntries returns entries intersecting [start, end) as reported
	// by the service. A single page is assumed authoritative.
	GetTimeEntries(ctx context.Context, userID string, start, end time.Time) ([]*domain.TimeEntry, error)
}

// HTTPClient implements Client using the Clockify REST API v1.
type HTTPClient struct {
	baseURL    string
	creds      config.Credentials
	http       *http.Client
	maxRetries int
}

// New creates a client from the loaded configuration.
func New(cfg *config.Config) *HTTPClient {
	baseURL := cfg.Clockify.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	return &HTTPClient{
		baseURL: baseURL,
		creds:   cfg.Credentials,
		http: &http.Client{
			Timeout: cfg.Clockify.HTTPTimeout,
		},
		maxRetries: cfg.Clockify.MaxRetries,
	}
}

// GetCurrentUser resolves the authenticated user via GET /user.
func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	const op = "get current user"

	endpoint, err := url.JoinPath(c.baseURL, "user")
	if err != nil {
		return nil, errors.NewInvalidRequestError(op, err)
	}

	var raw rawUser
	if err := c.getJSON(ctx, op, endpoint, nil, &raw); err != nil {
		return nil, err
	}
	return raw.toDomain(), nil
}

// StartTimer creates a new entry in the workspace with start set to now.
func (c *HTTPClient) StartTimer(ctx context.Context, description, projectID string) (*domain.TimeEntry, error) {
	const op = "start timer"

	endpoint, err := url.JoinPath(c.baseURL, "workspaces", c.creds.WorkspaceID, "time-entries")
	if err != nil {
		return nil, errors.NewInvalidRequestError(op, err)
	}

	// Optional fields are inserted only when present. The service
	// misinterprets explicit nulls, so absent means no key at all.
	payload := map[string]string{
		"start": timeNow().UTC().Format(time.RFC3339),
	}
	if description != "" {
		payload["description"] = description
	}
	if projectID != "" {
		payload["projectId"] = projectID
	}

	var raw rawTimeEntry
	if err := c.sendJSON(ctx, op, http.MethodPost, endpoint, payload, &raw); err != nil {
		return nil, err
	}
	return raw.toDomain(), nil
}

// GetInProgressEntries queries the user's running entries.
func (c *HTTPClient) GetInProgressEntries(ctx context.Context, userID string) ([]*domain.TimeEntry, error) {
	const op = "get in-progress entries"

	endpoint, err := c.userTimeEntriesURL(userID)
	if err != nil {
		return nil, errors.NewInvalidRequestError(op, err)
	}
	query := url.Values{"in-progress": {"true"}}

	var raw []rawTimeEntry
	if err := c.getJSON(ctx, op, endpoint, query, &raw); err != nil {
		return nil, err
	}
	return toDomainEntries(raw), nil
}

// StopTimer patches the user's time-entries collection with end set to now.
func (c *HTTPClient) StopTimer(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	const op = "stop timer"

	endpoint, err := c.userTimeEntriesURL(userID)
	if err != nil {
		return nil, errors.NewInvalidRequestError(op, err)
	}

	payload := map[string]string{
		"end": timeNow().UTC().Format(time.RFC3339),
	}

	var raw rawTimeEntry
	if err := c.sendJSON(ctx, op, http.MethodPatch, endpoint, payload, &raw); err != nil {
		return nil, err
	}
	return raw.toDomain(), nil
}

// GetTimeEntries fetches the user's entries intersecting [start, end).
func (c *HTTPClient) GetTimeEntries(ctx context.Context, userID string, start, end time.Time) ([]*domain.TimeEntry, error) {
	const op = "get time entries"

	endpoint, err := c.userTimeEntriesURL(userID)
	if err != nil {
		return nil, errors.NewInvalidRequestError(op, err)
	}
	query := url.Values{
		"start": {start.UTC().Format(time.RFC3339)},
		"end":   {end.UTC().Format(time.RFC3339)},
	}

	var raw []rawTimeEntry
	if err := c.getJSON(ctx, op, endpoint, query, &raw); err != nil {
		return nil, err
	}
	return toDomainEntries(raw), nil
}

func (c *HTTPClient) userTimeEntriesURL(userID string) (string, error) {
	return url.JoinPath(c.baseURL, "workspaces", c.creds.WorkspaceID, "user", userID, "time-entries")
}

// getJSON performs a GET and decodes the body. GETs require exactly 200.
func (c *HTTPClient) getJSON(ctx context.Context, op, endpoint string, query url.Values, out interface{}) error {
	build := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, errors.NewInvalidRequestError(op, err)
		}
		if query != nil {
			req.URL.RawQuery = query.Encode()
		}
		c.setHeaders(req)
		return req, nil
	}

	resp, err := c.send(ctx, op, build)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	logging.Debugf("clockify: %s -> %d\n", op, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return errors.NewAPIError(resp.StatusCode, readBody(resp.Body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewDecodeError(op, err)
	}
	return nil
}

// sendJSON performs a mutating call with a JSON body. Any 2xx is success.
func (c *HTTPClient) sendJSON(ctx context.Context, op, method, endpoint string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.NewInvalidRequestError(op, err)
	}

	build := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, errors.NewInvalidRequestError(op, err)
		}
		c.setHeaders(req)
		return req, nil
	}

	resp, err := c.send(ctx, op, build)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	logging.Debugf("clockify: %s %s -> %d\n", method, op, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewAPIError(resp.StatusCode, readBody(resp.Body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewDecodeError(op, err)
	}
	return nil
}

func (c *HTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("X-Api-Key", c.creds.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

// send performs the request, retrying transport failures and 5xx responses
// when a retry budget is configured. The default budget of zero keeps the
// strict single-shot behavior. The final attempt's response is returned
// as-is so status classification stays uniform.
func (c *HTTPClient) send(ctx context.Context, op string, build func() (*http.Request, error)) (*http.Response, error) {
	bo := backoff.NewExponentialBackOff()
	for attempt := 0; ; attempt++ {
		req, err := build()
		if err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req)
		if err == nil && (resp.StatusCode < http.StatusInternalServerError || attempt >= c.maxRetries) {
			return resp, nil
		}
		if err != nil {
			if attempt >= c.maxRetries {
				return nil, errors.NewInvalidResponseError(op, err)
			}
			logging.Debugf("clockify: %s attempt %d failed: %v\n", op, attempt+1, err)
		} else {
			logging.Debugf("clockify: %s attempt %d got status %d\n", op, attempt+1, resp.StatusCode)
			io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
		}

		select {
		case <-time.After(bo.NextBackOff()):
		case <-ctx.Done():
			return nil, errors.NewInvalidResponseError(op, ctx.Err())
		}
	}
}

// readBody drains a bounded amount of the response body for diagnostics.
// Best effort only: a read failure falls back to a placeholder string.
func readBody(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(body) == 0 {
		return "<no response body>"
	}
	return string(body)
}
