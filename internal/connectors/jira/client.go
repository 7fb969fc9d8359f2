package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/jiravec-cli/internal/core/domain"
	"github.com/custodia-labs/jiravec-cli/internal/core/ports/driven"
	"github.com/custodia-labs/jiravec-cli/internal/logger"
)

const (
	// DefaultTimeout is the fixed per-request deadline.
	DefaultTimeout = 30 * time.Second

	// MaxRetries is the retry budget for transient errors.
	MaxRetries = 5

	// RetryDelay is the initial delay between retries; it doubles per attempt.
	RetryDelay = time.Second

	// DefaultMaxResults is the default page size.
	DefaultMaxResults = 100

	// maxErrorBody bounds how much of an error response is kept for messages.
	maxErrorBody = 2048
)

// searchFields is the fixed field set requested per issue.
var searchFields = []string{
	"summary", "project", "issuetype", "status", "priority",
	"reporter", "assignee", "created", "updated", "resolutiondate",
	"labels", "comment", "description",
}

// Ensure Client implements the port.
var _ driven.IssueSource = (*Client)(nil)

// Client is a Jira search API client with basic-auth credentials.
type Client struct {
	baseURL    string
	username   string
	apiToken   string
	apiVersion int
	httpClient *http.Client
	limiter    *RateLimiter
	maxRetries int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Useful for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMaxRetries overrides the transient-error retry budget.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithRateLimit overrides the client-side rate limit.
func WithRateLimit(cfg RateLimitConfig) Option {
	return func(c *Client) { c.limiter = NewRateLimiter(cfg) }
}

// NewClient creates a Jira client for the given site and API version.
// The username/apiToken pair is sent as HTTP basic auth.
func NewClient(baseURL, username, apiToken string, apiVersion int, opts ...Option) (*Client, error) {
	if apiVersion != 2 && apiVersion != 3 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAPIVersion, apiVersion)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		apiToken:   apiToken,
		apiVersion: apiVersion,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    NewRateLimiter(DefaultRateLimit),
		maxRetries: MaxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// APIVersion returns the configured search API version.
func (c *Client) APIVersion() int {
	return c.apiVersion
}

// BaseURL returns the configured site URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// searchResponse is the wire shape of a search page for both API versions.
type searchResponse struct {
	Issues []domain.Issue `json:"issues"`
	// v2 pagination.
	Total int `json:"total"`
	// v3 pagination. IsLast defaults to true when the server omits it.
	IsLast        *bool  `json:"isLast"`
	NextPageToken string `json:"nextPageToken"`
}

// Search fetches one page of issues matching the request.
func (c *Client) Search(ctx context.Context, req driven.SearchRequest) (*driven.SearchPage, error) {
	endpoint, err := c.searchURL(req)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	page := &driven.SearchPage{
		Issues:        resp.Issues,
		Total:         resp.Total,
		IsLast:        resp.IsLast == nil || *resp.IsLast,
		NextPageToken: resp.NextPageToken,
	}
	return page, nil
}

// searchURL builds the version-specific search endpoint and parameters.
func (c *Client) searchURL(req driven.SearchRequest) (string, error) {
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	params := url.Values{}
	params.Set("jql", req.JQL)
	params.Set("fields", strings.Join(searchFields, ","))
	params.Set("maxResults", strconv.Itoa(maxResults))

	var path string
	switch c.apiVersion {
	case 2:
		path = "/rest/api/2/search"
		params.Set("startAt", strconv.Itoa(req.StartAt))
	case 3:
		path = "/rest/api/3/search/jql"
		if req.PageToken != "" {
			params.Set("nextPageToken", req.PageToken)
		}
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedAPIVersion, c.apiVersion)
	}

	return c.baseURL + path + "?" + params.Encode(), nil
}

// get performs a GET with rate limiting and bounded retries on 429/5xx
// responses and transport errors. Backoff doubles per attempt.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := RetryDelay << (attempt - 1)
			logger.Debug("retrying in %s (attempt %d/%d): %v", delay, attempt, c.maxRetries, lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.SetBasicAuth(c.username, c.apiToken)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("fetch page: %w", err)
			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				lastErr = fmt.Errorf("read response: %w", readErr)
				continue
			}
			return body, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			c.limiter.RecordRetryAfter(parseRetryAfter(resp.Header.Get("Retry-After")))
			lastErr = &RateLimitError{RetryAt: c.limiter.RetryAt()}

		case resp.StatusCode >= 500:
			lastErr = &APIError{
				StatusCode: resp.StatusCode,
				Message:    errorMessage(body),
				URL:        endpoint,
			}

		default:
			// Client errors other than 429 are not retryable.
			return nil, &APIError{
				StatusCode: resp.StatusCode,
				Message:    errorMessage(body),
				URL:        endpoint,
			}
		}
	}

	return nil, lastErr
}

// parseRetryAfter reads a Retry-After header given in seconds.
func parseRetryAfter(v string) int {
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

// errorMessage trims an error response body into a loggable message.
func errorMessage(body []byte) string {
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	if msg == "" {
		return "no response body"
	}
	return msg
}
