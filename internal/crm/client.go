package crm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pipeline_dashboard/internal/models"
)

const (
	DefaultBaseURL    = "https://services.leadconnectorhq.com"
	DefaultAPIVersion = "2021-07-28"
	DefaultTimeout    = 10 * time.Second
	DefaultMaxResults = 10

	searchPath   = "/opportunities/search"
	maxErrorBody = 512
)

// Config configures a Client. Zero values fall back to the defaults above.
type Config struct {
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
	MaxResults int
	HTTPClient *http.Client
}

// Client issues opportunity searches against the CRM.
type Client struct {
	baseURL    string
	apiVersion string
	timeout    time.Duration
	maxResults int
	http       *http.Client
}

func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiVersion: cfg.APIVersion,
		timeout:    cfg.Timeout,
		maxResults: cfg.MaxResults,
		http:       cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.apiVersion == "" {
		c.apiVersion = DefaultAPIVersion
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.maxResults <= 0 {
		c.maxResults = DefaultMaxResults
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c
}

// MaxResults returns the cap applied to every search.
func (c *Client) MaxResults() int { return c.maxResults }

// Search runs one opportunity search scoped to the credentials' location and
// returns at most MaxResults normalized records. 401/403 answers yield an
// error matching ErrUnauthorized; deadline overruns match ErrTimeout.
func (c *Client) Search(ctx context.Context, creds models.Credentials) ([]models.Opportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("location_id", creds.CrmLocationID)
	q.Set("limit", strconv.Itoa(c.maxResults))
	endpoint := c.baseURL + searchPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build CRM request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.CrmAccessToken)
	req.Header.Set("Version", c.apiVersion)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, fmt.Errorf("%w after %s: %v", ErrTimeout, c.timeout, err)
		}
		return nil, fmt.Errorf("CRM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(body))
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, &AuthError{StatusCode: resp.StatusCode, Body: msg}
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: msg}
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if isTimeout(ctx, err) {
			return nil, fmt.Errorf("%w after %s: %v", ErrTimeout, c.timeout, err)
		}
		return nil, fmt.Errorf("decode CRM response: %w", err)
	}
	return normalize(out.Opportunities, c.maxResults), nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
