package riksdagen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the public host of the Riksdagen open data API.
	DefaultBaseURL = "https://data.riksdagen.se"

	searchPath = "/dokumentlista/"

	// RequestTimeout bounds every outgoing request.
	RequestTimeout = 30 * time.Second
)

// SearchError is returned for any failed search request. Transport failures
// (connection refused, DNS, timeout) and non-2xx responses are the same kind;
// callers treat them identically and the distinction lives in the message.
type SearchError struct {
	URL string
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("riksdagen search failed for %s: %v", e.URL, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Client issues search requests against the Riksdagen document archive. It
// wraps a single shared http.Client and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a Client. A nil httpClient gets a default client with
// RequestTimeout; an empty baseURL falls back to DefaultBaseURL; a nil logger
// discards log output.
func NewClient(httpClient *http.Client, baseURL string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: RequestTimeout}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
	}
}

// Search issues one GET to the document list endpoint with the given
// parameters and returns the raw JSON body unmodified. Normalization is the
// caller's responsibility. There are no retries and no response caching; any
// failure is a *SearchError.
func (c *Client) Search(ctx context.Context, params SearchParams) (json.RawMessage, error) {
	reqURL, err := url.Parse(c.baseURL + searchPath)
	if err != nil {
		return nil, &SearchError{URL: c.baseURL + searchPath, Err: fmt.Errorf("invalid URL: %w", err)}
	}

	q := reqURL.Query()
	for k, v := range params.QueryParams() {
		q.Set(k, v)
	}
	reqURL.RawQuery = q.Encode()
	finalURL := reqURL.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, finalURL, nil)
	if err != nil {
		return nil, &SearchError{URL: finalURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Executing archive search request", slog.String("url", finalURL))
	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error("Archive request failed",
			slog.String("url", finalURL),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return nil, &SearchError{URL: finalURL, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", slog.Any("error", err))
		}
	}()

	c.logger.Info("Archive request completed",
		slog.String("url", finalURL),
		slog.Duration("duration", duration),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SearchError{
			URL: finalURL,
			Err: fmt.Errorf("archive returned status %d (%s)", resp.StatusCode, resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SearchError{URL: finalURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return json.RawMessage(body), nil
}

// Close releases the shared HTTP client's idle connections. Call exactly once
// at process shutdown.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
