// Package fetch guards and performs the single outbound request made per
// extraction: it checks the target against the publisher allow-list and
// downloads the page.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/net/html/charset"
)

const acceptHTML = "text/html,application/xhtml+xml"

// ErrUpstream wraps transport failures talking to the publisher.
var ErrUpstream = errors.New("upstream fetch failed")

// StatusError is returned when the publisher answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.StatusCode)
}

// Page is a fetched document, decoded to UTF-8.
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        string
}

// Client performs exactly one GET per call: no retries, no timeout beyond the
// caller's context and the default redirect policy.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// MaxPageBytes caps how much of the body is read. Zero means no cap.
	MaxPageBytes int64
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// Get downloads target.
func (c *Client) Get(ctx context.Context, target *url.URL) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", acceptHTML)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var body io.Reader = resp.Body
	if c.MaxPageBytes > 0 {
		body = io.LimitReader(body, c.MaxPageBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	utf8Body, err := charset.NewReader(body, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrUpstream, err)
	}
	b, err := io.ReadAll(utf8Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	return &Page{
		URL:         target.String(),
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        string(b),
	}, nil
}
