// Package remote is the HTTP client of the ledger backend.
//
// Every exported operation performs exactly one HTTP exchange, keeps no state
// between calls and never retries. Status codes are mapped to the error values
// declared in errors.go.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// RequestIDHeader carries a per-call id so that client and server logs can be
// correlated.
const RequestIDHeader = "X-Request-ID"

type Client struct {
	baseURL string
	http    *http.Client
	logger  *pterm.Logger
}

// NewClient returns a client for the backend rooted at baseURL.
// A nil httpClient means http.DefaultClient; a nil logger disables logging.
func NewClient(baseURL string, httpClient *http.Client, logger *pterm.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}, nil
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// response is what survives of an HTTP exchange once the body has been read.
type response struct {
	status int
	body   []byte
}

// do sends one request and reads the whole body. Transport problems are
// wrapped in ErrTransport; status codes are left to the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) (*response, error) {
	addr := c.baseURL + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create request %s %s: %w", ErrTransport, method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", c.logger.Args("method", method, "path", path, "request_id", requestID, "error", err))
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request done", c.logger.Args("method", method, "path", path, "status", resp.StatusCode, "request_id", requestID))

	if resp.StatusCode < 100 {
		return nil, fmt.Errorf("%w: %s %s: status %d", ErrInvalidResponse, method, path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read body of %s %s: %w", ErrTransport, method, path, err)
	}

	return &response{status: resp.StatusCode, body: data}, nil
}

// decodeFailure wraps a codec error and logs the offending body for debugging.
func (c *Client) decodeFailure(path string, body []byte, err error) error {
	c.logger.Debug("decoding failed", c.logger.Args("path", path, "body", string(body), "error", err))
	return fmt.Errorf("%w: %w", ErrDecoding, err)
}

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// resourceID validates the identifier of a get or delete.
func resourceID(kind, id string) (string, error) {
	if !isDigits(id) {
		return "", invalidRequest("%s id %q is not a decimal number", kind, id)
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return "", invalidRequest("%s id %q: %v", kind, id, err)
	}
	return strconv.FormatInt(n, 10), nil
}

// positiveID validates the identifier of an update.
func positiveID(kind, id string) (string, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return "", invalidRequest("%s id %q is not a positive integer", kind, id)
	}
	return strconv.FormatInt(n, 10), nil
}

// integerID validates a foreign key that only has to be an integer.
func integerID(kind, id string) (string, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return "", invalidRequest("%s id %q is not an integer", kind, id)
	}
	return strconv.FormatInt(n, 10), nil
}
