package bitquery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/dexpulse/internal/logger"
)

// APIKeyHeader carries the analytics credential on every request.
const APIKeyHeader = "X-API-KEY"

// maxResponseBytes caps how much of an analytics response is read.
const maxResponseBytes = 8 << 20

// ErrTransport wraps failures to reach the analytics service.
var ErrTransport = errors.New("analytics request failed")

// ParseFailureDocument stands in for an analytics response whose body could not be
// read or is not JSON. It carries no trades, so extraction on it yields nothing.
var ParseFailureDocument = json.RawMessage(`{"error":"Failed to parse response"}`)

// Client posts GraphQL requests to the analytics service.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
	log    zerolog.Logger
}

// NewClient returns a Client for endpoint url authenticated with apiKey.
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	return NewClientWithHTTP(url, apiKey, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP is NewClient with a caller-provided *http.Client.
func NewClientWithHTTP(url, apiKey string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{url: url, apiKey: apiKey, http: hc, log: logger.With("bitquery")}
}

// Query sends req and returns the response document.
//
// Behavior:
//   - A transport failure returns an error wrapping ErrTransport.
//   - A body that cannot be read or is not JSON is replaced by ParseFailureDocument
//     and no error is returned.
//   - A non-2xx status is logged; the body is still returned since GraphQL errors
//     come back as JSON documents.
func (c *Client) Query(ctx context.Context, req Request) (json.RawMessage, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode graphql request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(APIKeyHeader, c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error().Err(err).Str("url", c.url).Msg("analytics request failed")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Msg("analytics non-2xx response")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.log.Warn().Err(err).Msg("analytics body read failed")
		return ParseFailureDocument, nil
	}
	if !json.Valid(body) {
		c.log.Warn().Int("bytes", len(body)).Msg("analytics body is not json")
		return ParseFailureDocument, nil
	}

	c.log.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Dur("elapsed", time.Since(start)).Msg("analytics response")
	return body, nil
}
