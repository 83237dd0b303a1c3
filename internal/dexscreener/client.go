// Package dexscreener looks tokens up on the DEX Screener market-data API.
package dexscreener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/dexpulse/internal/domain/models"
	"github.com/guttosm/dexpulse/internal/logger"
)

const (
	// DefaultConcurrency bounds in-flight lookups when none is configured.
	DefaultConcurrency = 8
	maxResponseBytes   = 4 << 20
)

var (
	// ErrNoPairs marks a response whose pairs field is absent or null.
	ErrNoPairs = errors.New("no trading pairs")
	// ErrDecode marks a response body that is not a JSON object.
	ErrDecode = errors.New("undecodable response")
)

// Client fetches token snapshots.
type Client struct {
	baseURL     string
	http        *http.Client
	concurrency int
	log         zerolog.Logger
}

// NewClient returns a Client for baseURL, e.g. https://api.dexscreener.com/latest/dex/tokens.
func NewClient(baseURL string, timeout time.Duration, concurrency int) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, concurrency)
}

// NewClientWithHTTP is NewClient with a caller-provided *http.Client.
func NewClientWithHTTP(baseURL string, hc *http.Client, concurrency int) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        hc,
		concurrency: concurrency,
		log:         logger.With("dexscreener"),
	}
}

// FetchSnapshots looks up every identifier and returns the documents that carry
// trading pairs, in the order of ids.
//
// Lookups run concurrently, at most c.concurrency at a time, each writing to its
// own slot. A failed lookup or a document without pairs is logged and left out;
// FetchSnapshots itself never fails. The result is never nil.
func (c *Client) FetchSnapshots(ctx context.Context, ids []string) []models.Snapshot {
	slots := make([]models.Snapshot, len(ids))

	var g errgroup.Group
	g.SetLimit(c.concurrency)

	for i, id := range ids {
		g.Go(func() error {
			snap, err := c.Fetch(ctx, id)
			if err != nil {
				c.log.Warn().Err(err).Str("mint", id).Msg("snapshot skipped")
				return nil
			}
			slots[i] = snap
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.Snapshot, 0, len(ids))
	for _, s := range slots {
		if s != nil {
			out = append(out, s)
		}
	}

	c.log.Debug().Int("requested", len(ids)).Int("returned", len(out)).Msg("snapshots fetched")
	return out
}

// Fetch looks up a single token. It fails when the request fails, the body is not
// a JSON object, or pairs is absent or null.
func (c *Client) Fetch(ctx context.Context, id string) (models.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", id, err)
	}

	var probe struct {
		Pairs any `json:"pairs"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("%w (status %d): %v", ErrDecode, resp.StatusCode, err)
	}
	// TODO: pairs:null drops tokens DEX Screener does not list yet; confirm with product whether they should be returned empty instead.
	if probe.Pairs == nil {
		return nil, ErrNoPairs
	}

	return models.Snapshot(body), nil
}
