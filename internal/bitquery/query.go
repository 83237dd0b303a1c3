package bitquery

import (
	_ "embed"

	"github.com/guttosm/dexpulse/internal/domain/models"
)

//go:embed queries/recent_trades.graphql
var recentTradesQuery string

//go:embed queries/token_metrics.graphql
var tokenMetricsQuery string

// RecentTradesLimit is the row limit baked into the recent-trades query.
const RecentTradesLimit = 10

// Request is the body of a GraphQL call. Caller-supplied values only ever travel
// in Variables; Query is a fixed document.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// RecentTradesQuery selects the latest trades of one protocol family inside window,
// newest first, with both currencies of every trade.
func RecentTradesQuery(family models.ProtocolFamily, window models.TimeWindow) Request {
	return Request{
		Query: recentTradesQuery,
		Variables: map[string]any{
			"since":  window.Since,
			"till":   window.Till,
			"family": string(family),
		},
	}
}

// TokenMetricsQuery selects the successful trades of token and aggregates prices,
// counts and volumes twice: over every matched trade and over those after watermark.
func TokenMetricsQuery(token, watermark string) Request {
	return Request{
		Query: tokenMetricsQuery,
		Variables: map[string]any{
			"token":  token,
			"since1": watermark,
		},
	}
}

// QueryFor builds the request matching the kind of f.
func QueryFor(f models.TradeFilter) (Request, bool) {
	switch f.Kind {
	case models.FilterFamily:
		return RecentTradesQuery(f.Family, f.Window), true
	case models.FilterToken:
		return TokenMetricsQuery(f.Token, f.Watermark), true
	default:
		return Request{}, false
	}
}
