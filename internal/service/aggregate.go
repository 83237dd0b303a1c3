package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/guttosm/dexpulse/internal/bitquery"
	"github.com/guttosm/dexpulse/internal/domain/models"
	"github.com/guttosm/dexpulse/internal/logger"
)

var (
	// ErrGateClosed is returned once the route cutoff has passed. No upstream call is made.
	ErrGateClosed = errors.New("gate closed")
	// ErrUnknownFilter is returned for a TradeFilter without a valid kind.
	ErrUnknownFilter = errors.New("unknown trade filter")
)

// Gate reports whether gated routes may still run.
type Gate interface {
	Open() bool
}

// Analytics runs a GraphQL request against the trade index.
type Analytics interface {
	Query(ctx context.Context, req bitquery.Request) (json.RawMessage, error)
}

// SnapshotFetcher resolves token identifiers to market-data snapshots.
type SnapshotFetcher interface {
	FetchSnapshots(ctx context.Context, ids []string) []models.Snapshot
}

// Result is the outcome of one pipeline run. Snapshots is set for family filters,
// Document for token filters.
type Result struct {
	Snapshots []models.Snapshot
	Document  json.RawMessage
}

// AggregationService defines the trade-to-token aggregation pipeline.
type AggregationService interface {
	Run(ctx context.Context, f models.TradeFilter) (*Result, error)
	RecentTrades(ctx context.Context, family models.ProtocolFamily, window models.TimeWindow) ([]models.Snapshot, error)
	TokenMetrics(ctx context.Context, token, watermark string) (json.RawMessage, error)
}

type aggregationService struct {
	gate      Gate
	analytics Analytics
	snapshots SnapshotFetcher
	exclude   string
}

// NewAggregationService wires the pipeline. exclude is the base mint left out of
// snapshot lookups; empty means models.NativeWrappedMint.
func NewAggregationService(gate Gate, analytics Analytics, snapshots SnapshotFetcher, exclude string) AggregationService {
	if exclude == "" {
		exclude = models.NativeWrappedMint
	}
	return &aggregationService{gate: gate, analytics: analytics, snapshots: snapshots, exclude: exclude}
}

// Run executes the pipeline for f:
//  1. gate check, ErrGateClosed when closed;
//  2. query built from the filter;
//  3. analytics call, whose error is returned as is;
//  4. for family filters, identifier extraction and snapshot lookup;
//     token filters return the analytics document instead.
func (s *aggregationService) Run(ctx context.Context, f models.TradeFilter) (*Result, error) {
	if !s.gate.Open() {
		return nil, ErrGateClosed
	}

	req, ok := bitquery.QueryFor(f)
	if !ok {
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownFilter, f.Kind)
	}

	doc, err := s.analytics.Query(ctx, req)
	if err != nil {
		return nil, err
	}

	if f.Kind == models.FilterToken {
		return &Result{Document: doc}, nil
	}

	ids := bitquery.ExtractTokenIdentifiers(doc, s.exclude)
	snaps := s.snapshots.FetchSnapshots(ctx, ids)
	if snaps == nil {
		snaps = []models.Snapshot{}
	}

	logger.L().Debug().
		Str("filter", f.Kind.String()).
		Str("family", string(f.Family)).
		Int("identifiers", len(ids)).
		Int("snapshots", len(snaps)).
		Msg("pipeline complete")

	return &Result{Snapshots: snaps}, nil
}

func (s *aggregationService) RecentTrades(ctx context.Context, family models.ProtocolFamily, window models.TimeWindow) ([]models.Snapshot, error) {
	res, err := s.Run(ctx, models.ByFamily(family, window))
	if err != nil {
		return nil, err
	}
	return res.Snapshots, nil
}

func (s *aggregationService) TokenMetrics(ctx context.Context, token, watermark string) (json.RawMessage, error) {
	res, err := s.Run(ctx, models.ByToken(token, watermark))
	if err != nil {
		return nil, err
	}
	return res.Document, nil
}
