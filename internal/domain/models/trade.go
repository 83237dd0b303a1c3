package models

import "encoding/json"

// NativeWrappedMint is the wrapped SOL mint address. It sits on one side of most
// Solana DEX trades and is never looked up as a traded token.
const NativeWrappedMint = "So11111111111111111111111111111111111111112"

// ProtocolFamily identifies the DEX implementation that produced a trade, as
// reported by the analytics service in Trade.Dex.ProtocolFamily.
type ProtocolFamily string

const (
	FamilyRaydium  ProtocolFamily = "Raydium"
	FamilyMoonshot ProtocolFamily = "Moonshot"
)

// TimeWindow bounds a recent-trades query. Both values are passed through to the
// analytics service untouched; it is the one that validates their format.
type TimeWindow struct {
	Since string `json:"since" example:"2024-01-01T00:00:00Z"`
	Till  string `json:"till" example:"2024-01-02T00:00:00Z"`
}

// Snapshot is a market-data document for one token, kept exactly as returned.
//
// swagger:model Snapshot
type Snapshot = json.RawMessage
