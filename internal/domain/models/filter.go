package models

// FilterKind discriminates the two shapes a TradeFilter can take.
type FilterKind int

const (
	// FilterFamily selects the latest trades of a protocol family inside a window
	// and resolves the traded tokens to market-data snapshots.
	FilterFamily FilterKind = iota + 1
	// FilterToken selects all successful trades of one token and returns the
	// analytics document with its all-time and post-watermark metrics.
	FilterToken
)

func (k FilterKind) String() string {
	switch k {
	case FilterFamily:
		return "family"
	case FilterToken:
		return "token"
	default:
		return "unknown"
	}
}

// TradeFilter is the input of the aggregation pipeline. Only the fields that
// belong to Kind are meaningful.
type TradeFilter struct {
	Kind FilterKind

	Family ProtocolFamily
	Window TimeWindow

	Token     string
	Watermark string
}

// ByFamily builds a family-filtered TradeFilter.
func ByFamily(family ProtocolFamily, window TimeWindow) TradeFilter {
	return TradeFilter{Kind: FilterFamily, Family: family, Window: window}
}

// ByToken builds a token-metrics TradeFilter.
func ByToken(token, watermark string) TradeFilter {
	return TradeFilter{Kind: FilterToken, Token: token, Watermark: watermark}
}
