package bitquery

import "encoding/json"

// ExtractTokenIdentifiers collects the mint addresses referenced by the trades in
// an analytics document.
//
// It walks data.Solana.DEXTradeByTokens and, per trade, reads
// Trade.Currency.MintAddress then Trade.Side.Currency.MintAddress. Every string
// value different from exclude is appended. Duplicates are kept and document
// order is preserved. A missing level, a value of the wrong type, or an
// undecodable document contributes nothing; the result is never nil.
func ExtractTokenIdentifiers(doc []byte, exclude string) []string {
	out := make([]string, 0)

	var root any
	if err := json.Unmarshal(doc, &root); err != nil {
		return out
	}

	trades, ok := lookup(root, "data", "Solana", "DEXTradeByTokens").([]any)
	if !ok {
		return out
	}

	for _, trade := range trades {
		for _, path := range mintPaths {
			mint, ok := lookup(trade, path...).(string)
			if ok && mint != exclude {
				out = append(out, mint)
			}
		}
	}
	return out
}

// mintPaths lists where a trade references a currency, primary side first.
var mintPaths = [][]string{
	{"Trade", "Currency", "MintAddress"},
	{"Trade", "Side", "Currency", "MintAddress"},
}

// lookup follows keys through nested JSON objects and returns nil as soon as a
// level is missing or not an object.
func lookup(v any, keys ...string) any {
	for _, k := range keys {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = obj[k]
	}
	return v
}
