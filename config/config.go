package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the upstream services and the access gate.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	BITQUERY_URL=https://streaming.bitquery.io/eap
//	BITQUERY_API_KEY=secret
//	DEXSCREENER_URL=https://api.dexscreener.com/latest/dex/tokens
//	GATE_CUTOFF=2024-11-26T00:00:00Z
//	BASE_WORKERS=4
//	FETCH_CONCURRENCY=8
type Config struct {
	Server      ServerConfig      // HTTP server configuration
	Bitquery    BitqueryConfig    // Analytics (GraphQL) service
	DexScreener DexScreenerConfig // Market-data (REST) service
	Gate        GateConfig        // Route expiry
	Pipeline    PipelineConfig    // Aggregation tuning
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Port: the TCP port the HTTP server will listen on (e.g., "8080").
//   - BaseWorkers: how many requests may be served at once; the rest wait for a slot.
//   - RateLimitPerMinute: per client IP request budget on the pipeline routes; 0 disables it.
type ServerConfig struct {
	Port               string
	BaseWorkers        int
	RateLimitPerMinute int
}

// BitqueryConfig defines how the analytics service is reached.
type BitqueryConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// DexScreenerConfig defines the market-data lookup endpoint. URL is the base the
// token identifier is appended to.
type DexScreenerConfig struct {
	URL     string
	Timeout time.Duration
}

// GateConfig holds the instant after which gated routes answer 403.
type GateConfig struct {
	Cutoff time.Time
}

// PipelineConfig tunes the trade-to-token aggregation.
//
// Fields:
//   - FetchConcurrency: max concurrent market-data lookups per request.
//   - ExcludedMint: base token never looked up (wrapped SOL by default).
type PipelineConfig struct {
	FetchConcurrency int
	ExcludedMint     string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// Defaults shared with tests.
const (
	DefaultBitqueryURL    = "https://streaming.bitquery.io/eap"
	DefaultDexScreenerURL = "https://api.dexscreener.com/latest/dex/tokens"
	DefaultGateCutoff     = "2024-11-26T00:00:00Z"
	DefaultExcludedMint   = "So11111111111111111111111111111111111111112"
)

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or malformed, validateConfig() will terminate
//     the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("BASE_WORKERS", 4)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 0)

	viper.SetDefault("BITQUERY_URL", DefaultBitqueryURL)
	viper.SetDefault("BITQUERY_API_KEY", "")
	viper.SetDefault("BITQUERY_TIMEOUT", "15s")

	viper.SetDefault("DEXSCREENER_URL", DefaultDexScreenerURL)
	viper.SetDefault("DEXSCREENER_TIMEOUT", "10s")

	viper.SetDefault("GATE_CUTOFF", DefaultGateCutoff)

	viper.SetDefault("FETCH_CONCURRENCY", 8)
	viper.SetDefault("EXCLUDED_MINT", DefaultExcludedMint)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			BaseWorkers:        viper.GetInt("BASE_WORKERS"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Bitquery: BitqueryConfig{
			URL:     viper.GetString("BITQUERY_URL"),
			APIKey:  viper.GetString("BITQUERY_API_KEY"),
			Timeout: viper.GetDuration("BITQUERY_TIMEOUT"),
		},
		DexScreener: DexScreenerConfig{
			URL:     viper.GetString("DEXSCREENER_URL"),
			Timeout: viper.GetDuration("DEXSCREENER_TIMEOUT"),
		},
		Gate: GateConfig{
			Cutoff: parseCutoff(viper.GetString("GATE_CUTOFF")),
		},
		Pipeline: PipelineConfig{
			FetchConcurrency: viper.GetInt("FETCH_CONCURRENCY"),
			ExcludedMint:     viper.GetString("EXCLUDED_MINT"),
		},
	}

	validateConfig()
}

// parseCutoff reads an RFC3339 instant. An unparsable value yields the zero time,
// which validateConfig reports.
func parseCutoff(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}

func missingFields(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.BaseWorkers < 1 {
		missing = append(missing, "BASE_WORKERS")
	}
	if cfg.Bitquery.URL == "" {
		missing = append(missing, "BITQUERY_URL")
	}
	if cfg.Bitquery.APIKey == "" {
		missing = append(missing, "BITQUERY_API_KEY")
	}
	if cfg.DexScreener.URL == "" {
		missing = append(missing, "DEXSCREENER_URL")
	}
	if cfg.Gate.Cutoff.IsZero() {
		missing = append(missing, "GATE_CUTOFF")
	}
	if cfg.Pipeline.FetchConcurrency < 1 {
		missing = append(missing, "FETCH_CONCURRENCY")
	}

	return missing
}
