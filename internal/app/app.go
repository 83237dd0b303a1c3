package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dexpulse/config"
	"github.com/guttosm/dexpulse/internal/api"
	"github.com/guttosm/dexpulse/internal/bitquery"
	"github.com/guttosm/dexpulse/internal/dexscreener"
	"github.com/guttosm/dexpulse/internal/gate"
	"github.com/guttosm/dexpulse/internal/logger"
	"github.com/guttosm/dexpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the access gate from the configured cutoff.
//   - Creates the analytics (Bitquery) and market-data (DEX Screener) clients.
//   - Wires the aggregation service and HTTP handler layer.
//   - Configures the Gin router and registers health probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	if cfg.Bitquery.APIKey == "" {
		return nil, nil, fmt.Errorf("bitquery api key is not configured")
	}
	if cfg.Gate.Cutoff.IsZero() {
		return nil, nil, fmt.Errorf("gate cutoff is not configured")
	}

	g := gate.New(cfg.Gate.Cutoff)
	if !g.Open() {
		logger.L().Warn().Time("cutoff", g.Cutoff()).Msg("gate already closed; aggregation routes will answer 403")
	}

	analytics := bitquery.NewClient(cfg.Bitquery.URL, cfg.Bitquery.APIKey, cfg.Bitquery.Timeout)
	snapshots := dexscreener.NewClient(cfg.DexScreener.URL, cfg.DexScreener.Timeout, cfg.Pipeline.FetchConcurrency)

	svc := service.NewAggregationService(g, analytics, snapshots, cfg.Pipeline.ExcludedMint)

	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, api.Options{
		BaseWorkers:        cfg.Server.BaseWorkers,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	})

	api.NewHealthHandler(g.Open).Register(router)

	cleanup := func() {
		logger.L().Info().Msg("releasing resources")
	}

	return router, cleanup, nil
}
