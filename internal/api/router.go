package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/dexpulse/internal/domain/models"
	"github.com/guttosm/dexpulse/internal/middleware"
)

// DefaultRequestTimeout bounds a whole request, upstream calls included.
const DefaultRequestTimeout = 25 * time.Second

// Options tunes the router middlewares. Zero values disable the worker and rate
// limits and use DefaultRequestTimeout.
type Options struct {
	BaseWorkers        int
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler).
//   - Rate limits the aggregation routes per client IP and caps them at opts.BaseWorkers
//     concurrently served requests.
//   - Adds request timeout handling; upstream calls inherit the request context.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the aggregation routes.
//
// Note:
//   - Health endpoints (/hey, /healthz, /readyz) are registered in app.InitializeApp()
//     and are never rate limited.
func NewRouter(handler *Handler, opts Options) *gin.Engine {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), opts.RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Aggregation ──────────────────────────────
	pipeline := router.Group("/",
		middleware.RateLimiter(opts.RateLimitPerMinute),
		middleware.ConcurrencyLimiter(opts.BaseWorkers),
	)
	{
		pipeline.GET("/raydium/:since/:till", handler.RecentTrades(models.FamilyRaydium))
		pipeline.GET("/moonshot/:since/:till", handler.RecentTrades(models.FamilyMoonshot))
		pipeline.GET("/pumpfun/:token/:watermark", handler.TokenMetrics)
	}

	return router
}
