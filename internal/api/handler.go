package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dexpulse/internal/domain/models"
	"github.com/guttosm/dexpulse/internal/gate"
	"github.com/guttosm/dexpulse/internal/service"
)

// Handler provides HTTP handlers for the aggregation routes.
//
// Responsibilities:
//   - Read path parameters and hand them to the pipeline untouched
//   - Map pipeline errors to status codes (403 gate closed, 500 upstream failure)
//   - Write snapshots or the metrics document as JSON
type Handler struct {
	svc service.AggregationService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.AggregationService) *Handler {
	return &Handler{svc: svc}
}

// RecentTrades returns the handler of a family-filtered route.
//
// Path Parameters:
//   - since, till (string): window bounds, forwarded as-is to the analytics service.
//
// Responses:
//   - 200 OK: JSON array of market-data snapshots (possibly empty).
//   - 403 Forbidden: the route cutoff has passed.
//   - 500 Internal Server Error: the analytics service could not be reached.
//
// RecentTrades godoc
// @Summary      Snapshots of tokens traded recently on a DEX family
// @Description  Reads the 10 latest trades of the family inside the window, drops wrapped SOL, and returns the DEX Screener document of every other traded token that has pairs
// @Tags         trades
// @Produce      json
// @Param        since  path      string  true  "Window start" example(2024-01-01T00:00:00Z)
// @Param        till   path      string  true  "Window end"   example(2024-01-02T00:00:00Z)
// @Success      200    {array}   object  "Snapshots"
// @Failure      403    {string}  string  "This endpoint is no longer available"
// @Failure      500    {string}  string  "Error fetching data"
// @Failure      503    {object}  dto.ErrorResponse  "Server busy"
// @Router       /raydium/{since}/{till} [get]
// @Router       /moonshot/{since}/{till} [get]
func (h *Handler) RecentTrades(family models.ProtocolFamily) gin.HandlerFunc {
	return func(c *gin.Context) {
		window := models.TimeWindow{Since: c.Param("since"), Till: c.Param("till")}

		snaps, err := h.svc.RecentTrades(c.Request.Context(), family, window)
		if err != nil {
			writePipelineError(c, err)
			return
		}

		c.JSON(http.StatusOK, snaps)
	}
}

// TokenMetrics handles GET /pumpfun/{token}/{watermark}.
//
// TokenMetrics godoc
// @Summary      Trade metrics of one token
// @Description  Returns the analytics document with first/watermark/last USD price and counts and volumes over all trades and over trades after the watermark
// @Tags         trades
// @Produce      json
// @Param        token      path      string  true  "Token mint address"
// @Param        watermark  path      string  true  "Recent-window start" example(2024-11-20T10:00:00Z)
// @Success      200        {object}  object  "Analytics document"
// @Failure      403        {string}  string  "This endpoint is no longer available"
// @Failure      500        {string}  string  "Error fetching data"
// @Failure      503        {object}  dto.ErrorResponse  "Server busy"
// @Router       /pumpfun/{token}/{watermark} [get]
func (h *Handler) TokenMetrics(c *gin.Context) {
	doc, err := h.svc.TokenMetrics(c.Request.Context(), c.Param("token"), c.Param("watermark"))
	if err != nil {
		writePipelineError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}

// writePipelineError answers in plain text: the fixed gate message for
// ErrGateClosed, the error detail otherwise.
func writePipelineError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrGateClosed) {
		c.String(http.StatusForbidden, gate.ClosedMessage)
		return
	}
	c.String(http.StatusInternalServerError, "Error fetching data: %s", err.Error())
}
