package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HelloMessage is the body of the /hey liveness route.
const HelloMessage = "Hello there!"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /hey, /healthz: liveness (always 200).
//   - /readyz: readiness, 503 once the gated routes have expired.
type HealthHandler struct {
	open func() bool
}

// NewHealthHandler constructs a HealthHandler. open reports whether the gated
// routes are still served; nil means always.
func NewHealthHandler(open func() bool) *HealthHandler {
	return &HealthHandler{open: open}
}

// Register mounts the health endpoints into the provided Gin router.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Greeting
	// @Tags         health
	// @Produce      plain
	// @Success      200  {string}  string  "Hello there!"
	// @Router       /hey [get]
	r.GET("/hey", func(c *gin.Context) {
		c.String(http.StatusOK, HelloMessage)
	})

	// @Summary      Liveness probe
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// @Summary      Readiness probe
	// @Description  Reports expired once the gated routes answer 403
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.open != nil && !h.open() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "expired"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}
