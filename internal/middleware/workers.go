package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConcurrencyLimiter serves at most workers requests at the same time. Extra
// requests wait for a free slot; one whose context ends while waiting gets 503.
// workers < 1 disables the limit.
func ConcurrencyLimiter(workers int) gin.HandlerFunc {
	if workers < 1 {
		return func(c *gin.Context) { c.Next() }
	}

	slots := make(chan struct{}, workers)

	return func(c *gin.Context) {
		select {
		case slots <- struct{}{}:
		case <-c.Request.Context().Done():
			AbortWithError(c, http.StatusServiceUnavailable, "server busy", c.Request.Context().Err())
			return
		}
		defer func() { <-slots }()

		c.Next()
	}
}
