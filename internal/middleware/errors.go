package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dexpulse/internal/domain/dto"
	"github.com/guttosm/dexpulse/internal/logger"
)

// ErrorHandler renders the last error attached to the context with c.Error as a
// 500 dto.ErrorResponse, unless a response was already written.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request error")

	if c.Writer.Written() {
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the chain and writes a dto.ErrorResponse with the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
