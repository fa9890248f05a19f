package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/findash/internal/domain/dto"
	"github.com/guttosm/findash/internal/logger"
)

// ErrorHandler converts errors collected via c.Error into a standardized
// 500 JSON response when no handler has written a response yet.
//
// Handlers that map errors to specific statuses (404, 400) write their own
// responses; this middleware is the safety net for everything else.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("unhandled error")

	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error(), nil))
}

// AbortWithError writes a standardized error response with the given status
// and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
