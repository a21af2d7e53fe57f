package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "research-nest.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response as {"error": message}. Anything that is not
// an AppError is reported as a generic 500 so internals never leak to clients.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}

// AbortError aborts the request with an error response; for middleware
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
