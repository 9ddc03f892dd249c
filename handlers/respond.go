package handlers

import (
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// process logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// respondError writes the failure envelope, with the status and code derived
// from the service error type.
func respondError(c *gin.Context, err error) {
	utils.RespondError(c, err)
}
