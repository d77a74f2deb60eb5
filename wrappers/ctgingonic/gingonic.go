package ctgingonic

import (
	"github.com/gin-gonic/gin"
	"github.com/tracecarrier/cloudtrace-go/wrappers/common"
)

// Middleware returns a gin.HandlerFunc that picks up incoming trace context
// and pushes it on to the request context for downstream handlers.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(common.ContextFromRequest(c.Request))
		c.Next()
	}
}
