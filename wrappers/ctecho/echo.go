package ctecho

import (
	echo "github.com/labstack/echo/v4"
	"github.com/tracecarrier/cloudtrace-go/wrappers/common"
)

// EchoWrapper provides trace context propagation for the Echo router via
// middleware.
type EchoWrapper struct{}

// New returns a new EchoWrapper struct
func New() *EchoWrapper {
	return &EchoWrapper{}
}

// Middleware returns an echo.MiddlewareFunc to be used with Echo.Use()
func (e *EchoWrapper) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			// push the context with the caller's span context on to the request
			c.SetRequest(r.WithContext(common.ContextFromRequest(r)))
			return next(c)
		}
	}
}
