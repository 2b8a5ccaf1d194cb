package middleware

import (
	"runtime/debug"

	"trend-srv/pkg/log"
	"trend-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 envelope. The log line carries the
// request id set by RequestID and the stack of the panicking goroutine.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Errorf(c.Request.Context(), "middleware.Recovery: %s %s panicked: %v\n%s",
				c.Request.Method, c.FullPath(), rec, debug.Stack())

			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.PanicError(c, rec)
			c.Abort()
		}()
		c.Next()
	}
}
