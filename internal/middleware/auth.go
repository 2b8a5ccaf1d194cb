package middleware

import (
	"strings"

	"trend-srv/pkg/response"
	"trend-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth verifies the caller's token and stores its scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// Priority 1: Authorization header, "Bearer <token>" or plain token
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// Priority 2: cookie
		if tokenString == "" {
			cookie, err := c.Cookie(m.cookieName)
			if err != nil || cookie == "" {
				response.Unauthorized(c)
				c.Abort()
				return
			}
			tokenString = cookie
		}

		if m.jwtManager == nil {
			m.l.Errorf(c.Request.Context(), "middleware.Auth: no token verifier configured")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
