package middleware

import (
	"trend-srv/pkg/log"
	"trend-srv/pkg/scope"
)

// DefaultCookieName is the auth cookie set by the identity service.
const DefaultCookieName = "trend_auth_token"

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	cookieName string
}

func New(l log.Logger, jwtManager scope.Manager, cookieName string) Middleware {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		cookieName: cookieName,
	}
}
