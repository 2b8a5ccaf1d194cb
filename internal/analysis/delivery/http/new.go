package http

import (
	"trend-srv/internal/analysis"
	"trend-srv/internal/middleware"
	"trend-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc analysis.UseCase
}

func New(l log.Logger, uc analysis.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
