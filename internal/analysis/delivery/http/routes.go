package http

import (
	"trend-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	public := r.Group("/api/v1")
	{
		public.GET("/sources", h.ListSources)
	}

	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/analyze", h.Analyze)
		api.GET("/analyses", h.ListAnalyses)
		api.GET("/analyses/:analysis_id", h.GetAnalysis)
		api.DELETE("/analyses/:analysis_id", h.DeleteAnalysis)
		api.GET("/compare", h.Compare)
	}
}
