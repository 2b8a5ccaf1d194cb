package http

import (
	"strconv"

	"trend-srv/internal/model"
	pkgErrors "trend-srv/pkg/errors"
	"trend-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, model.Scope, error) {
	var req analyzeReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.processAnalyzeRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidBody
	}
	if err := req.validate(); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processListAnalysesRequest(c *gin.Context) (listAnalysesReq, model.Scope, error) {
	var req listAnalysesReq

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return req, model.Scope{}, pkgErrors.NewValidationError("limit", "must be a positive integer")
		}
		req.Limit = limit
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processAnalysisIDRequest(c *gin.Context) (analysisIDReq, model.Scope) {
	req := analysisIDReq{
		AnalysisID: c.Param("analysis_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc
}

func (h *handler) processCompareRequest(c *gin.Context) (compareReq, model.Scope) {
	req := compareReq{
		Products: c.QueryArray("products"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc
}
