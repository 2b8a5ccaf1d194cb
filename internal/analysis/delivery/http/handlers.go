package http

import (
	"trend-srv/internal/source"
	"trend-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Analyze a product
// @Description Fetch mentions from the requested sources, estimate sentiment, forecast and predict the trend, then store the report
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Analysis request"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/v1/analyze [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(o))
}

// @Summary List analyses
// @Description List the caller's stored analyses, newest first, with raw data reduced to the sources used
// @Tags Analysis
// @Produce json
// @Param limit query int false "Maximum entries (default and max 1000)"
// @Success 200 {object} listAnalysesResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/v1/analyses [get]
func (h *handler) ListAnalyses(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListAnalysesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.ListAnalyses: processListAnalysesRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.ListAnalyses: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListAnalysesResp(o))
}

// @Summary Get an analysis
// @Description Return one stored analysis with its full report
// @Tags Analysis
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} analysisResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/v1/analyses/{analysis_id} [get]
func (h *handler) GetAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processAnalysisIDRequest(c)

	o, err := h.uc.Get(ctx, sc, req.toGetInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.GetAnalysis: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalysisResp(o))
}

// @Summary Delete an analysis
// @Tags Analysis
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/v1/analyses/{analysis_id} [delete]
func (h *handler) DeleteAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processAnalysisIDRequest(c)

	if err := h.uc.Delete(ctx, sc, req.toDeleteInput()); err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.DeleteAnalysis: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{Message: "Analysis deleted successfully"})
}

// @Summary Compare products
// @Description Return the caller's latest analysis of each product; products without one are omitted
// @Tags Analysis
// @Produce json
// @Param products query string true "Comma separated product names"
// @Success 200 {object} compareResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/v1/compare [get]
func (h *handler) Compare(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processCompareRequest(c)

	o, err := h.uc.Compare(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Compare: usecase Compare failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompareResp(o))
}

// @Summary List sources
// @Description List the supported data sources
// @Tags Analysis
// @Produce json
// @Success 200 {object} sourcesResp
// @Router /api/v1/sources [get]
func (h *handler) ListSources(c *gin.Context) {
	response.OK(c, sourcesResp{Sources: source.Catalog()})
}
