package http

import (
	"strings"

	"trend-srv/internal/analysis"
	"trend-srv/internal/model"
	"trend-srv/internal/source"
	pkgErrors "trend-srv/pkg/errors"
	"trend-srv/pkg/response"
)

type analyzeReq struct {
	Product   string   `json:"product" binding:"required"`
	Sources   []string `json:"sources,omitempty"`
	TimeRange string   `json:"time_range,omitempty"`
	MaxPosts  int      `json:"max_posts,omitempty"`
}

func (r analyzeReq) validate() error {
	if strings.TrimSpace(r.Product) == "" {
		return pkgErrors.NewValidationError("product", "is required")
	}
	if r.MaxPosts < 0 || r.MaxPosts > 1000 {
		return pkgErrors.NewValidationError("max_posts", "must be between 0 and 1000")
	}
	return nil
}

func (r analyzeReq) toInput() analysis.GenerateInput {
	input := analysis.GenerateInput{
		Product:   strings.TrimSpace(r.Product),
		Sources:   r.Sources,
		TimeRange: r.TimeRange,
		MaxPosts:  r.MaxPosts,
	}
	if input.TimeRange == "" {
		input.TimeRange = analysis.DefaultTimeRange
	}
	if input.MaxPosts == 0 {
		input.MaxPosts = analysis.DefaultMaxPosts
	}
	return input
}

type listAnalysesReq struct {
	Limit int
}

func (r listAnalysesReq) toInput() analysis.ListInput {
	return analysis.ListInput{Limit: r.Limit}
}

type analysisIDReq struct {
	AnalysisID string
}

func (r analysisIDReq) toGetInput() analysis.GetInput {
	return analysis.GetInput{AnalysisID: r.AnalysisID}
}

func (r analysisIDReq) toDeleteInput() analysis.DeleteInput {
	return analysis.DeleteInput{AnalysisID: r.AnalysisID}
}

type compareReq struct {
	Products []string
}

func (r compareReq) toInput() analysis.CompareInput {
	return analysis.CompareInput{Products: r.Products}
}

type analyzeResp struct {
	AnalysisID string               `json:"analysis_id"`
	Report     model.AnalysisReport `json:"report"`
}

type analysisResp struct {
	AnalysisID string               `json:"analysis_id"`
	Product    string               `json:"product"`
	Report     model.AnalysisReport `json:"report"`
	CreatedAt  response.DateTime    `json:"created_at"`
}

type listAnalysesResp struct {
	Analyses []analysisResp `json:"analyses"`
	Total    int            `json:"total"`
}

type compareResp struct {
	Comparison map[string]analysisResp `json:"comparison"`
}

type deleteResp struct {
	Message string `json:"message"`
}

type sourcesResp struct {
	Sources []source.Info `json:"sources"`
}

func (h *handler) newAnalyzeResp(o analysis.GenerateOutput) analyzeResp {
	resp := analyzeResp{AnalysisID: o.AnalysisID}
	if o.Report != nil {
		resp.Report = *o.Report
	}
	return resp
}

func (h *handler) newAnalysisResp(a model.StoredAnalysis) analysisResp {
	return analysisResp{
		AnalysisID: a.AnalysisID,
		Product:    a.Product,
		Report:     a.Report,
		CreatedAt:  response.DateTime(a.CreatedAt),
	}
}

func (h *handler) newListAnalysesResp(items []analysis.Summary) listAnalysesResp {
	resp := listAnalysesResp{Analyses: make([]analysisResp, 0, len(items)), Total: len(items)}
	for _, s := range items {
		resp.Analyses = append(resp.Analyses, analysisResp{
			AnalysisID: s.AnalysisID,
			Product:    s.Product,
			Report:     s.Report,
			CreatedAt:  response.DateTime(s.CreatedAt),
		})
	}
	return resp
}

func (h *handler) newCompareResp(o analysis.CompareOutput) compareResp {
	resp := compareResp{Comparison: make(map[string]analysisResp, len(o.Analyses))}
	for product, a := range o.Analyses {
		resp.Comparison[product] = h.newAnalysisResp(a)
	}
	return resp
}
