package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cs2analytics/internal/paas"
	"cs2analytics/internal/service"
)

type AnalysisHandler struct {
	Service *service.AnalysisService
	Backend string
	Logger  *zap.Logger
}

func (h *AnalysisHandler) Register(r *gin.Engine) {
	r.POST("/api/matches/:id/analyze", h.analyze)
}

// @Summary Generate a match analysis
// @Description Every call produces a fresh analysis; nothing is stored.
// @Tags analysis
// @Produce json
// @Param id path string true "match id"
// @Success 200 {object} models.Analysis
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/matches/{id}/analyze [post]
func (h *AnalysisHandler) analyze(c *gin.Context) {
	id := c.Param("id")
	analysis, err := h.Service.Analyze(c.Request.Context(), id)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Info("analyze failed", zap.String("match_id", id), zap.Error(err))
		}
		Fail(c, h.Backend, err)
		return
	}
	paas.LogBestEffort(c.Request.Context(), "cs2_analyze", "info", map[string]any{
		"match_id":         id,
		"predicted_winner": analysis.PredictedWinner,
		"confidence":       analysis.Confidence,
	})
	c.JSON(http.StatusOK, analysis)
}
