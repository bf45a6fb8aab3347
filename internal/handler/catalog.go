package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cs2analytics/internal/models"
	"cs2analytics/internal/paas"
	"cs2analytics/internal/repository"
	"cs2analytics/internal/service"
)

type CatalogHandler struct {
	Query   *service.CatalogQueryService
	Refresh *service.RefreshService
	Backend string
	Clock   func() time.Time
	Logger  *zap.Logger
}

type teamsResponse struct {
	Message string        `json:"message"`
	Teams   []models.Team `json:"teams"`
	Total   int64         `json:"total"`
	Backend string        `json:"backend"`
}

type matchesResponse struct {
	Message       string                  `json:"message"`
	Matches       []models.MatchWithTeams `json:"matches"`
	Total         int64                   `json:"total"`
	LiveCount     int                     `json:"live_count"`
	UpcomingCount int                     `json:"upcoming_count"`
	Backend       string                  `json:"backend"`
	LastUpdated   string                  `json:"last_updated"`
}

type refreshResponse struct {
	Message          string         `json:"message"`
	NewMatches       int            `json:"new_matches"`
	TotalMatches     int64          `json:"total_matches"`
	ArchivedCount    int64          `json:"archived_count"`
	Matches          []models.Match `json:"matches"`
	TournamentsAdded []string       `json:"tournaments_added"`
	Backend          string         `json:"backend"`
	LastUpdated      string         `json:"last_updated"`
}

func (h *CatalogHandler) Register(r *gin.Engine) {
	r.GET("/api/teams", h.listTeams)
	r.POST("/api/refresh-matches", h.refreshMatches)

	group := r.Group("/api/matches")
	group.GET("", h.listMatches)
	group.POST("/refresh", h.refreshMatches)
	group.GET("/:id", h.getMatch)
	group.POST("/:id/refresh", h.refreshMatches)
}

// @Summary List teams
// @Tags catalog
// @Produce json
// @Success 200 {object} teamsResponse
// @Failure 500 {object} errorResponse
// @Router /api/teams [get]
func (h *CatalogHandler) listTeams(c *gin.Context) {
	result, err := h.Query.ListTeams(c.Request.Context())
	if err != nil {
		h.fail(c, "list teams failed", err)
		return
	}
	c.JSON(http.StatusOK, teamsResponse{
		Message: "Teams from " + h.Backend + " backend",
		Teams:   result.Items,
		Total:   result.Total,
		Backend: h.Backend,
	})
}

// @Summary List matches with resolved teams
// @Tags catalog
// @Produce json
// @Param status query string false "live|upcoming|finished"
// @Param tournament query string false "exact tournament name"
// @Success 200 {object} matchesResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/matches [get]
func (h *CatalogHandler) listMatches(c *gin.Context) {
	var params repository.ListMatchesParams
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, ok := models.ParseMatchStatus(raw)
		if !ok {
			Error(c, http.StatusBadRequest, "invalid status")
			return
		}
		params.Status = &status
	}
	if raw := strings.TrimSpace(c.Query("tournament")); raw != "" {
		params.Tournament = &raw
	}

	result, err := h.Query.ListMatches(c.Request.Context(), params)
	if err != nil {
		h.fail(c, "list matches failed", err)
		return
	}
	c.JSON(http.StatusOK, matchesResponse{
		Message:       "Matches from " + h.Backend + " backend",
		Matches:       result.Items,
		Total:         result.Total,
		LiveCount:     result.LiveCount,
		UpcomingCount: result.UpcomingCount,
		Backend:       h.Backend,
		LastUpdated:   now(h.Clock).Format(time.RFC3339),
	})
}

// @Summary Get a match with resolved teams
// @Tags catalog
// @Produce json
// @Param id path string true "match id"
// @Success 200 {object} models.MatchWithTeams
// @Failure 404 {object} errorResponse
// @Router /api/matches/{id} [get]
func (h *CatalogHandler) getMatch(c *gin.Context) {
	m, err := h.Query.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get match failed", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Append synthesized upcoming matches
// @Description Also served at /api/refresh-matches and /api/matches/{id}/refresh; the id is ignored.
// @Tags catalog
// @Produce json
// @Success 200 {object} refreshResponse
// @Failure 500 {object} errorResponse
// @Router /api/matches/refresh [post]
func (h *CatalogHandler) refreshMatches(c *gin.Context) {
	result, err := h.Refresh.Refresh(c.Request.Context())
	if err != nil {
		paas.LogBestEffort(c.Request.Context(), "cs2_refresh_failed", "warn", map[string]any{
			"error": err.Error(),
		})
		h.fail(c, "refresh failed", err)
		return
	}
	paas.LogBestEffort(c.Request.Context(), "cs2_refresh", "info", map[string]any{
		"new_matches":   result.NewMatches,
		"total_matches": result.TotalMatches,
	})
	c.JSON(http.StatusOK, refreshResponse{
		Message:          "Matches refreshed",
		NewMatches:       result.NewMatches,
		TotalMatches:     result.TotalMatches,
		ArchivedCount:    result.ArchivedCount,
		Matches:          result.Matches,
		TournamentsAdded: result.Tournaments,
		Backend:          h.Backend,
		LastUpdated:      now(h.Clock).Format(time.RFC3339),
	})
}

func (h *CatalogHandler) fail(c *gin.Context, msg string, err error) {
	if h.Logger != nil {
		h.Logger.Warn(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	}
	Fail(c, h.Backend, err)
}
