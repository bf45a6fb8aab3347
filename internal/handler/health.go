package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Readiness reports whether the catalog has been seeded.
type Readiness interface {
	Seeded() bool
}

type HealthHandler struct {
	Backend string
	Version string
	Ready   Readiness
	Clock   func() time.Time
}

type healthResponse struct {
	Status    string `json:"status"`
	Backend   string `json:"backend"`
	Timestamp string `json:"timestamp"`
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Backend string `json:"backend"`
}

func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/", h.root)
	r.GET("/health", h.health)
	r.GET("/healthz", h.healthz)
	r.GET("/readyz", h.ready)
}

// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} rootResponse
// @Router / [get]
func (h *HealthHandler) root(c *gin.Context) {
	c.JSON(http.StatusOK, rootResponse{
		Message: "CS2 Analytics " + h.Backend + " Backend",
		Version: h.Version,
		Backend: h.Backend,
	})
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *HealthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Backend:   h.Backend,
		Timestamp: now(h.Clock).Format(time.RFC3339),
	})
}

// @Summary Liveness probe
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Readiness probe
// @Tags health
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /readyz [get]
func (h *HealthHandler) ready(c *gin.Context) {
	if h.Ready == nil || !h.Ready.Seeded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_seeded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func now(clock func() time.Time) time.Time {
	if clock != nil {
		return clock()
	}
	return time.Now().UTC()
}
