package paas

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# CS2 Match Catalog

In-memory catalog of CS2 teams and matches with generated match analyses.
Can run standalone or behind the easyweb3 PaaS gateway.

## Access via PaaS

Base path (through gateway):
- /api/v1/services/cs2-analytics/

Examples:
- GET /api/v1/services/cs2-analytics/api/matches
- POST /api/v1/services/cs2-analytics/api/matches/{id}/analyze

## Routes

- GET /health
- GET /healthz
- GET /readyz
- GET /swagger/index.html
- GET /api/teams
- GET /api/matches?status=live|upcoming|finished
- GET /api/matches/{id}
- GET /api/matches/stream (websocket)
- POST /api/matches/refresh
- POST /api/refresh-matches
- POST /api/matches/{id}/refresh
- POST /api/matches/{id}/analyze
`)
	})
}
