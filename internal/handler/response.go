package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cs2analytics/internal/service"
)

const matchNotFoundMessage = "Match not found"

type errorResponse struct {
	Error   string `json:"error"`
	Backend string `json:"backend,omitempty"`
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Error: message})
}

// Fail maps a service error onto the HTTP error contract: not-found becomes
// 404, everything else 500 tagged with the backend name.
func Fail(c *gin.Context, backend string, err error) {
	if errors.Is(err, service.ErrNotFound) {
		Error(c, http.StatusNotFound, matchNotFoundMessage)
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error(), Backend: backend})
}
