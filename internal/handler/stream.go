package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"cs2analytics/internal/repository"
	"cs2analytics/internal/service"
	"cs2analytics/internal/stream"
)

const defaultWriteTimeout = 5 * time.Second

type StreamHandler struct {
	Hub          *stream.Hub
	Query        *service.CatalogQueryService
	WriteTimeout time.Duration
	Clock        func() time.Time
	Logger       *zap.Logger
}

func (h *StreamHandler) Register(r *gin.Engine) {
	r.GET("/api/matches/stream", h.stream)
}

// @Summary Catalog event stream
// @Description Websocket. Sends a snapshot of all matches, then matches_refreshed and match_status_changed events.
// @Tags stream
// @Success 101
// @Failure 503 {object} errorResponse
// @Router /api/matches/stream [get]
func (h *StreamHandler) stream(c *gin.Context) {
	if h.Hub == nil {
		Error(c, http.StatusServiceUnavailable, "stream disabled")
		return
	}
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Debug("websocket accept failed", zap.Error(err))
		}
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	// Subscribe before the snapshot so nothing published in between is lost.
	events, cancel := h.Hub.Subscribe()
	defer cancel()

	ctx := conn.CloseRead(c.Request.Context())

	snapshot, err := h.Query.ListMatches(ctx, repository.ListMatchesParams{})
	if err != nil {
		conn.Close(websocket.StatusInternalError, "snapshot failed")
		return
	}
	if err := h.write(ctx, conn, stream.Event{Type: stream.EventSnapshot, At: now(h.Clock), Data: snapshot.Items}); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case ev, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "")
				return
			}
			if err := h.write(ctx, conn, ev); err != nil {
				if h.Logger != nil {
					h.Logger.Debug("websocket write failed", zap.Error(err))
				}
				return
			}
		}
	}
}

func (h *StreamHandler) write(ctx context.Context, conn *websocket.Conn, ev stream.Event) error {
	timeout := h.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return wsjson.Write(ctx, conn, ev)
}
