package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10
)

// streamHandler pushes the session's live view over a websocket.
type streamHandler struct {
	recordService portssvc.RecordWatcherSvc
	upgrader      websocket.Upgrader
}

func newStreamHandler(rs portssvc.RecordWatcherSvc, allowedOrigin string) *streamHandler {
	return &streamHandler{
		recordService: rs,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowedOrigin == "" || strings.EqualFold(origin, allowedOrigin)
			},
		},
	}
}

// streamRecords godoc
// @Summary Live record view
// @Description Websocket. Sends the filtered view once on connect and again after every change to the collection.
// @Description Browsers pass the session token in the access_token query parameter.
// @Tags records
// @Param q query string false "Free-text search"
// @Param access_token query string false "Session token"
// @Success 101 {object} dto.ListRecordsResponse "One frame per snapshot"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /records/stream [get]
func (h *streamHandler) streamRecords(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	views, err := h.recordService.Subscribe(ctx, session, c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to subscribe to records")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()
	logger.Info("Record stream opened")

	// The reader only exists to notice the client going away.
	go func() {
		defer cancel()
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(streamPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Record stream closed")
			return
		case view, ok := <-views:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "subscription ended"),
					time.Now().Add(streamWriteWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(dto.ToListRecordsResponse(view)); err != nil {
				logger.Warn("Failed to write snapshot", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return
			}
		}
	}
}
