package websocket

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Handler upgrades HTTP requests to change-event streams
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler. An empty origin list allows all origins.
func NewHandler(hub *Hub, allowedOrigins []string, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		upgrader: newUpgrader(allowedOrigins),
		logger:   logger,
	}
}

// HandleConnection godoc
// @Summary Stream change events
// @Description Upgrades to a WebSocket that receives a CloudEvents JSON document after every successful mutation. Optional comma-separated topics filter (advisor, council, committee, member, event).
// @Tags changes
// @Param topics query string false "Comma-separated topic filter"
// @Success 101 {string} string "Switching Protocols"
// @Router /ws/changes [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	var topics []string
	if raw := c.Query("topics"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			topics = append(topics, strings.TrimSpace(t))
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := newClient(h.hub, conn, topics, h.logger)
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
