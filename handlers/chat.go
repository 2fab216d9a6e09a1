package handlers

import (
	"net/http"

	"turfhub/models"
	"turfhub/services/chat"
	"turfhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler wires the group chat socket and history endpoints.
type ChatHandler struct {
	ChatService chat.ChatService
	Hub         *chat.Hub
}

// ChatSocketHandler handles GET /ws/chat. The connection multiplexes every
// group the user joins over one socket.
func (h *ChatHandler) ChatSocketHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.Hub.ServeWS(c.Writer, c.Request, userID); err != nil {
		utils.GetLogger().Error("Socket upgrade failed", zap.String("userID", userID), zap.Error(err))
		// Upgrade already wrote the handshake failure.
	}
}

// ChatHistoryHandler handles GET /games/:id/chat?limit=50.
func (h *ChatHandler) ChatHistoryHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	groupID := c.Param("id")

	allowed, err := h.ChatService.CanAccessGroup(groupID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not part of this group"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit = parseIntDefault(raw, 0)
	}
	history, err := h.ChatService.History(groupID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if history == nil {
		history = []models.ChatMessage{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": history})
}
