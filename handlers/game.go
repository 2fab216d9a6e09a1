package handlers

import (
	"net/http"

	"turfhub/models"
	"turfhub/services/game"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GameHandler wires group game endpoints to the game service.
type GameHandler struct {
	GameService game.GameService
}

// HostGameHandler handles POST /games.
func (h *GameHandler) HostGameHandler(c *gin.Context) {
	hostID, ok := authedUserID(c)
	if !ok {
		return
	}
	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := h.GameService.HostGame(hostID, input)
	if err != nil {
		getLogger(c).Warn("Failed to host game", zap.String("hostID", hostID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, g)
}

// JoinGameHandler handles POST /games/:id/join.
func (h *GameHandler) JoinGameHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	g, err := h.GameService.JoinGame(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

// LeaveGameHandler handles POST /games/:id/leave.
func (h *GameHandler) LeaveGameHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	g, err := h.GameService.LeaveGame(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

// GetGameHandler handles GET /games/:id.
func (h *GameHandler) GetGameHandler(c *gin.Context) {
	g, err := h.GameService.GetGame(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

// ListGamesHandler handles GET /games, optionally scoped to ?turfId=.
func (h *GameHandler) ListGamesHandler(c *gin.Context) {
	page, err := h.GameService.ListGames(listParams(c), c.Query("turfId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listResponse(c, "games", page)
}
