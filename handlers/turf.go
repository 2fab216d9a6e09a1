package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"turfhub/models"
	"turfhub/services/turf"
	"turfhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TurfHandler wires turf CRUD and browsing to the turf service.
type TurfHandler struct {
	TurfService turf.TurfService
}

// CreateTurfHandler handles POST /owner/turfs.
func (h *TurfHandler) CreateTurfHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	var input models.TurfInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.TurfService.CreateTurf(ownerID, input)
	if err != nil {
		utils.GetLogger().Error("Failed to create turf", zap.String("ownerID", ownerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTurfHandler handles PUT /owner/turfs/:id.
func (h *TurfHandler) UpdateTurfHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	var input models.TurfInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.TurfService.UpdateTurf(ownerID, c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTurfHandler handles DELETE /owner/turfs/:id.
func (h *TurfHandler) DeleteTurfHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.TurfService.DeleteTurf(ownerID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Turf deleted"})
}

// GetTurfHandler handles GET /turfs/:id.
func (h *TurfHandler) GetTurfHandler(c *gin.Context) {
	t, err := h.TurfService.GetTurfByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// BrowseTurfsHandler handles GET /turfs.
func (h *TurfHandler) BrowseTurfsHandler(c *gin.Context) {
	page, err := h.TurfService.BrowseTurfs(listParams(c))
	if err != nil {
		getLogger(c).Error("Failed to browse turfs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listResponse(c, "turfs", page)
}

// ListOwnerTurfsHandler handles GET /owner/turfs.
func (h *TurfHandler) ListOwnerTurfsHandler(c *gin.Context) {
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	page, err := h.TurfService.ListOwnerTurfs(ownerID, listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listResponse(c, "turfs", page)
}

// UploadTurfImageHandler handles POST /owner/turfs/:id/images. It accepts a
// multipart "image" file, stages it to a temp path and hands it to storage.
func (h *TurfHandler) UploadTurfImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to stage upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}
	defer os.Remove(tmpPath)

	updated, err := h.TurfService.AttachImage(ownerID, c.Param("id"), tmpPath)
	if err != nil {
		logger.Error("Failed to attach turf image", zap.String("turfID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
