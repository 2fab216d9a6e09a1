package handlers

import (
	"net/http"

	"turfhub/services/admin"
	"turfhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler wires the moderation endpoints.
type AdminHandler struct {
	AdminService admin.AdminService
}

// ListUsersHandler handles GET /admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	page, err := h.AdminService.ListUsers(listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listResponse(c, "users", page)
}

// ListOwnersHandler handles GET /admin/owners.
func (h *AdminHandler) ListOwnersHandler(c *gin.Context) {
	page, err := h.AdminService.ListOwners(listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listResponse(c, "owners", page)
}

// ListTurfsHandler handles GET /admin/turfs. Unlike the public browse this
// sees every verification status.
func (h *AdminHandler) ListTurfsHandler(c *gin.Context) {
	page, err := h.AdminService.ListTurfs(listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listResponse(c, "turfs", page)
}

// ApproveTurfHandler handles POST /admin/turfs/:id/approve.
func (h *AdminHandler) ApproveTurfHandler(c *gin.Context) {
	turfID := c.Param("id")
	if err := h.AdminService.ApproveTurf(turfID); err != nil {
		utils.GetLogger().Error("Approve failed", zap.String("turfID", turfID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Turf approved"})
}

// RejectTurfHandler handles POST /admin/turfs/:id/reject.
func (h *AdminHandler) RejectTurfHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.AdminService.RejectTurf(c.Param("id"), req.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Turf rejected"})
}

// BlockTurfHandler handles POST /admin/turfs/:id/block.
func (h *AdminHandler) BlockTurfHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)
	if err := h.AdminService.BlockTurf(c.Param("id"), req.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Turf blocked"})
}

// BlockUserHandler handles POST /admin/users/:id/block.
func (h *AdminHandler) BlockUserHandler(c *gin.Context) {
	if err := h.AdminService.BlockUser(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User blocked"})
}

// UnblockUserHandler handles POST /admin/users/:id/unblock.
func (h *AdminHandler) UnblockUserHandler(c *gin.Context) {
	if err := h.AdminService.UnblockUser(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User unblocked"})
}
