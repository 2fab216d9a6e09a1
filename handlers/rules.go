package handlers

import (
	"errors"
	"net/http"

	"turfhub/models"
	"turfhub/services/rules"
	"turfhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RulesHandler wires the availability editor and viewer to the rules service.
type RulesHandler struct {
	RulesService rules.RulesService
}

// GetRulesHandler handles GET /owner/turfs/:id/rules. A turf without rules
// answers 200 with hasRules=false so the editor can open its empty state.
func (h *RulesHandler) GetRulesHandler(c *gin.Context) {
	turfID := c.Param("id")
	config, err := h.RulesService.GetRules(turfID)
	if err != nil {
		if errors.Is(err, rules.ErrNoRules) {
			c.JSON(http.StatusOK, gin.H{
				"success":  true,
				"hasRules": false,
				"message":  "No availability rules yet, create them to open bookings",
			})
			return
		}
		utils.GetLogger().Error("Failed to load rules", zap.String("turfID", turfID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hasRules": true, "rules": config})
}

// SaveRulesHandler handles PUT /owner/turfs/:id/rules. The whole document is
// validated and replaced; validation failures return every problem at once.
func (h *RulesHandler) SaveRulesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ownerID, ok := authedUserID(c)
	if !ok {
		return
	}

	var config models.RulesConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config.TurfID = c.Param("id")

	saved, err := h.RulesService.SaveRules(ownerID, &config)
	if err != nil {
		var verr *rules.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":  false,
				"problems": verr.Problems,
			})
			return
		}
		logger.Error("Failed to save rules", zap.String("turfID", config.TurfID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rules": saved})
}

// WeekViewHandler handles GET /turfs/:id/week. It returns per-day slot
// previews and open-hour totals; a turf without rules gets the same
// call-to-action shape as the editor.
func (h *RulesHandler) WeekViewHandler(c *gin.Context) {
	turfID := c.Param("id")
	view, err := h.RulesService.WeekView(turfID)
	if err != nil {
		if errors.Is(err, rules.ErrNoRules) {
			c.JSON(http.StatusOK, gin.H{
				"success":  true,
				"hasRules": false,
				"message":  "This turf has not published its availability yet",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hasRules": true, "week": view})
}

// AvailableSlotsHandler handles GET /turfs/:id/slots?date=YYYY-MM-DD.
func (h *RulesHandler) AvailableSlotsHandler(c *gin.Context) {
	turfID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date parameter"})
		return
	}

	slots, err := h.RulesService.AvailableSlots(turfID, date)
	if err != nil {
		if errors.Is(err, rules.ErrNoRules) {
			c.JSON(http.StatusOK, gin.H{"success": true, "slots": []models.AvailableSlot{}})
			return
		}
		getLogger(c).Error("Failed to derive slots",
			zap.String("turfID", turfID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if slots == nil {
		slots = []models.AvailableSlot{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "slots": slots})
}
